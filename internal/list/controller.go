// Package list holds the in-memory mirror of a remote collection that every
// listing screen in the portal drives: wholesale loads, confirmed mutations,
// one optimistic path (the availability toggle) with precise rollback, and a
// pure search over the current snapshot.
package list

import (
	"context"
	"strings"
	"sync"
)

// Item is anything the controller can manage: an id to key mutations by and
// the text Search matches against.
type Item interface {
	ItemID() string
	SearchText() string
}

// FetchFunc retrieves the full remote collection.
type FetchFunc[T Item] func(ctx context.Context) ([]T, error)

// ToggleFunc persists a boolean flip for one item.
type ToggleFunc func(ctx context.Context, id string, next bool) error

// Controller mirrors one remote list. Display order is fetch order; no
// operation ever reorders surviving items.
type Controller[T Item] struct {
	mu    sync.Mutex
	fetch FetchFunc[T]
	items []T
	err   error
}

func New[T Item](fetch FetchFunc[T]) *Controller[T] {
	return &Controller[T]{fetch: fetch}
}

// Load replaces the local list wholesale with the remote one. On failure the
// list is left empty with the error retained; there is no automatic retry.
func (c *Controller[T]) Load(ctx context.Context) error {
	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.items = nil
		c.err = err
		return err
	}
	c.items = items
	c.err = nil
	return nil
}

// Err returns the last load failure, nil after a successful load.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Items returns a snapshot copy in display order.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Controller[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// ApplyCreate appends a server-confirmed new item. Creation is never
// optimistic; the backend assigns the id.
func (c *Controller[T]) ApplyCreate(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// ApplyUpdate replaces the matching item in place after the server confirms
// an edit. Unknown ids are ignored (the row may have been deleted while the
// edit was in flight).
func (c *Controller[T]) ApplyUpdate(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(item.ItemID()); i >= 0 {
		c.items[i] = item
	}
}

// ApplyDelete drops the item after a confirmed hard delete.
func (c *Controller[T]) ApplyDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// Toggle is the one optimistic mutation: flip locally first, then persist.
// On failure the captured prior value is restored rather than negating
// again, so two rapid toggles where the second call fails settle on the
// first toggle's result instead of drifting. A toggle for an id that no
// longer exists is a no-op.
func (c *Controller[T]) Toggle(ctx context.Context, id string, read func(T) bool, write func(T, bool) T, put ToggleFunc) error {
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return nil
	}
	prior := read(c.items[i])
	next := !prior
	c.items[i] = write(c.items[i], next)
	c.mu.Unlock()

	if err := put(ctx, id, next); err != nil {
		c.mu.Lock()
		if i := c.indexOf(id); i >= 0 {
			c.items[i] = write(c.items[i], prior)
		}
		c.mu.Unlock()
		return err
	}
	return nil
}

// Search is a pure, case-insensitive substring filter over each item's
// search text. The empty query returns the full snapshot; the underlying
// list is never mutated or reordered.
func (c *Controller[T]) Search(query string) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]T, len(c.items))
		copy(out, c.items)
		return out
	}

	var out []T
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.SearchText()), query) {
			out = append(out, item)
		}
	}
	return out
}

// caller holds c.mu
func (c *Controller[T]) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ItemID() == id {
			return i
		}
	}
	return -1
}
