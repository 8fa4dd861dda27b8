package list

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type row struct {
	id     string
	name   string
	active bool
}

func (r row) ItemID() string     { return r.id }
func (r row) SearchText() string { return r.name }

func fixedFetch(rows ...row) FetchFunc[row] {
	return func(ctx context.Context) ([]row, error) {
		out := make([]row, len(rows))
		copy(out, rows)
		return out, nil
	}
}

func TestLoadReplacesWholesale(t *testing.T) {
	c := New(fixedFetch(row{id: "1", name: "momo"}, row{id: "2", name: "chowmein"}))
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 2 {
		t.Fatalf("got %d items, want 2", c.Len())
	}

	c.fetch = fixedFetch(row{id: "3", name: "thukpa"})
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	items := c.Items()
	if len(items) != 1 || items[0].id != "3" {
		t.Fatalf("reload should replace wholesale, got %+v", items)
	}
}

func TestLoadFailureClearsList(t *testing.T) {
	c := New(fixedFetch(row{id: "1", name: "momo"}))
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("backend down")
	c.fetch = func(ctx context.Context) ([]row, error) { return nil, boom }
	if err := c.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("got %v, want load error", err)
	}
	if c.Len() != 0 {
		t.Fatal("failed load should leave the list empty")
	}
	if !errors.Is(c.Err(), boom) {
		t.Fatalf("Err() = %v, want retained load error", c.Err())
	}

	c.fetch = fixedFetch(row{id: "1", name: "momo"})
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if c.Err() != nil {
		t.Fatalf("Err() = %v after successful reload, want nil", c.Err())
	}
}

func TestApplyMutationsPreserveOrder(t *testing.T) {
	c := New(fixedFetch(row{id: "1", name: "a"}, row{id: "2", name: "b"}, row{id: "3", name: "c"}))
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	c.ApplyCreate(row{id: "4", name: "d"})
	c.ApplyUpdate(row{id: "2", name: "b2"})
	c.ApplyUpdate(row{id: "missing", name: "x"}) // ignored
	c.ApplyDelete("1")

	items := c.Items()
	want := []string{"2", "3", "4"}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, id := range want {
		if items[i].id != id {
			t.Errorf("items[%d].id = %s, want %s", i, items[i].id, id)
		}
	}
	if items[0].name != "b2" {
		t.Errorf("update not applied in place: %+v", items[0])
	}
}

func toggleHelpers() (func(row) bool, func(row, bool) row) {
	read := func(r row) bool { return r.active }
	write := func(r row, v bool) row { r.active = v; return r }
	return read, write
}

func TestToggleOptimisticThenConfirmed(t *testing.T) {
	c := New(fixedFetch(row{id: "1", name: "momo", active: false}))
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	read, write := toggleHelpers()

	var got bool
	put := func(ctx context.Context, id string, next bool) error {
		got = next
		return nil
	}
	if err := c.Toggle(context.Background(), "1", read, write, put); err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Fatal("persist callback should receive the flipped value")
	}
	if items := c.Items(); !items[0].active {
		t.Fatal("toggle should stick after a confirmed persist")
	}
}

func TestToggleRollbackRestoresPrior(t *testing.T) {
	c := New(fixedFetch(row{id: "1", name: "momo", active: false}))
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	read, write := toggleHelpers()

	fail := func(ctx context.Context, id string, next bool) error {
		return fmt.Errorf("save %s: network", id)
	}
	if err := c.Toggle(context.Background(), "1", read, write, fail); err == nil {
		t.Fatal("expected persist error")
	}
	if items := c.Items(); items[0].active {
		t.Fatal("failed toggle must restore the prior value")
	}
}

// Two rapid toggles where only the first persist succeeds must settle on the
// first toggle's result, not drift back to the starting value.
func TestRapidDoubleToggleSecondFails(t *testing.T) {
	c := New(fixedFetch(row{id: "1", name: "momo", active: false}))
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	read, write := toggleHelpers()

	calls := 0
	put := func(ctx context.Context, id string, next bool) error {
		calls++
		if calls == 2 {
			return errors.New("second save lost")
		}
		return nil
	}

	if err := c.Toggle(context.Background(), "1", read, write, put); err != nil {
		t.Fatal(err)
	}
	if err := c.Toggle(context.Background(), "1", read, write, put); err == nil {
		t.Fatal("second toggle should fail")
	}

	// first toggle flipped false -> true and was confirmed; the failed second
	// toggle restores exactly that.
	if items := c.Items(); !items[0].active {
		t.Fatal("list should settle on the first confirmed toggle")
	}
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	c := New(fixedFetch(row{id: "1", name: "momo"}))
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	read, write := toggleHelpers()

	called := false
	put := func(ctx context.Context, id string, next bool) error {
		called = true
		return nil
	}
	if err := c.Toggle(context.Background(), "gone", read, write, put); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Fatal("toggling a missing id should not hit the backend")
	}
}

func TestSearch(t *testing.T) {
	c := New(fixedFetch(
		row{id: "1", name: "Chicken Momo steamed"},
		row{id: "2", name: "Veg Chowmein"},
		row{id: "3", name: "Chicken Chowmein"},
	))
	if err := c.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := c.Search("chowmein")
	if len(got) != 2 || got[0].id != "2" || got[1].id != "3" {
		t.Fatalf("search should filter case-insensitively preserving order, got %+v", got)
	}

	if got := c.Search("  "); len(got) != 3 {
		t.Fatalf("blank query should return everything, got %d", len(got))
	}

	if got := c.Search("paneer"); len(got) != 0 {
		t.Fatalf("no-match query should return empty, got %+v", got)
	}

	// searching never mutates the underlying list
	if c.Len() != 3 {
		t.Fatalf("search mutated the list, len=%d", c.Len())
	}
}
