package form

import (
	"context"

	"github.com/vijayguhan10/fourtrip-partner/internal/list"
)

// Editor couples a Draft to one resource kind's payload builder and
// persistence calls. Build performs the declarative validation, so an
// invalid draft never produces a request.
type Editor[T list.Item] struct {
	Draft   *Draft
	Build   func(d *Draft) (any, error)
	Create  func(ctx context.Context, payload any) (T, error)
	Update  func(ctx context.Context, id string, payload any) (T, error)
	OnSaved func(item T, mode Mode)
}

// Submit validates, sends the create or update depending on how the draft
// was opened, and closes the draft on success. On any failure the draft is
// left untouched so the user's entered values survive.
func (e *Editor[T]) Submit(ctx context.Context) error {
	payload, err := e.Build(e.Draft)
	if err != nil {
		return err
	}

	var item T
	if e.Draft.Mode() == ModeEdit {
		item, err = e.Update(ctx, e.Draft.EntityID(), payload)
	} else {
		item, err = e.Create(ctx, payload)
	}
	if err != nil {
		return err
	}

	if e.OnSaved != nil {
		e.OnSaved(item, e.Draft.Mode())
	}
	e.Draft.Close()
	return nil
}
