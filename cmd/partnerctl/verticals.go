package main

import (
	"context"
	"fmt"

	"github.com/vijayguhan10/fourtrip-partner/internal/form"
	"github.com/vijayguhan10/fourtrip-partner/internal/store"
)

// The three partner verticals, each one an instantiation of the shared
// vertical wiring. Per-kind differences stay in internal/form (payload
// encoding) and internal/store (REST contract); this file only plugs them
// together.

func (app *application) dishes() *vertical[store.Dish] {
	return &vertical[store.Dish]{
		kind: "dishes",
		fetch: func(ctx context.Context) ([]store.Dish, error) {
			id, _ := app.session.BusinessID()
			return app.store.Dishes.List(ctx, id)
		},
		toggle: func(ctx context.Context, id string, next bool) error {
			return app.store.Dishes.SetAvailability(ctx, id, next)
		},
		readDeleted:  func(d store.Dish) bool { return d.IsDeleted },
		writeDeleted: func(d store.Dish, deleted bool) store.Dish { d.IsDeleted = deleted; return d },
		remove:       app.store.Dishes.Delete,
		uploads:      app.store.Uploads.UploadAll,
		newDraft: func() (*form.Draft, error) {
			id, err := app.businessID()
			if err != nil {
				return nil, err
			}
			return form.CreateDish(id), nil
		},
		editDraft: form.EditDish,
		build: func(d *form.Draft) (any, error) {
			return form.BuildDish(d)
		},
		create: func(ctx context.Context, payload any) (store.Dish, error) {
			return deref(app.store.Dishes.Create(ctx, payload.(store.DishPayload)))
		},
		update: func(ctx context.Context, id string, payload any) (store.Dish, error) {
			return deref(app.store.Dishes.Update(ctx, id, payload.(store.DishPayload)))
		},
		header: "ID\tNAME\tCATEGORY\tPRICE\tSTATUS",
		row: func(d store.Dish) string {
			return fmt.Sprintf("%s\t%s\t%s\t%.2f\t%s", d.ID, d.Name, d.Category, d.Price, onOff(d.IsDeleted))
		},
	}
}

func (app *application) products() *vertical[store.Product] {
	return &vertical[store.Product]{
		kind: "products",
		fetch: func(ctx context.Context) ([]store.Product, error) {
			id, _ := app.session.BusinessID()
			return app.store.Products.List(ctx, id)
		},
		toggle: func(ctx context.Context, id string, next bool) error {
			return app.store.Products.SetAvailability(ctx, id, next)
		},
		readDeleted:  func(p store.Product) bool { return p.IsDeleted },
		writeDeleted: func(p store.Product, deleted bool) store.Product { p.IsDeleted = deleted; return p },
		remove:       app.store.Products.Delete,
		uploads:      app.store.Uploads.UploadAll,
		newDraft: func() (*form.Draft, error) {
			id, err := app.businessID()
			if err != nil {
				return nil, err
			}
			return form.CreateProduct(id), nil
		},
		editDraft: form.EditProduct,
		build: func(d *form.Draft) (any, error) {
			return form.BuildProduct(d)
		},
		create: func(ctx context.Context, payload any) (store.Product, error) {
			return deref(app.store.Products.Create(ctx, payload.(store.ProductPayload)))
		},
		update: func(ctx context.Context, id string, payload any) (store.Product, error) {
			return deref(app.store.Products.Update(ctx, id, payload.(store.ProductPayload)))
		},
		header: "ID\tNAME\tPRICE\tDISCOUNTED\tSTATUS",
		row: func(p store.Product) string {
			return fmt.Sprintf("%s\t%s\t%.2f\t%.2f\t%s", p.ID, p.Name, p.Price, p.DiscountedPrice, onOff(p.IsDeleted))
		},
	}
}

func (app *application) activities() *vertical[store.Activity] {
	return &vertical[store.Activity]{
		kind: "activities",
		fetch: func(ctx context.Context) ([]store.Activity, error) {
			return app.store.Activities.List(ctx)
		},
		toggle: func(ctx context.Context, id string, next bool) error {
			return app.store.Activities.SetAvailability(ctx, id, next)
		},
		readDeleted:  func(a store.Activity) bool { return a.IsDeleted },
		writeDeleted: func(a store.Activity, deleted bool) store.Activity { a.IsDeleted = deleted; return a },
		remove:       app.store.Activities.Delete,
		uploads:      app.store.Uploads.UploadAll,
		newDraft: func() (*form.Draft, error) {
			id, err := app.businessID()
			if err != nil {
				return nil, err
			}
			return form.CreateActivity(id), nil
		},
		editDraft: form.EditActivity,
		build: func(d *form.Draft) (any, error) {
			return form.BuildActivity(d)
		},
		create: func(ctx context.Context, payload any) (store.Activity, error) {
			return deref(app.store.Activities.Create(ctx, payload.(store.ActivityPayload)))
		},
		update: func(ctx context.Context, id string, payload any) (store.Activity, error) {
			return deref(app.store.Activities.Update(ctx, id, payload.(store.ActivityPayload)))
		},
		header: "ID\tNAME\tPRICE\tDISCOUNT%\tSLOTS\tSTATUS",
		row: func(a store.Activity) string {
			return fmt.Sprintf("%s\t%s\t%.2f\t%.0f\t%d\t%s", a.ID, a.Name, a.Price, a.DiscountPercentage, len(a.Slots), onOff(a.IsDeleted))
		},
	}
}

// deref adapts the stores' pointer returns to the by-value items the list
// controller holds.
func deref[T any](item *T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return *item, nil
}
