package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/vijayguhan10/fourtrip-partner/internal/form"
	"github.com/vijayguhan10/fourtrip-partner/internal/list"
	"github.com/vijayguhan10/fourtrip-partner/internal/store"
)

// vertical wires one resource kind into the shared list/form core. The
// dishes, products and activities commands are three instances of this one
// structure; nothing below runListing knows which kind it is driving.
type vertical[T list.Item] struct {
	kind         string
	fetch        list.FetchFunc[T]
	toggle       list.ToggleFunc
	readDeleted  func(item T) bool
	writeDeleted func(item T, deleted bool) T
	remove       func(ctx context.Context, id string) error
	uploads      func(ctx context.Context, files []store.File) (*store.UploadResult, error)
	newDraft     func() (*form.Draft, error)
	editDraft    func(item T) *form.Draft
	build        func(d *form.Draft) (any, error)
	create       func(ctx context.Context, payload any) (T, error)
	update       func(ctx context.Context, id string, payload any) (T, error)
	header       string
	row          func(item T) string
}

func runListing[T list.Item](ctx context.Context, v *vertical[T], args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: partnerctl %s <list|add|edit|toggle|delete> [flags]", v.kind)
	}
	sub, rest := args[0], args[1:]

	ctrl := list.New(v.fetch)

	switch sub {
	case "list":
		fs := flag.NewFlagSet(v.kind+" list", flag.ContinueOnError)
		query := fs.String("q", "", "filter by name, description or price")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := ctrl.Load(ctx); err != nil {
			return err
		}
		return renderItems(v, ctrl.Search(*query))

	case "add":
		draft, err := v.newDraft()
		if err != nil {
			return err
		}
		editor := newEditor(v, ctrl, draft)
		if err := applyDraftFlags(ctx, v, draft, rest); err != nil {
			return err
		}
		if err := editor.Submit(ctx); err != nil {
			return err
		}
		fmt.Printf("Added %s.\n", strings.TrimSuffix(v.kind, "s"))
		return nil

	case "edit":
		id, rest, err := popIDFlagArgs(rest)
		if err != nil {
			return err
		}
		if err := ctrl.Load(ctx); err != nil {
			return err
		}
		item, ok := findItem(ctrl, id)
		if !ok {
			return fmt.Errorf("no %s with id %s", strings.TrimSuffix(v.kind, "s"), id)
		}
		draft := v.editDraft(item)
		editor := newEditor(v, ctrl, draft)
		if err := applyDraftFlags(ctx, v, draft, rest); err != nil {
			return err
		}
		if err := editor.Submit(ctx); err != nil {
			return err
		}
		fmt.Printf("Updated %s.\n", id)
		return nil

	case "toggle":
		id, _, err := popIDFlagArgs(rest)
		if err != nil {
			return err
		}
		if err := ctrl.Load(ctx); err != nil {
			return err
		}
		err = ctrl.Toggle(ctx, id, v.readDeleted, v.writeDeleted, v.toggle)
		if err != nil {
			return fmt.Errorf("availability not changed: %w", err)
		}
		fmt.Printf("Toggled availability of %s.\n", id)
		return nil

	case "delete":
		id, _, err := popIDFlagArgs(rest)
		if err != nil {
			return err
		}
		if err := v.remove(ctx, id); err != nil {
			return err
		}
		ctrl.ApplyDelete(id)
		fmt.Printf("Deleted %s.\n", id)
		return nil
	}
	return fmt.Errorf("unknown %s subcommand %q", v.kind, sub)
}

func newEditor[T list.Item](v *vertical[T], ctrl *list.Controller[T], draft *form.Draft) *form.Editor[T] {
	return &form.Editor[T]{
		Draft:  draft,
		Build:  v.build,
		Create: v.create,
		Update: v.update,
		OnSaved: func(item T, mode form.Mode) {
			if mode == form.ModeEdit {
				ctrl.ApplyUpdate(item)
			} else {
				ctrl.ApplyCreate(item)
			}
		},
	}
}

// applyDraftFlags maps command-line input onto the draft: repeated
// -set name=value pairs, -included for the included-items list, and -images
// for files to upload before submitting.
func applyDraftFlags[T list.Item](ctx context.Context, v *vertical[T], draft *form.Draft, args []string) error {
	fs := flag.NewFlagSet(v.kind+" form", flag.ContinueOnError)
	var sets []string
	fs.Func("set", "field assignment name=value (repeatable)", func(s string) error {
		sets = append(sets, s)
		return nil
	})
	included := fs.String("included", "", "included items, comma separated")
	images := fs.String("images", "", "image files to upload, comma separated")
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, s := range sets {
		name, value, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf("bad -set %q, want name=value", s)
		}
		draft.Set(strings.TrimSpace(name), value)
	}

	if *included != "" {
		// replace wholesale; an edit draft may hold more entries than the flag
		draft.ReplaceIncluded(form.SplitCSV(*included))
	}

	if *images != "" {
		return uploadDraftImages(ctx, v, draft, splitArg(*images))
	}
	return nil
}

// uploadDraftImages stages local files, fans the batch out and attaches
// whatever succeeded. A partially failed batch still attaches its
// survivors.
func uploadDraftImages[T list.Item](ctx context.Context, v *vertical[T], draft *form.Draft, paths []string) error {
	var files []store.File
	var open []*os.File
	defer func() {
		for _, f := range open {
			f.Close()
		}
	}()

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open image: %w", err)
		}
		open = append(open, f)
		draft.AddPreview(path)
		files = append(files, store.File{Name: filepath.Base(path), Reader: f})
	}

	result, err := v.uploads(ctx, files)
	if err != nil {
		return err
	}
	draft.AttachImages(result.URLs...)
	fmt.Printf("%d of %d images uploaded.\n", result.Uploaded, result.Uploaded+result.Failed)
	return nil
}

func findItem[T list.Item](ctrl *list.Controller[T], id string) (T, bool) {
	for _, item := range ctrl.Items() {
		if item.ItemID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// popIDFlagArgs pulls the mandatory -id flag and hands back the remaining
// form flags untouched.
func popIDFlagArgs(args []string) (string, []string, error) {
	var id string
	var rest []string
	for i := 0; i < len(args); i++ {
		if args[i] == "-id" || args[i] == "--id" {
			if i+1 >= len(args) {
				return "", nil, fmt.Errorf("-id needs a value")
			}
			id = args[i+1]
			i++
			continue
		}
		if v, ok := strings.CutPrefix(args[i], "-id="); ok {
			id = v
			continue
		}
		rest = append(rest, args[i])
	}
	if id == "" {
		return "", nil, fmt.Errorf("missing -id")
	}
	return id, rest, nil
}

func renderItems[T list.Item](v *vertical[T], items []T) error {
	if len(items) == 0 {
		fmt.Println("Nothing to show.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, v.header)
	for _, item := range items {
		fmt.Fprintln(w, v.row(item))
	}
	return w.Flush()
}

func splitArg(s string) []string {
	return form.SplitCSV(s)
}

func onOff(deleted bool) string {
	if deleted {
		return "unavailable"
	}
	return "available"
}
