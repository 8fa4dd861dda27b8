// Package form implements the staging state behind every add/edit modal:
// a mutable copy of an entity (or kind defaults), field encoding rules,
// the minimum-one included-items list, and staged images.
package form

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Preview is a locally staged image that has not been uploaded yet. The ID
// is a throwaway handle; previews never outlive their draft.
type Preview struct {
	ID   string
	Path string
}

// Draft is the mutable staging copy bound to one modal. It is created when
// the modal opens and discarded by Close regardless of submit outcome.
type Draft struct {
	mode     Mode
	entityID string

	fields   map[string]string
	lists    map[string][]string
	split    map[string]bool
	included []string
	images   []string
	previews []Preview

	defaults map[string]string
}

// NewCreate opens a fresh draft from kind defaults. splitFields names the
// free-text fields that are comma-split into lists at write time.
func NewCreate(defaults map[string]string, splitFields ...string) *Draft {
	d := &Draft{
		mode:     ModeCreate,
		fields:   copyStringMap(defaults),
		lists:    make(map[string][]string),
		split:    make(map[string]bool, len(splitFields)),
		included: []string{""},
		defaults: copyStringMap(defaults),
	}
	for _, f := range splitFields {
		d.split[f] = true
	}
	return d
}

// NewEdit opens a draft over an existing entity. Callers pass "" for any
// absent nested field so the form never sees a missing key.
func NewEdit(entityID string, fields map[string]string, lists map[string][]string, included, images []string, splitFields ...string) *Draft {
	d := NewCreate(fields, splitFields...)
	d.mode = ModeEdit
	d.entityID = entityID
	for name, values := range lists {
		d.lists[name] = append([]string(nil), values...)
	}
	if len(included) > 0 {
		d.included = append([]string(nil), included...)
	}
	d.images = append([]string(nil), images...)
	return d
}

func (d *Draft) Mode() Mode       { return d.mode }
func (d *Draft) EntityID() string { return d.entityID }

// Set writes a field. Fields registered as split fields are comma-split and
// trimmed into their list form instead.
func (d *Draft) Set(name, value string) {
	if d.split[name] {
		d.lists[name] = SplitCSV(value)
		return
	}
	d.fields[name] = value
}

func (d *Draft) Field(name string) string {
	return d.fields[name]
}

// Bool reads a field as a flag; only the literal "true" is true.
func (d *Draft) Bool(name string) bool {
	return d.fields[name] == "true"
}

// Number reads a field as a number. Empty or unparsable input coerces to 0;
// that one rule applies to every numeric field in the portal.
func (d *Draft) Number(name string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(d.fields[name]), 64)
	if err != nil {
		return 0
	}
	return v
}

func (d *Draft) ListField(name string) []string {
	return append([]string(nil), d.lists[name]...)
}

// Included returns the included-items list, always at least one entry long.
func (d *Draft) Included() []string {
	return append([]string(nil), d.included...)
}

func (d *Draft) AddIncluded() {
	d.included = append(d.included, "")
}

func (d *Draft) SetIncludedAt(i int, value string) {
	if i >= 0 && i < len(d.included) {
		d.included[i] = value
	}
}

// ReplaceIncluded swaps the whole included-items list for items. An empty
// replacement resets to the single empty entry so the list never empties.
func (d *Draft) ReplaceIncluded(items []string) {
	if len(items) == 0 {
		d.included = []string{""}
		return
	}
	d.included = append([]string(nil), items...)
}

// RemoveIncludedAt drops one entry; removing the last remaining entry is a
// no-op so the list never empties.
func (d *Draft) RemoveIncludedAt(i int) {
	if len(d.included) <= 1 || i < 0 || i >= len(d.included) {
		return
	}
	d.included = append(d.included[:i], d.included[i+1:]...)
}

func (d *Draft) Images() []string {
	return append([]string(nil), d.images...)
}

// AttachImages appends hosted URLs after a successful upload batch.
func (d *Draft) AttachImages(urls ...string) {
	d.images = append(d.images, urls...)
}

func (d *Draft) RemoveImageAt(i int) {
	if i >= 0 && i < len(d.images) {
		d.images = append(d.images[:i], d.images[i+1:]...)
	}
}

// AddPreview stages a local file for display before upload and returns its
// handle.
func (d *Draft) AddPreview(path string) string {
	p := Preview{ID: uuid.NewString(), Path: path}
	d.previews = append(d.previews, p)
	return p.ID
}

func (d *Draft) Previews() []Preview {
	return append([]Preview(nil), d.previews...)
}

// Close resets the draft to its construction defaults and discards staged
// previews. Every close path runs this, cancel and successful submit alike.
func (d *Draft) Close() {
	d.fields = copyStringMap(d.defaults)
	d.lists = make(map[string][]string)
	d.included = []string{""}
	d.images = nil
	d.previews = nil
}

// SplitCSV splits comma-separated free text into trimmed entries, dropping
// empties.
func SplitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func copyStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
