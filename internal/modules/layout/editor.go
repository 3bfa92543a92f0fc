package layout

import (
	"github.com/google/uuid"

	"taxiforms/internal/domain"
)

type EditorState string

const (
	StateNew    EditorState = "new"
	StateDirty  EditorState = "dirty"
	StateSaving EditorState = "saving"
	StateSaved  EditorState = "saved"
)

// UndoDepth bounds the undo stack; the oldest snapshots are evicted.
const UndoDepth = 20

// Editor is the builder's working copy of one layout during an edit session.
// It is a plain state container: callers mutate it only through the
// operations below, and the session wrapping it provides the locking.
// Concurrent edits of the same persisted layout from two sessions are an
// accepted hazard; the last completed save wins.
type Editor struct {
	LayoutID    string
	Name        string
	Description string
	Fields      []domain.Field
	Style       domain.Style
	Selected    string

	state EditorState
	undo  [][]domain.Field
}

func NewEditor() *Editor {
	return &Editor{
		Fields: []domain.Field{},
		state:  StateNew,
	}
}

// Load replaces the working copy with a persisted layout and resets the
// session history.
func (e *Editor) Load(l domain.Layout) {
	e.LayoutID = l.ID
	e.Name = l.Name
	e.Description = l.Description
	e.Fields = cloneFields(l.Fields)
	e.Style = l.Style
	e.Selected = ""
	e.undo = nil
	e.state = StateSaved
	e.resequence()
}

// Restore rebuilds the working copy from a recovery draft. The restored
// work is unsaved by definition, so the editor comes back dirty.
func (e *Editor) Restore(layoutID, name, description string, fields []domain.Field, style domain.Style) {
	e.LayoutID = layoutID
	e.Name = name
	e.Description = description
	e.Fields = cloneFields(fields)
	e.Style = style
	e.undo = nil
	e.resequence()
	if len(e.Fields) > 0 || layoutID != "" {
		e.state = StateDirty
	} else {
		e.state = StateNew
	}
}

func (e *Editor) State() EditorState { return e.state }

func (e *Editor) CanUndo() bool { return len(e.undo) > 0 }

// CanAutosave reports whether autosave is allowed: only once the layout has
// a persisted id and at least one field. A never-persisted layout must never
// trigger the timer.
func (e *Editor) CanAutosave() bool {
	return e.LayoutID != "" && len(e.Fields) > 0
}

// HasFieldType reports whether a field of the given type is already present.
// The available-fields picker excludes these types.
func (e *Editor) HasFieldType(t domain.FieldType) bool {
	for _, f := range e.Fields {
		if f.Type == t {
			return true
		}
	}
	return false
}

// AddField appends a new field built from the registry defaults and selects
// it. Adding a type that is already present (or unknown) is a no-op, which
// makes the operation idempotent with respect to type presence.
func (e *Editor) AddField(t domain.FieldType) (domain.Field, bool) {
	meta, ok := Lookup(t)
	if !ok || e.HasFieldType(t) {
		return domain.Field{}, false
	}

	e.pushUndo()

	f := domain.Field{
		ID:          uuid.NewString(),
		Type:        t,
		Label:       meta.Label,
		Required:    meta.Required,
		Enabled:     true,
		Width:       meta.DefaultWidth,
		Order:       len(e.Fields),
		VisibleWhen: cloneCondition(meta.VisibleWhen),
	}
	e.Fields = append(e.Fields, f)
	e.Selected = f.ID
	e.markDirty()
	return f, true
}

// RemoveField deletes a field and resequences the rest. Clears the selection
// if the removed field was selected.
func (e *Editor) RemoveField(id string) bool {
	idx := e.indexOf(id)
	if idx < 0 {
		return false
	}

	e.pushUndo()
	e.Fields = append(e.Fields[:idx], e.Fields[idx+1:]...)
	if e.Selected == id {
		e.Selected = ""
	}
	e.resequence()
	e.markDirty()
	return true
}

// ToggleField flips a field's enabled flag. Locked registry entries are
// silently ignored.
func (e *Editor) ToggleField(id string) bool {
	idx := e.indexOf(id)
	if idx < 0 {
		return false
	}
	if meta, ok := Lookup(e.Fields[idx].Type); ok && meta.Locked {
		return false
	}

	e.pushUndo()
	e.Fields[idx].Enabled = !e.Fields[idx].Enabled
	e.markDirty()
	return true
}

// FieldPatch is a shallow merge applied by UpdateField. Nil members leave
// the current value untouched.
type FieldPatch struct {
	Label                 *string                     `json:"label,omitempty"`
	Placeholder           *string                     `json:"placeholder,omitempty"`
	Required              *bool                       `json:"required,omitempty"`
	Width                 *domain.WidthToken          `json:"width,omitempty"`
	WidthWhenHourly       *domain.WidthToken          `json:"width_when_hourly,omitempty"`
	MobileWidth           *domain.WidthToken          `json:"mobile_width,omitempty"`
	MobileWidthWhenHourly *domain.WidthToken          `json:"mobile_width_when_hourly,omitempty"`
	VisibleWhen           *domain.VisibilityCondition `json:"visible_when,omitempty"`
	ClearVisibleWhen      bool                        `json:"clear_visible_when,omitempty"`
	ShowBorder            *bool                       `json:"show_border,omitempty"`
}

// UpdateField merges continuous edits (typing, width tweaks) into a field.
// These are not individually undoable, so no snapshot is pushed. A locked
// field keeps required set regardless of the patch.
func (e *Editor) UpdateField(id string, p FieldPatch) bool {
	idx := e.indexOf(id)
	if idx < 0 {
		return false
	}
	f := &e.Fields[idx]
	meta, known := Lookup(f.Type)

	if p.Label != nil {
		f.Label = *p.Label
	}
	if p.Placeholder != nil {
		f.Placeholder = *p.Placeholder
	}
	if p.Required != nil {
		if !(known && meta.Locked && !*p.Required) {
			f.Required = *p.Required
		}
	}
	if p.Width != nil {
		f.Width = *p.Width
	}
	if p.WidthWhenHourly != nil {
		f.WidthWhenHourly = *p.WidthWhenHourly
	}
	if p.MobileWidth != nil {
		f.MobileWidth = *p.MobileWidth
	}
	if p.MobileWidthWhenHourly != nil {
		f.MobileWidthWhenHourly = *p.MobileWidthWhenHourly
	}
	if p.ClearVisibleWhen {
		f.VisibleWhen = nil
	} else if p.VisibleWhen != nil {
		f.VisibleWhen = cloneCondition(p.VisibleWhen)
	}
	if p.ShowBorder != nil && known && meta.SupportsBorder {
		v := *p.ShowBorder
		f.ShowBorder = &v
	}

	e.markDirty()
	return true
}

// Reorder moves the active field to the position of the target field and
// resequences orders to a dense 0..n-1. One snapshot per operation: a
// reorder that is immediately reversed still costs a single undo entry.
func (e *Editor) Reorder(activeID, overID string) bool {
	from := e.indexOf(activeID)
	to := e.indexOf(overID)
	if from < 0 || to < 0 || from == to {
		return false
	}

	e.pushUndo()

	f := e.Fields[from]
	e.Fields = append(e.Fields[:from], e.Fields[from+1:]...)
	e.Fields = append(e.Fields[:to], append([]domain.Field{f}, e.Fields[to:]...)...)
	e.resequence()
	e.markDirty()
	return true
}

// Undo pops the newest snapshot and replaces the field list wholesale.
// There is no redo.
func (e *Editor) Undo() bool {
	if len(e.undo) == 0 {
		return false
	}
	last := len(e.undo) - 1
	e.Fields = e.undo[last]
	e.undo = e.undo[:last]
	e.markDirty()
	return true
}

// UpdateMeta changes the layout's name/description/style. Like UpdateField,
// these continuous edits are not undoable.
func (e *Editor) UpdateMeta(name, description *string, style *domain.Style) {
	if name != nil {
		e.Name = *name
	}
	if description != nil {
		e.Description = *description
	}
	if style != nil {
		e.Style = *style
	}
	e.markDirty()
}

// MoveSubmit pins the submit control at an index into the visible field
// sequence, or back to the end when nil. Only the builder preview may move
// it; the public renderer is read-only. Style changes are not snapshotted,
// so this is not undoable.
func (e *Editor) MoveSubmit(position *int) {
	if position == nil {
		e.Style.ButtonPosition = nil
	} else {
		v := *position
		e.Style.ButtonPosition = &v
	}
	e.markDirty()
}

// Working returns the layout the next save should persist.
func (e *Editor) Working() domain.Layout {
	return domain.Layout{
		ID:          e.LayoutID,
		Name:        e.Name,
		Description: e.Description,
		Fields:      cloneFields(e.Fields),
		Style:       e.Style,
	}
}

// BeginSave marks a save in flight and hands back the snapshot to persist.
func (e *Editor) BeginSave() domain.Layout {
	e.state = StateSaving
	return e.Working()
}

// CompleteSave replaces the working copy with the server's authoritative
// object. Saves are last-write-wins by completion time: whichever response
// lands later is applied, even if its request was initiated earlier. Edits
// made between request-send and response-receive are discarded; the
// autosave timer re-fires to catch them up.
func (e *Editor) CompleteSave(saved domain.Layout) {
	e.LayoutID = saved.ID
	e.Name = saved.Name
	e.Description = saved.Description
	e.Fields = cloneFields(saved.Fields)
	e.Style = saved.Style
	e.resequence()
	e.state = StateSaved
}

// FailSave returns the editor to dirty; the in-memory field list is never
// touched by a failed save.
func (e *Editor) FailSave() {
	e.state = StateDirty
}

func (e *Editor) markDirty() {
	e.state = StateDirty
}

func (e *Editor) pushUndo() {
	e.undo = append(e.undo, cloneFields(e.Fields))
	if len(e.undo) > UndoDepth {
		e.undo = e.undo[len(e.undo)-UndoDepth:]
	}
}

func (e *Editor) resequence() {
	for i := range e.Fields {
		e.Fields[i].Order = i
	}
}

func (e *Editor) indexOf(id string) int {
	for i, f := range e.Fields {
		if f.ID == id {
			return i
		}
	}
	return -1
}

func cloneFields(in []domain.Field) []domain.Field {
	out := make([]domain.Field, len(in))
	copy(out, in)
	for i := range out {
		out[i].VisibleWhen = cloneCondition(in[i].VisibleWhen)
		if in[i].ShowBorder != nil {
			v := *in[i].ShowBorder
			out[i].ShowBorder = &v
		}
	}
	return out
}
