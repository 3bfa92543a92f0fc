package render

import (
	"sort"

	"taxiforms/internal/domain"
	"taxiforms/internal/modules/layout"
)

type ControlKind string

const (
	ControlTogglePair ControlKind = "toggle-pair"
	ControlText       ControlKind = "text"
	ControlList       ControlKind = "list"
	ControlDatePicker ControlKind = "date-picker"
	ControlTimePicker ControlKind = "time-picker"
)

const (
	ItemField  = "field"
	ItemSubmit = "submit"
)

// Item is one cell of the rendered form: a field dispatched to its control,
// or the submit button.
type Item struct {
	Kind    string        `json:"kind"`
	Control ControlKind   `json:"control,omitempty"`
	Field   *domain.Field `json:"field,omitempty"`
	Label   string        `json:"label,omitempty"`
	Span    int           `json:"span"`
}

// Form is the concrete structure a client lays out: the builder preview and
// the public widget both consume it.
type Form struct {
	LayoutID string              `json:"layout_id,omitempty"`
	Columns  int                 `json:"columns"`
	Style    domain.Style        `json:"style"`
	Runtime  domain.RuntimeState `json:"runtime"`
	Items    []Item              `json:"items"`
}

// Render turns a layout plus the live runtime selections into the visual
// tree. Disabled fields, fields hidden by their visibility condition and
// fields with no known control are all omitted; malformed persisted data
// degrades by omission, never by error.
func Render(l domain.Layout, rt domain.RuntimeState) Form {
	columns := l.Style.EffectiveColumns(rt.Mobile)

	visible := make([]domain.Field, 0, len(l.Fields))
	for _, f := range l.Fields {
		if !f.Enabled {
			continue
		}
		if !layout.IsVisible(f, rt) {
			continue
		}
		visible = append(visible, f)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})

	items := make([]Item, 0, len(visible)+1)
	for i := range visible {
		f := visible[i]
		control, ok := controlFor(f.Type)
		if !ok {
			continue
		}
		width := layout.EffectiveWidth(f, rt)
		items = append(items, Item{
			Kind:    ItemField,
			Control: control,
			Field:   &f,
			Span:    layout.ResolveSpan(width, columns),
		})
	}

	submit := Item{
		Kind:  ItemSubmit,
		Label: buttonLabel(l.Style),
		Span:  columns,
	}
	// ButtonPosition indexes the visible field sequence: position p puts the
	// submit control directly after field p. Out of range falls back to the
	// end.
	at := len(items)
	if p := l.Style.ButtonPosition; p != nil && *p >= 0 && *p < len(items) {
		at = *p + 1
	}
	items = append(items[:at], append([]Item{submit}, items[at:]...)...)

	return Form{
		LayoutID: l.ID,
		Columns:  columns,
		Style:    l.Style,
		Runtime:  rt,
		Items:    items,
	}
}

func controlFor(t domain.FieldType) (ControlKind, bool) {
	switch t {
	case domain.FieldBookingType, domain.FieldTripType:
		return ControlTogglePair, true
	case domain.FieldPickup, domain.FieldDropoff, domain.FieldDuration, domain.FieldPassengers:
		return ControlText, true
	case domain.FieldStops:
		return ControlList, true
	case domain.FieldDate, domain.FieldReturnDate:
		return ControlDatePicker, true
	case domain.FieldTime, domain.FieldReturnTime:
		return ControlTimePicker, true
	default:
		return "", false
	}
}

func buttonLabel(s domain.Style) string {
	if s.ButtonText != "" {
		return s.ButtonText
	}
	return "Book now"
}
