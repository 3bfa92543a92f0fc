package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxiforms/internal/domain"
)

func destField(id string, t domain.FieldType, order int, w domain.WidthToken) domain.Field {
	bt := domain.BookingDestination
	return domain.Field{
		ID:          id,
		Type:        t,
		Enabled:     true,
		Width:       w,
		Order:       order,
		VisibleWhen: &domain.VisibilityCondition{BookingType: &bt},
	}
}

func plainField(id string, t domain.FieldType, order int, w domain.WidthToken) domain.Field {
	return domain.Field{ID: id, Type: t, Enabled: true, Width: w, Order: order}
}

func TestRenderFiltersDisabledFields(t *testing.T) {
	l := domain.Layout{
		Fields: []domain.Field{
			plainField("f1", domain.FieldPickup, 0, domain.WidthHalf),
			{ID: "f2", Type: domain.FieldPassengers, Enabled: false, Width: domain.WidthHalf, Order: 1},
		},
	}

	form := Render(l, domain.RuntimeState{BookingType: domain.BookingDestination})

	assert.Len(t, form.Items, 2) // pickup + submit
	assert.Equal(t, "f1", form.Items[0].Field.ID)
	assert.Equal(t, ItemSubmit, form.Items[1].Kind)
}

func TestRenderHidesHourlyOnlyFieldsOnDestination(t *testing.T) {
	hourly := domain.BookingHourly
	l := domain.Layout{
		Fields: []domain.Field{
			plainField("f1", domain.FieldPickup, 0, domain.WidthHalf),
			{
				ID: "f2", Type: domain.FieldDuration, Enabled: true,
				Width: domain.WidthHalf, Order: 1,
				VisibleWhen: &domain.VisibilityCondition{BookingType: &hourly},
			},
			destField("f3", domain.FieldDropoff, 2, domain.WidthHalf),
		},
	}

	form := Render(l, domain.RuntimeState{BookingType: domain.BookingDestination})
	assert.Equal(t, []string{"f1", "f3"}, fieldItemIDs(form))

	form = Render(l, domain.RuntimeState{BookingType: domain.BookingHourly})
	assert.Equal(t, []string{"f1", "f2"}, fieldItemIDs(form))
}

func TestRenderSortsByOrder(t *testing.T) {
	l := domain.Layout{
		Fields: []domain.Field{
			plainField("f3", domain.FieldDate, 2, domain.WidthHalf),
			plainField("f1", domain.FieldPickup, 0, domain.WidthHalf),
			plainField("f2", domain.FieldTime, 1, domain.WidthHalf),
		},
	}

	form := Render(l, domain.RuntimeState{BookingType: domain.BookingDestination})
	assert.Equal(t, []string{"f1", "f2", "f3"}, fieldItemIDs(form))
}

func TestRenderSkipsUnknownFieldTypes(t *testing.T) {
	l := domain.Layout{
		Fields: []domain.Field{
			plainField("f1", domain.FieldPickup, 0, domain.WidthHalf),
			plainField("f2", domain.FieldType("teleport"), 1, domain.WidthHalf),
		},
	}

	form := Render(l, domain.RuntimeState{BookingType: domain.BookingDestination})
	assert.Equal(t, []string{"f1"}, fieldItemIDs(form))
}

func TestRenderSpansFollowViewport(t *testing.T) {
	l := domain.Layout{
		Style: domain.Style{Columns: 4, MobileColumns: 2},
		Fields: []domain.Field{
			plainField("f1", domain.FieldPickup, 0, domain.WidthHalf),
		},
	}

	form := Render(l, domain.RuntimeState{BookingType: domain.BookingDestination})
	assert.Equal(t, 4, form.Columns)
	assert.Equal(t, 2, form.Items[0].Span)

	form = Render(l, domain.RuntimeState{BookingType: domain.BookingDestination, Mobile: true})
	assert.Equal(t, 2, form.Columns)
	assert.Equal(t, 1, form.Items[0].Span)
}

func TestRenderHourlyWidthOverride(t *testing.T) {
	f := plainField("f1", domain.FieldPickup, 0, domain.WidthHalf)
	f.WidthWhenHourly = domain.WidthFull
	l := domain.Layout{Style: domain.Style{Columns: 4}, Fields: []domain.Field{f}}

	form := Render(l, domain.RuntimeState{BookingType: domain.BookingHourly})
	assert.Equal(t, 4, form.Items[0].Span)
}

func TestSubmitDefaultsToEnd(t *testing.T) {
	l := domain.Layout{
		Fields: []domain.Field{
			plainField("f1", domain.FieldPickup, 0, domain.WidthHalf),
			plainField("f2", domain.FieldDate, 1, domain.WidthHalf),
		},
	}

	form := Render(l, domain.RuntimeState{BookingType: domain.BookingDestination})
	last := form.Items[len(form.Items)-1]
	assert.Equal(t, ItemSubmit, last.Kind)
	assert.Equal(t, "Book now", last.Label)
}

func TestSubmitPinnedBetweenFields(t *testing.T) {
	pos := 1
	l := domain.Layout{
		Style: domain.Style{ButtonPosition: &pos, ButtonText: "Get quote"},
		Fields: []domain.Field{
			plainField("f1", domain.FieldPickup, 0, domain.WidthHalf),
			plainField("f2", domain.FieldDate, 1, domain.WidthHalf),
			plainField("f3", domain.FieldTime, 2, domain.WidthHalf),
		},
	}

	form := Render(l, domain.RuntimeState{BookingType: domain.BookingDestination})

	// Position 1 puts the button directly after the second visible field.
	assert.Len(t, form.Items, 4)
	assert.Equal(t, "f1", form.Items[0].Field.ID)
	assert.Equal(t, "f2", form.Items[1].Field.ID)
	assert.Equal(t, ItemSubmit, form.Items[2].Kind)
	assert.Equal(t, "Get quote", form.Items[2].Label)
	assert.Equal(t, "f3", form.Items[3].Field.ID)
}

func TestSubmitPositionOutOfRangeFallsBack(t *testing.T) {
	pos := 9
	l := domain.Layout{
		Style: domain.Style{ButtonPosition: &pos},
		Fields: []domain.Field{
			plainField("f1", domain.FieldPickup, 0, domain.WidthHalf),
		},
	}

	form := Render(l, domain.RuntimeState{BookingType: domain.BookingDestination})
	assert.Equal(t, ItemSubmit, form.Items[len(form.Items)-1].Kind)
}

func TestSubmitPositionTracksVisibility(t *testing.T) {
	// The pinned position indexes the visible sequence, so hiding a field
	// shifts the button with the fields that remain.
	pos := 0
	l := domain.Layout{
		Style: domain.Style{ButtonPosition: &pos},
		Fields: []domain.Field{
			destField("f1", domain.FieldDropoff, 0, domain.WidthHalf),
			plainField("f2", domain.FieldPickup, 1, domain.WidthHalf),
		},
	}

	form := Render(l, domain.RuntimeState{BookingType: domain.BookingDestination})
	assert.Equal(t, "f1", form.Items[0].Field.ID)
	assert.Equal(t, ItemSubmit, form.Items[1].Kind)

	form = Render(l, domain.RuntimeState{BookingType: domain.BookingHourly})
	assert.Equal(t, "f2", form.Items[0].Field.ID)
	assert.Equal(t, ItemSubmit, form.Items[1].Kind)
}

func TestControlDispatch(t *testing.T) {
	l := domain.Layout{
		Fields: []domain.Field{
			plainField("f1", domain.FieldBookingType, 0, domain.WidthFull),
			plainField("f2", domain.FieldPickup, 1, domain.WidthHalf),
			plainField("f3", domain.FieldStops, 2, domain.WidthFull),
			plainField("f4", domain.FieldDate, 3, domain.WidthHalf),
			plainField("f5", domain.FieldTime, 4, domain.WidthHalf),
		},
	}

	form := Render(l, domain.RuntimeState{BookingType: domain.BookingDestination})

	controls := map[string]ControlKind{}
	for _, it := range form.Items {
		if it.Kind == ItemField {
			controls[it.Field.ID] = it.Control
		}
	}
	assert.Equal(t, ControlTogglePair, controls["f1"])
	assert.Equal(t, ControlText, controls["f2"])
	assert.Equal(t, ControlList, controls["f3"])
	assert.Equal(t, ControlDatePicker, controls["f4"])
	assert.Equal(t, ControlTimePicker, controls["f5"])
}

func fieldItemIDs(form Form) []string {
	ids := []string{}
	for _, it := range form.Items {
		if it.Kind == ItemField {
			ids = append(ids, it.Field.ID)
		}
	}
	return ids
}
