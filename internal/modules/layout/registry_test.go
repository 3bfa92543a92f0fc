package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxiforms/internal/domain"
)

func TestRegistryCoversEveryFieldType(t *testing.T) {
	assert.Len(t, AllFieldTypes, len(registry))

	for _, ft := range AllFieldTypes {
		meta, ok := Lookup(ft)
		assert.True(t, ok, "missing registry entry for %s", ft)
		assert.NotEmpty(t, meta.Label)
		assert.NotEmpty(t, meta.DefaultWidth)
	}
}

func TestLookupUnknownType(t *testing.T) {
	_, ok := Lookup(domain.FieldType("teleport"))
	assert.False(t, ok)
}

func TestBookingTypeEntryIsLocked(t *testing.T) {
	meta, ok := Lookup(domain.FieldBookingType)
	assert.True(t, ok)
	assert.True(t, meta.Locked)
	assert.True(t, meta.Required)
	assert.True(t, meta.SupportsBorder)
	assert.Nil(t, meta.VisibleWhen)
}

func TestConditionalEntries(t *testing.T) {
	cases := []struct {
		ft      domain.FieldType
		booking *domain.BookingType
		trip    *domain.TripType
	}{
		{domain.FieldDropoff, bt(domain.BookingDestination), nil},
		{domain.FieldStops, bt(domain.BookingDestination), nil},
		{domain.FieldTripType, bt(domain.BookingDestination), nil},
		{domain.FieldDuration, bt(domain.BookingHourly), nil},
		{domain.FieldReturnDate, nil, tt(domain.TripRoundTrip)},
		{domain.FieldReturnTime, nil, tt(domain.TripRoundTrip)},
	}

	for _, tc := range cases {
		meta, ok := Lookup(tc.ft)
		assert.True(t, ok)
		if assert.NotNil(t, meta.VisibleWhen, "%s should be conditional", tc.ft) {
			assert.Equal(t, tc.booking, meta.VisibleWhen.BookingType, "%s booking predicate", tc.ft)
			assert.Equal(t, tc.trip, meta.VisibleWhen.TripType, "%s trip predicate", tc.ft)
		}
	}
}

func bt(v domain.BookingType) *domain.BookingType { return &v }
func tt(v domain.TripType) *domain.TripType       { return &v }
