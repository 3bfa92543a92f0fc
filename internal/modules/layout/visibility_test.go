package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxiforms/internal/domain"
)

func TestIsVisibleUnconditional(t *testing.T) {
	f := domain.Field{Type: domain.FieldPickup}

	assert.True(t, IsVisible(f, domain.RuntimeState{BookingType: domain.BookingDestination}))
	assert.True(t, IsVisible(f, domain.RuntimeState{BookingType: domain.BookingHourly}))
}

func TestIsVisibleBookingPredicate(t *testing.T) {
	f := domain.Field{
		Type:        domain.FieldDropoff,
		VisibleWhen: whenBooking(domain.BookingDestination),
	}

	assert.True(t, IsVisible(f, domain.RuntimeState{BookingType: domain.BookingDestination}))
	assert.False(t, IsVisible(f, domain.RuntimeState{BookingType: domain.BookingHourly}))
}

func TestIsVisibleTripPredicate(t *testing.T) {
	f := domain.Field{
		Type:        domain.FieldReturnDate,
		VisibleWhen: whenTrip(domain.TripRoundTrip),
	}

	rt := domain.RuntimeState{BookingType: domain.BookingDestination, TripType: domain.TripOneWay}
	assert.False(t, IsVisible(f, rt))

	rt.TripType = domain.TripRoundTrip
	assert.True(t, IsVisible(f, rt))
}

func TestIsVisiblePredicatesAreANDed(t *testing.T) {
	dest := domain.BookingDestination
	round := domain.TripRoundTrip
	f := domain.Field{
		VisibleWhen: &domain.VisibilityCondition{BookingType: &dest, TripType: &round},
	}

	assert.True(t, IsVisible(f, domain.RuntimeState{BookingType: domain.BookingDestination, TripType: domain.TripRoundTrip}))
	assert.False(t, IsVisible(f, domain.RuntimeState{BookingType: domain.BookingDestination, TripType: domain.TripOneWay}))
	assert.False(t, IsVisible(f, domain.RuntimeState{BookingType: domain.BookingHourly, TripType: domain.TripRoundTrip}))
}
