package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxiforms/internal/domain"
)

func TestResolveSpan(t *testing.T) {
	cases := []struct {
		width   domain.WidthToken
		columns int
		want    int
	}{
		{domain.WidthFull, 4, 4},
		{domain.WidthFull, 1, 1},
		{domain.WidthTwoThirds, 3, 2},
		{domain.WidthTwoThirds, 4, 3},
		{domain.WidthHalf, 4, 2},
		{domain.WidthHalf, 3, 2},
		{domain.WidthHalf, 1, 1},
		{domain.WidthThird, 3, 1},
		{domain.WidthThird, 4, 2},
		{domain.WidthQuarter, 4, 1},
		{domain.WidthQuarter, 2, 1},
		{domain.WidthQuarter, 1, 1},
	}

	for _, tc := range cases {
		got := ResolveSpan(tc.width, tc.columns)
		assert.Equal(t, tc.want, got, "%s at %d columns", tc.width, tc.columns)
	}
}

func TestResolveSpanNeverBelowOne(t *testing.T) {
	for _, w := range []domain.WidthToken{
		domain.WidthFull, domain.WidthTwoThirds, domain.WidthHalf,
		domain.WidthThird, domain.WidthQuarter,
	} {
		for cols := -1; cols <= 6; cols++ {
			span := ResolveSpan(w, cols)
			assert.GreaterOrEqual(t, span, 1, "%s at %d columns", w, cols)
		}
	}
}

func TestResolveSpanUnknownTokenIsFullWidth(t *testing.T) {
	assert.Equal(t, 4, ResolveSpan(domain.WidthToken("banana"), 4))
}

func TestEffectiveWidth(t *testing.T) {
	f := domain.Field{
		Width:                 domain.WidthHalf,
		WidthWhenHourly:       domain.WidthFull,
		MobileWidth:           domain.WidthThird,
		MobileWidthWhenHourly: domain.WidthQuarter,
	}

	// Desktop, destination: base width.
	got := EffectiveWidth(f, domain.RuntimeState{BookingType: domain.BookingDestination})
	assert.Equal(t, domain.WidthHalf, got)

	// Desktop, hourly: hourly override.
	got = EffectiveWidth(f, domain.RuntimeState{BookingType: domain.BookingHourly})
	assert.Equal(t, domain.WidthFull, got)

	// Mobile, destination: mobile override.
	got = EffectiveWidth(f, domain.RuntimeState{BookingType: domain.BookingDestination, Mobile: true})
	assert.Equal(t, domain.WidthThird, got)

	// Mobile, hourly: the mobile-hourly variant wins over everything.
	got = EffectiveWidth(f, domain.RuntimeState{BookingType: domain.BookingHourly, Mobile: true})
	assert.Equal(t, domain.WidthQuarter, got)
}

func TestEffectiveWidthFallbackChain(t *testing.T) {
	f := domain.Field{Width: domain.WidthHalf, WidthWhenHourly: domain.WidthFull}

	// Mobile-hourly with no mobile overrides falls back to the hourly one.
	got := EffectiveWidth(f, domain.RuntimeState{BookingType: domain.BookingHourly, Mobile: true})
	assert.Equal(t, domain.WidthFull, got)

	// Mobile with no mobile override falls back to the base width.
	got = EffectiveWidth(f, domain.RuntimeState{BookingType: domain.BookingDestination, Mobile: true})
	assert.Equal(t, domain.WidthHalf, got)
}
