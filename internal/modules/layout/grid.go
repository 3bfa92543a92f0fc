package layout

import (
	"math"

	"taxiforms/internal/domain"
)

// ResolveSpan maps a symbolic width token onto a concrete column span for
// the active column count. Spans never drop below one column; an unknown
// token renders full width.
func ResolveSpan(w domain.WidthToken, columns int) int {
	if columns < 1 {
		columns = 1
	}

	var span int
	switch w {
	case domain.WidthFull:
		span = columns
	case domain.WidthTwoThirds:
		span = int(math.Round(float64(columns) * 2 / 3))
	case domain.WidthHalf:
		span = ceilDiv(columns, 2)
	case domain.WidthThird:
		span = ceilDiv(columns, 3)
	case domain.WidthQuarter:
		span = ceilDiv(columns, 4)
	default:
		span = columns
	}

	if span < 1 {
		span = 1
	}
	return span
}

// EffectiveWidth picks the width token to feed ResolveSpan. Hourly-mode
// overrides win (the mobile-hourly variant first on mobile), then the plain
// mobile override, then the mandatory base width.
func EffectiveWidth(f domain.Field, rt domain.RuntimeState) domain.WidthToken {
	if rt.BookingType == domain.BookingHourly {
		if rt.Mobile && f.MobileWidthWhenHourly != "" {
			return f.MobileWidthWhenHourly
		}
		if f.WidthWhenHourly != "" {
			return f.WidthWhenHourly
		}
	}
	if rt.Mobile && f.MobileWidth != "" {
		return f.MobileWidth
	}
	return f.Width
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
