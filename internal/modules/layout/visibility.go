package layout

import "taxiforms/internal/domain"

// IsVisible decides whether a field is shown for the current runtime
// selections. Present predicates are AND-ed; a field may require both a
// booking type and a trip type at once. Re-evaluated on every render pass,
// never cached across runtime transitions.
func IsVisible(f domain.Field, rt domain.RuntimeState) bool {
	if f.VisibleWhen == nil {
		return true
	}
	if f.VisibleWhen.BookingType != nil && *f.VisibleWhen.BookingType != rt.BookingType {
		return false
	}
	if f.VisibleWhen.TripType != nil && *f.VisibleWhen.TripType != rt.TripType {
		return false
	}
	return true
}
