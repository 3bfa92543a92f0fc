package layout

import "taxiforms/internal/domain"

// FieldMeta is the static rendering metadata for one field type. The
// registry is a closed map: every enumerated type has exactly one entry,
// which the registry test asserts.
type FieldMeta struct {
	Label          string
	Icon           string
	DefaultWidth   domain.WidthToken
	Locked         bool
	Required       bool
	SupportsBorder bool
	VisibleWhen    *domain.VisibilityCondition
}

// AllFieldTypes lists the closed field-type enumeration in canonical order.
var AllFieldTypes = []domain.FieldType{
	domain.FieldBookingType,
	domain.FieldPickup,
	domain.FieldStops,
	domain.FieldDropoff,
	domain.FieldDuration,
	domain.FieldTripType,
	domain.FieldDate,
	domain.FieldTime,
	domain.FieldReturnDate,
	domain.FieldReturnTime,
	domain.FieldPassengers,
}

var registry = map[domain.FieldType]FieldMeta{
	domain.FieldBookingType: {
		Label:          "Booking type",
		Icon:           "route",
		DefaultWidth:   domain.WidthFull,
		Locked:         true,
		Required:       true,
		SupportsBorder: true,
	},
	domain.FieldPickup: {
		Label:        "Pickup location",
		Icon:         "map-pin",
		DefaultWidth: domain.WidthHalf,
		Required:     true,
	},
	domain.FieldStops: {
		Label:        "Stops",
		Icon:         "flag",
		DefaultWidth: domain.WidthFull,
		VisibleWhen:  whenBooking(domain.BookingDestination),
	},
	domain.FieldDropoff: {
		Label:        "Dropoff location",
		Icon:         "map-pin",
		DefaultWidth: domain.WidthHalf,
		Required:     true,
		VisibleWhen:  whenBooking(domain.BookingDestination),
	},
	domain.FieldDuration: {
		Label:        "Duration (hours)",
		Icon:         "hourglass",
		DefaultWidth: domain.WidthHalf,
		Required:     true,
		VisibleWhen:  whenBooking(domain.BookingHourly),
	},
	domain.FieldTripType: {
		Label:          "Trip type",
		Icon:           "repeat",
		DefaultWidth:   domain.WidthFull,
		SupportsBorder: true,
		VisibleWhen:    whenBooking(domain.BookingDestination),
	},
	domain.FieldDate: {
		Label:        "Pickup date",
		Icon:         "calendar",
		DefaultWidth: domain.WidthHalf,
		Required:     true,
	},
	domain.FieldTime: {
		Label:        "Pickup time",
		Icon:         "clock",
		DefaultWidth: domain.WidthHalf,
		Required:     true,
	},
	domain.FieldReturnDate: {
		Label:        "Return date",
		Icon:         "calendar",
		DefaultWidth: domain.WidthHalf,
		VisibleWhen:  whenTrip(domain.TripRoundTrip),
	},
	domain.FieldReturnTime: {
		Label:        "Return time",
		Icon:         "clock",
		DefaultWidth: domain.WidthHalf,
		VisibleWhen:  whenTrip(domain.TripRoundTrip),
	},
	domain.FieldPassengers: {
		Label:        "Passengers",
		Icon:         "users",
		DefaultWidth: domain.WidthQuarter,
	},
}

// Lookup returns the registry entry for a field type. The second return is
// false only for values outside the enumeration, e.g. stale persisted data;
// callers degrade by omission in that case.
func Lookup(t domain.FieldType) (FieldMeta, bool) {
	m, ok := registry[t]
	return m, ok
}

func whenBooking(bt domain.BookingType) *domain.VisibilityCondition {
	return &domain.VisibilityCondition{BookingType: &bt}
}

func whenTrip(tt domain.TripType) *domain.VisibilityCondition {
	return &domain.VisibilityCondition{TripType: &tt}
}

func cloneCondition(c *domain.VisibilityCondition) *domain.VisibilityCondition {
	if c == nil {
		return nil
	}
	out := &domain.VisibilityCondition{}
	if c.BookingType != nil {
		v := *c.BookingType
		out.BookingType = &v
	}
	if c.TripType != nil {
		v := *c.TripType
		out.TripType = &v
	}
	return out
}
