package domain

import "time"

type FieldType string

const (
	FieldBookingType FieldType = "booking-type"
	FieldPickup      FieldType = "pickup"
	FieldStops       FieldType = "stops"
	FieldDropoff     FieldType = "dropoff"
	FieldDuration    FieldType = "duration"
	FieldTripType    FieldType = "trip-type"
	FieldDate        FieldType = "date"
	FieldTime        FieldType = "time"
	FieldReturnDate  FieldType = "return-date"
	FieldReturnTime  FieldType = "return-time"
	FieldPassengers  FieldType = "passengers"
)

type WidthToken string

const (
	WidthFull      WidthToken = "full"
	WidthTwoThirds WidthToken = "two-thirds"
	WidthHalf      WidthToken = "half"
	WidthThird     WidthToken = "third"
	WidthQuarter   WidthToken = "quarter"
)

type BookingType string

const (
	BookingDestination BookingType = "destination"
	BookingHourly      BookingType = "hourly"
)

type TripType string

const (
	TripOneWay    TripType = "oneway"
	TripRoundTrip TripType = "roundtrip"
)

// VisibilityCondition restricts a field to particular runtime selections.
// Present predicates are AND-ed; an absent predicate matches everything on
// that axis.
type VisibilityCondition struct {
	BookingType *BookingType `json:"booking_type,omitempty"`
	TripType    *TripType    `json:"trip_type,omitempty"`
}

type Field struct {
	ID                    string               `json:"id"`
	Type                  FieldType            `json:"type"`
	Label                 string               `json:"label"`
	Placeholder           string               `json:"placeholder,omitempty"`
	Required              bool                 `json:"required"`
	Enabled               bool                 `json:"enabled"`
	Width                 WidthToken           `json:"width"`
	WidthWhenHourly       WidthToken           `json:"width_when_hourly,omitempty"`
	MobileWidth           WidthToken           `json:"mobile_width,omitempty"`
	MobileWidthWhenHourly WidthToken           `json:"mobile_width_when_hourly,omitempty"`
	Order                 int                  `json:"order"`
	VisibleWhen           *VisibilityCondition `json:"visible_when,omitempty"`
	ShowBorder            *bool                `json:"show_border,omitempty"`
}

// Style is the flat presentation record attached to a layout. Every knob is
// optional on the wire; consumers fall back to the documented defaults.
type Style struct {
	Columns         int    `json:"columns,omitempty"`
	MobileColumns   int    `json:"mobile_columns,omitempty"`
	Gap             int    `json:"gap,omitempty"`
	PrimaryColor    string `json:"primary_color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	TextColor       string `json:"text_color,omitempty"`
	BorderRadius    int    `json:"border_radius,omitempty"`
	Alignment       string `json:"alignment,omitempty"`
	ShowHeader      bool   `json:"show_header,omitempty"`
	HeaderText      string `json:"header_text,omitempty"`
	ShowFooter      bool   `json:"show_footer,omitempty"`
	FooterText      string `json:"footer_text,omitempty"`
	ButtonText      string `json:"button_text,omitempty"`
	ButtonColor     string `json:"button_color,omitempty"`
	ButtonTextColor string `json:"button_text_color,omitempty"`
	// ButtonPosition pins the submit control between two visible fields.
	// Nil means "after the last field".
	ButtonPosition *int `json:"button_position,omitempty"`
}

const (
	DefaultColumns       = 2
	DefaultMobileColumns = 1
)

// EffectiveColumns returns the column count for the requested viewport,
// falling back to the embeddable defaults when the style leaves it unset.
func (s Style) EffectiveColumns(mobile bool) int {
	if mobile {
		if s.MobileColumns >= 1 {
			return s.MobileColumns
		}
		return DefaultMobileColumns
	}
	if s.Columns >= 1 {
		return s.Columns
	}
	return DefaultColumns
}

type Layout struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Fields      []Field   `json:"fields"`
	Style       Style     `json:"style"`
	IsActive    bool      `json:"is_active"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RuntimeState is the live selection a customer has made in the form. The
// renderer and the visibility resolver are driven by it on every pass.
type RuntimeState struct {
	BookingType BookingType `json:"booking_type"`
	TripType    TripType    `json:"trip_type"`
	Mobile      bool        `json:"mobile,omitempty"`
}
