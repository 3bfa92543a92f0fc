package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type Booking struct {
	ID          int64       `json:"id"`
	TenantID    string      `json:"tenant_id"`
	PartnerID   *int64      `json:"partner_id,omitempty"`
	VehicleID   int64       `json:"vehicle_id" validate:"required"`
	BookingType BookingType `json:"booking_type" validate:"required"`
	TripType    TripType    `json:"trip_type,omitempty"`

	Pickup        string   `json:"pickup,omitempty"`
	Stops         []string `json:"stops,omitempty" gorm:"serializer:json"`
	Dropoff       string   `json:"dropoff,omitempty"`
	DurationHours float64  `json:"duration_hours,omitempty"`
	DistanceKM    float64  `json:"distance_km,omitempty"`
	Passengers    int      `json:"passengers,omitempty"`

	PickupAt time.Time  `json:"pickup_at"`
	ReturnAt *time.Time `json:"return_at,omitempty"`

	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`

	Fare               float64       `json:"fare"`
	Status             BookingStatus `json:"status"`
	CancellationReason string        `json:"cancellation_reason,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}
