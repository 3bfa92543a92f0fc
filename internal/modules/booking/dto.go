package booking

import (
	"time"

	"taxiforms/internal/domain"
)

type CreateBookingRequest struct {
	VehicleID   int64              `json:"vehicle_id" binding:"required"`
	BookingType domain.BookingType `json:"booking_type" binding:"required"`
	TripType    domain.TripType    `json:"trip_type"`

	Pickup        string   `json:"pickup"`
	Stops         []string `json:"stops"`
	Dropoff       string   `json:"dropoff"`
	DurationHours float64  `json:"duration_hours"`
	DistanceKM    float64  `json:"distance_km"`
	Passengers    int      `json:"passengers"`

	PickupAt time.Time  `json:"pickup_at" binding:"required"`
	ReturnAt *time.Time `json:"return_at"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
}

type QuoteRequest struct {
	VehicleID     int64              `json:"vehicle_id" binding:"required"`
	BookingType   domain.BookingType `json:"booking_type" binding:"required"`
	TripType      domain.TripType    `json:"trip_type"`
	DistanceKM    float64            `json:"distance_km"`
	DurationHours float64            `json:"duration_hours"`
}

type Quote struct {
	VehicleID int64   `json:"vehicle_id"`
	Vehicle   string  `json:"vehicle"`
	Currency  string  `json:"currency,omitempty"`
	Fare      float64 `json:"fare"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}
