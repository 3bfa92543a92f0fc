package domain

import "time"

// Vehicle is a bookable vehicle class shown on the vehicle-selection step,
// not a physical car.
type Vehicle struct {
	ID          int64   `json:"id"`
	TenantID    string  `json:"tenant_id"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	Capacity    int     `json:"capacity" validate:"required,gte=1"`
	Luggage     int     `json:"luggage,omitempty"`
	BaseFare    float64 `json:"base_fare" validate:"gte=0"`
	PerKM       float64 `json:"per_km" validate:"gte=0"`
	PerHour     float64 `json:"per_hour" validate:"gte=0"`
	MinimumFare float64 `json:"minimum_fare" validate:"gte=0"`
	SortOrder   int     `json:"sort_order"`
	IsActive    bool    `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DriverStatus string

const (
	DriverActive    DriverStatus = "active"
	DriverInactive  DriverStatus = "inactive"
	DriverSuspended DriverStatus = "suspended"
)

type Driver struct {
	ID        int64        `json:"id"`
	TenantID  string       `json:"tenant_id"`
	Name      string       `json:"name" validate:"required"`
	Phone     string       `json:"phone" validate:"required"`
	Email     string       `json:"email,omitempty"`
	LicenseNo string       `json:"license_no,omitempty"`
	VehicleID *int64       `json:"vehicle_id,omitempty"`
	Status    DriverStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
