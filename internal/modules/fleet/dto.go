package fleet

import "taxiforms/internal/domain"

type VehicleRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Capacity    int     `json:"capacity" binding:"required,gte=1"`
	Luggage     int     `json:"luggage" binding:"gte=0"`
	BaseFare    float64 `json:"base_fare" binding:"gte=0"`
	PerKM       float64 `json:"per_km" binding:"gte=0"`
	PerHour     float64 `json:"per_hour" binding:"gte=0"`
	MinimumFare float64 `json:"minimum_fare" binding:"gte=0"`
	SortOrder   int     `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

type DriverRequest struct {
	Name      string              `json:"name" binding:"required"`
	Phone     string              `json:"phone" binding:"required"`
	Email     string              `json:"email"`
	LicenseNo string              `json:"license_no"`
	VehicleID *int64              `json:"vehicle_id"`
	Status    domain.DriverStatus `json:"status"`
}
