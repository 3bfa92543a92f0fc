package booking

import (
	"context"

	"taxiforms/internal/domain"
)

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.Booking, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, tenantID string, id int64, status domain.BookingStatus) error
	CancelWithReason(ctx context.Context, tenantID string, id int64, reason string) error
}

// VehicleRepository is the slice of the fleet the funnel needs.
type VehicleRepository interface {
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.Vehicle, error)
}

// LayoutProvider hands the funnel the tenant's default layout so the
// submission can be validated against the form the customer actually saw.
type LayoutProvider interface {
	Default(ctx context.Context, tenantID string) (*domain.Layout, error)
}
