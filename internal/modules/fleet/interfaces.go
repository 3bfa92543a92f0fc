package fleet

import (
	"context"

	"taxiforms/internal/domain"
)

type VehicleRepository interface {
	List(ctx context.Context, tenantID string) ([]domain.Vehicle, error)
	ListActive(ctx context.Context, tenantID string) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.Vehicle, error)
	Create(ctx context.Context, v *domain.Vehicle) error
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, tenantID string, id int64) error
}

type DriverRepository interface {
	List(ctx context.Context, tenantID string) ([]domain.Driver, error)
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.Driver, error)
	Create(ctx context.Context, d *domain.Driver) error
	Update(ctx context.Context, d *domain.Driver) error
	Delete(ctx context.Context, tenantID string, id int64) error
}
