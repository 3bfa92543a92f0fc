package partner

import (
	"context"

	"taxiforms/internal/domain"
)

type PartnerRepository interface {
	List(ctx context.Context, tenantID string) ([]domain.Partner, error)
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.Partner, error)
	GetByWidgetKey(ctx context.Context, key string) (*domain.Partner, error)
	Create(ctx context.Context, p *domain.Partner) error
	Update(ctx context.Context, p *domain.Partner) error
	Delete(ctx context.Context, tenantID string, id int64) error
}

// LayoutChecker verifies an assigned layout exists for the tenant
// before a partner is pinned to it.
type LayoutChecker interface {
	Get(ctx context.Context, tenantID, id string) (*domain.Layout, error)
}
