package layout

import (
	"context"

	"taxiforms/internal/domain"
)

// LayoutRepository defines the persistence operations for layouts.
type LayoutRepository interface {
	List(ctx context.Context, tenantID string) ([]domain.Layout, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Layout, error)
	GetDefault(ctx context.Context, tenantID string) (*domain.Layout, error)
	Create(ctx context.Context, l *domain.Layout) error
	Update(ctx context.Context, l *domain.Layout) error
	Delete(ctx context.Context, tenantID, id string) error
	SetDefault(ctx context.Context, tenantID, id string) error
	SetActive(ctx context.Context, tenantID, id string, active bool) error
}

// DraftStore is the single-key recovery cache for in-progress edits: one
// opaque JSON blob per key, tolerated to be missing or corrupt.
type DraftStore interface {
	Save(ctx context.Context, key string, blob []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// Notifier lets the engine signal consumers (open widgets) that a layout
// changed. May be nil.
type Notifier interface {
	LayoutUpdated(tenantID, layoutID string)
}
