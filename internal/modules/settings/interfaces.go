package settings

import (
	"context"

	"taxiforms/internal/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context, tenantID string) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}
