package settings

import (
	"context"

	"taxiforms/internal/domain"
)

type Service struct {
	repo SettingsRepository
}

func NewService(repo SettingsRepository) *Service {
	return &Service{repo: repo}
}

// Get returns the tenant settings, falling back to defaults when the
// tenant has never saved any.
func (s *Service) Get(ctx context.Context, tenantID string) (*domain.Settings, error) {
	st, err := s.repo.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return defaults(tenantID), nil
	}
	return st, nil
}

func (s *Service) Update(ctx context.Context, tenantID string, req UpdateSettingsRequest) (*domain.Settings, error) {
	st, err := s.repo.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		st = defaults(tenantID)
	}

	st.CompanyName = req.CompanyName
	if req.Currency != "" {
		st.Currency = req.Currency
	}
	if req.CountryCode != "" {
		st.CountryCode = req.CountryCode
	}
	if req.DistanceUnit != "" {
		st.DistanceUnit = req.DistanceUnit
	}
	st.SupportEmail = req.SupportEmail
	st.SupportPhone = req.SupportPhone

	if err := s.repo.Upsert(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func defaults(tenantID string) *domain.Settings {
	return &domain.Settings{
		TenantID:     tenantID,
		Currency:     "USD",
		DistanceUnit: "km",
	}
}
