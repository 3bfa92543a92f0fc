package partner

import (
	"context"

	"github.com/google/uuid"

	"taxiforms/internal/domain"
)

type Service struct {
	partners PartnerRepository
	layouts  LayoutChecker
}

func NewService(partners PartnerRepository, layouts LayoutChecker) *Service {
	return &Service{partners: partners, layouts: layouts}
}

func (s *Service) List(ctx context.Context, tenantID string) ([]domain.Partner, error) {
	return s.partners.List(ctx, tenantID)
}

func (s *Service) Get(ctx context.Context, tenantID string, id int64) (*domain.Partner, error) {
	p, err := s.partners.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// GetByWidgetKey resolves a partner from its embed key. The lookup is
// not tenant scoped since widget keys are globally unique.
func (s *Service) GetByWidgetKey(ctx context.Context, key string) (*domain.Partner, error) {
	p, err := s.partners.GetByWidgetKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, tenantID string, req PartnerRequest) (*domain.Partner, error) {
	if err := s.checkLayout(ctx, tenantID, req.LayoutID); err != nil {
		return nil, err
	}

	p := &domain.Partner{
		TenantID:     tenantID,
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		SiteDomain:   req.SiteDomain,
		WidgetKey:    uuid.NewString(),
		LayoutID:     req.LayoutID,
		Status:       domain.PartnerActive,
	}
	if err := s.partners.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, tenantID string, id int64, req PartnerRequest) (*domain.Partner, error) {
	p, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkLayout(ctx, tenantID, req.LayoutID); err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.ContactEmail = req.ContactEmail
	p.SiteDomain = req.SiteDomain
	p.LayoutID = req.LayoutID

	if err := s.partners.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RotateKey issues a fresh widget key; the old one stops resolving
// immediately.
func (s *Service) RotateKey(ctx context.Context, tenantID string, id int64) (*domain.Partner, error) {
	p, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	p.WidgetKey = uuid.NewString()
	if err := s.partners.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) SetStatus(ctx context.Context, tenantID string, id int64, status domain.PartnerStatus) (*domain.Partner, error) {
	if status != domain.PartnerActive && status != domain.PartnerDisabled {
		return nil, ErrValidation
	}

	p, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	p.Status = status
	if err := s.partners.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, tenantID string, id int64) error {
	if _, err := s.Get(ctx, tenantID, id); err != nil {
		return err
	}
	return s.partners.Delete(ctx, tenantID, id)
}

func (s *Service) checkLayout(ctx context.Context, tenantID string, layoutID *string) error {
	if layoutID == nil {
		return nil
	}
	if _, err := s.layouts.Get(ctx, tenantID, *layoutID); err != nil {
		return ErrValidation
	}
	return nil
}
