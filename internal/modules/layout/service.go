package layout

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"taxiforms/internal/domain"
)

type Service struct {
	layouts LayoutRepository
	drafts  DraftStore
	notifs  Notifier
}

func NewService(layouts LayoutRepository, drafts DraftStore, notifs Notifier) *Service {
	return &Service{
		layouts: layouts,
		drafts:  drafts,
		notifs:  notifs,
	}
}

func (s *Service) List(ctx context.Context, tenantID string) ([]domain.Layout, error) {
	return s.layouts.List(ctx, tenantID)
}

func (s *Service) Get(ctx context.Context, tenantID, id string) (*domain.Layout, error) {
	l, err := s.layouts.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrNotFound
	}
	return l, nil
}

// Default returns the tenant's default layout, the one the public widget
// renders when a partner has no explicit layout assigned.
func (s *Service) Default(ctx context.Context, tenantID string) (*domain.Layout, error) {
	l, err := s.layouts.GetDefault(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrNotFound
	}
	return l, nil
}

func (s *Service) Create(ctx context.Context, tenantID, name, description string) (*domain.Layout, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation
	}

	l := &domain.Layout{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Name:        name,
		Description: description,
		Fields:      []domain.Field{},
		IsActive:    true,
	}
	if err := s.layouts.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Update persists the working copy and returns the authoritative stored
// object; callers replace their local state with it rather than trusting
// the optimistic copy.
func (s *Service) Update(ctx context.Context, tenantID string, l domain.Layout) (*domain.Layout, error) {
	if strings.TrimSpace(l.Name) == "" {
		return nil, ErrValidation
	}

	existing, err := s.layouts.GetByID(ctx, tenantID, l.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	existing.Name = strings.TrimSpace(l.Name)
	existing.Description = l.Description
	existing.Fields = l.Fields
	existing.Style = l.Style

	if err := s.layouts.Update(ctx, existing); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.LayoutUpdated(tenantID, existing.ID)
	}

	return s.Get(ctx, tenantID, l.ID)
}

func (s *Service) Duplicate(ctx context.Context, tenantID, id, name string) (*domain.Layout, error) {
	src, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = src.Name + " (copy)"
	}

	dup := &domain.Layout{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Name:        name,
		Description: src.Description,
		Fields:      cloneFields(src.Fields),
		Style:       src.Style,
		IsActive:    src.IsActive,
	}
	if err := s.layouts.Create(ctx, dup); err != nil {
		return nil, err
	}
	return dup, nil
}

func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	l, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return err
	}
	return s.layouts.Delete(ctx, tenantID, l.ID)
}

// SetDefault makes the layout the tenant's single default. The uniqueness
// is enforced by a partial unique index; a concurrent winner surfaces as a
// conflict instead of two defaults.
func (s *Service) SetDefault(ctx context.Context, tenantID, id string) (*domain.Layout, error) {
	if _, err := s.Get(ctx, tenantID, id); err != nil {
		return nil, err
	}

	if err := s.layouts.SetDefault(ctx, tenantID, id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_one_default_layout" {
			return nil, ErrDefaultConflict
		}
		return nil, err
	}

	return s.Get(ctx, tenantID, id)
}

func (s *Service) SetActive(ctx context.Context, tenantID, id string, active bool) (*domain.Layout, error) {
	if _, err := s.Get(ctx, tenantID, id); err != nil {
		return nil, err
	}
	if err := s.layouts.SetActive(ctx, tenantID, id, active); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.LayoutUpdated(tenantID, id)
	}

	return s.Get(ctx, tenantID, id)
}
