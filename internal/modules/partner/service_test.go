package partner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taxiforms/internal/domain"
)

type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) List(ctx context.Context, tenantID string) ([]domain.Partner, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Partner, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetByWidgetKey(ctx context.Context, key string) (*domain.Partner, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerRepository) Create(ctx context.Context, p *domain.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Update(ctx context.Context, p *domain.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Delete(ctx context.Context, tenantID string, id int64) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

type MockLayoutChecker struct {
	mock.Mock
}

func (m *MockLayoutChecker) Get(ctx context.Context, tenantID, id string) (*domain.Layout, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Layout), args.Error(1)
}

func TestCreateAssignsWidgetKey(t *testing.T) {
	repo := new(MockPartnerRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Partner")).Return(nil)

	svc := NewService(repo, new(MockLayoutChecker))

	p, err := svc.Create(context.Background(), "t1", PartnerRequest{Name: "Acme Travel"})
	assert.NoError(t, err)
	assert.NotEmpty(t, p.WidgetKey)
	assert.Equal(t, domain.PartnerActive, p.Status)
	assert.Equal(t, "t1", p.TenantID)
}

func TestCreateRejectsUnknownLayout(t *testing.T) {
	layoutID := "missing"
	layouts := new(MockLayoutChecker)
	layouts.On("Get", mock.Anything, "t1", "missing").Return(nil, errors.New("not found"))

	repo := new(MockPartnerRepository)
	svc := NewService(repo, layouts)

	_, err := svc.Create(context.Background(), "t1", PartnerRequest{Name: "Acme Travel", LayoutID: &layoutID})
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRotateKeyReplacesKey(t *testing.T) {
	repo := new(MockPartnerRepository)
	repo.On("GetByID", mock.Anything, "t1", int64(7)).
		Return(&domain.Partner{ID: 7, TenantID: "t1", WidgetKey: "old-key"}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Partner")).Return(nil)

	svc := NewService(repo, new(MockLayoutChecker))

	p, err := svc.RotateKey(context.Background(), "t1", 7)
	assert.NoError(t, err)
	assert.NotEqual(t, "old-key", p.WidgetKey)
	assert.NotEmpty(t, p.WidgetKey)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	repo := new(MockPartnerRepository)
	svc := NewService(repo, new(MockLayoutChecker))

	_, err := svc.SetStatus(context.Background(), "t1", 7, domain.PartnerStatus("frozen"))
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetStatusDisablesPartner(t *testing.T) {
	repo := new(MockPartnerRepository)
	repo.On("GetByID", mock.Anything, "t1", int64(7)).
		Return(&domain.Partner{ID: 7, TenantID: "t1", Status: domain.PartnerActive}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Partner")).Return(nil)

	svc := NewService(repo, new(MockLayoutChecker))

	p, err := svc.SetStatus(context.Background(), "t1", 7, domain.PartnerDisabled)
	assert.NoError(t, err)
	assert.Equal(t, domain.PartnerDisabled, p.Status)
}

func TestGetByWidgetKeyUnknown(t *testing.T) {
	repo := new(MockPartnerRepository)
	repo.On("GetByWidgetKey", mock.Anything, "ghost").Return(nil, nil)

	svc := NewService(repo, new(MockLayoutChecker))

	_, err := svc.GetByWidgetKey(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
