package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taxiforms/internal/domain"
	jwtsvc "taxiforms/internal/pkg/jwt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := HashPassword(password)
	assert.NoError(t, err)
	return &domain.User{
		ID:           1,
		TenantID:     "t1",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
}

func TestLoginIssuesToken(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(testUser(t, "secret123"), nil)

	j := jwtsvc.New("test-secret", time.Hour)
	svc := NewService(users, j)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "admin@example.com", Password: "secret123"})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	claims, err := j.ValidateToken(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "t1", claims.TenantID)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(testUser(t, "secret123"), nil)

	svc := NewService(users, jwtsvc.New("test-secret", time.Hour))

	_, err := svc.Login(context.Background(), LoginRequest{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	svc := NewService(users, jwtsvc.New("test-secret", time.Hour))

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDisabledUser(t *testing.T) {
	u := testUser(t, "secret123")
	u.IsActive = false
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(u, nil)

	svc := NewService(users, jwtsvc.New("test-secret", time.Hour))

	_, err := svc.Login(context.Background(), LoginRequest{Email: "admin@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserDisabled)
}
