package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taxiforms/internal/domain"
)

/* ==================== MOCKS ==================== */

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, tenantID string, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, tenantID, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) CancelWithReason(ctx context.Context, tenantID string, id int64, reason string) error {
	args := m.Called(ctx, tenantID, id, reason)
	return args.Error(0)
}

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

type MockLayoutProvider struct {
	mock.Mock
}

func (m *MockLayoutProvider) Default(ctx context.Context, tenantID string) (*domain.Layout, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Layout), args.Error(1)
}

/* ==================== HELPERS ==================== */

func sedan() *domain.Vehicle {
	return &domain.Vehicle{
		ID:          1,
		TenantID:    "t1",
		Name:        "Sedan",
		Capacity:    3,
		BaseFare:    5,
		PerKM:       1.5,
		PerHour:     35,
		MinimumFare: 10,
		IsActive:    true,
	}
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		VehicleID:   1,
		BookingType: domain.BookingDestination,
		TripType:    domain.TripOneWay,
		Pickup:      "Airport",
		Dropoff:     "Hotel",
		DistanceKM:  20,
		Passengers:  2,
		PickupAt:    time.Now().Add(24 * time.Hour),
	}
}

func newTestService(bookings *MockBookingRepository, vehicles *MockVehicleRepository, layouts *MockLayoutProvider) *Service {
	return NewService(bookings, vehicles, layouts)
}

/* ==================== FARE ==================== */

func TestComputeFareDestination(t *testing.T) {
	fare, err := computeFare(sedan(), domain.BookingDestination, domain.TripOneWay, 20, 0)
	assert.NoError(t, err)
	assert.Equal(t, 35.0, fare) // 5 + 1.5*20
}

func TestComputeFareRoundTripDoublesDistance(t *testing.T) {
	fare, err := computeFare(sedan(), domain.BookingDestination, domain.TripRoundTrip, 20, 0)
	assert.NoError(t, err)
	assert.Equal(t, 65.0, fare) // 5 + 1.5*40
}

func TestComputeFareHourly(t *testing.T) {
	fare, err := computeFare(sedan(), domain.BookingHourly, "", 0, 3)
	assert.NoError(t, err)
	assert.Equal(t, 110.0, fare) // 5 + 35*3

	_, err = computeFare(sedan(), domain.BookingHourly, "", 0, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestComputeFareMinimumClamp(t *testing.T) {
	fare, err := computeFare(sedan(), domain.BookingDestination, domain.TripOneWay, 1, 0)
	assert.NoError(t, err)
	assert.Equal(t, 10.0, fare) // 5 + 1.5 < minimum 10
}

func TestComputeFareRoundsToCents(t *testing.T) {
	v := sedan()
	v.PerKM = 1.333
	fare, err := computeFare(v, domain.BookingDestination, domain.TripOneWay, 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, 18.33, fare)
}

/* ==================== QUOTE ==================== */

func TestQuote(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	vehicles.On("GetByID", mock.Anything, "t1", int64(1)).Return(sedan(), nil)
	svc := newTestService(new(MockBookingRepository), vehicles, new(MockLayoutProvider))

	q, err := svc.Quote(context.Background(), "t1", QuoteRequest{
		VehicleID:   1,
		BookingType: domain.BookingDestination,
		DistanceKM:  20,
	})
	assert.NoError(t, err)
	assert.Equal(t, 35.0, q.Fare)
	assert.Equal(t, "Sedan", q.Vehicle)
}

func TestQuoteInactiveVehicle(t *testing.T) {
	v := sedan()
	v.IsActive = false
	vehicles := new(MockVehicleRepository)
	vehicles.On("GetByID", mock.Anything, "t1", int64(1)).Return(v, nil)
	svc := newTestService(new(MockBookingRepository), vehicles, new(MockLayoutProvider))

	_, err := svc.Quote(context.Background(), "t1", QuoteRequest{VehicleID: 1, BookingType: domain.BookingDestination})
	assert.ErrorIs(t, err, ErrVehicleUnavailable)
}

/* ==================== CREATE ==================== */

func TestCreateBooking(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	vehicles := new(MockVehicleRepository)
	vehicles.On("GetByID", mock.Anything, "t1", int64(1)).Return(sedan(), nil)
	layouts := new(MockLayoutProvider)
	layouts.On("Default", mock.Anything, "t1").Return(nil, nil)

	svc := newTestService(bookings, vehicles, layouts)

	b, err := svc.Create(context.Background(), "t1", nil, validRequest())
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, 35.0, b.Fare)
	assert.Equal(t, "t1", b.TenantID)
}

func TestCreateRejectsPastPickup(t *testing.T) {
	svc := newTestService(new(MockBookingRepository), new(MockVehicleRepository), new(MockLayoutProvider))

	req := validRequest()
	req.PickupAt = time.Now().Add(-time.Hour)
	_, err := svc.Create(context.Background(), "t1", nil, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRejectsReturnBeforePickup(t *testing.T) {
	svc := newTestService(new(MockBookingRepository), new(MockVehicleRepository), new(MockLayoutProvider))

	req := validRequest()
	req.TripType = domain.TripRoundTrip
	ret := req.PickupAt.Add(-2 * time.Hour)
	req.ReturnAt = &ret
	_, err := svc.Create(context.Background(), "t1", nil, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRejectsOverCapacity(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	vehicles.On("GetByID", mock.Anything, "t1", int64(1)).Return(sedan(), nil)
	layouts := new(MockLayoutProvider)
	layouts.On("Default", mock.Anything, "t1").Return(nil, nil)
	svc := newTestService(new(MockBookingRepository), vehicles, layouts)

	req := validRequest()
	req.Passengers = 7
	_, err := svc.Create(context.Background(), "t1", nil, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateValidatesAgainstDefaultLayout(t *testing.T) {
	dest := domain.BookingDestination
	l := &domain.Layout{
		ID:       "l1",
		TenantID: "t1",
		Fields: []domain.Field{
			{ID: "f1", Type: domain.FieldPickup, Enabled: true, Required: true},
			{ID: "f2", Type: domain.FieldDropoff, Enabled: true, Required: true,
				VisibleWhen: &domain.VisibilityCondition{BookingType: &dest}},
		},
	}
	layouts := new(MockLayoutProvider)
	layouts.On("Default", mock.Anything, "t1").Return(l, nil)
	svc := newTestService(new(MockBookingRepository), new(MockVehicleRepository), layouts)

	req := validRequest()
	req.Dropoff = ""
	_, err := svc.Create(context.Background(), "t1", nil, req)

	var missing *MissingFieldsError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"dropoff"}, missing.Fields)
}

func TestCreateSkipsHiddenRequiredFields(t *testing.T) {
	// Dropoff is required but only visible for destination trips, so an
	// hourly submission without it passes.
	dest := domain.BookingDestination
	l := &domain.Layout{
		ID:       "l1",
		TenantID: "t1",
		Fields: []domain.Field{
			{ID: "f1", Type: domain.FieldDropoff, Enabled: true, Required: true,
				VisibleWhen: &domain.VisibilityCondition{BookingType: &dest}},
		},
	}
	bookings := new(MockBookingRepository)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	vehicles := new(MockVehicleRepository)
	vehicles.On("GetByID", mock.Anything, "t1", int64(1)).Return(sedan(), nil)
	layouts := new(MockLayoutProvider)
	layouts.On("Default", mock.Anything, "t1").Return(l, nil)
	svc := newTestService(bookings, vehicles, layouts)

	req := validRequest()
	req.BookingType = domain.BookingHourly
	req.TripType = ""
	req.Dropoff = ""
	req.DurationHours = 2

	b, err := svc.Create(context.Background(), "t1", nil, req)
	assert.NoError(t, err)
	assert.Equal(t, 75.0, b.Fare) // 5 + 35*2
}

func TestCreateAttributesPartner(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	vehicles := new(MockVehicleRepository)
	vehicles.On("GetByID", mock.Anything, "t1", int64(1)).Return(sedan(), nil)
	layouts := new(MockLayoutProvider)
	layouts.On("Default", mock.Anything, "t1").Return(nil, nil)
	svc := newTestService(bookings, vehicles, layouts)

	pid := int64(42)
	b, err := svc.Create(context.Background(), "t1", &pid, validRequest())
	assert.NoError(t, err)
	if assert.NotNil(t, b.PartnerID) {
		assert.Equal(t, int64(42), *b.PartnerID)
	}
}

/* ==================== TRANSITIONS ==================== */

func TestConfirmRequiresPending(t *testing.T) {
	confirmed := &domain.Booking{ID: 1, TenantID: "t1", Status: domain.BookingConfirmed}
	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, "t1", int64(1)).Return(confirmed, nil)
	svc := newTestService(bookings, new(MockVehicleRepository), new(MockLayoutProvider))

	_, err := svc.Confirm(context.Background(), "t1", 1)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestCancelCompletedIsRejected(t *testing.T) {
	done := &domain.Booking{ID: 1, TenantID: "t1", Status: domain.BookingCompleted}
	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, "t1", int64(1)).Return(done, nil)
	svc := newTestService(bookings, new(MockVehicleRepository), new(MockLayoutProvider))

	_, err := svc.Cancel(context.Background(), "t1", 1, "no car")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestListClampsLimit(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("List", mock.Anything, "t1", 50, 0).Return([]domain.Booking{}, nil)
	svc := newTestService(bookings, new(MockVehicleRepository), new(MockLayoutProvider))

	_, err := svc.List(context.Background(), "t1", 0, -5)
	assert.NoError(t, err)
	bookings.AssertExpectations(t)
}
