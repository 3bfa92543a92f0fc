package booking

import (
	"context"
	"math"
	"time"

	"taxiforms/internal/domain"
	"taxiforms/internal/modules/layout"
)

type Service struct {
	bookings BookingRepository
	vehicles VehicleRepository
	layouts  LayoutProvider
}

func NewService(bookings BookingRepository, vehicles VehicleRepository, layouts LayoutProvider) *Service {
	return &Service{
		bookings: bookings,
		vehicles: vehicles,
		layouts:  layouts,
	}
}

// Quote prices a trip for the vehicle-selection step.
func (s *Service) Quote(ctx context.Context, tenantID string, req QuoteRequest) (*Quote, error) {
	v, err := s.vehicles.GetByID(ctx, tenantID, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if v == nil || !v.IsActive {
		return nil, ErrVehicleUnavailable
	}

	fare, err := computeFare(v, req.BookingType, req.TripType, req.DistanceKM, req.DurationHours)
	if err != nil {
		return nil, err
	}

	return &Quote{
		VehicleID: v.ID,
		Vehicle:   v.Name,
		Fare:      fare,
	}, nil
}

// Create validates the submission against the tenant's default layout (only
// fields the customer was actually shown and that are marked required can
// block it), prices the trip and stores the booking as pending.
func (s *Service) Create(ctx context.Context, tenantID string, partnerID *int64, req CreateBookingRequest) (*domain.Booking, error) {
	if req.BookingType != domain.BookingDestination && req.BookingType != domain.BookingHourly {
		return nil, ErrValidation
	}
	if req.PickupAt.Before(time.Now()) {
		return nil, ErrValidation
	}
	if req.TripType == domain.TripRoundTrip && req.ReturnAt != nil && req.ReturnAt.Before(req.PickupAt) {
		return nil, ErrValidation
	}

	if err := s.checkRequiredFields(ctx, tenantID, req); err != nil {
		return nil, err
	}

	v, err := s.vehicles.GetByID(ctx, tenantID, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if v == nil || !v.IsActive {
		return nil, ErrVehicleUnavailable
	}
	if req.Passengers > 0 && req.Passengers > v.Capacity {
		return nil, ErrValidation
	}

	fare, err := computeFare(v, req.BookingType, req.TripType, req.DistanceKM, req.DurationHours)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		TenantID:      tenantID,
		PartnerID:     partnerID,
		VehicleID:     v.ID,
		BookingType:   req.BookingType,
		TripType:      req.TripType,
		Pickup:        req.Pickup,
		Stops:         req.Stops,
		Dropoff:       req.Dropoff,
		DurationHours: req.DurationHours,
		DistanceKM:    req.DistanceKM,
		Passengers:    req.Passengers,
		PickupAt:      req.PickupAt,
		ReturnAt:      req.ReturnAt,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Fare:          fare,
		Status:        domain.BookingPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// checkRequiredFields walks the default layout and demands a value for each
// enabled, required field that is visible for the submitted runtime state.
// A tenant without a default layout skips the check rather than blocking
// every booking.
func (s *Service) checkRequiredFields(ctx context.Context, tenantID string, req CreateBookingRequest) error {
	l, err := s.layouts.Default(ctx, tenantID)
	if err != nil || l == nil {
		return nil
	}

	rt := domain.RuntimeState{BookingType: req.BookingType, TripType: req.TripType}

	var missing []string
	for _, f := range l.Fields {
		if !f.Enabled || !f.Required {
			continue
		}
		if !layout.IsVisible(f, rt) {
			continue
		}
		if !fieldSubmitted(f.Type, req) {
			missing = append(missing, string(f.Type))
		}
	}

	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

func fieldSubmitted(t domain.FieldType, req CreateBookingRequest) bool {
	switch t {
	case domain.FieldBookingType:
		return req.BookingType != ""
	case domain.FieldTripType:
		return req.TripType != ""
	case domain.FieldPickup:
		return req.Pickup != ""
	case domain.FieldDropoff:
		return req.Dropoff != ""
	case domain.FieldStops:
		return len(req.Stops) > 0
	case domain.FieldDuration:
		return req.DurationHours > 0
	case domain.FieldDate, domain.FieldTime:
		return !req.PickupAt.IsZero()
	case domain.FieldReturnDate, domain.FieldReturnTime:
		return req.ReturnAt != nil && !req.ReturnAt.IsZero()
	case domain.FieldPassengers:
		return req.Passengers > 0
	default:
		return true
	}
}

func computeFare(v *domain.Vehicle, bt domain.BookingType, tt domain.TripType, distanceKM, durationHours float64) (float64, error) {
	var fare float64
	switch bt {
	case domain.BookingHourly:
		if durationHours <= 0 {
			return 0, ErrValidation
		}
		fare = v.BaseFare + v.PerHour*durationHours
	case domain.BookingDestination:
		if distanceKM < 0 {
			return 0, ErrValidation
		}
		distance := distanceKM
		if tt == domain.TripRoundTrip {
			distance *= 2
		}
		fare = v.BaseFare + v.PerKM*distance
	default:
		return 0, ErrValidation
	}

	if fare < v.MinimumFare {
		fare = v.MinimumFare
	}
	return math.Round(fare*100) / 100, nil
}

func (s *Service) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, tenantID string, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.bookings.List(ctx, tenantID, limit, offset)
}

func (s *Service) Confirm(ctx context.Context, tenantID string, id int64) (*domain.Booking, error) {
	return s.transition(ctx, tenantID, id, domain.BookingPending, domain.BookingConfirmed)
}

func (s *Service) Complete(ctx context.Context, tenantID string, id int64) (*domain.Booking, error) {
	return s.transition(ctx, tenantID, id, domain.BookingConfirmed, domain.BookingCompleted)
}

func (s *Service) transition(ctx context.Context, tenantID string, id int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if b.Status != from {
		return nil, ErrInvalidStatusTransition
	}
	if err := s.bookings.UpdateStatus(ctx, tenantID, id, to); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, tenantID, id)
}

func (s *Service) Cancel(ctx context.Context, tenantID string, id int64, reason string) (*domain.Booking, error) {
	b, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if b.Status == domain.BookingCancelled || b.Status == domain.BookingCompleted {
		return nil, ErrInvalidStatusTransition
	}
	if err := s.bookings.CancelWithReason(ctx, tenantID, id, reason); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, tenantID, id)
}
