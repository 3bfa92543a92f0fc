package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"taxiforms/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	TenantID    string `gorm:"column:tenant_id;index"`
	PartnerID   *int64 `gorm:"column:partner_id"`
	VehicleID   int64  `gorm:"column:vehicle_id"`
	BookingType string `gorm:"column:booking_type"`
	TripType    string `gorm:"column:trip_type"`

	Pickup        string  `gorm:"column:pickup"`
	Stops         string  `gorm:"column:stops;type:text"`
	Dropoff       string  `gorm:"column:dropoff"`
	DurationHours float64 `gorm:"column:duration_hours"`
	DistanceKM    float64 `gorm:"column:distance_km"`
	Passengers    int     `gorm:"column:passengers"`

	PickupAt time.Time  `gorm:"column:pickup_at"`
	ReturnAt *time.Time `gorm:"column:return_at"`

	CustomerName  string `gorm:"column:customer_name"`
	CustomerPhone string `gorm:"column:customer_phone"`
	CustomerEmail string `gorm:"column:customer_email"`

	Fare               float64 `gorm:"column:fare"`
	Status             string  `gorm:"column:status"`
	CancellationReason string  `gorm:"column:cancellation_reason"`

	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
	CancelledAt *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) (*domain.Booking, error) {
	b := &domain.Booking{
		ID:                 m.ID,
		TenantID:           m.TenantID,
		PartnerID:          m.PartnerID,
		VehicleID:          m.VehicleID,
		BookingType:        domain.BookingType(m.BookingType),
		TripType:           domain.TripType(m.TripType),
		Pickup:             m.Pickup,
		Dropoff:            m.Dropoff,
		DurationHours:      m.DurationHours,
		DistanceKM:         m.DistanceKM,
		Passengers:         m.Passengers,
		PickupAt:           m.PickupAt,
		ReturnAt:           m.ReturnAt,
		CustomerName:       m.CustomerName,
		CustomerPhone:      m.CustomerPhone,
		CustomerEmail:      m.CustomerEmail,
		Fare:               m.Fare,
		Status:             domain.BookingStatus(m.Status),
		CancellationReason: m.CancellationReason,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		CancelledAt:        m.CancelledAt,
	}
	if m.Stops != "" {
		if err := json.Unmarshal([]byte(m.Stops), &b.Stops); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func toBookingModel(b *domain.Booking) (bookingModel, error) {
	stops := ""
	if len(b.Stops) > 0 {
		raw, err := json.Marshal(b.Stops)
		if err != nil {
			return bookingModel{}, err
		}
		stops = string(raw)
	}

	return bookingModel{
		ID:                 b.ID,
		TenantID:           b.TenantID,
		PartnerID:          b.PartnerID,
		VehicleID:          b.VehicleID,
		BookingType:        string(b.BookingType),
		TripType:           string(b.TripType),
		Pickup:             b.Pickup,
		Stops:              stops,
		Dropoff:            b.Dropoff,
		DurationHours:      b.DurationHours,
		DistanceKM:         b.DistanceKM,
		Passengers:         b.Passengers,
		PickupAt:           b.PickupAt,
		ReturnAt:           b.ReturnAt,
		CustomerName:       b.CustomerName,
		CustomerPhone:      b.CustomerPhone,
		CustomerEmail:      b.CustomerEmail,
		Fare:               b.Fare,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
		CancelledAt:        b.CancelledAt,
	}, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m, err := toBookingModel(b)
	if err != nil {
		return err
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	b.ID = m.ID
	b.CreatedAt = m.CreatedAt
	b.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m)
}

func (r *BookingRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	bookings := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		b, err := toDomainBooking(m)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tenantID string, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Update("status", string(status)).Error
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, tenantID string, id int64, reason string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Updates(map[string]any{
			"status":              string(domain.BookingCancelled),
			"cancellation_reason": reason,
			"cancelled_at":        &now,
		}).Error
}
