package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taxiforms/internal/domain"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type vehicleModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	TenantID    string    `gorm:"column:tenant_id;index"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Icon        string    `gorm:"column:icon"`
	Capacity    int       `gorm:"column:capacity"`
	Luggage     int       `gorm:"column:luggage"`
	BaseFare    float64   `gorm:"column:base_fare"`
	PerKM       float64   `gorm:"column:per_km"`
	PerHour     float64   `gorm:"column:per_hour"`
	MinimumFare float64   `gorm:"column:minimum_fare"`
	SortOrder   int       `gorm:"column:sort_order"`
	IsActive    bool      `gorm:"column:is_active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (vehicleModel) TableName() string { return "vehicles" }

func toDomainVehicle(m vehicleModel) *domain.Vehicle {
	return &domain.Vehicle{
		ID:          m.ID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		Description: m.Description,
		Icon:        m.Icon,
		Capacity:    m.Capacity,
		Luggage:     m.Luggage,
		BaseFare:    m.BaseFare,
		PerKM:       m.PerKM,
		PerHour:     m.PerHour,
		MinimumFare: m.MinimumFare,
		SortOrder:   m.SortOrder,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toVehicleModel(v *domain.Vehicle) vehicleModel {
	return vehicleModel{
		ID:          v.ID,
		TenantID:    v.TenantID,
		Name:        v.Name,
		Description: v.Description,
		Icon:        v.Icon,
		Capacity:    v.Capacity,
		Luggage:     v.Luggage,
		BaseFare:    v.BaseFare,
		PerKM:       v.PerKM,
		PerHour:     v.PerHour,
		MinimumFare: v.MinimumFare,
		SortOrder:   v.SortOrder,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func (r *VehicleRepository) List(ctx context.Context, tenantID string) ([]domain.Vehicle, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("tenant_id = ?", tenantID))
}

func (r *VehicleRepository) ListActive(ctx context.Context, tenantID string) ([]domain.Vehicle, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("tenant_id = ? AND is_active = ?", tenantID, true))
}

func (r *VehicleRepository) list(ctx context.Context, q *gorm.DB) ([]domain.Vehicle, error) {
	var models []vehicleModel
	if tx := q.Order("sort_order ASC, id ASC").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	vehicles := make([]domain.Vehicle, 0, len(models))
	for _, m := range models {
		vehicles = append(vehicles, *toDomainVehicle(m))
	}
	return vehicles, nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Vehicle, error) {
	var m vehicleModel
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVehicle(m), nil
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	v.ID = m.ID
	v.CreatedAt = m.CreatedAt
	v.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	if tx := r.db.WithContext(ctx).Save(&m); tx.Error != nil {
		return tx.Error
	}
	v.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, tenantID string, id int64) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&vehicleModel{}).Error
}
