package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taxiforms/internal/domain"
)

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

type driverModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	TenantID  string    `gorm:"column:tenant_id;index"`
	Name      string    `gorm:"column:name"`
	Phone     string    `gorm:"column:phone"`
	Email     string    `gorm:"column:email"`
	LicenseNo string    `gorm:"column:license_no"`
	VehicleID *int64    `gorm:"column:vehicle_id"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (driverModel) TableName() string { return "drivers" }

func toDomainDriver(m driverModel) *domain.Driver {
	return &domain.Driver{
		ID:        m.ID,
		TenantID:  m.TenantID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		LicenseNo: m.LicenseNo,
		VehicleID: m.VehicleID,
		Status:    domain.DriverStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDriverModel(d *domain.Driver) driverModel {
	return driverModel{
		ID:        d.ID,
		TenantID:  d.TenantID,
		Name:      d.Name,
		Phone:     d.Phone,
		Email:     d.Email,
		LicenseNo: d.LicenseNo,
		VehicleID: d.VehicleID,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *DriverRepository) List(ctx context.Context, tenantID string) ([]domain.Driver, error) {
	var models []driverModel
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	drivers := make([]domain.Driver, 0, len(models))
	for _, m := range models {
		drivers = append(drivers, *toDomainDriver(m))
	}
	return drivers, nil
}

func (r *DriverRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Driver, error) {
	var m driverModel
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainDriver(m), nil
}

func (r *DriverRepository) Create(ctx context.Context, d *domain.Driver) error {
	m := toDriverModel(d)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	d.ID = m.ID
	d.CreatedAt = m.CreatedAt
	d.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *DriverRepository) Update(ctx context.Context, d *domain.Driver) error {
	m := toDriverModel(d)
	if tx := r.db.WithContext(ctx).Save(&m); tx.Error != nil {
		return tx.Error
	}
	d.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *DriverRepository) Delete(ctx context.Context, tenantID string, id int64) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&driverModel{}).Error
}
