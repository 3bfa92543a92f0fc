package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taxiforms/internal/domain"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

type settingsModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	TenantID     string    `gorm:"column:tenant_id;uniqueIndex"`
	CompanyName  string    `gorm:"column:company_name"`
	Currency     string    `gorm:"column:currency"`
	CountryCode  string    `gorm:"column:country_code"`
	DistanceUnit string    `gorm:"column:distance_unit"`
	SupportEmail string    `gorm:"column:support_email"`
	SupportPhone string    `gorm:"column:support_phone"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (settingsModel) TableName() string { return "settings" }

func toDomainSettings(m settingsModel) *domain.Settings {
	return &domain.Settings{
		ID:           m.ID,
		TenantID:     m.TenantID,
		CompanyName:  m.CompanyName,
		Currency:     m.Currency,
		CountryCode:  m.CountryCode,
		DistanceUnit: m.DistanceUnit,
		SupportEmail: m.SupportEmail,
		SupportPhone: m.SupportPhone,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toSettingsModel(s *domain.Settings) settingsModel {
	return settingsModel{
		ID:           s.ID,
		TenantID:     s.TenantID,
		CompanyName:  s.CompanyName,
		Currency:     s.Currency,
		CountryCode:  s.CountryCode,
		DistanceUnit: s.DistanceUnit,
		SupportEmail: s.SupportEmail,
		SupportPhone: s.SupportPhone,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (r *SettingsRepository) Get(ctx context.Context, tenantID string) (*domain.Settings, error) {
	var m settingsModel
	tx := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSettings(m), nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, s *domain.Settings) error {
	m := toSettingsModel(s)
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"company_name", "currency", "country_code",
				"distance_unit", "support_email", "support_phone", "updated_at",
			}),
		}).
		Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSettings(m)
	return nil
}
