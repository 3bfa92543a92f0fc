package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taxiforms/internal/domain"
)

type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

type partnerModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	TenantID     string    `gorm:"column:tenant_id;index"`
	Name         string    `gorm:"column:name"`
	ContactEmail string    `gorm:"column:contact_email"`
	SiteDomain   string    `gorm:"column:site_domain"`
	WidgetKey    string    `gorm:"column:widget_key;uniqueIndex"`
	LayoutID     *string   `gorm:"column:layout_id"`
	Status       string    `gorm:"column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (partnerModel) TableName() string { return "partners" }

func toDomainPartner(m partnerModel) *domain.Partner {
	return &domain.Partner{
		ID:           m.ID,
		TenantID:     m.TenantID,
		Name:         m.Name,
		ContactEmail: m.ContactEmail,
		SiteDomain:   m.SiteDomain,
		WidgetKey:    m.WidgetKey,
		LayoutID:     m.LayoutID,
		Status:       domain.PartnerStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toPartnerModel(p *domain.Partner) partnerModel {
	return partnerModel{
		ID:           p.ID,
		TenantID:     p.TenantID,
		Name:         p.Name,
		ContactEmail: p.ContactEmail,
		SiteDomain:   p.SiteDomain,
		WidgetKey:    p.WidgetKey,
		LayoutID:     p.LayoutID,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *PartnerRepository) List(ctx context.Context, tenantID string) ([]domain.Partner, error) {
	var models []partnerModel
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	partners := make([]domain.Partner, 0, len(models))
	for _, m := range models {
		partners = append(partners, *toDomainPartner(m))
	}
	return partners, nil
}

func (r *PartnerRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Partner, error) {
	var m partnerModel
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPartner(m), nil
}

func (r *PartnerRepository) GetByWidgetKey(ctx context.Context, key string) (*domain.Partner, error) {
	var m partnerModel
	tx := r.db.WithContext(ctx).
		Where("widget_key = ?", key).
		First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPartner(m), nil
}

func (r *PartnerRepository) Create(ctx context.Context, p *domain.Partner) error {
	m := toPartnerModel(p)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	p.ID = m.ID
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *PartnerRepository) Update(ctx context.Context, p *domain.Partner) error {
	m := toPartnerModel(p)
	if tx := r.db.WithContext(ctx).Save(&m); tx.Error != nil {
		return tx.Error
	}
	p.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *PartnerRepository) Delete(ctx context.Context, tenantID string, id int64) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&partnerModel{}).Error
}
