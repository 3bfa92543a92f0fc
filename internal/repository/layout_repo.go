package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"taxiforms/internal/domain"
)

type LayoutRepository struct {
	db *gorm.DB
}

func NewLayoutRepository(db *gorm.DB) *LayoutRepository {
	return &LayoutRepository{db: db}
}

type layoutModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	TenantID    string    `gorm:"column:tenant_id;index"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Fields      string    `gorm:"column:fields;type:text"`
	Style       string    `gorm:"column:style;type:text"`
	IsActive    bool      `gorm:"column:is_active"`
	IsDefault   bool      `gorm:"column:is_default"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (layoutModel) TableName() string { return "layouts" }

func toDomainLayout(m layoutModel) (*domain.Layout, error) {
	l := &domain.Layout{
		ID:          m.ID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		Description: m.Description,
		Fields:      []domain.Field{},
		IsActive:    m.IsActive,
		IsDefault:   m.IsDefault,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Fields != "" {
		if err := json.Unmarshal([]byte(m.Fields), &l.Fields); err != nil {
			return nil, err
		}
	}
	if m.Style != "" {
		if err := json.Unmarshal([]byte(m.Style), &l.Style); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func toLayoutModel(l *domain.Layout) (layoutModel, error) {
	fields, err := json.Marshal(l.Fields)
	if err != nil {
		return layoutModel{}, err
	}
	style, err := json.Marshal(l.Style)
	if err != nil {
		return layoutModel{}, err
	}

	return layoutModel{
		ID:          l.ID,
		TenantID:    l.TenantID,
		Name:        l.Name,
		Description: l.Description,
		Fields:      string(fields),
		Style:       string(style),
		IsActive:    l.IsActive,
		IsDefault:   l.IsDefault,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}, nil
}

func (r *LayoutRepository) List(ctx context.Context, tenantID string) ([]domain.Layout, error) {
	var models []layoutModel
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	layouts := make([]domain.Layout, 0, len(models))
	for _, m := range models {
		l, err := toDomainLayout(m)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, *l)
	}
	return layouts, nil
}

func (r *LayoutRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Layout, error) {
	var m layoutModel
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainLayout(m)
}

func (r *LayoutRepository) GetDefault(ctx context.Context, tenantID string) (*domain.Layout, error) {
	var m layoutModel
	tx := r.db.WithContext(ctx).
		Where("tenant_id = ? AND is_default = ?", tenantID, true).
		First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainLayout(m)
}

func (r *LayoutRepository) Create(ctx context.Context, l *domain.Layout) error {
	m, err := toLayoutModel(l)
	if err != nil {
		return err
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	l.CreatedAt = m.CreatedAt
	l.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *LayoutRepository) Update(ctx context.Context, l *domain.Layout) error {
	m, err := toLayoutModel(l)
	if err != nil {
		return err
	}
	if tx := r.db.WithContext(ctx).Save(&m); tx.Error != nil {
		return tx.Error
	}
	l.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *LayoutRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&layoutModel{}).Error
}

// SetDefault clears the previous default and promotes the given layout in
// one transaction so the partial unique index never sees two defaults.
func (r *LayoutRepository) SetDefault(ctx context.Context, tenantID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&layoutModel{}).
			Where("tenant_id = ? AND is_default = ?", tenantID, true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&layoutModel{}).
			Where("tenant_id = ? AND id = ?", tenantID, id).
			Update("is_default", true).Error
	})
}

func (r *LayoutRepository) SetActive(ctx context.Context, tenantID, id string, active bool) error {
	return r.db.WithContext(ctx).Model(&layoutModel{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Update("is_active", active).Error
}
