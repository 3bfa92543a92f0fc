package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DraftRepository is a tiny key/blob store backing builder draft recovery.
type DraftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

type draftModel struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Blob      []byte    `gorm:"column:blob"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (draftModel) TableName() string { return "drafts" }

func (r *DraftRepository) Save(ctx context.Context, key string, blob []byte) error {
	m := draftModel{Key: key, Blob: blob, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"blob", "updated_at"}),
		}).
		Create(&m).Error
}

func (r *DraftRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var m draftModel
	tx := r.db.WithContext(ctx).Where("key = ?", key).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return m.Blob, nil
}

func (r *DraftRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&draftModel{}).Error
}
