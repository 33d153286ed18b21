package repository

import (
	"errors"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/model"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	Upsert(record *model.ProgressRecord) error
	FindByUser(userID uint) ([]model.ProgressRecord, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// Upsert overwrites the stored record for (user, category) with the freshly
// recomputed values, creating it on first use.
func (r *progressRepository) Upsert(record *model.ProgressRecord) error {
	var existing model.ProgressRecord
	err := r.db.
		Where("user_id = ? AND category = ?", record.UserID, record.Category).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(record).Error
	}
	if err != nil {
		return err
	}
	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	return r.db.Save(record).Error
}

func (r *progressRepository) FindByUser(userID uint) ([]model.ProgressRecord, error) {
	var records []model.ProgressRecord
	err := r.db.Where("user_id = ?", userID).Order("category ASC").Find(&records).Error
	return records, err
}
