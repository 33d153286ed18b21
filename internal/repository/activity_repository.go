package repository

import (
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/model"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(activity *model.LearningActivity) error
	FindAllByUser(userID uint) ([]model.LearningActivity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(activity *model.LearningActivity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepository) FindAllByUser(userID uint) ([]model.LearningActivity, error) {
	var activities []model.LearningActivity
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&activities).Error
	return activities, err
}
