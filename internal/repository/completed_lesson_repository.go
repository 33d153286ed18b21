package repository

import (
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/model"
	"gorm.io/gorm"
)

type CompletedLessonRepository interface {
	CreateIfAbsent(lesson *model.CompletedLesson) error
	FindAllByUser(userID uint) ([]model.CompletedLesson, error)
}

type completedLessonRepository struct {
	db *gorm.DB
}

func NewCompletedLessonRepository(db *gorm.DB) CompletedLessonRepository {
	return &completedLessonRepository{db: db}
}

// CreateIfAbsent records a completed lesson keyed on (user, lesson name).
// An existing record is left untouched rather than overwritten, so the
// first completion's score and date stick.
func (r *completedLessonRepository) CreateIfAbsent(lesson *model.CompletedLesson) error {
	return r.db.
		Where("user_id = ? AND lesson_name = ?", lesson.UserID, lesson.LessonName).
		FirstOrCreate(lesson).Error
}

func (r *completedLessonRepository) FindAllByUser(userID uint) ([]model.CompletedLesson, error) {
	var lessons []model.CompletedLesson
	err := r.db.Where("user_id = ?", userID).Order("completed_date DESC").Find(&lessons).Error
	return lessons, err
}
