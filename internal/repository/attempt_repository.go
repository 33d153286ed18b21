package repository

import (
	"errors"
	"time"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/model"
	"gorm.io/gorm"
)

// ErrAttemptAlreadyCompleted is returned when finalizing an attempt that a
// concurrent submission has already completed.
var ErrAttemptAlreadyCompleted = errors.New("attempt already completed")

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	FindByID(id uint) (*model.Attempt, error)
	FindIncomplete(userID, quizID uint) (*model.Attempt, error)
	FindAllByQuizAndUser(quizID, userID uint) ([]model.Attempt, error)
	FindAllByUserAndCategory(userID uint, category string) ([]model.Attempt, error)
	Finalize(id uint, score int, completedAt time.Time) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.First(&attempt, id).Error
	return &attempt, err
}

func (r *attemptRepository) FindIncomplete(userID, quizID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Where("user_id = ? AND quiz_id = ? AND completed = ?", userID, quizID, false).
		Order("started_at ASC").
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByQuizAndUser(quizID, userID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindAllByUserAndCategory(userID uint, category string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.
		Joins("JOIN quizzes ON quizzes.id = attempts.quiz_id AND quizzes.deleted_at IS NULL").
		Where("attempts.user_id = ? AND quizzes.category = ?", userID, category).
		Order("attempts.started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

// Finalize sets score, completed and the completion time in a single
// conditional update. The completed=false guard serializes concurrent
// submissions of the same attempt: the second writer matches zero rows and
// gets ErrAttemptAlreadyCompleted instead of overwriting the first result.
func (r *attemptRepository) Finalize(id uint, score int, completedAt time.Time) error {
	result := r.db.Model(&model.Attempt{}).
		Where("id = ? AND completed = ?", id, false).
		Updates(map[string]interface{}{
			"score":        score,
			"completed":    true,
			"completed_at": completedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAttemptAlreadyCompleted
	}
	return nil
}
