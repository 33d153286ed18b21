package repository

import (
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/model"
	"gorm.io/gorm"
)

type SavedWordRepository interface {
	Create(word *model.SavedWord) error
	Update(word *model.SavedWord) error
	FindByUserAndWord(userID uint, word string) (*model.SavedWord, error)
	FindAllByUser(userID uint) ([]model.SavedWord, error)
	FindByPrefix(prefix string) ([]model.SavedWord, error)
}

type savedWordRepository struct {
	db *gorm.DB
}

func NewSavedWordRepository(db *gorm.DB) SavedWordRepository {
	return &savedWordRepository{db: db}
}

func (r *savedWordRepository) Create(word *model.SavedWord) error {
	return r.db.Create(word).Error
}

func (r *savedWordRepository) Update(word *model.SavedWord) error {
	return r.db.Save(word).Error
}

func (r *savedWordRepository) FindByUserAndWord(userID uint, word string) (*model.SavedWord, error) {
	var saved model.SavedWord
	err := r.db.Where("user_id = ? AND word = ?", userID, word).First(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *savedWordRepository) FindAllByUser(userID uint) ([]model.SavedWord, error) {
	var words []model.SavedWord
	err := r.db.Where("user_id = ?", userID).Order("word ASC").Find(&words).Error
	return words, err
}

// FindByPrefix lists saved words starting with the given letters, across
// all users, for the shared letter-browsing view.
func (r *savedWordRepository) FindByPrefix(prefix string) ([]model.SavedWord, error) {
	var words []model.SavedWord
	err := r.db.Where("word ILIKE ?", prefix+"%").Order("word ASC").Find(&words).Error
	return words, err
}
