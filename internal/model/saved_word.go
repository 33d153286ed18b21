package model

import (
	"time"

	"gorm.io/gorm"
)

// SavedWord is a vocabulary word a user keeps for later study.
type SavedWord struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	UserID     uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_saved_word_user_word"`
	Word       string         `json:"word" gorm:"not null;uniqueIndex:idx_saved_word_user_word"`
	Definition string         `json:"definition" gorm:"type:text;not null"`
	Example    string         `json:"example,omitempty" gorm:"type:text"`
	Mastered   bool           `json:"mastered" gorm:"not null;default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
