package model

import (
	"time"

	"gorm.io/gorm"
)

// LearningActivity is an append-only, category-tagged entry in a user's
// learning history (one per completed quiz, saved word session, etc.).
type LearningActivity struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	Category  string         `json:"category" gorm:"not null;index"`
	Score     int            `json:"score" gorm:"not null;default:0"`
	Details   string         `json:"details,omitempty" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
