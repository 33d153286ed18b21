package model

import (
	"time"

	"gorm.io/gorm"
)

// Attempt tracks one user's run through a quiz, from start to completion.
// It transitions exactly once: completed=false -> completed=true with the
// score and completion time set together. It is never reopened or rescored.
type Attempt struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	QuizID      uint           `json:"quiz_id" gorm:"not null;index"`
	Quiz        Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	Score       int            `json:"score" gorm:"not null;default:0"` // percentage 0-100
	Completed   bool           `json:"completed" gorm:"not null;default:false"`
	StartedAt   time.Time      `json:"started_at" gorm:"autoCreateTime"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
