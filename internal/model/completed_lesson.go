package model

import (
	"time"

	"gorm.io/gorm"
)

// CompletedLesson records that a user finished a named lesson. Unique on
// (user, lesson name); an existing record is never overwritten when the
// same lesson is completed again.
type CompletedLesson struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	UserID        uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_completed_lesson_user_name"`
	LessonName    string         `json:"lesson_name" gorm:"not null;uniqueIndex:idx_completed_lesson_user_name"`
	Score         int            `json:"score" gorm:"not null;default:0"`
	CompletedDate time.Time      `json:"completed_date" gorm:"autoCreateTime"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
