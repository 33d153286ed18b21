package model

import (
	"time"

	"gorm.io/gorm"
)

// ProgressRecord is the per-user, per-category rollup of quiz attempts.
// It is recomputed wholesale from the attempt history on every refresh
// rather than patched incrementally, so counts and averages cannot drift.
type ProgressRecord struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_category"`
	Category       string         `json:"category" gorm:"not null;uniqueIndex:idx_progress_user_category"`
	TotalAttempted int            `json:"total_attempted" gorm:"not null;default:0"`
	TotalCompleted int            `json:"total_completed" gorm:"not null;default:0"`
	AverageScore   float64        `json:"average_score" gorm:"not null;default:0"` // 0 when TotalCompleted is 0
	LastUpdated    time.Time      `json:"last_updated"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
