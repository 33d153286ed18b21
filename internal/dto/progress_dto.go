package dto

import "time"

// ProgressRecordDTO is the per-category rollup returned to users.
type ProgressRecordDTO struct {
	Category       string    `json:"category"`
	TotalAttempted int       `json:"total_attempted"`
	TotalCompleted int       `json:"total_completed"`
	AverageScore   float64   `json:"average_score"`
	LastUpdated    time.Time `json:"last_updated"`
}
