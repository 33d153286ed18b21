package model

import (
	"time"

	"gorm.io/gorm"
)

// Difficulty levels a quiz can be labelled with.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Categories used to bucket quizzes and progress statistics.
const (
	CategoryGrammar    = "grammar"
	CategoryVocabulary = "vocabulary"
	CategoryReading    = "reading"
	CategoryListening  = "listening"
	CategoryGeneral    = "general"
)

// AllCategories lists every quiz category, in display order.
func AllCategories() []string {
	return []string{CategoryGrammar, CategoryVocabulary, CategoryReading, CategoryListening, CategoryGeneral}
}

type Quiz struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null;uniqueIndex"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	Difficulty  string         `json:"difficulty" gorm:"not null"` // "beginner", "intermediate", "advanced"
	Category    string         `json:"category" gorm:"not null;index"`
	TimeLimit   int            `json:"time_limit" gorm:"not null"` // seconds
	PassMark    int            `json:"pass_mark" gorm:"not null"`  // percentage 0-100
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
