package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	QuizID      uint           `json:"quiz_id" gorm:"not null;index"`
	Text        string         `json:"text" gorm:"type:text;not null"`
	Context     *string        `json:"context,omitempty" gorm:"type:text"` // optional passage for reading questions
	OrderInQuiz int            `json:"order_in_quiz" gorm:"not null"`
	Answers     []Answer       `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
