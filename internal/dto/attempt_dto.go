package dto

import "time"

// AttemptStartDTO is the request body for starting a quiz attempt.
type AttemptStartDTO struct {
	UserID uint `json:"user_id" binding:"required"`
}

// SubmittedAnswerDTO maps one question to the answer the user picked.
type SubmittedAnswerDTO struct {
	QuestionID uint `json:"question_id" binding:"required"`
	AnswerID   uint `json:"answer_id" binding:"required"`
}

// AttemptSubmitDTO is the request body for submitting a quiz attempt.
type AttemptSubmitDTO struct {
	UserID  uint                 `json:"user_id" binding:"required"`
	Answers []SubmittedAnswerDTO `json:"answers"`
}

// AttemptDTO describes an attempt's current state.
type AttemptDTO struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	QuizID      uint       `json:"quiz_id"`
	Score       int        `json:"score"`
	Completed   bool       `json:"completed"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// AttemptResultDTO is returned after grading a submission.
type AttemptResultDTO struct {
	AttemptID      uint       `json:"attempt_id"`
	QuizID         uint       `json:"quiz_id"`
	QuizTitle      string     `json:"quiz_title"`
	Score          int        `json:"score"`
	TotalQuestions int        `json:"total_questions"`
	CorrectCount   int        `json:"correct_count"`
	Passed         bool       `json:"passed"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}
