package dto

import "time"

// AnswerOptionDTO is an answer choice as shown to a user taking a quiz.
// The correctness flag is deliberately not exposed here.
type AnswerOptionDTO struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// QuestionResponseDTO is a question as shown to a user taking a quiz.
type QuestionResponseDTO struct {
	ID          uint              `json:"id"`
	QuizID      uint              `json:"quiz_id"`
	Text        string            `json:"text"`
	Context     *string           `json:"context,omitempty"`
	OrderInQuiz int               `json:"order_in_quiz"`
	Answers     []AnswerOptionDTO `json:"answers,omitempty"`
}

// QuizResponseDTO is the full quiz detail a user sees before starting.
type QuizResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Difficulty  string                `json:"difficulty"`
	Category    string                `json:"category"`
	TimeLimit   int                   `json:"time_limit"`
	PassMark    int                   `json:"pass_mark"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// QuizSummaryDTO is used for listing quizzes.
type QuizSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Difficulty    string    `json:"difficulty"`
	Category      string    `json:"category"`
	TimeLimit     int       `json:"time_limit"`
	PassMark      int       `json:"pass_mark"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}
