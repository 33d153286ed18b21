package dto

// AnswerCreateDTO is one answer choice within a new question.
type AnswerCreateDTO struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionCreateDTO is used within QuizCreateDTO for admin quiz creation.
type QuestionCreateDTO struct {
	Text        string            `json:"text" binding:"required"`
	Context     *string           `json:"context"`
	OrderInQuiz int               `json:"order_in_quiz" binding:"required,min=1"`
	Answers     []AnswerCreateDTO `json:"answers" binding:"required,min=2,dive"`
}

// QuizCreateDTO is for admin to create a new quiz with all its questions.
type QuizCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description,omitempty"`
	Difficulty  string              `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	Category    string              `json:"category" binding:"required,oneof=grammar vocabulary reading listening general"`
	TimeLimit   int                 `json:"time_limit" binding:"required,min=1"`
	PassMark    int                 `json:"pass_mark" binding:"min=0,max=100"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}
