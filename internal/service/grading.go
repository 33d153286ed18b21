package service

import (
	"math"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/model"
)

// MaxGradedQuestions caps how many questions of a quiz count towards the
// score, regardless of how many the quiz holds.
const MaxGradedQuestions = 5

// GradeResult is the outcome of grading one submission.
type GradeResult struct {
	Score          int // integer percentage 0-100
	TotalQuestions int // questions actually graded
	CorrectCount   int
}

// QuizGrader computes a percentage score for a set of submitted answers.
type QuizGrader interface {
	Grade(quiz *model.Quiz, submitted map[uint]uint) GradeResult
}

type quizGrader struct{}

func NewQuizGrader() QuizGrader {
	return &quizGrader{}
}

// Grade checks each of the quiz's first MaxGradedQuestions questions against
// the submitted question->answer mapping. A question with no submission, or
// with an answer id that does not belong to it, counts as incorrect; grading
// is total and never errors. A quiz with zero gradable questions scores 0.
func (g *quizGrader) Grade(quiz *model.Quiz, submitted map[uint]uint) GradeResult {
	questions := quiz.Questions
	if len(questions) > MaxGradedQuestions {
		questions = questions[:MaxGradedQuestions]
	}

	correct := 0
	for _, question := range questions {
		answerID, ok := submitted[question.ID]
		if !ok {
			continue
		}
		for _, answer := range question.Answers {
			if answer.ID == answerID {
				if answer.IsCorrect {
					correct++
				}
				break
			}
		}
	}

	total := len(questions)
	score := 0
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}
	return GradeResult{Score: score, TotalQuestions: total, CorrectCount: correct}
}
