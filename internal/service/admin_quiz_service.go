package service

import (
	"fmt"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/dto"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/model"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type AdminQuizService interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
}

type adminQuizService struct {
	quizRepo repository.QuizRepository
}

func NewAdminQuizService(quizRepo repository.QuizRepository) AdminQuizService {
	return &adminQuizService{quizRepo: quizRepo}
}

// CreateQuiz validates and stores a quiz with its questions and answers.
// Each question must carry exactly one correct answer; that integrity rule
// is enforced here, at write time, so the grading engine never has to deal
// with zero or multiple correct answers.
func (s *adminQuizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	orderSeen := make(map[int]bool)
	questions := make([]model.Question, 0, len(req.Questions))

	for _, qDto := range req.Questions {
		if orderSeen[qDto.OrderInQuiz] {
			return nil, fmt.Errorf("duplicate order_in_quiz %d found in questions", qDto.OrderInQuiz)
		}
		orderSeen[qDto.OrderInQuiz] = true

		correctCount := 0
		answers := make([]model.Answer, 0, len(qDto.Answers))
		for _, aDto := range qDto.Answers {
			if aDto.IsCorrect {
				correctCount++
			}
			answers = append(answers, model.Answer{
				Text:      aDto.Text,
				IsCorrect: aDto.IsCorrect,
			})
		}
		if correctCount != 1 {
			return nil, fmt.Errorf("question %q must have exactly one correct answer, got %d", qDto.Text, correctCount)
		}

		questions = append(questions, model.Question{
			Text:        qDto.Text,
			Context:     qDto.Context,
			OrderInQuiz: qDto.OrderInQuiz,
			Answers:     answers,
		})
	}

	quiz := model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Category:    req.Category,
		TimeLimit:   req.TimeLimit,
		PassMark:    req.PassMark,
		Questions:   questions,
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create quiz in database")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	createdQuiz, err := s.quizRepo.FindByIDWithQuestions(quiz.ID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("Failed to reload created quiz for response")
		var fallbackResp dto.QuizResponseDTO
		copier.Copy(&fallbackResp, &quiz)
		return &fallbackResp, nil
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, createdQuiz); err != nil {
		log.Error().Err(err).Msg("Failed to copy created Quiz model to QuizResponseDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}
