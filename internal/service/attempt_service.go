package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/dto"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/model"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptService owns the attempt lifecycle: starting (or resuming) an
// attempt, grading a submission, and the completion side effects.
type AttemptService interface {
	StartAttempt(quizID, userID uint) (*dto.AttemptDTO, error)
	SubmitAttempt(quizID, attemptID, userID uint, answers []dto.SubmittedAnswerDTO) (*dto.AttemptResultDTO, error)
	GetUserAttempts(quizID, userID uint) ([]dto.AttemptDTO, error)
}

type attemptService struct {
	quizRepo     repository.QuizRepository
	attemptRepo  repository.AttemptRepository
	lessonRepo   repository.CompletedLessonRepository
	activityRepo repository.ActivityRepository
	grader       QuizGrader
}

func NewAttemptService(
	quizRepo repository.QuizRepository,
	attemptRepo repository.AttemptRepository,
	lessonRepo repository.CompletedLessonRepository,
	activityRepo repository.ActivityRepository,
	grader QuizGrader,
) AttemptService {
	return &attemptService{
		quizRepo:     quizRepo,
		attemptRepo:  attemptRepo,
		lessonRepo:   lessonRepo,
		activityRepo: activityRepo,
		grader:       grader,
	}
}

// StartAttempt begins a quiz for a user. An existing incomplete attempt for
// the same user and quiz is reused instead of creating a duplicate.
func (s *attemptService) StartAttempt(quizID, userID uint) (*dto.AttemptDTO, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("StartAttempt: quiz not found")
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}

	attempt, err := s.attemptRepo.FindIncomplete(userID, quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		attempt = &model.Attempt{
			UserID:    userID,
			QuizID:    quizID,
			StartedAt: time.Now(),
		}
		if err := s.attemptRepo.Create(attempt); err != nil {
			log.Error().Err(err).Uint("quizID", quizID).Uint("userID", userID).Msg("StartAttempt: failed to create attempt")
			return nil, fmt.Errorf("failed to create attempt: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up existing attempt: %w", err)
	}

	var resp dto.AttemptDTO
	if err := copier.Copy(&resp, attempt); err != nil {
		return nil, fmt.Errorf("error preparing attempt response: %w", err)
	}
	return &resp, nil
}

// SubmitAttempt grades the submitted answers and finalizes the attempt.
// Completion appends a category-tagged activity record and, once per
// (user, quiz title), a completed-lesson record. A concurrent submission
// that finalized the attempt first surfaces as ErrAttemptAlreadyCompleted.
func (s *attemptService) SubmitAttempt(quizID, attemptID, userID uint, answers []dto.SubmittedAnswerDTO) (*dto.AttemptResultDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("SubmitAttempt: quiz not found")
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}

	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		return nil, fmt.Errorf("attempt not found with ID %d: %w", attemptID, err)
	}
	if attempt.QuizID != quizID || attempt.UserID != userID {
		return nil, fmt.Errorf("attempt %d does not belong to quiz %d and user %d", attemptID, quizID, userID)
	}
	if attempt.Completed {
		return nil, repository.ErrAttemptAlreadyCompleted
	}

	submitted := make(map[uint]uint, len(answers))
	for _, a := range answers {
		submitted[a.QuestionID] = a.AnswerID
	}

	result := s.grader.Grade(quiz, submitted)

	completedAt := time.Now()
	if err := s.attemptRepo.Finalize(attempt.ID, result.Score, completedAt); err != nil {
		if !errors.Is(err, repository.ErrAttemptAlreadyCompleted) {
			log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("SubmitAttempt: failed to finalize attempt")
		}
		return nil, err
	}

	activity := &model.LearningActivity{
		UserID:   userID,
		Category: quiz.Category,
		Score:    result.Score,
		Details:  fmt.Sprintf("Completed quiz %q with score %d%%", quiz.Title, result.Score),
	}
	if err := s.activityRepo.Create(activity); err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("SubmitAttempt: failed to record learning activity")
		return nil, fmt.Errorf("failed to record learning activity: %w", err)
	}

	lesson := &model.CompletedLesson{
		UserID:     userID,
		LessonName: quiz.Title,
		Score:      result.Score,
	}
	if err := s.lessonRepo.CreateIfAbsent(lesson); err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("SubmitAttempt: failed to record completed lesson")
		return nil, fmt.Errorf("failed to record completed lesson: %w", err)
	}

	return &dto.AttemptResultDTO{
		AttemptID:      attempt.ID,
		QuizID:         quiz.ID,
		QuizTitle:      quiz.Title,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		CorrectCount:   result.CorrectCount,
		Passed:         result.Score >= quiz.PassMark,
		CompletedAt:    &completedAt,
	}, nil
}

func (s *attemptService) GetUserAttempts(quizID, userID uint) ([]dto.AttemptDTO, error) {
	attempts, err := s.attemptRepo.FindAllByQuizAndUser(quizID, userID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Uint("userID", userID).Msg("GetUserAttempts: repository error")
		return nil, fmt.Errorf("error fetching attempts for quiz %d: %w", quizID, err)
	}

	dtos := make([]dto.AttemptDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var summary dto.AttemptDTO
		if err := copier.Copy(&summary, &attempt); err != nil {
			log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("GetUserAttempts: error copying attempt to DTO")
			continue
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}
