package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/dto"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/repository"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService    service.QuizService
	attemptService service.AttemptService
}

func NewQuizController(quizService service.QuizService, attemptService service.AttemptService) *QuizController {
	return &QuizController{quizService: quizService, attemptService: attemptService}
}

// GetAllQuizzes godoc
// @Summary List all available quizzes
// @Description Get a list of quizzes with question counts, ordered by difficulty and title.
// @Tags Quizzes & Attempts
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *QuizController) GetAllQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.GetAllQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("GetAllQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizDetails godoc
// @Summary Get details of a specific quiz
// @Description Get full details of a quiz, including its questions and answer choices (without answer keys).
// @Tags Quizzes & Attempts
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [get]
func (c *QuizController) GetQuizDetails(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return
	}

	quiz, err := c.quizService.GetQuizDetails(uint(quizID))
	if err != nil {
		log.Warn().Err(err).Uint64("quizID", quizID).Msg("GetQuizDetails: quiz not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// StartAttempt godoc
// @Summary Start (or resume) a quiz attempt
// @Description Starts a quiz for a user. An incomplete attempt for the same user and quiz is reused.
// @Tags Quizzes & Attempts
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param start_data body dto.AttemptStartDTO true "User starting the quiz"
// @Success 200 {object} dto.AttemptDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id}/attempts [post]
func (c *QuizController) StartAttempt(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return
	}

	var req dto.AttemptStartDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("StartAttempt: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	attempt, err := c.attemptService.StartAttempt(uint(quizID), req.UserID)
	if err != nil {
		log.Warn().Err(err).Uint64("quizID", quizID).Uint("userID", req.UserID).Msg("StartAttempt: service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Failed to start attempt", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// SubmitAttempt godoc
// @Summary Submit answers for a quiz attempt
// @Description Grades the submitted answers, finalizes the attempt, and records the completion.
// @Tags Quizzes & Attempts
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param attempt_id path int true "Attempt ID"
// @Param submission_data body dto.AttemptSubmitDTO true "User ID and picked answers"
// @Success 200 {object} dto.AttemptResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Attempt already completed"
// @Failure 500 {object} dto.ErrorResponse "Error processing submission"
// @Router /quizzes/{quiz_id}/attempts/{attempt_id}/submit [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return
	}
	attemptID, err := strconv.ParseUint(ctx.Param("attempt_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Attempt ID format"})
		return
	}

	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAttempt: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	log.Info().Uint64("quizID", quizID).Uint64("attemptID", attemptID).Uint("userID", req.UserID).
		Int("answerCount", len(req.Answers)).Msg("Received quiz attempt submission")

	result, err := c.attemptService.SubmitAttempt(uint(quizID), uint(attemptID), req.UserID, req.Answers)
	if err != nil {
		if errors.Is(err, repository.ErrAttemptAlreadyCompleted) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Attempt has already been completed"})
			return
		}
		log.Error().Err(err).Uint64("attemptID", attemptID).Msg("SubmitAttempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit attempt", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetUserAttempts godoc
// @Summary Get a user's attempts for a quiz
// @Description Retrieve all attempts a user made on a quiz, latest first.
// @Tags Quizzes & Attempts
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param user_id query int true "User ID"
// @Success 200 {array} dto.AttemptDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{quiz_id}/my-attempts [get]
func (c *QuizController) GetUserAttempts(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return
	}

	userID, err := strconv.ParseUint(ctx.Query("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format in query"})
		return
	}

	attempts, err := c.attemptService.GetUserAttempts(uint(quizID), uint(userID))
	if err != nil {
		log.Error().Err(err).Uint64("quizID", quizID).Uint64("userID", userID).Msg("GetUserAttempts: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve attempts", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
