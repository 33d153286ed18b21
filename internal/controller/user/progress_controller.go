package user

import (
	"net/http"
	"strconv"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/dto"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ProgressController struct {
	progressService service.ProgressService
}

func NewProgressController(progressService service.ProgressService) *ProgressController {
	return &ProgressController{progressService: progressService}
}

// GetProgress godoc
// @Summary Get a user's progress per category
// @Description Recomputes and returns the per-category attempt counts and average scores for a user. A category filter returns just that category.
// @Tags Progress
// @Produce json
// @Param user_id query int true "User ID"
// @Param category query string false "Optional category filter (grammar, vocabulary, reading, listening, general)"
// @Success 200 {array} dto.ProgressRecordDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Query("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format in query"})
		return
	}

	if category := ctx.Query("category"); category != "" {
		record, err := c.progressService.Recompute(uint(userID), category)
		if err != nil {
			log.Error().Err(err).Uint64("userID", userID).Str("category", category).Msg("GetProgress: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute progress", Details: []string{err.Error()}})
			return
		}
		ctx.JSON(http.StatusOK, []dto.ProgressRecordDTO{*record})
		return
	}

	records, err := c.progressService.Summary(uint(userID))
	if err != nil {
		log.Error().Err(err).Uint64("userID", userID).Msg("GetProgress: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute progress", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, records)
}
