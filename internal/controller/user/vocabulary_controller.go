package user

import (
	"net/http"
	"strconv"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/dto"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type VocabularyController struct {
	vocabularyService service.VocabularyService
}

func NewVocabularyController(vocabularyService service.VocabularyService) *VocabularyController {
	return &VocabularyController{vocabularyService: vocabularyService}
}

// GetTopics godoc
// @Summary List vocabulary topics
// @Description Get the A-Z first-letter topics with their sample word counts.
// @Tags Vocabulary
// @Produce json
// @Success 200 {array} dto.TopicDTO
// @Router /vocabulary/topics [get]
func (c *VocabularyController) GetTopics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.vocabularyService.Topics())
}

// GetWordsForTopic godoc
// @Summary List words for a letter
// @Description Get saved and sample vocabulary words starting with a letter, with definitions.
// @Tags Vocabulary
// @Produce json
// @Param letter path string true "Topic letter (A-Z)"
// @Param user_id query int false "Optional User ID to mark saved words"
// @Success 200 {array} dto.WordDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid letter or User ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /vocabulary/topics/{letter} [get]
func (c *VocabularyController) GetWordsForTopic(ctx *gin.Context) {
	userID, ok := optionalUserID(ctx)
	if !ok {
		return
	}

	words, err := c.vocabularyService.WordsForLetter(ctx.Request.Context(), ctx.Param("letter"), userID)
	if err != nil {
		log.Warn().Err(err).Str("letter", ctx.Param("letter")).Msg("GetWordsForTopic: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to retrieve words", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, words)
}

// LookupWord godoc
// @Summary Look up a single word
// @Description Resolve a word through the cache, curated table, or external dictionary service.
// @Tags Vocabulary
// @Produce json
// @Param word path string true "Word to look up"
// @Param user_id query int false "Optional User ID to mark the word as saved"
// @Success 200 {object} dto.WordDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /vocabulary/words/{word} [get]
func (c *VocabularyController) LookupWord(ctx *gin.Context) {
	userID, ok := optionalUserID(ctx)
	if !ok {
		return
	}

	word, err := c.vocabularyService.LookupWord(ctx.Request.Context(), ctx.Param("word"), userID)
	if err != nil {
		log.Error().Err(err).Str("word", ctx.Param("word")).Msg("LookupWord: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to look up word", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, word)
}

// SaveFavorite godoc
// @Summary Save a favorite word
// @Description Save a word to the user's favorites. Saving an existing word updates its definition and example.
// @Tags Vocabulary
// @Accept json
// @Produce json
// @Param word_data body dto.SaveWordDTO true "Word to save"
// @Success 200 {object} dto.SavedWordDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /vocabulary/favorites [post]
func (c *VocabularyController) SaveFavorite(ctx *gin.Context) {
	var req dto.SaveWordDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SaveFavorite: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	saved, err := c.vocabularyService.SaveFavorite(req)
	if err != nil {
		log.Error().Err(err).Str("word", req.Word).Msg("SaveFavorite: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save favorite", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, saved)
}

// GetFavorites godoc
// @Summary List a user's favorite words
// @Tags Vocabulary
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {array} dto.SavedWordDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /vocabulary/favorites [get]
func (c *VocabularyController) GetFavorites(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Query("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format in query"})
		return
	}

	favorites, err := c.vocabularyService.Favorites(uint(userID))
	if err != nil {
		log.Error().Err(err).Uint64("userID", userID).Msg("GetFavorites: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve favorites", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, favorites)
}

// ToggleMastered godoc
// @Summary Toggle the mastered flag on a favorite word
// @Tags Vocabulary
// @Produce json
// @Param word path string true "Favorite word"
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.SavedWordDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID"
// @Failure 404 {object} dto.ErrorResponse "Favorite not found"
// @Router /vocabulary/favorites/{word}/mastered [put]
func (c *VocabularyController) ToggleMastered(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Query("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format in query"})
		return
	}

	saved, err := c.vocabularyService.ToggleMastered(uint(userID), ctx.Param("word"))
	if err != nil {
		log.Warn().Err(err).Str("word", ctx.Param("word")).Msg("ToggleMastered: service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Favorite not found", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, saved)
}

// optionalUserID parses the user_id query param when present. It writes a
// 400 response and returns ok=false on a malformed value.
func optionalUserID(ctx *gin.Context) (uint, bool) {
	raw := ctx.Query("user_id")
	if raw == "" {
		return 0, true
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format in query"})
		return 0, false
	}
	return uint(val), true
}
