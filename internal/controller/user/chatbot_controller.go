package user

import (
	"net/http"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/dto"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ChatbotController struct {
	chatbotService service.ChatbotService
}

func NewChatbotController(chatbotService service.ChatbotService) *ChatbotController {
	return &ChatbotController{chatbotService: chatbotService}
}

// ProcessMessage godoc
// @Summary Send a message to the learning chatbot
// @Description Returns a grammar correction for the message, or vocabulary suggestions for "suggest <word>".
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param message_data body dto.ChatMessageDTO true "Learner message"
// @Success 200 {object} dto.ChatReplyDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /chatbot/messages [post]
func (c *ChatbotController) ProcessMessage(ctx *gin.Context) {
	var req dto.ChatMessageDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("ProcessMessage: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	reply := c.chatbotService.Reply(ctx.Request.Context(), req.Message)
	ctx.JSON(http.StatusOK, reply)
}
