package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyvoyage/booking-api/internal/adapter/api/dto"
	"github.com/skyvoyage/booking-api/internal/assistant"
	"github.com/skyvoyage/booking-api/pkg/logger"
)

// chatbotApology é a resposta fixa quando o assistente falha. O cliente
// nunca vê o erro interno.
const chatbotApology = "Desculpe, não consegui processar sua solicitação agora. Tente novamente em instantes."

// ChatbotController gerencia as conversas com o assistente virtual
type ChatbotController struct {
	assistant *assistant.Assistant
	logger    logger.Logger
}

// NewChatbotController cria uma nova instância de ChatbotController
func NewChatbotController(a *assistant.Assistant, log logger.Logger) *ChatbotController {
	return &ChatbotController{
		assistant: a,
		logger:    log,
	}
}

// Chat envia uma mensagem ao assistente virtual
// @Summary Conversa com o assistente
// @Description Encaminha a mensagem ao modelo de linguagem, executando reservas e cancelamentos quando solicitado
// @Tags chatbot
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body dto.ChatbotRequest true "Mensagem do cliente"
// @Success 200 {object} dto.ChatbotResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ChatbotResponse
// @Router /chatbot [post]
func (c *ChatbotController) Chat(ctx *gin.Context) {
	var request dto.ChatbotRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	reply, err := c.assistant.Reply(ctx, request.Message)
	if err != nil {
		c.logger.Error("erro no assistente virtual", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ChatbotResponse{Reply: chatbotApology})
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatbotResponse{Reply: reply})
}
