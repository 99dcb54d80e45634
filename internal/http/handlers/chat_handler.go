package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

// ChatHandler handles HTTP requests for the AI assistant
type ChatHandler struct {
	assistant domain.AssistantService
	logger    *logger.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(assistant domain.AssistantService, logger *logger.Logger) *ChatHandler {
	return &ChatHandler{
		assistant: assistant,
		logger:    logger,
	}
}

// ChatRequest represents the chat request body
type ChatRequest struct {
	Message string               `json:"message" binding:"required"`
	History []domain.ChatMessage `json:"history"`
}

// ChatResponse represents the chat response body
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Chat forwards a message to the AI assistant
// @Summary Chat with the assistant
// @Description Sends a message with conversation history to the storefront assistant
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChatRequest true "Message and history"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 502 {object} domain.ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeRequiredField, "Message is required", 400, err))
		return
	}

	reply, err := h.assistant.Chat(c.Request.Context(), req.Message, req.History)
	if err != nil {
		h.logger.Error("Assistant request failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, domain.NewAppError(domain.ErrCodeAssistantServiceError, "Error processing chat with assistant", http.StatusBadGateway, err))
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
