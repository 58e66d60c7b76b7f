package controllers

import (
	"context"
	"dietai/internal/models"
	"dietai/internal/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const msgChatFailed = "Có lỗi xảy ra khi gửi tin nhắn"

type ChatAssistant interface {
	Send(ctx context.Context, userID uint, message string) (*models.ChatReply, error)
	History(ctx context.Context, userID uint, limit int) ([]models.ChatMessage, error)
}

type ChatController struct {
	service ChatAssistant
}

func NewChatController(service ChatAssistant) *ChatController {
	return &ChatController{service: service}
}

// SendMessage godoc
// @Summary Ask the nutrition assistant
// @Description Single-turn question to the assistant; the exchange is stored in the chat history
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body models.ChatRequest true "Question"
// @Success 200 {object} map[string]interface{} "Message sent"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 502 {object} map[string]interface{} "Assistant error"
// @Failure 503 {object} map[string]interface{} "Assistant not configured"
// @Router /chat [post]
func (cc *ChatController) SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	reply, err := cc.service.Send(c.Request.Context(), userID, req.Message)
	switch {
	case err == nil:
		respondSuccess(c, http.StatusOK, "Message sent", reply)
	case errors.Is(err, services.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
	case errors.Is(err, services.ErrChatUnavailable):
		respondError(c, http.StatusServiceUnavailable, msgChatFailed, err)
	default:
		respondError(c, http.StatusBadGateway, msgChatFailed, nil)
	}
}

// GetHistory godoc
// @Summary Chat history
// @Description Most recent messages, oldest first
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of messages (default 50, max 200)"
// @Success 200 {object} map[string]interface{} "History retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid limit"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to load history"
// @Router /chat/history [get]
func (cc *ChatController) GetHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, "Invalid limit", errors.New("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	messages, err := cc.service.History(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load history", nil)
		return
	}
	respondSuccess(c, http.StatusOK, "History retrieved successfully", messages)
}
