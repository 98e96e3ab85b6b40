package handlers

import (
	"net/http"

	"visado/services/chatbot"
	"visado/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational booking assistant.
type ChatHandler struct {
	Chat chatbot.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chat chatbot.ChatService) *ChatHandler {
	return &ChatHandler{Chat: chat}
}

// ChatTurnHandler consumes one user message and returns the assistant's
// reply. Callers carry the opaque sessionId across turns; the server mints
// one on the first turn.
func (ch *ChatHandler) ChatTurnHandler(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	if input.SessionID == "" {
		input.SessionID = uuid.New().String()
	}

	reply, err := ch.Chat.HandleTurn(c.Request.Context(), input.SessionID, input.Message)
	if err != nil {
		zap.L().Error("chat turn failed", zap.String("sessionID", input.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Chat unavailable", "could not process the message")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": input.SessionID,
		"response":  reply,
	})
}
