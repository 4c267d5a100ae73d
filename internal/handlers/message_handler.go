package handlers

import (
	"net/http"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/getmentor/mentor-aggregator/internal/services"
	"github.com/gin-gonic/gin"
)

// MessageHandler relays messages to mentors
type MessageHandler struct {
	service services.MessageServiceInterface
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(service services.MessageServiceInterface) *MessageHandler {
	return &MessageHandler{service: service}
}

// SendMessage handles POST /api/v1/mentors/:id/messages
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.service.SendMessageToMentor(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to send message")
		return
	}

	c.JSON(http.StatusOK, result)
}
