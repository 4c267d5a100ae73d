package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/getmentor/mentor-aggregator/internal/models"
	apperrors "github.com/getmentor/mentor-aggregator/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupMessageRouter(service *MockMessageService) *gin.Engine {
	handler := NewMessageHandler(service)
	router := gin.New()
	router.POST("/mentors/:id/messages", handler.SendMessage)
	return router
}

func TestMessageHandler_SendMessage(t *testing.T) {
	service := new(MockMessageService)
	router := setupMessageRouter(service)

	expected := models.SendMessageRequest{
		Message: "Hello!",
		User:    models.UserDetails{Name: "Jo", Email: "jo@example.com"},
	}
	service.On("SendMessageToMentor", mock.Anything, "mentorcruise-1042", expected).
		Return(&models.MessageResult{Success: true, MessageID: "mock-1", EstimatedResponse: "Within 12 hours", Mode: models.ModeMock}, nil).Once()

	body := `{"message":"Hello!","user":{"name":"Jo","email":"jo@example.com"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/mentors/mentorcruise-1042/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"estimatedResponse":"Within 12 hours"`)
	service.AssertExpectations(t)
}

func TestMessageHandler_SendMessage_EmptyMessage(t *testing.T) {
	service := new(MockMessageService)
	router := setupMessageRouter(service)

	body := `{"message":"","user":{"name":"Jo","email":"jo@example.com"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/mentors/m/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Message is required")
	service.AssertNotCalled(t, "SendMessageToMentor", mock.Anything, mock.Anything, mock.Anything)
}

func TestMessageHandler_SendMessage_NotFound(t *testing.T) {
	service := new(MockMessageService)
	router := setupMessageRouter(service)
	service.On("SendMessageToMentor", mock.Anything, "ghost", mock.Anything).Return(nil, apperrors.NotFoundError("mentor ghost")).Once()

	body := `{"message":"Hi","user":{"name":"Jo","email":"jo@example.com"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/mentors/ghost/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
