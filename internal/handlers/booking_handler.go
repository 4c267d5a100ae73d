package handlers

import (
	"net/http"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/getmentor/mentor-aggregator/internal/services"
	"github.com/gin-gonic/gin"
)

// BookingHandler serves availability and meeting booking
type BookingHandler struct {
	service services.BookingServiceInterface
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(service services.BookingServiceInterface) *BookingHandler {
	return &BookingHandler{service: service}
}

// GetAvailability handles GET /api/v1/mentors/:id/availability
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	availability, err := h.service.GetMentorAvailability(c.Request.Context(), c.Param("id"), c.Query("bookingUrl"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch availability")
		return
	}

	c.JSON(http.StatusOK, availability)
}

// ScheduleMeeting handles POST /api/v1/mentors/:id/schedule
func (h *BookingHandler) ScheduleMeeting(c *gin.Context) {
	var req models.ScheduleMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.service.ScheduleMeeting(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to schedule meeting")
		return
	}

	c.JSON(http.StatusOK, result)
}
