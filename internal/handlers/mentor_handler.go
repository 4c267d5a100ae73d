package handlers

import (
	"net/http"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/getmentor/mentor-aggregator/internal/services"
	"github.com/gin-gonic/gin"
)

// MentorHandler serves the aggregated mentor listing
type MentorHandler struct {
	service services.MentorServiceInterface
}

// NewMentorHandler creates a new mentor handler
func NewMentorHandler(service services.MentorServiceInterface) *MentorHandler {
	return &MentorHandler{service: service}
}

// GetMentors handles GET /api/v1/mentors
func (h *MentorHandler) GetMentors(c *gin.Context) {
	var filters models.MentorFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondValidationError(c, err)
		return
	}

	mentors := h.service.GetAllMentors(c.Request.Context(), filters)

	c.JSON(http.StatusOK, gin.H{
		"mentors": mentors,
		"total":   len(mentors),
	})
}

// GetMentor handles GET /api/v1/mentors/:id
func (h *MentorHandler) GetMentor(c *gin.Context) {
	mentor, err := h.service.GetMentorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch mentor")
		return
	}

	c.JSON(http.StatusOK, mentor)
}
