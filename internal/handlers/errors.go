package handlers

import (
	"errors"
	"net/http"

	apperrors "github.com/getmentor/mentor-aggregator/pkg/errors"
	"github.com/gin-gonic/gin"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the gin context
// so the observability middleware can include the reason in the request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// respondErrorWithDetails sends an error response with an additional details field.
func respondErrorWithDetails(c *gin.Context, status int, message string, details any, err error) { //nolint:unparam
	attachError(c, err)
	c.JSON(status, gin.H{"error": message, "details": details})
}

// respondValidationError reports a rejected request body or query
func respondValidationError(c *gin.Context, err error) {
	respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", ParseValidationErrors(err), err)
}

// respondServiceError maps a service error to its HTTP status. Not found is
// the only error services surface on purpose.
func respondServiceError(c *gin.Context, err error, fallbackMessage string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Mentor not found", err)
		return
	}
	respondError(c, http.StatusInternalServerError, fallbackMessage, err)
}
