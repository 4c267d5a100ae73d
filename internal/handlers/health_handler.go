package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	production bool
}

// NewHealthHandler creates the liveness handler. production reports whether
// live platform calls are enabled.
func NewHealthHandler(production bool) *HealthHandler {
	return &HealthHandler{production: production}
}

func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	mode := "fallback"
	if h.production {
		mode = "live"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"mode":   mode,
	})
}
