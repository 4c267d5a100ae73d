package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/getmentor/mentor-aggregator/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIKeyHeader carries the static front-end key
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware checks the static front-end key. An empty validToken
// disables the check.
func APIKeyMiddleware(validToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if validToken == "" {
			c.Next()
			return
		}

		token := c.GetHeader(APIKeyHeader)
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(validToken)) != 1 {
			logger.Warn("Invalid or missing API key",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			return
		}

		c.Next()
	}
}
