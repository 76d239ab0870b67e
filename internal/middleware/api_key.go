package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "ratecurves/internal/errors"
)

// APIKeyHeader carries the write key.
const APIKeyHeader = "X-API-Key"

// RequireAPIKey guards mutating routes with the configured key. An empty
// key leaves the routes open.
func RequireAPIKey(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			err := apperrors.ErrUnauthorized
			c.AbortWithStatusJSON(err.StatusCode,
				gin.H{"error": gin.H{"code": err.Code, "message": err.Message}})
			return
		}
		c.Next()
	}
}
