package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"mutual-availability/pkg/response"
)

const apiKeyHeader = "X-API-Key"

// Auth checks the API key header on every request. Comparison is
// constant-time so the key cannot be probed byte by byte.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		got := c.GetHeader(apiKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.apiKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
