package middleware

import (
	"time"

	"contact-relay-backend/internal/delivery/http/response"
	"contact-relay-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request once it has been handled
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Log.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"request_id", response.RequestID(c),
		)
	}
}
