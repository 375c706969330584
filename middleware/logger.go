package middleware

import (
	"time"

	"MindEaseGo/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		config.Logger.Infow("request",
			"requestID", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"uid", c.GetString(ContextUserID),
			"clientIP", c.ClientIP(),
			"latency", time.Since(start).String(),
		)
	}
}
