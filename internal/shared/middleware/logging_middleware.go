package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rochi88/go-exercise/internal/shared/logger"
)

// LoggingMiddleware provides request logging functionality
type LoggingMiddleware struct {
	logger *logger.Logger
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(log *logger.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger: log.Named("http"),
	}
}

// GinLogRequest provides Gin-compatible request logging middleware
func (m *LoggingMiddleware) GinLogRequest(c *gin.Context) {
	start := time.Now()

	m.logger.Debug(
		"Request started",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("remote_addr", c.ClientIP()),
		zap.String("request_id", c.GetString("request_id")),
	)

	c.Next()

	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("duration", time.Since(start)),
		zap.Int("response_size", c.Writer.Size()),
		zap.String("request_id", c.GetString("request_id")),
	}
	if len(c.Errors) > 0 {
		fields = append(fields, zap.String("errors", c.Errors.String()))
	}

	switch status := c.Writer.Status(); {
	case status >= 500:
		m.logger.Error("Request completed", fields...)
	case status >= 400:
		m.logger.Warn("Request completed", fields...)
	default:
		m.logger.Info("Request completed", fields...)
	}
}
