package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rochi88/go-exercise/internal/utils"
)

// RequestIDMiddleware provides request ID generation and tracking
type RequestIDMiddleware struct{}

// NewRequestIDMiddleware creates a new request ID middleware
func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// Middleware returns the Gin middleware function for request ID handling
func (m *RequestIDMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Keep a caller supplied id
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = utils.GenerateIDWithPrefix("req")
		}

		c.Header(RequestIDHeader, requestID)
		c.Set("request_id", requestID)
		c.Set("start_time", time.Now())

		ctx := context.WithValue(c.Request.Context(), RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
