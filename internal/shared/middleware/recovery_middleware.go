package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rochi88/go-exercise/internal/shared/logger"
	"github.com/rochi88/go-exercise/internal/shared/utils"
)

// RecoveryMiddleware provides panic recovery functionality
type RecoveryMiddleware struct {
	logger *logger.Logger
}

// NewRecoveryMiddleware creates a new recovery middleware
func NewRecoveryMiddleware(log *logger.Logger) *RecoveryMiddleware {
	return &RecoveryMiddleware{
		logger: log.Named("recovery"),
	}
}

// GinRecover provides Gin-compatible panic recovery middleware
func (m *RecoveryMiddleware) GinRecover(c *gin.Context) {
	defer func() {
		if err := recover(); err != nil {
			m.logger.Error(
				"Panic recovered",
				zap.Any("error", err),
				zap.String("stack", string(debug.Stack())),
				zap.String("request_id", c.GetString("request_id")),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)

			utils.RespondWithStandardFormat(c, http.StatusInternalServerError, false, nil, "Internal server error")
			c.Abort()
		}
	}()

	c.Next()
}
