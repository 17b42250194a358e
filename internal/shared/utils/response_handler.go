package utils

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rochi88/go-exercise/internal/shared/logger"
)

// StandardizedResponse is the envelope every API response uses
type StandardizedResponse struct {
	Code         int         `json:"code"`          // HTTP status code
	Status       bool        `json:"status"`        // true for success, false for error
	Result       interface{} `json:"result"`        // actual response data (can be null)
	Message      string      `json:"message"`       // success/error message
	ResponseTime int64       `json:"response_time"` // response time in milliseconds
	RequestID    string      `json:"request_id"`    // unique request identifier
}

// StatusCoder is implemented by errors that carry an HTTP status code
type StatusCoder interface {
	StatusCode() int
}

// ResponseHandler provides centralized response handling for all APIs
type ResponseHandler struct {
	logger *logger.Logger
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(log *logger.Logger) *ResponseHandler {
	return &ResponseHandler{
		logger: log.Named("response-handler"),
	}
}

// RespondWithStandardFormat writes the standard envelope
func RespondWithStandardFormat(c *gin.Context, statusCode int, success bool, result interface{}, message string) {
	var elapsed int64
	if start := c.GetTime("start_time"); !start.IsZero() {
		elapsed = time.Since(start).Milliseconds()
	}

	c.JSON(statusCode, &StandardizedResponse{
		Code:         statusCode,
		Status:       success,
		Result:       result,
		Message:      message,
		ResponseTime: elapsed,
		RequestID:    c.GetString("request_id"),
	})
}

// GinSuccess sends a standardized success response for Gin handlers
func (rh *ResponseHandler) GinSuccess(c *gin.Context, result interface{}, message string) {
	RespondWithStandardFormat(c, http.StatusOK, true, result, message)
}

// GinCreated sends a standardized created response for Gin handlers
func (rh *ResponseHandler) GinCreated(c *gin.Context, result interface{}, message string) {
	RespondWithStandardFormat(c, http.StatusCreated, true, result, message)
}

// GinError sends a standardized error response for Gin handlers
func (rh *ResponseHandler) GinError(c *gin.Context, message string, statusCode int) {
	rh.logger.Debug("Request failed",
		zap.String("request_id", c.GetString("request_id")),
		zap.Int("status", statusCode),
		zap.String("message", message))

	RespondWithStandardFormat(c, statusCode, false, nil, message)
	c.Abort()
}

// GinInternalError sends a standardized internal server error response for Gin handlers
func (rh *ResponseHandler) GinInternalError(c *gin.Context, err error) {
	rh.logger.Error("Internal error",
		zap.String("request_id", c.GetString("request_id")),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))

	RespondWithStandardFormat(c, http.StatusInternalServerError, false, nil, "Internal server error")
	c.Abort()
}

// GinBadRequest sends a standardized bad request response for Gin handlers
func (rh *ResponseHandler) GinBadRequest(c *gin.Context, message string) {
	rh.GinError(c, message, http.StatusBadRequest)
}

// GinNotFound sends a standardized not found response for Gin handlers
func (rh *ResponseHandler) GinNotFound(c *gin.Context, message string) {
	rh.GinError(c, message, http.StatusNotFound)
}

// GinHandleServiceError maps service errors onto responses
func GinHandleServiceError(c *gin.Context, err error, responseHandler *ResponseHandler) {
	var statusErr StatusCoder
	if !errors.As(err, &statusErr) {
		responseHandler.GinInternalError(c, err)
		return
	}

	switch code := statusErr.StatusCode(); {
	case code >= 400 && code < 500:
		responseHandler.GinError(c, err.Error(), code)
	default:
		responseHandler.GinInternalError(c, err)
	}
}
