package playgroundHttp

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/rochi88/go-exercise/internal/pkg/playground"
	playgroundService "github.com/rochi88/go-exercise/internal/pkg/playground/service"
	"github.com/rochi88/go-exercise/internal/shared/logger"
	"github.com/rochi88/go-exercise/internal/shared/utils"
)

// PlaygroundHandler handles HTTP requests for playground handles
type PlaygroundHandler struct {
	service         playgroundService.PlaygroundService
	logger          *logger.Logger
	responseHandler *utils.ResponseHandler
}

// NewPlaygroundHandler creates a new playground handler
func NewPlaygroundHandler(svc playgroundService.PlaygroundService, log *logger.Logger) *PlaygroundHandler {
	return &PlaygroundHandler{
		service:         svc,
		logger:          log.Named("playground-handler"),
		responseHandler: utils.NewResponseHandler(log.Named("playground-responses")),
	}
}

// GinListKinds lists the exercise kinds
func (h *PlaygroundHandler) GinListKinds(c *gin.Context) {
	h.responseHandler.GinSuccess(c, h.service.Kinds(), "Kinds retrieved successfully")
}

// GinCreateHandle creates a new handle
func (h *PlaygroundHandler) GinCreateHandle(c *gin.Context) {
	var req playground.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responseHandler.GinBadRequest(c, "Invalid request payload")
		return
	}

	snap, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		utils.GinHandleServiceError(c, err, h.responseHandler)
		return
	}

	h.responseHandler.GinCreated(c, snap, "Handle created successfully")
}

// GinListHandles lists live handles
func (h *PlaygroundHandler) GinListHandles(c *gin.Context) {
	snaps, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.GinHandleServiceError(c, err, h.responseHandler)
		return
	}

	h.responseHandler.GinSuccess(c, snaps, "Handles retrieved successfully")
}

// GinGetHandle returns one handle
func (h *PlaygroundHandler) GinGetHandle(c *gin.Context) {
	snap, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.GinHandleServiceError(c, err, h.responseHandler)
		return
	}

	h.responseHandler.GinSuccess(c, snap, "Handle retrieved successfully")
}

// GinInvoke runs an operation on a handle. The JSON body is optional.
func (h *PlaygroundHandler) GinInvoke(c *gin.Context) {
	var req playground.InvokeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.responseHandler.GinBadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Invoke(c.Request.Context(), c.Param("id"), c.Param("operation"), &req)
	if err != nil {
		utils.GinHandleServiceError(c, err, h.responseHandler)
		return
	}

	h.responseHandler.GinSuccess(c, result, "Operation invoked successfully")
}

// GinDeleteHandle removes a handle
func (h *PlaygroundHandler) GinDeleteHandle(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.GinHandleServiceError(c, err, h.responseHandler)
		return
	}

	h.responseHandler.GinSuccess(c, nil, "Handle deleted successfully")
}
