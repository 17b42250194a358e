package playgroundHttp

import (
	"github.com/gin-gonic/gin"
)

// RegisterGinRoutes registers playground routes on the given Gin router
func (h *PlaygroundHandler) RegisterGinRoutes(r *gin.RouterGroup) {
	pg := r.Group("/playground")
	{
		// GET /playground/kinds - List exercise kinds
		pg.GET("/kinds", h.GinListKinds)

		// POST /playground/handles - Create a handle
		pg.POST("/handles", h.GinCreateHandle)

		// GET /playground/handles - List handles
		pg.GET("/handles", h.GinListHandles)

		// GET /playground/handles/:id - Get a handle
		pg.GET("/handles/:id", h.GinGetHandle)

		// POST /playground/handles/:id/:operation - Invoke an operation
		pg.POST("/handles/:id/:operation", h.GinInvoke)

		// DELETE /playground/handles/:id - Delete a handle
		pg.DELETE("/handles/:id", h.GinDeleteHandle)
	}
}
