package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps /users. The directory is open: no identity header is needed.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/:userId", h.Detail)
		users.PATCH("/:userId", h.Update)
		users.DELETE("/:userId", h.Delete)
	}
}
