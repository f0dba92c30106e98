package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps /items. Every route needs an acting user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.Auth())
	{
		items.POST("", h.Create)
		items.GET("", h.ListByOwner)
		items.GET("/search", h.Search)
		items.GET("/:itemId", h.Detail)
		items.PATCH("/:itemId", h.Update)
		items.POST("/:itemId/comment", h.AddComment)
	}
}
