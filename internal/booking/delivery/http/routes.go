package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps /bookings. Every route needs an acting user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	bookings := rg.Group("/bookings", mw.Auth())
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.ListForBooker)
		bookings.GET("/owner", h.ListForOwner)
		bookings.GET("/:bookingId", h.Detail)
		bookings.PATCH("/:bookingId", h.Update)
	}
}
