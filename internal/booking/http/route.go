package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking-related routes. Availability is
// public so visitors can browse free slots before signing up.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	g.GET("/spaces/:id/availability", h.Availability)

	group := g.Group("/bookings")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)               // List bookings
		group.GET("/:id", h.Get)            // Get booking details
		group.POST("", h.Create)            // Create booking
		group.POST("/:id/cancel", h.Cancel) // Cancel booking
	}

	// === Admin Routes ===
	group.PATCH("/:id/status", adminMiddleware, h.UpdateStatus) // Update booking status
}
