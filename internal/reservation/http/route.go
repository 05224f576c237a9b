package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers reservation-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/reservations")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)   // Create reservation
		group.GET("/mine", h.Mine) // Own reservations
	}

	// === Admin Routes ===
	group.GET("", adminMiddleware, h.List)               // List all reservations
	group.GET("/spaces/:id", adminMiddleware, h.BySpace) // Reservations of one space
}
