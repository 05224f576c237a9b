package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers payment-related routes, all admin only.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/payments")
	group.Use(authMiddleware, adminMiddleware)
	{
		group.GET("/pending", h.ListPending)     // Payments still owed
		group.GET("/completed", h.ListCompleted) // Settled payments
		group.GET("/:id", h.Get)                 // Get payment details
		group.POST("", h.Create)                 // Record payment
		group.PATCH("/:id", h.Update)            // Update payment
	}
}
