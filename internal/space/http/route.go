package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers space-related routes. Browsing is public,
// mutation requires an admin.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	g.GET("/images/*path", h.ServeImage)

	group := g.Group("/spaces")

	// === Public Routes ===
	group.GET("", h.List)    // List spaces
	group.GET("/:id", h.Get) // Get space details

	// === Admin Routes ===
	admin := group.Group("")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("", h.Create)                   // Create space
		admin.PATCH("/:id", h.Update)              // Update space
		admin.DELETE("/:id", h.Delete)             // Delete space
		admin.POST("/:id/images", h.AddImage)      // Upload image
		admin.DELETE("/:id/images", h.RemoveImage) // Remove image
	}
}
