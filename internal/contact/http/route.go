package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the contact form routes. Submitting is public,
// reading the mailbox is admin only.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	g.POST("/contact", h.Submit)

	admin := g.Group("/contact")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.DELETE("/:id", h.Delete)
	}
}
