package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the backup management routes, admin only.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/admin/backups")
	group.Use(authMiddleware, adminMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.POST("/:name/restore", h.Restore)
		group.DELETE("/:name", h.Delete)
	}
}
