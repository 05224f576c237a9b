package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the audit trail routes, admin only.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/audits")
	group.Use(authMiddleware, adminMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}
}
