package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all room-type routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware, rateLimit gin.HandlerFunc) {
	group := g.Group("/room-types")

	// Public Routes
	group.GET("", rateLimit, h.List)
	group.GET("/:id", rateLimit, h.Get)

	// Hotel-staff Routes
	group.POST("", authMiddleware, staffMiddleware, h.Create)
	group.PATCH("/:id", authMiddleware, staffMiddleware, h.Update)
	group.DELETE("/:id", authMiddleware, staffMiddleware, h.Delete)
}
