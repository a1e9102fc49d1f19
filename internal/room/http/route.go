package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all room routes. Rooms are an internal inventory
// surface; guests only ever see them through the availability search.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/rooms")
	group.Use(authMiddleware, staffMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.PATCH("/:id/status", h.SetStatus)
	}
}
