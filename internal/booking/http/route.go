package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all booking routes. optionalAuth lets the public
// booking form attach a guest identity or staff privileges when a token is
// present.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, optionalAuth, staffMiddleware, rateLimit gin.HandlerFunc) {
	// Public Routes
	g.GET("/availability", rateLimit, h.Availability)

	group := g.Group("/bookings")

	group.POST("", rateLimit, optionalAuth, h.Create)
	group.GET("/reference/:reference", rateLimit, h.GetByReference)

	// Authenticated Routes
	group.GET("/mine", authMiddleware, h.ListMine)
	group.GET("/:id", authMiddleware, h.Get)
	group.PATCH("/:id/status", authMiddleware, h.UpdateStatus)

	// Hotel-staff Routes
	group.GET("", authMiddleware, staffMiddleware, h.List)
	group.GET("/calendar", authMiddleware, staffMiddleware, h.Calendar)
	group.GET("/guests", authMiddleware, staffMiddleware, h.ListGuests)
	group.GET("/export", authMiddleware, staffMiddleware, h.Export)
}
