package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all hotel-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware, superAdminMiddleware, rateLimit gin.HandlerFunc) {
	group := g.Group("/hotels")

	// Public Routes
	group.GET("", rateLimit, h.Search)
	group.GET("/slug/:slug", rateLimit, h.GetBySlug)

	// Authenticated Routes
	group.GET("/:id", authMiddleware, h.Get)

	// Hotel-staff Routes
	group.PATCH("/:id", authMiddleware, staffMiddleware, h.Update)
	group.POST("/:id/staff", authMiddleware, staffMiddleware, h.AddStaff)

	// Super-admin Routes
	group.POST("", authMiddleware, superAdminMiddleware, h.Onboard)
	group.PATCH("/:id/active", authMiddleware, superAdminMiddleware, h.SetActive)
}
