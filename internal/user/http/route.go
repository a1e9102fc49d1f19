package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all user-related routes (including Auth).
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, superAdminMiddleware, rateLimit gin.HandlerFunc) {
	// Public Routes
	authGroup := g.Group("/auth")
	{
		authGroup.POST("/register", rateLimit, h.Register)
		authGroup.POST("/login", rateLimit, h.Login)
	}

	// Authenticated Routes
	g.GET("/me", authMiddleware, h.Me)

	// Super-admin Routes
	usersGroup := g.Group("/users")
	usersGroup.Use(authMiddleware, superAdminMiddleware)
	{
		usersGroup.GET("", h.List)
		usersGroup.GET("/:id", h.Get)
		usersGroup.PATCH("/:id/active", h.SetActive)
	}
}
