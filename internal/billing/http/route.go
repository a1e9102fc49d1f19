package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all billing routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, superAdminMiddleware, rateLimit gin.HandlerFunc) {
	// Public plan catalog
	g.GET("/plans", rateLimit, h.ListPlans)

	// Super-admin Routes
	group := g.Group("/billing")
	group.Use(authMiddleware, superAdminMiddleware)
	{
		group.GET("/records", h.ListRecords)
		group.GET("/records/:id", h.GetRecord)
		group.POST("/records/:id/payment", h.RecordPayment)
		group.POST("/change-plan", h.ChangePlan)
		group.GET("/overview", h.Overview)
	}
}
