package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vignosaas/hotel-booking-backend/internal/billing"
	"github.com/vignosaas/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	billingService billing.Service
}

func NewHandler(billingService billing.Service) *Handler {
	return &Handler{billingService: billingService}
}

// ListPlans is the public plan catalog.
func (h *Handler) ListPlans(c *gin.Context) {
	plans := billing.Plans()
	items := make([]PlanResponse, len(plans))
	for i, p := range plans {
		items[i] = NewPlanResponse(p)
	}

	c.JSON(http.StatusOK, gin.H{"plans": items})
}

// ChangePlan moves a hotel to a new plan. The free plan opens no invoice, so
// the record may be absent from the response.
func (h *Handler) ChangePlan(c *gin.Context) {
	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	rec, err := h.billingService.ChangePlan(c.Request.Context(), req.HotelID, req.Plan)
	if err != nil {
		response.Error(c, err)
		return
	}

	if rec == nil {
		c.JSON(http.StatusOK, gin.H{"plan": req.Plan})
		return
	}
	c.JSON(http.StatusCreated, NewRecordResponse(rec))
}

func (h *Handler) ListRecords(c *gin.Context) {
	var req ListRecordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	records, total, err := h.billingService.ListRecords(c.Request.Context(), billing.Filter{
		HotelID:  req.HotelID,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RecordResponse, len(records))
	for i, r := range records {
		items[i] = NewRecordResponse(r)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) GetRecord(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	rec, err := h.billingService.GetRecord(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRecordResponse(rec))
}

// RecordPayment marks an invoice as paid.
func (h *Handler) RecordPayment(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	rec, err := h.billingService.RecordPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRecordResponse(rec))
}

// Overview is the super-admin revenue dashboard.
func (h *Handler) Overview(c *gin.Context) {
	ov, err := h.billingService.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, OverviewResponse{
		TotalBilled:    ov.TotalBilled,
		TotalCollected: ov.TotalCollected,
		PendingRecords: ov.PendingRecords,
		OverdueRecords: ov.OverdueRecords,
	})
}
