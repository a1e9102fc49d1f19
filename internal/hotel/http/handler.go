package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vignosaas/hotel-booking-backend/internal/api"
	"github.com/vignosaas/hotel-booking-backend/internal/hotel"
	"github.com/vignosaas/hotel-booking-backend/internal/pkg/response"
	userHttp "github.com/vignosaas/hotel-booking-backend/internal/user/http"
)

type Handler struct {
	hotelService hotel.Service
}

func NewHandler(hotelService hotel.Service) *Handler {
	return &Handler{hotelService: hotelService}
}

// Onboard creates a hotel together with its owner account. Super admin only.
func (h *Handler) Onboard(c *gin.Context) {
	var req OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ht, owner, err := h.hotelService.Onboard(c.Request.Context(), hotel.OnboardRequest{
		Name:          req.Name,
		Description:   req.Description,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		PostalCode:    req.PostalCode,
		Phone:         req.Phone,
		Email:         req.Email,
		Website:       req.Website,
		OwnerEmail:    req.OwnerEmail,
		OwnerName:     req.OwnerName,
		OwnerPassword: req.OwnerPassword,
		Plan:          req.Plan,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, OnboardResponse{
		Hotel: NewManagedHotelResponse(ht),
		Owner: userHttp.NewUserResponse(owner),
	})
}

// Search is the public hotel listing. Only active hotels are returned.
func (h *Handler) Search(c *gin.Context) {
	var req SearchHotelsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	hotels, total, err := h.hotelService.Search(c.Request.Context(), hotel.Filter{
		Keyword:    req.Keyword,
		City:       req.City,
		OnlyActive: true,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]HotelResponse, len(hotels))
	for i, ht := range hotels {
		items[i] = NewHotelResponse(ht)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// GetBySlug is the public hotel profile lookup.
func (h *Handler) GetBySlug(c *gin.Context) {
	ht, err := h.hotelService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ht.IsActive {
		response.Error(c, hotel.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, NewHotelResponse(ht))
}

// Get returns a hotel by ID. Managers of the hotel and super admins see the
// subscription block.
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	ht, err := h.hotelService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if api.CanManageHotel(c, ht.ID) {
		c.JSON(http.StatusOK, NewManagedHotelResponse(ht))
		return
	}
	c.JSON(http.StatusOK, NewHotelResponse(ht))
}

// Update modifies a hotel's profile.
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if !api.CanManageHotel(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ht, err := h.hotelService.Update(c.Request.Context(), id, hotel.UpdateRequest{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		PostalCode:  req.PostalCode,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewManagedHotelResponse(ht))
}

// SetActive toggles a hotel. Super admin only.
func (h *Handler) SetActive(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ht, err := h.hotelService.SetActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewManagedHotelResponse(ht))
}

// AddStaff creates a staff account bound to the hotel.
func (h *Handler) AddStaff(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if !api.CanManageHotel(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	var req AddStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	staff, err := h.hotelService.AddStaff(c.Request.Context(), hotel.AddStaffRequest{
		HotelID:  id,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, userHttp.MeResponse{User: userHttp.NewUserResponse(staff)})
}
