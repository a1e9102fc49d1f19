package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vignosaas/hotel-booking-backend/internal/api"
	"github.com/vignosaas/hotel-booking-backend/internal/pkg/response"
	"github.com/vignosaas/hotel-booking-backend/internal/roomtype"
)

type Handler struct {
	roomTypeService roomtype.Service
}

func NewHandler(roomTypeService roomtype.Service) *Handler {
	return &Handler{roomTypeService: roomTypeService}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	if !api.CanManageHotel(c, req.HotelID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	rt, err := h.roomTypeService.Create(c.Request.Context(), roomtype.CreateRequest{
		HotelID:      req.HotelID,
		Name:         req.Name,
		Description:  req.Description,
		BasePrice:    req.BasePrice,
		MaxOccupancy: req.MaxOccupancy,
		Amenities:    req.Amenities,
		Images:       req.Images,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRoomTypeResponse(rt))
}

// List is public: guests browse a hotel's room types. Inactive types are
// hidden from non-managers.
func (h *Handler) List(c *gin.Context) {
	var req ListRoomTypesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	onlyActive := !api.CanManageHotel(c, req.HotelID)

	types, total, err := h.roomTypeService.List(c.Request.Context(), roomtype.Filter{
		HotelID:    req.HotelID,
		OnlyActive: onlyActive,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomTypeResponse, len(types))
	for i, rt := range types {
		items[i] = NewRoomTypeResponse(rt)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	rt, err := h.roomTypeService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomTypeResponse(rt))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	rt, err := h.roomTypeService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !api.CanManageHotel(c, rt.HotelID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	var req UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	updated, err := h.roomTypeService.Update(c.Request.Context(), id, roomtype.UpdateRequest{
		Name:         req.Name,
		Description:  req.Description,
		BasePrice:    req.BasePrice,
		MaxOccupancy: req.MaxOccupancy,
		Amenities:    req.Amenities,
		Images:       req.Images,
		IsActive:     req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomTypeResponse(updated))
}

// Delete deactivates a room type rather than removing it: existing bookings
// keep referencing it.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	rt, err := h.roomTypeService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !api.CanManageHotel(c, rt.HotelID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	if err := h.roomTypeService.Deactivate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
