package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vignosaas/hotel-booking-backend/internal/api"
	"github.com/vignosaas/hotel-booking-backend/internal/auth"
	"github.com/vignosaas/hotel-booking-backend/internal/booking"
	"github.com/vignosaas/hotel-booking-backend/internal/pkg/request"
	"github.com/vignosaas/hotel-booking-backend/internal/pkg/response"
	roomHttp "github.com/vignosaas/hotel-booking-backend/internal/room/http"
)

type Handler struct {
	bookingService booking.Service
	exporter       *booking.Exporter
}

func NewHandler(bookingService booking.Service, exporter *booking.Exporter) *Handler {
	return &Handler{
		bookingService: bookingService,
		exporter:       exporter,
	}
}

// Availability is the public room search for a stay.
func (h *Handler) Availability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	stay, err := booking.NewStayInterval(req.CheckIn, req.CheckOut)
	if err != nil {
		response.Error(c, err)
		return
	}

	rooms, err := h.bookingService.FindAvailableRooms(c.Request.Context(), req.HotelID, stay)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]roomHttp.RoomResponse, len(rooms))
	for i, rm := range rooms {
		items[i] = roomHttp.NewRoomResponse(rm)
	}

	c.JSON(http.StatusOK, gin.H{
		"check_in":  stay.CheckIn.Format("2006-01-02"),
		"check_out": stay.CheckOut.Format("2006-01-02"),
		"nights":    stay.Nights(),
		"rooms":     items,
	})
}

// Create handles both the public guest flow and the staff dialog. Only
// staff of the hotel may open a booking as confirmed.
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	status := booking.Status(req.Status)
	if status != "" && status != booking.StatusPending {
		if !api.CanManageHotel(c, req.HotelID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
			return
		}
	}

	var guestID *string
	if userID := auth.GetUserID(c); userID != "" {
		guestID = &userID
	}

	b, err := h.bookingService.Create(c.Request.Context(), booking.CreateRequest{
		HotelID:         req.HotelID,
		RoomID:          req.RoomID,
		GuestID:         guestID,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Adults:          req.Adults,
		Children:        req.Children,
		SpecialRequests: req.SpecialRequests,
		Status:          status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// GetByReference is the public booking lookup by "BK" reference.
func (h *Handler) GetByReference(c *gin.Context) {
	b, err := h.bookingService.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	isGuestOwner := b.GuestID != nil && *b.GuestID == auth.GetUserID(c)
	if !isGuestOwner && !api.CanManageHotel(c, b.HotelID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}
	if !api.CanManageHotel(c, req.HotelID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	bookings, total, err := h.bookingService.List(c.Request.Context(), booking.Filter{
		HotelID:  req.HotelID,
		RoomID:   req.RoomID,
		Status:   req.Status,
		From:     req.From,
		To:       req.To,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// ListMine returns the authenticated guest's own bookings.
func (h *Handler) ListMine(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	bookings, total, err := h.bookingService.List(c.Request.Context(), booking.Filter{
		GuestID:  userID,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, params.Page, params.PageSize, total))
}

// UpdateStatus moves a booking through its lifecycle. Guests may only cancel
// their own pending or confirmed bookings; everything else is staff-only.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	next := booking.Status(req.Status)

	b, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !api.CanManageHotel(c, b.HotelID) {
		isGuestOwner := b.GuestID != nil && *b.GuestID == auth.GetUserID(c)
		if !isGuestOwner || next != booking.StatusCancelled {
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
			return
		}
	}

	updated, err := h.bookingService.UpdateStatus(c.Request.Context(), id, next)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(updated))
}

// Calendar returns every booking intersecting the selected month.
func (h *Handler) Calendar(c *gin.Context) {
	var req CalendarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}
	if !api.CanManageHotel(c, req.HotelID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	bookings, err := h.bookingService.Calendar(c.Request.Context(), req.HotelID, req.Year, time.Month(req.Month))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, gin.H{"year": req.Year, "month": req.Month, "bookings": items})
}

// ListGuests returns the hotel's guest directory aggregated from bookings.
func (h *Handler) ListGuests(c *gin.Context) {
	var req ListGuestsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}
	if !api.CanManageHotel(c, req.HotelID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	guests, total, err := h.bookingService.ListGuests(c.Request.Context(), req.HotelID, req.Page, req.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]GuestResponse, len(guests))
	for i, g := range guests {
		items[i] = NewGuestResponse(g)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// Export streams the hotel's bookings for a date range as an xlsx workbook.
func (h *Handler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}
	if !api.CanManageHotel(c, req.HotelID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	fileName := fmt.Sprintf("bookings_%s_to_%s.xlsx",
		req.From.Format("2006-01-02"), req.To.Format("2006-01-02"))

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := h.exporter.Export(c.Request.Context(), c.Writer, req.HotelID, req.From, req.To); err != nil {
		response.Error(c, err)
		return
	}
}
