package http

import (
	"time"

	"github.com/vignosaas/hotel-booking-backend/internal/booking"
	hotelHttp "github.com/vignosaas/hotel-booking-backend/internal/hotel/http"
	"github.com/vignosaas/hotel-booking-backend/internal/pkg/request"
	roomHttp "github.com/vignosaas/hotel-booking-backend/internal/room/http"
)

// CreateBookingRequest defines the payload for creating a booking. Status is
// honored for hotel staff only; the public flow always starts at pending.
type CreateBookingRequest struct {
	HotelID         string    `json:"hotel_id" binding:"required,uuid"`
	RoomID          string    `json:"room_id" binding:"required,uuid"`
	GuestName       string    `json:"guest_name" binding:"required"`
	GuestEmail      string    `json:"guest_email" binding:"required,email"`
	GuestPhone      *string   `json:"guest_phone"`
	CheckIn         time.Time `json:"check_in" binding:"required" time_format:"2006-01-02"`
	CheckOut        time.Time `json:"check_out" binding:"required" time_format:"2006-01-02"`
	Adults          int       `json:"adults" binding:"required,min=1"`
	Children        int       `json:"children" binding:"min=0"`
	SpecialRequests *string   `json:"special_requests"`
	Status          string    `json:"status" binding:"omitempty,oneof=pending confirmed"`
}

// UpdateStatusRequest moves a booking through its lifecycle.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed checked_in checked_out cancelled"`
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	HotelID string     `form:"hotel_id" binding:"required,uuid"`
	RoomID  string     `form:"room_id" binding:"omitempty,uuid"`
	Status  string     `form:"status" binding:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
	From    *time.Time `form:"from" time_format:"2006-01-02"`
	To      *time.Time `form:"to" time_format:"2006-01-02"`
}

// AvailabilityRequest defines query parameters for the public room search.
type AvailabilityRequest struct {
	HotelID  string    `form:"hotel_id" binding:"required,uuid"`
	CheckIn  time.Time `form:"check_in" binding:"required" time_format:"2006-01-02"`
	CheckOut time.Time `form:"check_out" binding:"required" time_format:"2006-01-02"`
}

// CalendarRequest selects a hotel month for the calendar view.
type CalendarRequest struct {
	HotelID string `form:"hotel_id" binding:"required,uuid"`
	Year    int    `form:"year" binding:"required,min=2000,max=2200"`
	Month   int    `form:"month" binding:"required,min=1,max=12"`
}

// ExportRequest selects a hotel date range for the Excel export.
type ExportRequest struct {
	HotelID string    `form:"hotel_id" binding:"required,uuid"`
	From    time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To      time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

// ListGuestsRequest defines query parameters for the guest directory.
type ListGuestsRequest struct {
	request.ListParams
	HotelID string `form:"hotel_id" binding:"required,uuid"`
}

// BookingResponse is the shape of booking data in API responses.
type BookingResponse struct {
	ID              string             `json:"id"`
	Reference       string             `json:"reference"`
	Hotel           hotelHttp.HotelTag `json:"hotel"`
	Room            roomHttp.RoomTag   `json:"room"`
	GuestName       string             `json:"guest_name"`
	GuestEmail      string             `json:"guest_email"`
	GuestPhone      *string            `json:"guest_phone"`
	CheckIn         string             `json:"check_in"`
	CheckOut        string             `json:"check_out"`
	Nights          int                `json:"nights"`
	Adults          int                `json:"adults"`
	Children        int                `json:"children"`
	TotalAmount     float64            `json:"total_amount"`
	Status          string             `json:"status"`
	SpecialRequests *string            `json:"special_requests"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// NewBookingResponse converts a domain booking to the API representation.
func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Reference: b.Reference,
		Hotel:     hotelHttp.HotelTag{ID: b.HotelID, Name: b.HotelName},
		Room: roomHttp.RoomTag{
			ID:           b.RoomID,
			RoomNumber:   b.RoomNumber,
			RoomTypeName: b.RoomTypeName,
		},
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		CheckIn:         b.CheckIn.Format("2006-01-02"),
		CheckOut:        b.CheckOut.Format("2006-01-02"),
		Nights:          b.Stay().Nights(),
		Adults:          b.Adults,
		Children:        b.Children,
		TotalAmount:     b.TotalAmount,
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// GuestResponse is one row of the guest directory.
type GuestResponse struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone"`
	TotalBookings int     `json:"total_bookings"`
	TotalSpent    float64 `json:"total_spent"`
	LastStay      string  `json:"last_stay"`
}

// NewGuestResponse converts an aggregated guest to the API representation.
func NewGuestResponse(g *booking.Guest) GuestResponse {
	return GuestResponse{
		Name:          g.Name,
		Email:         g.Email,
		Phone:         g.Phone,
		TotalBookings: g.TotalBookings,
		TotalSpent:    g.TotalSpent,
		LastStay:      g.LastStay.Format("2006-01-02"),
	}
}
