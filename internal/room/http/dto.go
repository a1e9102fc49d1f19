package http

import (
	"time"

	"github.com/vignosaas/hotel-booking-backend/internal/pkg/request"
	"github.com/vignosaas/hotel-booking-backend/internal/room"
)

// CreateRoomRequest defines the payload for creating a room.
type CreateRoomRequest struct {
	HotelID    string  `json:"hotel_id" binding:"required,uuid"`
	RoomTypeID string  `json:"room_type_id" binding:"required,uuid"`
	RoomNumber string  `json:"room_number" binding:"required"`
	Floor      *int    `json:"floor"`
	Notes      *string `json:"notes"`
}

// UpdateRoomRequest carries optional room changes.
type UpdateRoomRequest struct {
	RoomTypeID *string `json:"room_type_id" binding:"omitempty,uuid"`
	RoomNumber *string `json:"room_number"`
	Floor      *int    `json:"floor"`
	Status     *string `json:"status" binding:"omitempty,oneof=available occupied maintenance blocked"`
	Notes      *string `json:"notes"`
}

// SetStatusRequest changes a room's administrative status.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available occupied maintenance blocked"`
}

// ListRoomsRequest defines query parameters for listing rooms.
type ListRoomsRequest struct {
	request.ListParams
	HotelID    string `form:"hotel_id" binding:"required,uuid"`
	RoomTypeID string `form:"room_type_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=available occupied maintenance blocked"`
}

// RoomResponse is the shape of room data in API responses.
type RoomResponse struct {
	ID           string    `json:"id"`
	HotelID      string    `json:"hotel_id"`
	RoomTypeID   string    `json:"room_type_id"`
	RoomTypeName string    `json:"room_type_name"`
	RoomNumber   string    `json:"room_number"`
	Floor        *int      `json:"floor"`
	Status       string    `json:"status"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoomTag is a brief representation of a room.
type RoomTag struct {
	ID           string `json:"id"`
	RoomNumber   string `json:"room_number"`
	RoomTypeName string `json:"room_type_name"`
}

// NewRoomResponse converts a domain room to the API representation.
func NewRoomResponse(rm *room.Room) RoomResponse {
	return RoomResponse{
		ID:           rm.ID,
		HotelID:      rm.HotelID,
		RoomTypeID:   rm.RoomTypeID,
		RoomTypeName: rm.RoomTypeName,
		RoomNumber:   rm.RoomNumber,
		Floor:        rm.Floor,
		Status:       string(rm.Status),
		Notes:        rm.Notes,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}
