package http

import (
	"time"

	"github.com/vignosaas/hotel-booking-backend/internal/pkg/request"
	"github.com/vignosaas/hotel-booking-backend/internal/roomtype"
)

// CreateRoomTypeRequest defines the payload for creating a room type.
type CreateRoomTypeRequest struct {
	HotelID      string   `json:"hotel_id" binding:"required,uuid"`
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	BasePrice    float64  `json:"base_price" binding:"min=0"`
	MaxOccupancy int      `json:"max_occupancy" binding:"required,min=1"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images" binding:"omitempty,dive,url"`
}

// UpdateRoomTypeRequest carries optional room type changes.
type UpdateRoomTypeRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	BasePrice    *float64 `json:"base_price" binding:"omitempty,min=0"`
	MaxOccupancy *int     `json:"max_occupancy" binding:"omitempty,min=1"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images" binding:"omitempty,dive,url"`
	IsActive     *bool    `json:"is_active"`
}

// ListRoomTypesRequest defines query parameters for listing room types.
type ListRoomTypesRequest struct {
	request.ListParams
	HotelID string `form:"hotel_id" binding:"required,uuid"`
}

// RoomTypeResponse is the shape of room type data in API responses.
type RoomTypeResponse struct {
	ID           string    `json:"id"`
	HotelID      string    `json:"hotel_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	BasePrice    float64   `json:"base_price"`
	MaxOccupancy int       `json:"max_occupancy"`
	Amenities    []string  `json:"amenities"`
	Images       []string  `json:"images"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewRoomTypeResponse converts a domain room type to the API representation.
func NewRoomTypeResponse(rt *roomtype.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:           rt.ID,
		HotelID:      rt.HotelID,
		Name:         rt.Name,
		Description:  rt.Description,
		BasePrice:    rt.BasePrice,
		MaxOccupancy: rt.MaxOccupancy,
		Amenities:    rt.Amenities,
		Images:       rt.Images,
		IsActive:     rt.IsActive,
		CreatedAt:    rt.CreatedAt,
		UpdatedAt:    rt.UpdatedAt,
	}
}
