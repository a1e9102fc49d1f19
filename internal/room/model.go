package room

import (
	"net/http"
	"time"

	"github.com/vignosaas/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "room not found")
	ErrEmptyNumber     = apperror.New(http.StatusBadRequest, "room number cannot be empty")
	ErrNumberTaken     = apperror.New(http.StatusConflict, "room number already exists in this hotel")
	ErrInvalidStatus   = apperror.New(http.StatusBadRequest, "invalid room status")
	ErrTypeMismatch    = apperror.New(http.StatusBadRequest, "room type belongs to a different hotel")
	ErrRoomLimit       = apperror.New(http.StatusForbidden, "room limit reached for the current plan")
	ErrInvalidRoomType = apperror.New(http.StatusBadRequest, "invalid room_type_id")
)

// Status is the administrative state set by hotel staff. It is orthogonal to
// interval availability: an 'available' room can still be booked out for a
// given date range.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
	StatusBlocked     Status = "blocked"
)

// Valid reports whether s is a known administrative status.
func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance, StatusBlocked:
		return true
	}
	return false
}

// Room is one physical, bookable room in a hotel.
type Room struct {
	ID           string
	HotelID      string
	RoomTypeID   string
	RoomTypeName string
	RoomNumber   string
	Floor        *int
	Status       Status
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing rooms.
type Filter struct {
	HotelID    string
	RoomTypeID string
	Status     string
	Page       int
	PageSize   int
}
