package roomtype

import (
	"net/http"
	"time"

	"github.com/vignosaas/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "room type not found")
	ErrEmptyName        = apperror.New(http.StatusBadRequest, "room type name cannot be empty")
	ErrNegativePrice    = apperror.New(http.StatusBadRequest, "base price cannot be negative")
	ErrInvalidOccupancy = apperror.New(http.StatusBadRequest, "max occupancy must be a positive integer")
)

// RoomType is a category of rooms within a hotel (e.g. Double, Suite).
// BasePrice is the nightly rate used by the price calculator.
type RoomType struct {
	ID           string
	HotelID      string
	Name         string
	Description  *string
	BasePrice    float64
	MaxOccupancy int
	Amenities    []string
	Images       []string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing room types.
type Filter struct {
	HotelID    string
	OnlyActive bool
	Page       int
	PageSize   int
}
