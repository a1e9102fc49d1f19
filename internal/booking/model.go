package booking

import (
	"net/http"
	"time"

	"github.com/vignosaas/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "booking not found")
	ErrRoomNotFound       = apperror.New(http.StatusNotFound, "room not found")
	ErrRoomUnavailable    = apperror.New(http.StatusConflict, "room is not available for the selected dates")
	ErrInvalidInterval    = apperror.New(http.StatusBadRequest, "check-out date must be after check-in date")
	ErrNegativeRate       = apperror.New(http.StatusBadRequest, "nightly rate cannot be negative")
	ErrInvalidStatus      = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidTransition  = apperror.New(http.StatusConflict, "booking status transition not allowed")
	ErrOccupancyExceeded  = apperror.New(http.StatusBadRequest, "guest count exceeds room type occupancy")
	ErrGuestNameRequired  = apperror.New(http.StatusBadRequest, "guest name cannot be empty")
	ErrBookingLimit       = apperror.New(http.StatusForbidden, "booking limit reached for the current plan")
	ErrReferenceExhausted = apperror.New(http.StatusConflict, "could not allocate a unique booking reference")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether s is a known booking status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

// Blocks reports whether a booking in this status holds the room against
// other reservations. Pending bookings do not block until confirmed;
// cancelled and checked-out stays release the room immediately.
func (s Status) Blocks() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

// transitions is the set of legal status changes. Checked-out and cancelled
// are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

// CanTransition reports whether a booking may move from s to next.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              string
	Reference       string
	HotelID         string
	HotelName       string
	RoomID          string
	RoomNumber      string
	RoomTypeName    string
	GuestID         *string
	GuestName       string
	GuestEmail      string
	GuestPhone      *string
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	TotalAmount     float64
	Status          Status
	SpecialRequests *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Stay returns the booking's date range as a StayInterval.
func (b *Booking) Stay() StayInterval {
	return StayInterval{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

type Filter struct {
	HotelID  string
	RoomID   string
	GuestID  string
	Status   string
	From     *time.Time // Keep bookings ending on or after this date
	To       *time.Time // Keep bookings starting on or before this date
	Page     int
	PageSize int
}

// Guest is one distinct guest aggregated from a hotel's booking history.
type Guest struct {
	Name          string
	Email         string
	Phone         *string
	TotalBookings int
	TotalSpent    float64
	LastStay      time.Time
}
