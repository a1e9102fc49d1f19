package user

import (
	"net/http"
	"time"

	"github.com/vignosaas/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrInactiveUser       = apperror.New(http.StatusForbidden, "user is inactive")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email is required")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password must be at least 8 characters")
	ErrInvalidRole        = apperror.New(http.StatusBadRequest, "invalid user role")
)

// User represents an account in the system. Hotel owners and staff are
// scoped to exactly one hotel via HotelID; super admins and guests are not.
type User struct {
	ID            string // UUID
	Email         string
	PasswordHash  string
	FullName      *string
	Role          string
	HotelID       *string
	EmailVerified bool
	IsActive      bool
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter defines filter options for listing users.
type Filter struct {
	Role     string
	HotelID  string
	IsActive *bool // pointer distinguishes false from not-set

	Page     int
	PageSize int
}
