package hotel

import (
	"net/http"
	"time"

	"github.com/vignosaas/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "hotel not found")
	ErrEmptyName   = apperror.New(http.StatusBadRequest, "hotel name cannot be empty")
	ErrSlugTaken   = apperror.New(http.StatusConflict, "hotel slug already in use")
	ErrInactive    = apperror.New(http.StatusForbidden, "hotel is not active")
	ErrInvalidPlan = apperror.New(http.StatusBadRequest, "unknown subscription plan")
	ErrStaffLimit  = apperror.New(http.StatusForbidden, "staff limit reached for the current plan")
	ErrOwnerCreate = apperror.New(http.StatusInternalServerError, "failed to create hotel owner account")
)

// Subscription statuses stored on the hotel row.
const (
	SubscriptionActive    = "active"
	SubscriptionTrial     = "trial"
	SubscriptionPastDue   = "past_due"
	SubscriptionCancelled = "cancelled"
)

// Hotel is a tenant: a property whose rooms are offered for booking.
type Hotel struct {
	ID          string
	Name        string
	Slug        string
	Description *string
	Address     *string
	City        *string
	State       *string
	Country     *string
	PostalCode  *string
	Phone       *string
	Email       *string
	Website     *string
	OwnerID     string

	SubscriptionPlan   string
	SubscriptionStatus string
	BillingCycleStart  *time.Time
	BillingCycleEnd    *time.Time

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for the public hotel search.
type Filter struct {
	Keyword    string // matches name or city
	City       string
	OnlyActive bool
	Page       int
	PageSize   int
}
