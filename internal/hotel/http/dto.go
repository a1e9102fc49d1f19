package http

import (
	"time"

	"github.com/vignosaas/hotel-booking-backend/internal/hotel"
	"github.com/vignosaas/hotel-booking-backend/internal/pkg/request"
	userHttp "github.com/vignosaas/hotel-booking-backend/internal/user/http"
)

// OnboardRequest defines the payload for creating a hotel with its owner
// account in one call.
type OnboardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	PostalCode  string `json:"postal_code"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
	Website     string `json:"website" binding:"omitempty,url"`

	OwnerEmail    string `json:"owner_email" binding:"required,email"`
	OwnerName     string `json:"owner_name" binding:"required"`
	OwnerPassword string `json:"owner_password" binding:"required,min=8"`

	Plan string `json:"plan" binding:"omitempty,oneof=free starter pro enterprise"`
}

// UpdateHotelRequest carries optional profile changes.
type UpdateHotelRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Country     *string `json:"country"`
	PostalCode  *string `json:"postal_code"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Website     *string `json:"website" binding:"omitempty,url"`
}

// SearchHotelsRequest defines query parameters for the public hotel search.
type SearchHotelsRequest struct {
	request.ListParams
	Keyword string `form:"q"`
	City    string `form:"city"`
}

// AddStaffRequest creates a staff account for a hotel.
type AddStaffRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

// SetActiveRequest toggles a hotel's active flag.
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// HotelResponse is the shape of hotel data returned in API responses.
type HotelResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Country     *string `json:"country"`
	PostalCode  *string `json:"postal_code"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Website     *string `json:"website"`
	IsActive    bool    `json:"is_active"`

	Subscription *SubscriptionResponse `json:"subscription,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubscriptionResponse exposes billing state to hotel managers only.
type SubscriptionResponse struct {
	Plan       string     `json:"plan"`
	Status     string     `json:"status"`
	CycleStart *time.Time `json:"cycle_start"`
	CycleEnd   *time.Time `json:"cycle_end"`
}

// HotelTag is a brief representation of a hotel.
type HotelTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NewHotelResponse converts a domain hotel to its public representation.
// Subscription details are omitted.
func NewHotelResponse(h *hotel.Hotel) HotelResponse {
	return HotelResponse{
		ID:          h.ID,
		Name:        h.Name,
		Slug:        h.Slug,
		Description: h.Description,
		Address:     h.Address,
		City:        h.City,
		State:       h.State,
		Country:     h.Country,
		PostalCode:  h.PostalCode,
		Phone:       h.Phone,
		Email:       h.Email,
		Website:     h.Website,
		IsActive:    h.IsActive,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

// NewManagedHotelResponse includes the subscription block for managers and
// super admins.
func NewManagedHotelResponse(h *hotel.Hotel) HotelResponse {
	resp := NewHotelResponse(h)
	resp.Subscription = &SubscriptionResponse{
		Plan:       h.SubscriptionPlan,
		Status:     h.SubscriptionStatus,
		CycleStart: h.BillingCycleStart,
		CycleEnd:   h.BillingCycleEnd,
	}
	return resp
}

// OnboardResponse returns the created hotel and owner account.
type OnboardResponse struct {
	Hotel HotelResponse         `json:"hotel"`
	Owner userHttp.UserResponse `json:"owner"`
}
