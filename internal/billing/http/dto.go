package http

import (
	"time"

	"github.com/vignosaas/hotel-booking-backend/internal/billing"
	"github.com/vignosaas/hotel-booking-backend/internal/pkg/request"
)

// ChangePlanRequest moves a hotel to a new subscription plan.
type ChangePlanRequest struct {
	HotelID string `json:"hotel_id" binding:"required,uuid"`
	Plan    string `json:"plan" binding:"required,oneof=free starter pro enterprise"`
}

// ListRecordsRequest defines query parameters for listing billing records.
type ListRecordsRequest struct {
	request.ListParams
	HotelID string `form:"hotel_id" binding:"omitempty,uuid"`
	Status  string `form:"status" binding:"omitempty,oneof=pending paid overdue"`
}

// PlanResponse is one subscription tier in the public catalog.
type PlanResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	MonthlyPrice float64 `json:"monthly_price"`
	MaxRooms     int     `json:"max_rooms"`
	MaxBookings  int     `json:"max_bookings_per_cycle"`
	MaxStaff     int     `json:"max_staff"`
}

// NewPlanResponse converts a plan to the API representation.
func NewPlanResponse(p billing.Plan) PlanResponse {
	return PlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		MonthlyPrice: p.MonthlyPrice,
		MaxRooms:     p.Limits.MaxRooms,
		MaxBookings:  p.Limits.MaxBookingsPerCycle,
		MaxStaff:     p.Limits.MaxStaff,
	}
}

// RecordResponse is the shape of a billing record in API responses.
type RecordResponse struct {
	ID           string     `json:"id"`
	HotelID      string     `json:"hotel_id"`
	HotelName    string     `json:"hotel_name"`
	Amount       float64    `json:"amount"`
	PlanName     string     `json:"plan_name"`
	PeriodStart  time.Time  `json:"period_start"`
	PeriodEnd    time.Time  `json:"period_end"`
	Status       string     `json:"status"`
	DueDate      time.Time  `json:"due_date"`
	PaidDate     *time.Time `json:"paid_date"`
	ReminderSent bool       `json:"reminder_sent"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NewRecordResponse converts a billing record to the API representation.
func NewRecordResponse(r *billing.Record) RecordResponse {
	return RecordResponse{
		ID:           r.ID,
		HotelID:      r.HotelID,
		HotelName:    r.HotelName,
		Amount:       r.Amount,
		PlanName:     r.PlanName,
		PeriodStart:  r.BillingPeriodStart,
		PeriodEnd:    r.BillingPeriodEnd,
		Status:       r.Status,
		DueDate:      r.DueDate,
		PaidDate:     r.PaidDate,
		ReminderSent: r.ReminderSent,
		CreatedAt:    r.CreatedAt,
	}
}

// OverviewResponse aggregates platform revenue.
type OverviewResponse struct {
	TotalBilled    float64 `json:"total_billed"`
	TotalCollected float64 `json:"total_collected"`
	PendingRecords int     `json:"pending_records"`
	OverdueRecords int     `json:"overdue_records"`
}
