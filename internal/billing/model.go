package billing

import (
	"net/http"
	"time"

	"github.com/vignosaas/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrRecordNotFound = apperror.New(http.StatusNotFound, "billing record not found")
	ErrUnknownPlan    = apperror.New(http.StatusBadRequest, "unknown subscription plan")
	ErrAlreadyPaid    = apperror.New(http.StatusConflict, "billing record is already paid")
)

// Record statuses.
const (
	RecordPending = "pending"
	RecordPaid    = "paid"
	RecordOverdue = "overdue"
)

// Record is one invoice line for a hotel's subscription cycle. Payment
// processing itself is out of scope; only the status is tracked.
type Record struct {
	ID                 string
	HotelID            string
	HotelName          string
	Amount             float64
	PlanName           string
	BillingPeriodStart time.Time
	BillingPeriodEnd   time.Time
	Status             string
	DueDate            time.Time
	PaidDate           *time.Time
	ReminderSent       bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Filter defines parameters for listing billing records.
type Filter struct {
	HotelID  string
	Status   string
	Page     int
	PageSize int
}

// Overview aggregates platform revenue for the super-admin dashboard.
type Overview struct {
	TotalBilled    float64
	TotalCollected float64
	PendingRecords int
	OverdueRecords int
}
