package billing

import (
	"context"
	"time"
)

// HotelSubscriptions is the slice of the hotel module billing needs:
// applying a plan change to the hotel row. Implemented by hotel.Service.
type HotelSubscriptions interface {
	SetSubscription(ctx context.Context, hotelID, plan, status string, cycleStart, cycleEnd time.Time) error
}

// Service defines super-admin billing operations.
type Service interface {
	// ChangePlan moves a hotel to a new plan, opens a fresh one-month
	// billing cycle and creates the invoice record for it.
	ChangePlan(ctx context.Context, hotelID, planID string) (*Record, error)
	RecordPayment(ctx context.Context, recordID string) (*Record, error)
	GetRecord(ctx context.Context, id string) (*Record, error)
	ListRecords(ctx context.Context, filter Filter) ([]*Record, int, error)
	Overview(ctx context.Context) (*Overview, error)
}

type service struct {
	repo   Repository
	hotels HotelSubscriptions

	now func() time.Time
}

// NewService creates a new billing Service.
func NewService(repo Repository, hotels HotelSubscriptions) Service {
	return &service{
		repo:   repo,
		hotels: hotels,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) ChangePlan(ctx context.Context, hotelID, planID string) (*Record, error) {
	plan, ok := PlanByID(planID)
	if !ok {
		return nil, ErrUnknownPlan
	}

	now := s.now()
	cycleEnd := now.AddDate(0, 1, 0)

	status := "active"
	if plan.MonthlyPrice == 0 {
		status = "trial"
	}

	if err := s.hotels.SetSubscription(ctx, hotelID, plan.ID, status, now, cycleEnd); err != nil {
		return nil, err
	}

	// Free plan opens no invoice.
	if plan.MonthlyPrice == 0 {
		return nil, nil
	}

	rec := &Record{
		HotelID:            hotelID,
		Amount:             plan.MonthlyPrice,
		PlanName:           plan.Name,
		BillingPeriodStart: now,
		BillingPeriodEnd:   cycleEnd,
		Status:             RecordPending,
		DueDate:            now.AddDate(0, 0, 14),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *service) RecordPayment(ctx context.Context, recordID string) (*Record, error) {
	rec, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if rec.Status == RecordPaid {
		return nil, ErrAlreadyPaid
	}

	paidAt := s.now()
	if err := s.repo.MarkPaid(ctx, recordID, paidAt); err != nil {
		return nil, err
	}

	rec.Status = RecordPaid
	rec.PaidDate = &paidAt
	return rec, nil
}

func (s *service) GetRecord(ctx context.Context, id string) (*Record, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListRecords(ctx context.Context, filter Filter) ([]*Record, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Overview(ctx context.Context) (*Overview, error) {
	return s.repo.Overview(ctx)
}
