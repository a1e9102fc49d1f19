package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vignosaas/hotel-booking-backend/internal/billing"
	"github.com/vignosaas/hotel-booking-backend/internal/hotel"
	"github.com/vignosaas/hotel-booking-backend/internal/metrics"
	"github.com/vignosaas/hotel-booking-backend/internal/room"
	"github.com/vignosaas/hotel-booking-backend/internal/roomtype"
)

// referenceAttempts bounds reference-collision retries on insert.
const referenceAttempts = 3

type CreateRequest struct {
	HotelID         string
	RoomID          string
	GuestID         *string
	GuestName       string
	GuestEmail      string
	GuestPhone      *string
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	SpecialRequests *string
	Status          Status // zero value defaults to pending
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	GetByReference(ctx context.Context, reference string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, next Status) (*Booking, error)
	IsRoomAvailable(ctx context.Context, roomID, hotelID string, stay StayInterval) (bool, error)
	FindAvailableRooms(ctx context.Context, hotelID string, stay StayInterval) ([]*room.Room, error)
	Calendar(ctx context.Context, hotelID string, year int, month time.Month) ([]*Booking, error)
	ListGuests(ctx context.Context, hotelID string, page, pageSize int) ([]*Guest, int, error)
}

type service struct {
	repo            Repository
	roomService     room.Service
	roomTypeService roomtype.Service
	hotelService    hotel.Service
}

func NewService(repo Repository, roomService room.Service, roomTypeService roomtype.Service, hotelService hotel.Service) Service {
	return &service{
		repo:            repo,
		roomService:     roomService,
		roomTypeService: roomTypeService,
		hotelService:    hotelService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	b, err := s.create(ctx, req)
	metrics.ObserveBooking(createOutcome(err))
	return b, err
}

func createOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeCreated
	case errors.Is(err, ErrRoomUnavailable):
		return metrics.OutcomeConflict
	case errors.Is(err, ErrInvalidInterval),
		errors.Is(err, ErrOccupancyExceeded),
		errors.Is(err, ErrGuestNameRequired),
		errors.Is(err, ErrRoomNotFound):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}

func (s *service) create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// 1. Validate the stay interval before anything else runs.
	stay, err := NewStayInterval(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.GuestName) == "" {
		return nil, ErrGuestNameRequired
	}
	if req.Adults < 1 || req.Children < 0 {
		return nil, ErrOccupancyExceeded
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	// 2. Resolve the room and its rate.
	rm, err := s.roomService.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if rm.HotelID != req.HotelID {
		return nil, ErrRoomNotFound
	}

	rt, err := s.roomTypeService.GetByID(ctx, rm.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if req.Adults+req.Children > rt.MaxOccupancy {
		return nil, ErrOccupancyExceeded
	}

	// 3. Enforce the subscription plan's booking quota for the cycle.
	h, err := s.hotelService.GetByID(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}
	if plan, ok := billing.PlanByID(h.SubscriptionPlan); ok {
		count, err := s.repo.CountForHotelSince(ctx, req.HotelID, cycleStart(h))
		if err != nil {
			return nil, err
		}
		if !plan.AllowsBookings(count + 1) {
			return nil, ErrBookingLimit
		}
	}

	// 4. Fast-fail availability check. The exclusion constraint remains the
	// authority under concurrency.
	if status.Blocks() {
		hasOverlap, err := s.repo.HasOverlap(ctx, req.RoomID, stay.CheckIn, stay.CheckOut, "")
		if err != nil {
			return nil, err
		}
		if hasOverlap {
			return nil, ErrRoomUnavailable
		}
	}

	// 5. Price the stay off the room type's nightly rate.
	total, err := ComputeTotal(rt.BasePrice, stay)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		HotelID:         req.HotelID,
		HotelName:       h.Name,
		RoomID:          req.RoomID,
		RoomNumber:      rm.RoomNumber,
		RoomTypeName:    rt.Name,
		GuestID:         req.GuestID,
		GuestName:       strings.TrimSpace(req.GuestName),
		GuestEmail:      strings.TrimSpace(req.GuestEmail),
		GuestPhone:      req.GuestPhone,
		CheckIn:         stay.CheckIn,
		CheckOut:        stay.CheckOut,
		Adults:          req.Adults,
		Children:        req.Children,
		TotalAmount:     total,
		Status:          status,
		SpecialRequests: req.SpecialRequests,
	}

	// 6. Insert, regenerating the reference on collision.
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		b.Reference = NewReference()
		err = s.repo.Create(ctx, b)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, errReferenceTaken) {
			return nil, err
		}
	}
	return nil, ErrReferenceExhausted
}

func cycleStart(h *hotel.Hotel) time.Time {
	if h.BillingCycleStart != nil {
		return *h.BillingCycleStart
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByReference(ctx context.Context, reference string) (*Booking, error) {
	return s.repo.GetByReference(ctx, reference)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id string, next Status) (*Booking, error) {
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransition(next) {
		return nil, ErrInvalidTransition
	}

	// Confirming a pending booking starts blocking the room; re-check the
	// interval so the user gets a clean conflict instead of a DB error.
	if !b.Status.Blocks() && next.Blocks() {
		hasOverlap, err := s.repo.HasOverlap(ctx, b.RoomID, b.CheckIn, b.CheckOut, b.ID)
		if err != nil {
			return nil, err
		}
		if hasOverlap {
			return nil, ErrRoomUnavailable
		}
	}

	b.Status = next
	if err := s.repo.UpdateStatus(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) IsRoomAvailable(ctx context.Context, roomID, hotelID string, stay StayInterval) (bool, error) {
	if !stay.CheckOut.After(stay.CheckIn) {
		return false, ErrInvalidInterval
	}
	rm, err := s.roomService.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return false, ErrRoomNotFound
		}
		return false, err
	}
	// Rooms from another hotel are indistinguishable from missing ones.
	if rm.HotelID != hotelID {
		return false, ErrRoomNotFound
	}

	hasOverlap, err := s.repo.HasOverlap(ctx, roomID, stay.CheckIn, stay.CheckOut, "")
	if err != nil {
		return false, err
	}
	return !hasOverlap, nil
}

func (s *service) FindAvailableRooms(ctx context.Context, hotelID string, stay StayInterval) ([]*room.Room, error) {
	if !stay.CheckOut.After(stay.CheckIn) {
		return nil, ErrInvalidInterval
	}
	if _, err := s.hotelService.GetByID(ctx, hotelID); err != nil {
		return nil, err
	}
	return s.roomService.FindAvailable(ctx, hotelID, stay.CheckIn, stay.CheckOut)
}

func (s *service) Calendar(ctx context.Context, hotelID string, year int, month time.Month) ([]*Booking, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	return s.repo.Calendar(ctx, hotelID, from, to)
}

func (s *service) ListGuests(ctx context.Context, hotelID string, page, pageSize int) ([]*Guest, int, error) {
	return s.repo.ListGuests(ctx, hotelID, page, pageSize)
}
