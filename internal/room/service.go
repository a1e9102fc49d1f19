package room

import (
	"context"
	"strings"
	"time"

	"github.com/vignosaas/hotel-booking-backend/internal/billing"
	"github.com/vignosaas/hotel-booking-backend/internal/hotel"
	"github.com/vignosaas/hotel-booking-backend/internal/roomtype"
)

// CreateRequest describes a new room.
type CreateRequest struct {
	HotelID    string
	RoomTypeID string
	RoomNumber string
	Floor      *int
	Notes      *string
}

// UpdateRequest carries optional room changes.
type UpdateRequest struct {
	RoomTypeID *string
	RoomNumber *string
	Floor      *int
	Status     *string
	Notes      *string
}

// Service defines business logic for rooms.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	SetStatus(ctx context.Context, id string, status Status) (*Room, error)
	FindAvailable(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]*Room, error)
}

type service struct {
	repo            Repository
	hotelService    hotel.Service
	roomTypeService roomtype.Service
}

// NewService creates a new room Service.
func NewService(repo Repository, hotelService hotel.Service, roomTypeService roomtype.Service) Service {
	return &service{
		repo:            repo,
		hotelService:    hotelService,
		roomTypeService: roomTypeService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if strings.TrimSpace(req.RoomNumber) == "" {
		return nil, ErrEmptyNumber
	}

	h, err := s.hotelService.GetByID(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}

	rt, err := s.roomTypeService.GetByID(ctx, req.RoomTypeID)
	if err != nil {
		return nil, ErrInvalidRoomType
	}
	if rt.HotelID != req.HotelID {
		return nil, ErrTypeMismatch
	}

	// Plan limits count every room in the hotel, regardless of status.
	count, err := s.repo.CountByHotel(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}
	plan, ok := billing.PlanByID(h.SubscriptionPlan)
	if ok && !plan.AllowsRooms(count+1) {
		return nil, ErrRoomLimit
	}

	rm := &Room{
		HotelID:    req.HotelID,
		RoomTypeID: req.RoomTypeID,
		RoomNumber: strings.TrimSpace(req.RoomNumber),
		Floor:      req.Floor,
		Status:     StatusAvailable,
		Notes:      req.Notes,
	}
	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	rm.RoomTypeName = rt.Name
	return rm, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoomTypeID != nil && *req.RoomTypeID != rm.RoomTypeID {
		rt, err := s.roomTypeService.GetByID(ctx, *req.RoomTypeID)
		if err != nil {
			return nil, ErrInvalidRoomType
		}
		if rt.HotelID != rm.HotelID {
			return nil, ErrTypeMismatch
		}
		rm.RoomTypeID = *req.RoomTypeID
		rm.RoomTypeName = rt.Name
	}
	if req.RoomNumber != nil {
		if strings.TrimSpace(*req.RoomNumber) == "" {
			return nil, ErrEmptyNumber
		}
		rm.RoomNumber = strings.TrimSpace(*req.RoomNumber)
	}
	if req.Floor != nil {
		rm.Floor = req.Floor
	}
	if req.Status != nil {
		status := Status(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		rm.Status = status
	}
	if req.Notes != nil {
		rm.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) SetStatus(ctx context.Context, id string, status Status) (*Room, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rm.Status = status

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) FindAvailable(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]*Room, error) {
	return s.repo.FindAvailable(ctx, hotelID, checkIn, checkOut)
}
