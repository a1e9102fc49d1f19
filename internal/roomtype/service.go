package roomtype

import (
	"context"
	"strings"

	"github.com/vignosaas/hotel-booking-backend/internal/hotel"
)

// CreateRequest describes a new room type.
type CreateRequest struct {
	HotelID      string
	Name         string
	Description  string
	BasePrice    float64
	MaxOccupancy int
	Amenities    []string
	Images       []string
}

// UpdateRequest carries optional room type changes.
type UpdateRequest struct {
	Name         *string
	Description  *string
	BasePrice    *float64
	MaxOccupancy *int
	Amenities    []string
	Images       []string
	IsActive     *bool
}

// Service defines business logic for room types.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*RoomType, error)
	GetByID(ctx context.Context, id string) (*RoomType, error)
	List(ctx context.Context, filter Filter) ([]*RoomType, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*RoomType, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	repo         Repository
	hotelService hotel.Service
}

// NewService creates a new room type Service.
func NewService(repo Repository, hotelService hotel.Service) Service {
	return &service{
		repo:         repo,
		hotelService: hotelService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*RoomType, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.BasePrice < 0 {
		return nil, ErrNegativePrice
	}
	if req.MaxOccupancy < 1 {
		return nil, ErrInvalidOccupancy
	}

	// Validate the hotel exists.
	if _, err := s.hotelService.GetByID(ctx, req.HotelID); err != nil {
		return nil, err
	}

	rt := &RoomType{
		HotelID:      req.HotelID,
		Name:         strings.TrimSpace(req.Name),
		Description:  optional(req.Description),
		BasePrice:    req.BasePrice,
		MaxOccupancy: req.MaxOccupancy,
		Amenities:    emptyIfNil(req.Amenities),
		Images:       emptyIfNil(req.Images),
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*RoomType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*RoomType, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*RoomType, error) {
	rt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		rt.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		rt.Description = req.Description
	}
	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			return nil, ErrNegativePrice
		}
		rt.BasePrice = *req.BasePrice
	}
	if req.MaxOccupancy != nil {
		if *req.MaxOccupancy < 1 {
			return nil, ErrInvalidOccupancy
		}
		rt.MaxOccupancy = *req.MaxOccupancy
	}
	if req.Amenities != nil {
		rt.Amenities = req.Amenities
	}
	if req.Images != nil {
		rt.Images = req.Images
	}
	if req.IsActive != nil {
		rt.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func emptyIfNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
