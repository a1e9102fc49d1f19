package hotel

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/vignosaas/hotel-booking-backend/internal/auth"
	"github.com/vignosaas/hotel-booking-backend/internal/billing"
	"github.com/vignosaas/hotel-booking-backend/internal/cache"
	"github.com/vignosaas/hotel-booking-backend/internal/user"
)

// OnboardRequest describes a super-admin hotel onboarding: the hotel and its
// owner account are created in one flow.
type OnboardRequest struct {
	Name        string
	Description string
	Address     string
	City        string
	State       string
	Country     string
	PostalCode  string
	Phone       string
	Email       string
	Website     string

	OwnerEmail    string
	OwnerName     string
	OwnerPassword string

	Plan string // defaults to the free plan
}

// UpdateRequest carries optional hotel profile changes.
type UpdateRequest struct {
	Name        *string
	Description *string
	Address     *string
	City        *string
	State       *string
	Country     *string
	PostalCode  *string
	Phone       *string
	Email       *string
	Website     *string
}

// AddStaffRequest creates a staff account bound to a hotel.
type AddStaffRequest struct {
	HotelID  string
	Email    string
	Password string
	FullName string
}

// Service defines business logic for hotels.
type Service interface {
	Onboard(ctx context.Context, req OnboardRequest) (*Hotel, *user.User, error)
	GetByID(ctx context.Context, id string) (*Hotel, error)
	GetBySlug(ctx context.Context, slug string) (*Hotel, error)
	Search(ctx context.Context, filter Filter) ([]*Hotel, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Hotel, error)
	SetActive(ctx context.Context, id string, active bool) (*Hotel, error)
	AddStaff(ctx context.Context, req AddStaffRequest) (*user.User, error)

	// SetSubscription is invoked by the billing module when a plan changes.
	SetSubscription(ctx context.Context, hotelID, plan, status string, cycleStart, cycleEnd time.Time) error
}

type service struct {
	repo        Repository
	userService user.Service
	cache       cache.Cache
	cacheTTL    time.Duration
}

// NewService creates a new hotel Service. The cache holds public search
// results for a short TTL.
func NewService(repo Repository, userService user.Service, c cache.Cache, cacheTTL time.Duration) Service {
	return &service{
		repo:        repo,
		userService: userService,
		cache:       c,
		cacheTTL:    cacheTTL,
	}
}

func (s *service) Onboard(ctx context.Context, req OnboardRequest) (*Hotel, *user.User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, nil, ErrEmptyName
	}

	planID := req.Plan
	if planID == "" {
		planID = billing.PlanFree
	}
	if _, ok := billing.PlanByID(planID); !ok {
		return nil, nil, ErrInvalidPlan
	}

	// Owner account first: the hotel row references it.
	owner, err := s.userService.CreateWithRole(ctx, user.CreateRequest{
		Email:    req.OwnerEmail,
		Password: req.OwnerPassword,
		FullName: req.OwnerName,
		Role:     auth.RoleHotelOwner,
	})
	if err != nil {
		return nil, nil, err
	}

	hotelSlug, err := s.uniqueSlug(ctx, req.Name)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	cycleEnd := now.AddDate(0, 0, 30)

	h := &Hotel{
		Name:               strings.TrimSpace(req.Name),
		Slug:               hotelSlug,
		Description:        optional(req.Description),
		Address:            optional(req.Address),
		City:               optional(req.City),
		State:              optional(req.State),
		Country:            optional(req.Country),
		PostalCode:         optional(req.PostalCode),
		Phone:              optional(req.Phone),
		Email:              optional(req.Email),
		Website:            optional(req.Website),
		OwnerID:            owner.ID,
		SubscriptionPlan:   planID,
		SubscriptionStatus: SubscriptionTrial,
		BillingCycleStart:  &now,
		BillingCycleEnd:    &cycleEnd,
		IsActive:           true,
	}

	if err := s.repo.Create(ctx, h); err != nil {
		return nil, nil, err
	}

	// Bind the owner to the new hotel.
	if err := s.userService.AssignHotel(ctx, owner.ID, h.ID); err != nil {
		return nil, nil, ErrOwnerCreate
	}
	hotelID := h.ID
	owner.HotelID = &hotelID

	return h, owner, nil
}

// uniqueSlug derives a URL slug from the hotel name, appending a numeric
// suffix until it is free.
func (s *service) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(name)
	candidate := base
	for i := 2; ; i++ {
		exists, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *service) GetByID(ctx context.Context, id string) (*Hotel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Hotel, error) {
	return s.repo.GetBySlug(ctx, slug)
}

type cachedSearch struct {
	Hotels []*Hotel `json:"hotels"`
	Total  int      `json:"total"`
}

func (s *service) Search(ctx context.Context, filter Filter) ([]*Hotel, int, error) {
	key := fmt.Sprintf("hotel_search:%s:%s:%t:%d:%d",
		strings.ToLower(filter.Keyword), strings.ToLower(filter.City),
		filter.OnlyActive, filter.Page, filter.PageSize)

	if val, err := s.cache.Get(ctx, key); err == nil {
		var cached cachedSearch
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached.Hotels, cached.Total, nil
		}
	}

	hotels, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	// Best effort: a failed cache write never fails the search.
	if data, err := json.Marshal(cachedSearch{Hotels: hotels, Total: total}); err == nil {
		_ = s.cache.Set(ctx, key, string(data), s.cacheTTL)
	}

	return hotels, total, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Hotel, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		h.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		h.Description = req.Description
	}
	if req.Address != nil {
		h.Address = req.Address
	}
	if req.City != nil {
		h.City = req.City
	}
	if req.State != nil {
		h.State = req.State
	}
	if req.Country != nil {
		h.Country = req.Country
	}
	if req.PostalCode != nil {
		h.PostalCode = req.PostalCode
	}
	if req.Phone != nil {
		h.Phone = req.Phone
	}
	if req.Email != nil {
		h.Email = req.Email
	}
	if req.Website != nil {
		h.Website = req.Website
	}

	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) SetActive(ctx context.Context, id string, active bool) (*Hotel, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	h.IsActive = active
	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) AddStaff(ctx context.Context, req AddStaffRequest) (*user.User, error) {
	h, err := s.repo.GetByID(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}

	plan, ok := billing.PlanByID(h.SubscriptionPlan)
	if !ok {
		return nil, ErrInvalidPlan
	}

	staffCount, err := s.userService.CountStaff(ctx, h.ID)
	if err != nil {
		return nil, err
	}
	if !plan.AllowsStaff(staffCount + 1) {
		return nil, ErrStaffLimit
	}

	hotelID := h.ID
	return s.userService.CreateWithRole(ctx, user.CreateRequest{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     auth.RoleHotelStaff,
		HotelID:  &hotelID,
	})
}

func (s *service) SetSubscription(ctx context.Context, hotelID, plan, status string, cycleStart, cycleEnd time.Time) error {
	h, err := s.repo.GetByID(ctx, hotelID)
	if err != nil {
		return err
	}
	if _, ok := billing.PlanByID(plan); !ok {
		return ErrInvalidPlan
	}

	h.SubscriptionPlan = plan
	h.SubscriptionStatus = status
	h.BillingCycleStart = &cycleStart
	h.BillingCycleEnd = &cycleEnd

	return s.repo.Update(ctx, h)
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
