package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vignosaas/hotel-booking-backend/internal/auth"
)

// Service defines business logic related to users.
type Service interface {
	Register(ctx context.Context, email, password, fullName string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int, error)

	// CreateWithRole creates an account with an explicit role and hotel
	// binding. Used by hotel onboarding and staff management.
	CreateWithRole(ctx context.Context, req CreateRequest) (*User, error)
	SetActive(ctx context.Context, id string, active bool) (*User, error)
	AssignHotel(ctx context.Context, userID, hotelID string) error
	CountStaff(ctx context.Context, hotelID string) (int, error)
}

// CreateRequest describes a privileged account creation.
type CreateRequest struct {
	Email    string
	Password string
	FullName string
	Role     string
	HotelID  *string
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher

	minPasswordLength int
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		minPasswordLength: 8,
	}
}

func validRole(role string) bool {
	switch role {
	case auth.RoleSuperAdmin, auth.RoleHotelOwner, auth.RoleHotelStaff, auth.RoleGuest:
		return true
	}
	return false
}

func (s *service) Register(ctx context.Context, email, password, fullName string) (*User, error) {
	return s.CreateWithRole(ctx, CreateRequest{
		Email:    email,
		Password: password,
		FullName: fullName,
		Role:     auth.RoleGuest,
	})
}

func (s *service) CreateWithRole(ctx context.Context, req CreateRequest) (*User, error) {
	cleanEmail := normalizeEmail(req.Email)
	if cleanEmail == "" {
		return nil, ErrEmailRequired
	}
	if len(req.Password) < s.minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if !validRole(req.Role) {
		return nil, ErrInvalidRole
	}

	// Check if email is already used.
	_, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err == nil {
		return nil, ErrEmailAlreadyUsed
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var fullNamePtr *string
	if strings.TrimSpace(req.FullName) != "" {
		n := strings.TrimSpace(req.FullName)
		fullNamePtr = &n
	}

	u := &User{
		Email:        cleanEmail,
		PasswordHash: hash,
		FullName:     fullNamePtr,
		Role:         req.Role,
		HotelID:      req.HotelID,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}

	if !u.IsActive {
		return nil, ErrInactiveUser
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best effort; do not fail login if the timestamp update fails.
	now := time.Now().UTC()
	_ = s.repo.UpdateLastLogin(ctx, u.ID, now)

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) SetActive(ctx context.Context, id string, active bool) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.IsActive = active
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) AssignHotel(ctx context.Context, userID, hotelID string) error {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	u.HotelID = &hotelID
	return s.repo.Update(ctx, u)
}

func (s *service) CountStaff(ctx context.Context, hotelID string) (int, error) {
	return s.repo.CountByHotel(ctx, hotelID, []string{auth.RoleHotelOwner, auth.RoleHotelStaff})
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
