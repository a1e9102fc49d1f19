package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vignosaas/hotel-booking-backend/internal/auth"
)

type fakeUserRepo struct {
	byID    map[string]*User
	byEmail map[string]*User
	nextID  int

	lastLoginUpdates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]*User{},
		byEmail: map[string]*User{},
	}
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return ErrEmailAlreadyUsed
	}
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *User) error {
	old, ok := r.byID[u.ID]
	if !ok {
		return ErrNotFound
	}
	delete(r.byEmail, old.Email)
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.LastLoginAt = &t
	r.lastLoginUpdates++
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, filter Filter) ([]*User, int, error) {
	var out []*User
	for _, u := range r.byID {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeUserRepo) CountByHotel(_ context.Context, hotelID string, roles []string) (int, error) {
	count := 0
	for _, u := range r.byID {
		if u.HotelID == nil || *u.HotelID != hotelID {
			continue
		}
		for _, role := range roles {
			if u.Role == role {
				count++
				break
			}
		}
	}
	return count, nil
}

// fakeHasher marks passwords instead of hashing them so tests can assert
// the plaintext never reaches the repository.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

func newUserTestService(t *testing.T) (Service, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	return NewService(repo, fakeHasher{}), repo
}

func TestRegisterAssignsGuestRole(t *testing.T) {
	svc, _ := newUserTestService(t)

	u, err := svc.Register(context.Background(), "Alice@Example.COM ", "supersecret", "Alice Doe")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, auth.RoleGuest, u.Role)
	assert.Equal(t, "hashed:supersecret", u.PasswordHash)
	assert.True(t, u.IsActive)
	require.NotNil(t, u.FullName)
	assert.Equal(t, "Alice Doe", *u.FullName)
	assert.Nil(t, u.HotelID)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newUserTestService(t)

	_, err := svc.Register(context.Background(), "  ", "supersecret", "")
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.Register(context.Background(), "bob@example.com", "short", "")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserTestService(t)

	_, err := svc.Register(context.Background(), "carol@example.com", "supersecret", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "CAROL@example.com", "anothersecret", "")
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestCreateWithRoleRejectsUnknownRole(t *testing.T) {
	svc, _ := newUserTestService(t)

	_, err := svc.CreateWithRole(context.Background(), CreateRequest{
		Email:    "dave@example.com",
		Password: "supersecret",
		Role:     "janitor",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLogin(t *testing.T) {
	svc, repo := newUserTestService(t)

	_, err := svc.Register(context.Background(), "erin@example.com", "supersecret", "")
	require.NoError(t, err)

	u, err := svc.Login(context.Background(), "Erin@Example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, "erin@example.com", u.Email)
	assert.Equal(t, 1, repo.lastLoginUpdates)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newUserTestService(t)

	_, err := svc.Register(context.Background(), "frank@example.com", "supersecret", "")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "frank@example.com", "wrongsecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmailLooksLikeBadCredentials(t *testing.T) {
	svc, _ := newUserTestService(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	svc, _ := newUserTestService(t)

	u, err := svc.Register(context.Background(), "grace@example.com", "supersecret", "")
	require.NoError(t, err)

	_, err = svc.SetActive(context.Background(), u.ID, false)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "grace@example.com", "supersecret")
	assert.ErrorIs(t, err, ErrInactiveUser)
}

func TestCountStaffIgnoresGuests(t *testing.T) {
	svc, _ := newUserTestService(t)
	hotelID := "hotel-1"

	_, err := svc.CreateWithRole(context.Background(), CreateRequest{
		Email:    "owner@example.com",
		Password: "supersecret",
		Role:     auth.RoleHotelOwner,
		HotelID:  &hotelID,
	})
	require.NoError(t, err)

	_, err = svc.CreateWithRole(context.Background(), CreateRequest{
		Email:    "staff@example.com",
		Password: "supersecret",
		Role:     auth.RoleHotelStaff,
		HotelID:  &hotelID,
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "guest@example.com", "supersecret", "")
	require.NoError(t, err)

	count, err := svc.CountStaff(context.Background(), hotelID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAssignHotel(t *testing.T) {
	svc, _ := newUserTestService(t)

	u, err := svc.CreateWithRole(context.Background(), CreateRequest{
		Email:    "hank@example.com",
		Password: "supersecret",
		Role:     auth.RoleHotelStaff,
	})
	require.NoError(t, err)

	require.NoError(t, svc.AssignHotel(context.Background(), u.ID, "hotel-9"))

	got, err := svc.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.HotelID)
	assert.Equal(t, "hotel-9", *got.HotelID)
}
