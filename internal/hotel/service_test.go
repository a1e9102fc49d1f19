package hotel

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vignosaas/hotel-booking-backend/internal/auth"
	"github.com/vignosaas/hotel-booking-backend/internal/billing"
	"github.com/vignosaas/hotel-booking-backend/internal/cache"
	"github.com/vignosaas/hotel-booking-backend/internal/user"
)

type fakeHotelRepo struct {
	hotels    map[string]*Hotel
	nextID    int
	listCalls int
}

func newFakeHotelRepo() *fakeHotelRepo {
	return &fakeHotelRepo{hotels: map[string]*Hotel{}}
}

func (f *fakeHotelRepo) Create(_ context.Context, h *Hotel) error {
	for _, existing := range f.hotels {
		if existing.Slug == h.Slug {
			return ErrSlugTaken
		}
	}
	f.nextID++
	h.ID = "hotel-" + strconv.Itoa(f.nextID)
	f.hotels[h.ID] = h
	return nil
}

func (f *fakeHotelRepo) GetByID(_ context.Context, id string) (*Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return nil, ErrNotFound
	}
	return h, nil
}

func (f *fakeHotelRepo) GetBySlug(_ context.Context, slug string) (*Hotel, error) {
	for _, h := range f.hotels {
		if h.Slug == slug {
			return h, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeHotelRepo) List(_ context.Context, _ Filter) ([]*Hotel, int, error) {
	f.listCalls++
	var out []*Hotel
	for _, h := range f.hotels {
		if h.IsActive {
			out = append(out, h)
		}
	}
	return out, len(out), nil
}

func (f *fakeHotelRepo) Update(_ context.Context, h *Hotel) error {
	if _, ok := f.hotels[h.ID]; !ok {
		return ErrNotFound
	}
	f.hotels[h.ID] = h
	return nil
}

func (f *fakeHotelRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, h := range f.hotels {
		if h.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserService struct {
	users      map[string]*user.User
	nextID     int
	staffCount int
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{users: map[string]*user.User{}}
}

func (f *fakeUserService) Register(_ context.Context, _, _, _ string) (*user.User, error) {
	return nil, user.ErrNotFound
}

func (f *fakeUserService) Login(_ context.Context, _, _ string) (*user.User, error) {
	return nil, user.ErrInvalidCredentials
}

func (f *fakeUserService) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserService) List(_ context.Context, _ user.Filter) ([]*user.User, int, error) {
	return nil, 0, nil
}

func (f *fakeUserService) CreateWithRole(_ context.Context, req user.CreateRequest) (*user.User, error) {
	for _, existing := range f.users {
		if existing.Email == req.Email {
			return nil, user.ErrEmailAlreadyUsed
		}
	}
	f.nextID++
	u := &user.User{
		ID:       "user-" + strconv.Itoa(f.nextID),
		Email:    req.Email,
		Role:     req.Role,
		HotelID:  req.HotelID,
		IsActive: true,
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserService) SetActive(_ context.Context, _ string, _ bool) (*user.User, error) {
	return nil, user.ErrNotFound
}

func (f *fakeUserService) AssignHotel(_ context.Context, userID, hotelID string) error {
	u, ok := f.users[userID]
	if !ok {
		return user.ErrNotFound
	}
	u.HotelID = &hotelID
	return nil
}

func (f *fakeUserService) CountStaff(_ context.Context, _ string) (int, error) {
	return f.staffCount, nil
}

func validOnboardRequest() OnboardRequest {
	return OnboardRequest{
		Name:          "Grand Palace Hotel",
		City:          "Lisbon",
		Country:       "Portugal",
		OwnerEmail:    "owner@grandpalace.example",
		OwnerName:     "Alex Silva",
		OwnerPassword: "supersecret",
	}
}

func TestOnboard(t *testing.T) {
	repo := newFakeHotelRepo()
	users := newFakeUserService()
	svc := NewService(repo, users, cache.NewNoop(), time.Minute)

	h, owner, err := svc.Onboard(context.Background(), validOnboardRequest())
	require.NoError(t, err)

	assert.Equal(t, "grand-palace-hotel", h.Slug)
	assert.Equal(t, billing.PlanFree, h.SubscriptionPlan)
	assert.Equal(t, SubscriptionTrial, h.SubscriptionStatus)
	assert.True(t, h.IsActive)
	require.NotNil(t, h.BillingCycleStart)
	require.NotNil(t, h.BillingCycleEnd)
	assert.Equal(t, h.BillingCycleStart.AddDate(0, 0, 30), *h.BillingCycleEnd)

	assert.Equal(t, auth.RoleHotelOwner, owner.Role)
	require.NotNil(t, owner.HotelID)
	assert.Equal(t, h.ID, *owner.HotelID)
	assert.Equal(t, owner.ID, h.OwnerID)
}

func TestOnboardSlugCollision(t *testing.T) {
	repo := newFakeHotelRepo()
	users := newFakeUserService()
	svc := NewService(repo, users, cache.NewNoop(), time.Minute)

	req := validOnboardRequest()
	_, _, err := svc.Onboard(context.Background(), req)
	require.NoError(t, err)

	req.OwnerEmail = "second@grandpalace.example"
	h2, _, err := svc.Onboard(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "grand-palace-hotel-2", h2.Slug)

	req.OwnerEmail = "third@grandpalace.example"
	h3, _, err := svc.Onboard(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "grand-palace-hotel-3", h3.Slug)
}

func TestOnboardUnknownPlan(t *testing.T) {
	svc := NewService(newFakeHotelRepo(), newFakeUserService(), cache.NewNoop(), time.Minute)

	req := validOnboardRequest()
	req.Plan = "platinum"

	_, _, err := svc.Onboard(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestAddStaffPlanLimit(t *testing.T) {
	repo := newFakeHotelRepo()
	users := newFakeUserService()
	svc := NewService(repo, users, cache.NewNoop(), time.Minute)

	h, _, err := svc.Onboard(context.Background(), validOnboardRequest())
	require.NoError(t, err)

	// Free plan allows one staff member total; the owner already counts.
	users.staffCount = 1

	_, err = svc.AddStaff(context.Background(), AddStaffRequest{
		HotelID:  h.ID,
		Email:    "staff@grandpalace.example",
		Password: "supersecret",
		FullName: "Sam Costa",
	})
	assert.ErrorIs(t, err, ErrStaffLimit)
}

func TestSearchCachesResults(t *testing.T) {
	mr := miniredis.RunT(t)
	client := cache.NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })

	repo := newFakeHotelRepo()
	users := newFakeUserService()
	svc := NewService(repo, users, cache.NewRedis(client), time.Minute)

	_, _, err := svc.Onboard(context.Background(), validOnboardRequest())
	require.NoError(t, err)

	filter := Filter{OnlyActive: true, Page: 1, PageSize: 20}

	_, total, err := svc.Search(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, repo.listCalls)

	// Second identical search is served from the cache.
	_, total, err = svc.Search(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, repo.listCalls)
}

func TestSetSubscription(t *testing.T) {
	repo := newFakeHotelRepo()
	users := newFakeUserService()
	svc := NewService(repo, users, cache.NewNoop(), time.Minute)

	h, _, err := svc.Onboard(context.Background(), validOnboardRequest())
	require.NoError(t, err)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	err = svc.SetSubscription(context.Background(), h.ID, billing.PlanPro, SubscriptionActive, start, end)
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), h.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.PlanPro, got.SubscriptionPlan)
	assert.Equal(t, SubscriptionActive, got.SubscriptionStatus)
}
