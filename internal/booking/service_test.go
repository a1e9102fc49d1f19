package booking

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vignosaas/hotel-booking-backend/internal/hotel"
	"github.com/vignosaas/hotel-booking-backend/internal/room"
	"github.com/vignosaas/hotel-booking-backend/internal/roomtype"
	"github.com/vignosaas/hotel-booking-backend/internal/user"
)

type fakeRepo struct {
	bookings   map[string]*Booking
	nextID     int
	createErrs []error // queued errors returned by Create before succeeding
	countSince int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: map[string]*Booking{}}
}

func (f *fakeRepo) add(b *Booking) *Booking {
	f.nextID++
	b.ID = "bk-" + strconv.Itoa(f.nextID)
	f.bookings[b.ID] = b
	return b
}

func (f *fakeRepo) Create(_ context.Context, b *Booking) error {
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	for _, existing := range f.bookings {
		if existing.Reference == b.Reference {
			return errReferenceTaken
		}
	}
	clone := *b
	f.add(&clone)
	b.ID = clone.ID
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeRepo) GetByReference(_ context.Context, reference string) (*Booking, error) {
	for _, b := range f.bookings {
		if b.Reference == reference {
			clone := *b
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, _ Filter) ([]*Booking, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, b *Booking) error {
	existing, ok := f.bookings[b.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Status = b.Status
	return nil
}

func (f *fakeRepo) HasOverlap(_ context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error) {
	stay := StayInterval{CheckIn: checkIn, CheckOut: checkOut}
	for _, b := range f.bookings {
		if b.RoomID != roomID || b.ID == excludeBookingID {
			continue
		}
		if b.Status.Blocks() && b.Stay().Overlaps(stay) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Calendar(_ context.Context, hotelID string, from, to time.Time) ([]*Booking, error) {
	span := StayInterval{CheckIn: from, CheckOut: to}
	var out []*Booking
	for _, b := range f.bookings {
		if b.HotelID == hotelID && b.Stay().Overlaps(span) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListGuests(_ context.Context, _ string, _, _ int) ([]*Guest, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) CountForHotelSince(_ context.Context, _ string, _ time.Time) (int, error) {
	return f.countSince, nil
}

type fakeRoomService struct {
	rooms map[string]*room.Room
}

func (f *fakeRoomService) Create(_ context.Context, _ room.CreateRequest) (*room.Room, error) {
	return nil, room.ErrNotFound
}

func (f *fakeRoomService) GetByID(_ context.Context, id string) (*room.Room, error) {
	rm, ok := f.rooms[id]
	if !ok {
		return nil, room.ErrNotFound
	}
	return rm, nil
}

func (f *fakeRoomService) List(_ context.Context, _ room.Filter) ([]*room.Room, int, error) {
	return nil, 0, nil
}

func (f *fakeRoomService) Update(_ context.Context, _ string, _ room.UpdateRequest) (*room.Room, error) {
	return nil, room.ErrNotFound
}

func (f *fakeRoomService) SetStatus(_ context.Context, _ string, _ room.Status) (*room.Room, error) {
	return nil, room.ErrNotFound
}

func (f *fakeRoomService) FindAvailable(_ context.Context, hotelID string, _, _ time.Time) ([]*room.Room, error) {
	var out []*room.Room
	for _, rm := range f.rooms {
		if rm.HotelID == hotelID && rm.Status == room.StatusAvailable {
			out = append(out, rm)
		}
	}
	return out, nil
}

type fakeRoomTypeService struct {
	types map[string]*roomtype.RoomType
}

func (f *fakeRoomTypeService) Create(_ context.Context, _ roomtype.CreateRequest) (*roomtype.RoomType, error) {
	return nil, roomtype.ErrNotFound
}

func (f *fakeRoomTypeService) GetByID(_ context.Context, id string) (*roomtype.RoomType, error) {
	rt, ok := f.types[id]
	if !ok {
		return nil, roomtype.ErrNotFound
	}
	return rt, nil
}

func (f *fakeRoomTypeService) List(_ context.Context, _ roomtype.Filter) ([]*roomtype.RoomType, int, error) {
	return nil, 0, nil
}

func (f *fakeRoomTypeService) Update(_ context.Context, _ string, _ roomtype.UpdateRequest) (*roomtype.RoomType, error) {
	return nil, roomtype.ErrNotFound
}

func (f *fakeRoomTypeService) Deactivate(_ context.Context, _ string) error {
	return roomtype.ErrNotFound
}

type fakeHotelService struct {
	hotels map[string]*hotel.Hotel
}

func (f *fakeHotelService) Onboard(_ context.Context, _ hotel.OnboardRequest) (*hotel.Hotel, *user.User, error) {
	return nil, nil, hotel.ErrNotFound
}

func (f *fakeHotelService) GetByID(_ context.Context, id string) (*hotel.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return nil, hotel.ErrNotFound
	}
	return h, nil
}

func (f *fakeHotelService) GetBySlug(_ context.Context, _ string) (*hotel.Hotel, error) {
	return nil, hotel.ErrNotFound
}

func (f *fakeHotelService) Search(_ context.Context, _ hotel.Filter) ([]*hotel.Hotel, int, error) {
	return nil, 0, nil
}

func (f *fakeHotelService) Update(_ context.Context, _ string, _ hotel.UpdateRequest) (*hotel.Hotel, error) {
	return nil, hotel.ErrNotFound
}

func (f *fakeHotelService) SetActive(_ context.Context, _ string, _ bool) (*hotel.Hotel, error) {
	return nil, hotel.ErrNotFound
}

func (f *fakeHotelService) AddStaff(_ context.Context, _ hotel.AddStaffRequest) (*user.User, error) {
	return nil, hotel.ErrNotFound
}

func (f *fakeHotelService) SetSubscription(_ context.Context, _, _, _ string, _, _ time.Time) error {
	return nil
}

type testEnv struct {
	repo    *fakeRepo
	service Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repo := newFakeRepo()
	rooms := &fakeRoomService{rooms: map[string]*room.Room{
		"room-101": {
			ID: "room-101", HotelID: "hotel-1", RoomTypeID: "rt-std",
			RoomNumber: "101", Status: room.StatusAvailable,
		},
		"room-102": {
			ID: "room-102", HotelID: "hotel-1", RoomTypeID: "rt-std",
			RoomNumber: "102", Status: room.StatusAvailable,
		},
	}}
	types := &fakeRoomTypeService{types: map[string]*roomtype.RoomType{
		"rt-std": {
			ID: "rt-std", HotelID: "hotel-1", Name: "Standard",
			BasePrice: 100, MaxOccupancy: 3, IsActive: true,
		},
	}}
	hotels := &fakeHotelService{hotels: map[string]*hotel.Hotel{
		"hotel-1": {
			ID: "hotel-1", Name: "Test Hotel",
			SubscriptionPlan: "free", SubscriptionStatus: "active",
		},
	}}

	return &testEnv{
		repo:    repo,
		service: NewService(repo, rooms, types, hotels),
	}
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		HotelID:    "hotel-1",
		RoomID:     "room-101",
		GuestName:  "Jamie Doe",
		GuestEmail: "jamie@example.com",
		CheckIn:    date(2026, 3, 10),
		CheckOut:   date(2026, 3, 13),
		Adults:     2,
	}
}

func TestServiceCreate(t *testing.T) {
	env := newTestEnv(t)

	b, err := env.service.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, StatusPending, b.Status)
	assert.InDelta(t, 300.0, b.TotalAmount, 0.0001)
	assert.Len(t, b.Reference, 10)
	assert.Equal(t, "BK", b.Reference[:2])
	assert.Equal(t, "101", b.RoomNumber)
	assert.Equal(t, "Standard", b.RoomTypeName)
}

func TestServiceCreateInvalidInterval(t *testing.T) {
	env := newTestEnv(t)

	req := validCreateRequest()
	req.CheckIn = date(2026, 3, 13)
	req.CheckOut = date(2026, 3, 10)

	_, err := env.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	req.CheckOut = req.CheckIn
	_, err = env.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestServiceCreateGuestNameRequired(t *testing.T) {
	env := newTestEnv(t)

	req := validCreateRequest()
	req.GuestName = "   "

	_, err := env.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrGuestNameRequired)
}

func TestServiceCreateOccupancyExceeded(t *testing.T) {
	env := newTestEnv(t)

	req := validCreateRequest()
	req.Adults = 2
	req.Children = 2 // Standard sleeps 3

	_, err := env.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrOccupancyExceeded)
}

func TestServiceCreateRoomNotFound(t *testing.T) {
	env := newTestEnv(t)

	req := validCreateRequest()
	req.RoomID = "room-999"

	_, err := env.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestServiceCreateRoomFromOtherHotel(t *testing.T) {
	env := newTestEnv(t)

	req := validCreateRequest()
	req.HotelID = "hotel-2"

	_, err := env.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestServiceCreateConflict(t *testing.T) {
	env := newTestEnv(t)

	env.repo.add(&Booking{
		HotelID: "hotel-1", RoomID: "room-101",
		CheckIn: date(2026, 3, 11), CheckOut: date(2026, 3, 14),
		Status: StatusConfirmed,
	})

	req := validCreateRequest()
	req.Status = StatusConfirmed

	_, err := env.service.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestServiceCreatePendingIgnoresConflict(t *testing.T) {
	// A pending request does not hold the room, so an existing confirmed
	// stay does not reject it; the conflict surfaces at confirmation time.
	env := newTestEnv(t)

	env.repo.add(&Booking{
		HotelID: "hotel-1", RoomID: "room-101",
		CheckIn: date(2026, 3, 11), CheckOut: date(2026, 3, 14),
		Status: StatusConfirmed,
	})

	b, err := env.service.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, StatusPending, b.Status)
}

func TestServiceCreateBackToBack(t *testing.T) {
	env := newTestEnv(t)

	env.repo.add(&Booking{
		HotelID: "hotel-1", RoomID: "room-101",
		CheckIn: date(2026, 3, 13), CheckOut: date(2026, 3, 16),
		Status: StatusConfirmed,
	})

	req := validCreateRequest() // checks out 2026-03-13
	req.Status = StatusConfirmed

	_, err := env.service.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestServiceCreateReferenceRetry(t *testing.T) {
	env := newTestEnv(t)

	env.repo.createErrs = []error{errReferenceTaken, errReferenceTaken}

	b, err := env.service.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, b.Reference)
}

func TestServiceCreateReferenceExhausted(t *testing.T) {
	env := newTestEnv(t)

	env.repo.createErrs = []error{errReferenceTaken, errReferenceTaken, errReferenceTaken}

	_, err := env.service.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrReferenceExhausted)
}

func TestServiceCreateBookingLimit(t *testing.T) {
	env := newTestEnv(t)

	// Free plan allows 50 bookings per cycle.
	env.repo.countSince = 50

	_, err := env.service.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrBookingLimit)
}

func TestServiceUpdateStatus(t *testing.T) {
	env := newTestEnv(t)

	b, err := env.service.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	b, err = env.service.UpdateStatus(context.Background(), b.ID, StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, b.Status)

	b, err = env.service.UpdateStatus(context.Background(), b.ID, StatusCheckedIn)
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, b.Status)

	b, err = env.service.UpdateStatus(context.Background(), b.ID, StatusCheckedOut)
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedOut, b.Status)

	// Checked-out is terminal.
	_, err = env.service.UpdateStatus(context.Background(), b.ID, StatusConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestServiceUpdateStatusIllegalTransition(t *testing.T) {
	env := newTestEnv(t)

	b, err := env.service.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = env.service.UpdateStatus(context.Background(), b.ID, StatusCheckedIn)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestServiceUpdateStatusConfirmConflict(t *testing.T) {
	env := newTestEnv(t)

	pending, err := env.service.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// Another guest confirms an overlapping stay first.
	env.repo.add(&Booking{
		HotelID: "hotel-1", RoomID: "room-101",
		CheckIn: date(2026, 3, 12), CheckOut: date(2026, 3, 14),
		Status: StatusConfirmed,
	})

	_, err = env.service.UpdateStatus(context.Background(), pending.ID, StatusConfirmed)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestServiceIsRoomAvailable(t *testing.T) {
	env := newTestEnv(t)

	stay := mustStay(t, date(2026, 3, 10), date(2026, 3, 13))

	ok, err := env.service.IsRoomAvailable(context.Background(), "room-101", "hotel-1", stay)
	require.NoError(t, err)
	assert.True(t, ok)

	env.repo.add(&Booking{
		HotelID: "hotel-1", RoomID: "room-101",
		CheckIn: date(2026, 3, 12), CheckOut: date(2026, 3, 15),
		Status: StatusCheckedIn,
	})

	ok, err = env.service.IsRoomAvailable(context.Background(), "room-101", "hotel-1", stay)
	require.NoError(t, err)
	assert.False(t, ok)

	// The sibling room is unaffected.
	ok, err = env.service.IsRoomAvailable(context.Background(), "room-102", "hotel-1", stay)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestServiceIsRoomAvailableUnknownRoom(t *testing.T) {
	env := newTestEnv(t)

	stay := mustStay(t, date(2026, 3, 10), date(2026, 3, 13))
	_, err := env.service.IsRoomAvailable(context.Background(), "room-999", "hotel-1", stay)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestServiceIsRoomAvailableWrongHotel(t *testing.T) {
	env := newTestEnv(t)

	stay := mustStay(t, date(2026, 3, 10), date(2026, 3, 13))
	_, err := env.service.IsRoomAvailable(context.Background(), "room-101", "hotel-2", stay)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestServiceFindAvailableRoomsInvalidInterval(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.FindAvailableRooms(context.Background(), "hotel-1", StayInterval{
		CheckIn:  date(2026, 3, 13),
		CheckOut: date(2026, 3, 10),
	})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
