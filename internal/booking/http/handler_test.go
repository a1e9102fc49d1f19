package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vignosaas/hotel-booking-backend/internal/booking"
	"github.com/vignosaas/hotel-booking-backend/internal/room"
)

// fakeBookingService records the filter handed to List; everything else is
// out of scope for the handler tests.
type fakeBookingService struct {
	lastFilter booking.Filter
}

func (s *fakeBookingService) Create(context.Context, booking.CreateRequest) (*booking.Booking, error) {
	panic("not used")
}

func (s *fakeBookingService) GetByID(context.Context, string) (*booking.Booking, error) {
	panic("not used")
}

func (s *fakeBookingService) GetByReference(context.Context, string) (*booking.Booking, error) {
	panic("not used")
}

func (s *fakeBookingService) List(_ context.Context, filter booking.Filter) ([]*booking.Booking, int, error) {
	s.lastFilter = filter
	return []*booking.Booking{}, 0, nil
}

func (s *fakeBookingService) UpdateStatus(context.Context, string, booking.Status) (*booking.Booking, error) {
	panic("not used")
}

func (s *fakeBookingService) IsRoomAvailable(context.Context, string, string, booking.StayInterval) (bool, error) {
	panic("not used")
}

func (s *fakeBookingService) FindAvailableRooms(context.Context, string, booking.StayInterval) ([]*room.Room, error) {
	panic("not used")
}

func (s *fakeBookingService) Calendar(context.Context, string, int, time.Month) ([]*booking.Booking, error) {
	panic("not used")
}

func (s *fakeBookingService) ListGuests(context.Context, string, int, int) ([]*booking.Guest, int, error) {
	panic("not used")
}

func newListMineContext(t *testing.T, rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/bookings/mine?"+rawQuery, nil)
	return c, w
}

func TestListMinePagination(t *testing.T) {
	svc := &fakeBookingService{}
	h := NewHandler(svc, nil)

	c, w := newListMineContext(t, "page=3&page_size=5")
	c.Set("userID", "guest-7")
	h.ListMine(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "guest-7", svc.lastFilter.GuestID)
	assert.Equal(t, 3, svc.lastFilter.Page)
	assert.Equal(t, 5, svc.lastFilter.PageSize)
}

func TestListMineDefaultsPagination(t *testing.T) {
	svc := &fakeBookingService{}
	h := NewHandler(svc, nil)

	c, w := newListMineContext(t, "")
	c.Set("userID", "guest-7")
	h.ListMine(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.lastFilter.Page)
	assert.Equal(t, 20, svc.lastFilter.PageSize)
}

func TestListMineRequiresAuth(t *testing.T) {
	svc := &fakeBookingService{}
	h := NewHandler(svc, nil)

	c, w := newListMineContext(t, "")
	h.ListMine(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
