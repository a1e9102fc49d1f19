package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stayBooking(status Status, checkIn, checkOut time.Time) *Booking {
	return &Booking{CheckIn: checkIn, CheckOut: checkOut, Status: status}
}

func TestFreeForStay(t *testing.T) {
	stay := StayInterval{CheckIn: date(2026, 3, 10), CheckOut: date(2026, 3, 15)}

	tests := []struct {
		name     string
		bookings []*Booking
		want     bool
	}{
		{
			name:     "no bookings",
			bookings: nil,
			want:     true,
		},
		{
			name: "confirmed overlap blocks",
			bookings: []*Booking{
				stayBooking(StatusConfirmed, date(2026, 3, 12), date(2026, 3, 14)),
			},
			want: false,
		},
		{
			name: "checked-in overlap blocks",
			bookings: []*Booking{
				stayBooking(StatusCheckedIn, date(2026, 3, 8), date(2026, 3, 11)),
			},
			want: false,
		},
		{
			name: "pending overlap does not block",
			bookings: []*Booking{
				stayBooking(StatusPending, date(2026, 3, 10), date(2026, 3, 15)),
			},
			want: true,
		},
		{
			name: "cancelled overlap does not block",
			bookings: []*Booking{
				stayBooking(StatusCancelled, date(2026, 3, 10), date(2026, 3, 15)),
			},
			want: true,
		},
		{
			name: "checked-out overlap does not block",
			bookings: []*Booking{
				stayBooking(StatusCheckedOut, date(2026, 3, 10), date(2026, 3, 15)),
			},
			want: true,
		},
		{
			name: "back-to-back confirmed stays do not block",
			bookings: []*Booking{
				stayBooking(StatusConfirmed, date(2026, 3, 5), date(2026, 3, 10)),
				stayBooking(StatusConfirmed, date(2026, 3, 15), date(2026, 3, 20)),
			},
			want: true,
		},
		{
			name: "one blocking among non-blocking",
			bookings: []*Booking{
				stayBooking(StatusCancelled, date(2026, 3, 10), date(2026, 3, 15)),
				stayBooking(StatusPending, date(2026, 3, 11), date(2026, 3, 13)),
				stayBooking(StatusConfirmed, date(2026, 3, 14), date(2026, 3, 16)),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FreeForStay(tt.bookings, stay))
		})
	}
}

func TestStatusBlocks(t *testing.T) {
	assert.True(t, StatusConfirmed.Blocks())
	assert.True(t, StatusCheckedIn.Blocks())
	assert.False(t, StatusPending.Blocks())
	assert.False(t, StatusCheckedOut.Blocks())
	assert.False(t, StatusCancelled.Blocks())
}

func TestStatusCanTransition(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCheckedIn, false},
		{StatusConfirmed, StatusCheckedIn, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCheckedOut, false},
		{StatusCheckedIn, StatusCheckedOut, true},
		{StatusCheckedIn, StatusCancelled, false},
		{StatusCheckedOut, StatusConfirmed, false},
		{StatusCheckedOut, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}
