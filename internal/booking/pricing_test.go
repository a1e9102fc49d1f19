package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		checkIn  time.Time
		checkOut time.Time
		want     float64
	}{
		{"three nights at flat rate", 100, date(2026, 3, 10), date(2026, 3, 13), 300},
		{"one night fractional rate", 99.5, date(2026, 3, 10), date(2026, 3, 11), 99.50},
		{"seven nights", 120.75, date(2026, 3, 1), date(2026, 3, 8), 845.25},
		{"sub-cent rounds down", 10.004, date(2026, 3, 10), date(2026, 3, 11), 10.00},
		{"sub-cent rounds up", 10.006, date(2026, 3, 10), date(2026, 3, 11), 10.01},
		{"repeating cents", 66.664, date(2026, 3, 10), date(2026, 3, 13), 199.99},
		{"zero rate", 0, date(2026, 3, 10), date(2026, 3, 12), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay := mustStay(t, tt.checkIn, tt.checkOut)
			got, err := ComputeTotal(tt.rate, stay)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestComputeTotalInvalidInterval(t *testing.T) {
	_, err := ComputeTotal(100, StayInterval{
		CheckIn:  date(2026, 3, 13),
		CheckOut: date(2026, 3, 10),
	})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = ComputeTotal(100, StayInterval{
		CheckIn:  date(2026, 3, 10),
		CheckOut: date(2026, 3, 10),
	})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestComputeTotalNegativeRate(t *testing.T) {
	stay := mustStay(t, date(2026, 3, 10), date(2026, 3, 12))
	_, err := ComputeTotal(-10, stay)
	assert.ErrorIs(t, err, ErrNegativeRate)
}
