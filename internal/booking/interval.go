package booking

import (
	"math"
	"time"
)

// StayInterval is a half-open [CheckIn, CheckOut) date range. CheckOut is the
// departure morning and is free for the next guest: a stay ending on a date
// and a stay starting on that same date do not overlap.
type StayInterval struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewStayInterval normalizes both dates to midnight UTC and rejects
// zero-or-negative-night intervals.
func NewStayInterval(checkIn, checkOut time.Time) (StayInterval, error) {
	stay := StayInterval{
		CheckIn:  toDate(checkIn),
		CheckOut: toDate(checkOut),
	}
	if !stay.CheckOut.After(stay.CheckIn) {
		return StayInterval{}, ErrInvalidInterval
	}
	return stay, nil
}

func toDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights returns the number of nights in the stay. A residual time component
// counts as a full extra night rather than silently rounding down.
func (s StayInterval) Nights() int {
	hours := s.CheckOut.Sub(s.CheckIn).Hours()
	return int(math.Ceil(hours / 24))
}

// Overlaps reports whether two half-open intervals share at least one night.
func (s StayInterval) Overlaps(other StayInterval) bool {
	return s.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(s.CheckOut)
}
