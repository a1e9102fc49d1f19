package booking

import "math"

// ComputeTotal prices a stay at the given nightly rate. The result is rounded
// half-up to two decimal places so stored totals match what the guest sees.
func ComputeTotal(nightlyRate float64, stay StayInterval) (float64, error) {
	nights := stay.Nights()
	if nights <= 0 {
		return 0, ErrInvalidInterval
	}
	if nightlyRate < 0 {
		return 0, ErrNegativeRate
	}
	return roundToCents(float64(nights) * nightlyRate), nil
}

func roundToCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
