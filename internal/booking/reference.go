package booking

import (
	"strconv"
	"time"
)

const referencePrefix = "BK"

// NewReference returns a human-readable booking reference: "BK" followed by
// the last eight digits of the current epoch milliseconds. Two references
// generated in the same millisecond collide, so the storage layer enforces
// uniqueness and the caller retries with a fresh reference on conflict.
func NewReference() string {
	return newReferenceAt(time.Now())
}

func newReferenceAt(t time.Time) string {
	digits := strconv.FormatInt(t.UnixMilli(), 10)
	if len(digits) > 8 {
		digits = digits[len(digits)-8:]
	}
	return referencePrefix + digits
}
