package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewReferenceFormat(t *testing.T) {
	ref := NewReference()
	assert.Len(t, ref, 10)
	assert.Equal(t, "BK", ref[:2])
	for _, c := range ref[2:] {
		assert.True(t, c >= '0' && c <= '9', "expected digit, got %q", c)
	}
}

func TestNewReferenceAt(t *testing.T) {
	// 2026-03-10T12:00:00Z is 1773144000000 ms.
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "BK44000000", newReferenceAt(at))

	// Same millisecond yields the same reference; uniqueness is enforced at
	// the storage layer with a retry.
	assert.Equal(t, newReferenceAt(at), newReferenceAt(at))
	assert.NotEqual(t, newReferenceAt(at), newReferenceAt(at.Add(time.Millisecond)))
}
