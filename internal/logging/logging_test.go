package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewParsesLevel(t *testing.T) {
	logger := New("warn", true)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestNewFallsBackToInfoOnUnknownLevel(t *testing.T) {
	logger := New("chatty", true)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestStoredLoggerEmitsEvents(t *testing.T) {
	// Event constructors have pointer receivers, so the logger must be
	// held in a variable before chaining. This mirrors the boot failure
	// path in cmd/server.
	var buf bytes.Buffer
	logger := New("info", true)
	logger = logger.Output(&buf)

	logger.Error().Str("stage", "boot").Msg("failed to load config")

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"stage":"boot"`)
	assert.Contains(t, out, "failed to load config")
}
