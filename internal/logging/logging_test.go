package logging

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BadLevelDefaultsToInfo(t *testing.T) {
	log := New(Config{Level: "chatty"})
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNew_ParsesLevel(t *testing.T) {
	log := New(Config{Level: "debug", Format: "console"})
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestComponentLogger(t *testing.T) {
	log := New(Config{Level: "info"})
	child := ComponentLogger(log, "resolver")
	// Component loggers stay at the parent's level.
	assert.Equal(t, log.GetLevel(), child.GetLevel())
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := ContextWithTraceID(context.Background(), "trace-123")
	assert.Equal(t, "trace-123", TraceIDFromContext(ctx))
	assert.Equal(t, "trace-123", GetOrGenerateTraceID(ctx))
}

func TestGetOrGenerateTraceID_MintsULID(t *testing.T) {
	id := GetOrGenerateTraceID(context.Background())
	require.Len(t, id, 26)
	assert.NotEqual(t, id, GetOrGenerateTraceID(context.Background()))
}
