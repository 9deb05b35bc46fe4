package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesServiceAndTraceID(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, "grubdash", func(context.Context) string { return "abc123" })

	log.Info(context.Background(), "dish created", "id", "7")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dish created", entry["msg"])
	assert.Equal(t, "grubdash", entry["service"])
	assert.Equal(t, "abc123", entry["trace_id"])
	assert.Equal(t, "7", entry["id"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn, "grubdash", nil)

	log.Info(context.Background(), "quiet")
	assert.Zero(t, buf.Len())

	log.Error(context.Background(), "loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}
