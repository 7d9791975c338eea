package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewLogger_ContainsTimestamp verifies that log entries contain a timestamp field.
func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ts-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("ts check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNewLogger_GlobalLevelIsDebug verifies that NewLogger sets the global
// zerolog level to Debug.
func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	NewLogger("level-role")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// TestNop_NotNil verifies that Nop returns a non-nil *Logger.
func TestNop_NotNil(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that a child logger inherits the
// fields of its parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	child.Info().Msg("from child")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent-role", entry["role"])
}

// TestFromContext_RoundTrip verifies that a logger attached to a context via
// zerolog's WithContext is recovered by FromContext.
func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx-role")
	l.Logger = l.Output(&buf)

	ctx := l.WithContext(context.Background())
	got := FromContext(ctx)
	require.NotNil(t, got)

	got.Info().Msg("via context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-role", entry["role"])
}

// TestFromRequest_RoundTrip verifies that a logger attached to a request's
// context is recovered by FromRequest.
func TestFromRequest_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("req-role")
	l.Logger = l.Output(&buf)

	req := httptest.NewRequest(http.MethodGet, "/book/get", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	got := FromRequest(req)
	require.NotNil(t, got)

	got.Info().Msg("via request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-role", entry["role"])
}
