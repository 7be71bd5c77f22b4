package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plannerhq/backend/internal/middleware"
)

// TestSlogLogger_LogsRequestFields verifies that one JSON log line is written
// per request, carrying method, path, status, and duration.
func TestSlogLogger_LogsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := middleware.NewSlogLogger(logger)(inner)

	req := httptest.NewRequest(http.MethodGet, "/participants/x/confirm", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "expected one JSON log line")

	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.Equal(t, "/participants/x/confirm", entry["path"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Contains(t, entry, "duration_ms")
}

// TestSlogLogger_DefaultStatus verifies that handlers that never call
// WriteHeader are logged as 200.
func TestSlogLogger_DefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	h := middleware.NewSlogLogger(logger)(inner)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, float64(http.StatusOK), entry["status"])
}
