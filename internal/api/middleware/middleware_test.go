package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/jobtrack-api/internal/api/shared"
	"github.com/phrazzld/jobtrack-api/internal/metrics"
	"github.com/phrazzld/jobtrack-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	log, buf := logger.NewTestLogger()

	var (
		seenTraceID string
		seenLogger  bool
	)
	handler := NewTraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		if l := logger.FromContext(r.Context()); l != nil {
			seenLogger = true
			l.Info("inside handler")
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, seenTraceID, shared.TraceIDLength)
	assert.True(t, seenLogger, "request-scoped logger should be in the context")

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, seenTraceID, entry["trace_id"])
	}
	assert.Equal(t, "request started", entries[0]["msg"])
}

func TestTraceMiddlewareDistinctIDs(t *testing.T) {
	var ids []string
	handler := NewTraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, shared.GetTraceID(r.Context()))
	}))

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	require.Len(t, ids, 3)
	assert.NotEqual(t, ids[0], ids[1])
	assert.NotEqual(t, ids[1], ids[2])
}

func TestRecover(t *testing.T) {
	log, buf := logger.NewTestLogger()

	handler := NewTraceMiddleware(log)(Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotEmpty(t, body["trace_id"])
	assert.NotContains(t, rec.Body.String(), "boom")

	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "boom")
}

func TestRecoverPassesThrough(t *testing.T) {
	handler := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRecoverRepanicsAbortHandler(t *testing.T) {
	handler := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestMetricsRecordsRoutePattern(t *testing.T) {
	metrics.MustRegister()

	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/api/jobs/{jobId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/api/jobs/abc", "/health", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	assert.Contains(t, body, `http_requests_total{method="GET",route="/api/jobs/{jobId}",status="404"}`)
	assert.Contains(t, body, `http_requests_total{method="GET",route="/health",status="200"}`)
	assert.Contains(t, body, `http_requests_total{method="GET",route="unmatched",status="404"}`)
	assert.NotContains(t, body, "/api/jobs/abc")
}

func TestTraceMiddlewareIncludesRequestID(t *testing.T) {
	log, buf := logger.NewTestLogger()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(NewTraceMiddleware(log))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimw.RequestIDHeader, "req-123")
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "req-123", entries[0]["request_id"])
}
