package api

import (
	"net/http"
	"time"

	"github.com/phrazzld/jobtrack-api/internal/api/shared"
)

// HealthHandler reports liveness together with process uptime.
type HealthHandler struct {
	environment string
	startedAt   time.Time
	now         func() time.Time
}

// NewHealthHandler creates a HealthHandler whose uptime is measured from startedAt.
// A nil now uses time.Now.
func NewHealthHandler(environment string, startedAt time.Time, now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{
		environment: environment,
		startedAt:   startedAt,
		now:         now,
	}
}

// Health handles GET /health requests.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:      "healthy",
		Timestamp:   formatTimestamp(now),
		Uptime:      now.Sub(h.startedAt).Seconds(),
		Environment: h.environment,
	})
}
