package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/jobtrack-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGetPathUUID(t *testing.T) {
	validID := uuid.New()

	tests := []struct {
		name       string
		paramValue string
		expectedID uuid.UUID
		wantErr    bool
	}{
		{name: "valid uuid", paramValue: validID.String(), expectedID: validID},
		{name: "uppercase uuid", paramValue: "5B0C3D6E-8A54-4B36-9A0F-1D2E3F4A5B6C",
			expectedID: uuid.MustParse("5b0c3d6e-8a54-4b36-9a0f-1d2e3f4a5b6c")},
		{name: "missing parameter", paramValue: "", wantErr: true},
		{name: "not a uuid", paramValue: "job-1", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/jobs/x", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add(JobIDParam, tc.paramValue)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			id, err := getPathUUID(req, JobIDParam)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidID)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedID, id)
		})
	}
}
