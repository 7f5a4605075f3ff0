package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/jobtrack-api/internal/domain"
	"github.com/phrazzld/jobtrack-api/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "job not found",
			err:             service.ErrJobNotFound,
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Job not found",
		},
		{
			name:            "wrapped job not found",
			err:             fmt.Errorf("lookup: %w", service.ErrJobNotFound),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Job not found",
		},
		{
			name:            "invalid message",
			err:             domain.ErrInvalidMessage,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid message",
		},
		{
			name:            "message too long",
			err:             domain.ErrMessageTooLong,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Message too long",
		},
		{
			name:            "malformed request",
			err:             fmt.Errorf("%w: unexpected EOF", ErrMalformedRequest),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Malformed request body",
		},
		{
			name:            "service failure",
			err:             &service.JobServiceError{Operation: "create_job", Err: errors.New("secret detail")},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
		{
			name:            "nil error",
			err:             nil,
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStatus, MapErrorToStatusCode(tc.err))
			assert.Equal(t, tc.expectedMessage, GetSafeErrorMessage(tc.err))
		})
	}
}
