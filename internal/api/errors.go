package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/jobtrack-api/internal/domain"
	"github.com/phrazzld/jobtrack-api/internal/service"
)

// ErrMalformedRequest is returned when a request body cannot be decoded.
var ErrMalformedRequest = errors.New("malformed request body")

// Client-facing error messages.
const (
	MsgInvalidMessage   = "Invalid message"
	MsgMessageTooLong   = "Message too long"
	MsgMalformedRequest = "Malformed request body"
	MsgJobNotFound      = "Job not found"
	MsgNotFound         = "Not found"
	MsgInternalError    = "Internal server error"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return http.StatusNotFound

	case domain.IsValidationError(err),
		errors.Is(err, ErrMalformedRequest):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return MsgInternalError
	case errors.Is(err, service.ErrJobNotFound):
		return MsgJobNotFound
	case errors.Is(err, domain.ErrMessageTooLong):
		return MsgMessageTooLong
	case errors.Is(err, domain.ErrInvalidMessage):
		return MsgInvalidMessage
	case errors.Is(err, ErrMalformedRequest):
		return MsgMalformedRequest
	default:
		return MsgInternalError
	}
}
