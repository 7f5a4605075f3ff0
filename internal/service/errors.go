package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/jobtrack-api/internal/domain"
	"github.com/phrazzld/jobtrack-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is to check for them; the API layer maps them to HTTP status codes.
var (
	// ErrJobNotFound indicates that no job exists for the requested ID.
	// API layer should map this to HTTP 404 Not Found.
	ErrJobNotFound = store.ErrJobNotFound
)

// JobServiceError wraps errors from the job service with context.
type JobServiceError struct {
	// Operation is the operation that failed (e.g., "create_job", "get_job")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for JobServiceError.
func (e *JobServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("job service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("job service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *JobServiceError) Unwrap() error {
	return e.Err
}

// NewJobServiceError creates a new JobServiceError.
// Known sentinel errors (job not found, message validation) are returned
// directly without wrapping so callers can compare them cheaply.
func NewJobServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrJobNotFound):
		return ErrJobNotFound
	case errors.Is(err, domain.ErrInvalidMessage):
		return domain.ErrInvalidMessage
	case errors.Is(err, domain.ErrMessageTooLong):
		return domain.ErrMessageTooLong
	}

	return &JobServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
