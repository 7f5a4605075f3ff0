package domain

import "errors"

// ErrInvalidID is returned when an ID is malformed or invalid.
var ErrInvalidID = errors.New("invalid ID")

// IsValidationError reports whether err is one of the message validation
// failures a client can fix by changing its request.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidMessage) ||
		errors.Is(err, ErrMessageTooLong)
}
