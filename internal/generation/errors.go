package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when reply text could not be produced for any general reason
	ErrGenerationFailed = errors.New("failed to generate response")

	// ErrEmptyResponse is returned when a generator produced blank text
	ErrEmptyResponse = errors.New("generator returned an empty response")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
