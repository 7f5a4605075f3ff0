package generation

import (
	"context"
)

// Generator defines the interface for producing reply text for a job message.
// This interface serves as a boundary between the lifecycle pipeline and the
// response source, following the hexagonal architecture pattern.
type Generator interface {
	// Generate returns reply text for the given message.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - message: The stored (trimmed) job message
	//
	// Returns:
	//   - Non-empty reply text
	//   - An error if generation fails for any reason (see errors.go for specific types)
	Generate(ctx context.Context, message string) (string, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(ctx context.Context, message string) (string, error)

// Generate calls f(ctx, message).
func (f GeneratorFunc) Generate(ctx context.Context, message string) (string, error) {
	return f(ctx, message)
}
