package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/jobtrack-api/internal/domain"
)

// JobStore defines the interface for job and result storage.
// Implementations must be safe for concurrent use and must return copies,
// never references to their internal records.
type JobStore interface {
	// Create saves a new job.
	// Returns ErrJobExists if a job with the same ID is already stored and
	// ErrInvalidEntity if the job fails domain validation.
	Create(ctx context.Context, job *domain.Job) error

	// GetByID retrieves a job by its unique ID.
	// Returns ErrJobNotFound if the job does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)

	// GetResult retrieves the result stored for a job.
	// Returns ErrResultNotFound if no result has been stored.
	GetResult(ctx context.Context, id uuid.UUID) (*domain.Result, error)

	// UpdateStatus moves a job to a non-terminal status.
	// Returns ErrJobNotFound if the job does not exist, and ErrUpdateFailed
	// wrapping the domain error if the transition is not allowed.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.JobStatus) (*domain.Job, error)

	// Finalize moves a job to a terminal status and stores its result in one step,
	// so a result is visible exactly when the job is terminal.
	// Returns ErrJobNotFound if the job does not exist.
	Finalize(ctx context.Context, id uuid.UUID, status domain.JobStatus, text string) (*domain.Job, error)

	// List returns every stored job in insertion order.
	List(ctx context.Context) ([]*domain.Job, error)

	// Delete removes a job and its result.
	// Returns ErrJobNotFound if the job does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
