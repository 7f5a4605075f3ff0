package memory

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/jobtrack-api/internal/domain"
	"github.com/phrazzld/jobtrack-api/internal/store"
)

// MemoryJobStore implements store.JobStore with process-local maps.
// Jobs and results live in separate maps keyed by job ID; order records
// insertion order so listings are stable while no jobs are added or removed.
type MemoryJobStore struct {
	mu      sync.RWMutex
	jobs    map[uuid.UUID]*domain.Job
	results map[uuid.UUID]*domain.Result
	order   []uuid.UUID
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures a MemoryJobStore.
type Option func(*MemoryJobStore)

// WithClock overrides the time source used to stamp status transitions.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryJobStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryJobStore creates an empty MemoryJobStore.
// If logger is nil, slog.Default() is used.
func NewMemoryJobStore(logger *slog.Logger, opts ...Option) *MemoryJobStore {
	if logger == nil {
		logger = slog.Default()
	}

	s := &MemoryJobStore{
		jobs:    make(map[uuid.UUID]*domain.Job),
		results: make(map[uuid.UUID]*domain.Result),
		now:     time.Now,
		logger:  logger.With("component", "memory_job_store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create implements store.JobStore.
func (s *MemoryJobStore) Create(ctx context.Context, job *domain.Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := job.Validate(); err != nil {
		return store.NewStoreError("job", "create", "job failed validation",
			errors.Join(store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.ID]; exists {
		return store.NewStoreError("job", "create", "job already stored", store.ErrJobExists)
	}

	s.jobs[job.ID] = job.Clone()
	s.order = append(s.order, job.ID)

	s.logger.Debug("job stored", "job_id", job.ID, "job_count", len(s.jobs))
	return nil
}

// GetByID implements store.JobStore.
func (s *MemoryJobStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, store.ErrJobNotFound
	}
	return job.Clone(), nil
}

// GetResult implements store.JobStore.
func (s *MemoryJobStore) GetResult(ctx context.Context, id uuid.UUID) (*domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.results[id]
	if !ok {
		return nil, store.ErrResultNotFound
	}
	c := *result
	return &c, nil
}

// UpdateStatus implements store.JobStore. Terminal statuses must go through Finalize.
func (s *MemoryJobStore) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.JobStatus,
) (*domain.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if status.IsTerminal() {
		return nil, store.NewStoreError("job", "update_status",
			"terminal status requires a result", store.ErrUpdateFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, store.ErrJobNotFound
	}

	if err := job.TransitionTo(status, s.now()); err != nil {
		return nil, store.NewStoreError("job", "update_status",
			"transition from "+string(job.Status)+" to "+string(status)+" rejected",
			errors.Join(store.ErrUpdateFailed, err))
	}

	return job.Clone(), nil
}

// Finalize implements store.JobStore.
func (s *MemoryJobStore) Finalize(
	ctx context.Context,
	id uuid.UUID,
	status domain.JobStatus,
	text string,
) (*domain.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !status.IsTerminal() {
		return nil, store.NewStoreError("job", "finalize",
			"status "+string(status)+" is not terminal", store.ErrUpdateFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, store.ErrJobNotFound
	}

	now := s.now()
	if err := job.TransitionTo(status, now); err != nil {
		return nil, store.NewStoreError("job", "finalize",
			"transition from "+string(job.Status)+" to "+string(status)+" rejected",
			errors.Join(store.ErrUpdateFailed, err))
	}

	s.results[id] = &domain.Result{
		JobID:     id,
		Text:      text,
		CreatedAt: job.UpdatedAt,
	}

	return job.Clone(), nil
}

// List implements store.JobStore.
func (s *MemoryJobStore) List(ctx context.Context) ([]*domain.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]*domain.Job, 0, len(s.order))
	for _, id := range s.order {
		if job, ok := s.jobs[id]; ok {
			jobs = append(jobs, job.Clone())
		}
	}
	return jobs, nil
}

// Delete implements store.JobStore. The job and its result are removed together.
func (s *MemoryJobStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return store.ErrJobNotFound
	}

	delete(s.jobs, id)
	delete(s.results, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// Len returns the number of stored jobs.
func (s *MemoryJobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// Ensure MemoryJobStore implements store.JobStore
var _ store.JobStore = (*MemoryJobStore)(nil)
