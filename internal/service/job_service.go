package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/jobtrack-api/internal/domain"
	"github.com/phrazzld/jobtrack-api/internal/events"
	"github.com/phrazzld/jobtrack-api/internal/metrics"
	"github.com/phrazzld/jobtrack-api/internal/redact"
	"github.com/phrazzld/jobtrack-api/internal/store"
)

// JobService provides job-related operations
type JobService interface {
	// CreateJob validates and stores a new job, then starts its lifecycle
	// without waiting for it. Returns domain.ErrInvalidMessage or
	// domain.ErrMessageTooLong for bad input; no job is stored in that case.
	CreateJob(ctx context.Context, message, jobType string) (*domain.Job, error)

	// GetJob returns the current state of a job and, once it is terminal, its result.
	// Returns ErrJobNotFound if the job does not exist.
	GetJob(ctx context.Context, jobID uuid.UUID) (*domain.JobView, error)

	// ListJobs returns a summary of every stored job in insertion order.
	ListJobs(ctx context.Context) (*domain.JobList, error)
}

// jobServiceImpl implements the JobService interface
type jobServiceImpl struct {
	jobStore     store.JobStore
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewJobService creates a new JobService
// It returns an error if any of the required dependencies are nil.
func NewJobService(
	jobStore store.JobStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (JobService, error) {
	if jobStore == nil {
		return nil, &JobServiceError{
			Operation: "create_service",
			Message:   "jobStore cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &JobServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &jobServiceImpl{
		jobStore:     jobStore,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "job_service"),
	}, nil
}

// CreateJob implements JobService.
func (s *jobServiceImpl) CreateJob(ctx context.Context, message, jobType string) (*domain.Job, error) {
	// 1. Validate input and build the job in the created state
	job, err := domain.NewJob(message, jobType)
	if err != nil {
		s.logger.Debug("rejected job message",
			"error", err,
			"message_preview", redact.Preview(message))
		return nil, NewJobServiceError("create_job", "invalid job message", err)
	}

	// 2. Commit the record before anything can observe the ID
	if err := s.jobStore.Create(ctx, job); err != nil {
		s.logger.Error("failed to store job",
			"error", redact.Error(err),
			"job_id", job.ID)
		return nil, NewJobServiceError("create_job", "failed to store job", err)
	}

	// 3. Start the lifecycle; the handler spawns a detached task and returns
	event, err := events.NewJobLifecycleEvent(job.ID)
	if err == nil {
		err = s.eventEmitter.EmitEvent(ctx, event)
	}
	if err != nil {
		s.logger.Error("failed to start job lifecycle, removing job",
			"error", redact.Error(err),
			"job_id", job.ID)

		if delErr := s.jobStore.Delete(context.WithoutCancel(ctx), job.ID); delErr != nil {
			s.logger.Error("failed to remove orphaned job",
				"error", redact.Error(delErr),
				"job_id", job.ID)
		}
		return nil, &JobServiceError{
			Operation: "create_job",
			Message:   "failed to start job lifecycle",
			Err:       err,
		}
	}

	metrics.IncJobCreated()
	s.logger.Info("job created",
		"job_id", job.ID,
		"job_type", job.Type,
		"message_preview", redact.Preview(job.Message))

	return job, nil
}

// GetJob implements JobService.
func (s *jobServiceImpl) GetJob(ctx context.Context, jobID uuid.UUID) (*domain.JobView, error) {
	job, err := s.jobStore.GetByID(ctx, jobID)
	if err != nil {
		return nil, NewJobServiceError("get_job", "failed to load job", err)
	}

	view := &domain.JobView{Job: *job}
	if !job.Status.IsTerminal() {
		return view, nil
	}

	// A terminal job always has a result; a missing one means the job was
	// evicted between the two reads.
	result, err := s.jobStore.GetResult(ctx, jobID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrJobNotFound
		}
		return nil, NewJobServiceError("get_job", "failed to load job result", err)
	}
	view.Result = result

	return view, nil
}

// ListJobs implements JobService.
func (s *jobServiceImpl) ListJobs(ctx context.Context) (*domain.JobList, error) {
	jobs, err := s.jobStore.List(ctx)
	if err != nil {
		return nil, NewJobServiceError("list_jobs", "failed to list jobs", err)
	}

	summaries := make([]domain.JobSummary, 0, len(jobs))
	for _, job := range jobs {
		summaries = append(summaries, domain.Summarize(job))
	}

	return &domain.JobList{Jobs: summaries, Total: len(summaries)}, nil
}
