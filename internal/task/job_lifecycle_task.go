package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/jobtrack-api/internal/domain"
	"github.com/phrazzld/jobtrack-api/internal/generation"
	"github.com/phrazzld/jobtrack-api/internal/metrics"
	"github.com/phrazzld/jobtrack-api/internal/store"
)

// Common errors
var (
	ErrNilJobStore  = errors.New("job store cannot be nil")
	ErrNilGenerator = errors.New("generator cannot be nil")
	ErrNilLogger    = errors.New("logger cannot be nil")
	ErrEmptyJobID   = errors.New("job ID cannot be empty")

	// ErrLifecyclePanic wraps a panic recovered while driving a job.
	ErrLifecyclePanic = errors.New("job lifecycle panicked")
)

// JobLifecycleTask implements the Task interface for driving one stored job
// from created to a terminal status.
type JobLifecycleTask struct {
	id        uuid.UUID
	jobID     uuid.UUID
	store     store.JobStore
	generator generation.Generator
	config    LifecycleConfig
	logger    *slog.Logger

	mu     sync.Mutex
	status TaskStatus
}

// NewJobLifecycleTask creates a new job lifecycle task
func NewJobLifecycleTask(
	jobID uuid.UUID,
	jobStore store.JobStore,
	generator generation.Generator,
	config LifecycleConfig,
	logger *slog.Logger,
) (*JobLifecycleTask, error) {
	if jobStore == nil {
		return nil, ErrNilJobStore
	}
	if generator == nil {
		return nil, ErrNilGenerator
	}
	if logger == nil {
		return nil, ErrNilLogger
	}
	if jobID == uuid.Nil {
		return nil, ErrEmptyJobID
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &JobLifecycleTask{
		id:        uuid.New(),
		jobID:     jobID,
		store:     jobStore,
		generator: generator,
		config:    config,
		logger:    logger.With("task_type", TaskTypeJobLifecycle, "job_id", jobID),
		status:    TaskStatusPending,
	}, nil
}

// ID returns the task's unique identifier
func (t *JobLifecycleTask) ID() uuid.UUID {
	return t.id
}

// JobID returns the ID of the job this task drives.
func (t *JobLifecycleTask) JobID() uuid.UUID {
	return t.jobID
}

// Type returns the task type identifier
func (t *JobLifecycleTask) Type() string {
	return TaskTypeJobLifecycle
}

// Status returns the current task status
func (t *JobLifecycleTask) Status() TaskStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

func (t *JobLifecycleTask) setStatus(status TaskStatus) {
	t.mu.Lock()
	t.status = status
	t.mu.Unlock()
}

// Execute runs the lifecycle. Any error or panic finalizes the job as failed
// with ApologyMessage before the error is returned; nothing is retried.
func (t *JobLifecycleTask) Execute(ctx context.Context) (err error) {
	t.setStatus(TaskStatusProcessing)
	t.logger.Info("starting job lifecycle")

	defer func() {
		if rec := recover(); rec != nil {
			t.logger.Error("job lifecycle panicked", "panic", rec, "stack", string(debug.Stack()))
			err = fmt.Errorf("%w: %v", ErrLifecyclePanic, rec)
		}

		if err != nil {
			t.setStatus(TaskStatusFailed)
			t.fail(ctx, err)
			err = fmt.Errorf("job %s: %w", t.jobID, err)
			return
		}

		t.setStatus(TaskStatusCompleted)
	}()

	return t.advance(ctx)
}

// advance performs the happy path: processing, intake delay, analyzing,
// analysis delay, generation, completed.
func (t *JobLifecycleTask) advance(ctx context.Context) error {
	// The stored record was validated at creation and is trusted as is.
	job, err := t.store.GetByID(ctx, t.jobID)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}

	if _, err := t.store.UpdateStatus(ctx, t.jobID, domain.JobStatusProcessing); err != nil {
		return fmt.Errorf("failed to mark job processing: %w", err)
	}
	t.logger.Debug("job processing")

	if err := t.config.wait(ctx, t.config.Intake); err != nil {
		return fmt.Errorf("intake interrupted: %w", err)
	}

	if _, err := t.store.UpdateStatus(ctx, t.jobID, domain.JobStatusAnalyzing); err != nil {
		return fmt.Errorf("failed to mark job analyzing: %w", err)
	}
	t.logger.Debug("job analyzing")

	if err := t.config.wait(ctx, t.config.Analysis); err != nil {
		return fmt.Errorf("analysis interrupted: %w", err)
	}

	text, err := t.generator.Generate(ctx, job.Message)
	if err != nil {
		return fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: %w", generation.ErrGenerationFailed, generation.ErrEmptyResponse)
	}

	if _, err := t.store.Finalize(ctx, t.jobID, domain.JobStatusCompleted, text); err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	metrics.IncJobFinished(string(domain.JobStatusCompleted))
	t.logger.Info("job completed", "result_length", len(text))
	return nil
}

// fail records the failed terminal status. It runs detached from ctx
// cancellation so a job interrupted by shutdown still ends as failed.
// The cause itself is reported once, by the runner's error handler.
func (t *JobLifecycleTask) fail(ctx context.Context, cause error) {
	if store.IsNotFoundError(cause) {
		t.logger.Warn("job evicted mid-pipeline", "error", cause)
		return
	}

	t.logger.Warn("marking job failed", "error", cause)

	_, err := t.store.Finalize(context.WithoutCancel(ctx), t.jobID, domain.JobStatusFailed, ApologyMessage)
	switch {
	case err == nil:
		metrics.IncJobFinished(string(domain.JobStatusFailed))
	case store.IsNotFoundError(err):
		t.logger.Warn("job evicted mid-pipeline", "error", err)
	default:
		t.logger.Error("failed to mark job failed", "error", err)
	}
}
