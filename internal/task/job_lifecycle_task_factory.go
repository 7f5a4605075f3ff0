package task

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/jobtrack-api/internal/generation"
	"github.com/phrazzld/jobtrack-api/internal/store"
)

// JobLifecycleTaskFactory creates JobLifecycleTask instances
type JobLifecycleTaskFactory struct {
	store     store.JobStore
	generator generation.Generator
	config    LifecycleConfig
	logger    *slog.Logger
}

// NewJobLifecycleTaskFactory creates a new factory for JobLifecycleTasks
func NewJobLifecycleTaskFactory(
	jobStore store.JobStore,
	generator generation.Generator,
	config LifecycleConfig,
	logger *slog.Logger,
) *JobLifecycleTaskFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobLifecycleTaskFactory{
		store:     jobStore,
		generator: generator,
		config:    config,
		logger:    logger,
	}
}

// CreateTask creates a new JobLifecycleTask for the specified job
func (f *JobLifecycleTaskFactory) CreateTask(jobID uuid.UUID) (Task, error) {
	task, err := NewJobLifecycleTask(jobID, f.store, f.generator, f.config, f.logger)
	if err != nil {
		return nil, err
	}
	return task, nil
}
