package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/jobtrack-api/internal/config"
	"github.com/phrazzld/jobtrack-api/internal/cron"
	"github.com/phrazzld/jobtrack-api/internal/events"
	"github.com/phrazzld/jobtrack-api/internal/generation"
	"github.com/phrazzld/jobtrack-api/internal/metrics"
	"github.com/phrazzld/jobtrack-api/internal/platform/keyword"
	"github.com/phrazzld/jobtrack-api/internal/platform/memory"
	"github.com/phrazzld/jobtrack-api/internal/service"
	"github.com/phrazzld/jobtrack-api/internal/store"
	"github.com/phrazzld/jobtrack-api/internal/task"
)

// application holds all the dependencies for the server.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	startedAt time.Time

	jobStore     store.JobStore
	generator    generation.Generator
	eventEmitter *events.InMemoryEventEmitter
	taskRunner   *task.TaskRunner
	jobService   service.JobService
	scheduler    *cron.Scheduler
}

// lifecycleConfig converts the pipeline settings into task delays.
func lifecycleConfig(cfg config.PipelineConfig) task.LifecycleConfig {
	return task.LifecycleConfig{
		Intake:   task.DelayRange{Min: cfg.IntakeMin, Max: cfg.IntakeMax},
		Analysis: task.DelayRange{Min: cfg.AnalysisMin, Max: cfg.AnalysisMax},
	}
}

// newApplication creates a new application instance with all dependencies initialized.
// Nothing is started: the scheduler and HTTP server start in Run.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		startedAt: time.Now(),
	}

	pipeline := lifecycleConfig(cfg.Pipeline)
	if err := pipeline.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline configuration: %w", err)
	}

	if cfg.Metrics.Enabled {
		metrics.MustRegister()
	}

	app.jobStore = memory.NewMemoryJobStore(logger)
	app.generator = keyword.NewDefaultResponder(logger)
	app.taskRunner = task.NewTaskRunner(logger)

	// Strict: a job whose lifecycle cannot start must not be accepted.
	app.eventEmitter = events.NewInMemoryEventEmitter(logger, true)

	taskFactory := task.NewJobLifecycleTaskFactory(app.jobStore, app.generator, pipeline, logger)
	app.eventEmitter.RegisterHandler(task.NewTaskFactoryEventHandler(taskFactory, app.taskRunner, logger))

	var err error
	app.jobService, err = service.NewJobService(app.jobStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create job service: %w", err)
	}

	app.scheduler = cron.NewScheduler(logger)
	if err := app.scheduler.RegisterJob(&cron.JobEvictionJob{
		Store:        app.jobStore,
		MaxAge:       cfg.Eviction.MaxAge,
		ScheduleExpr: cfg.Eviction.Schedule,
		Logger:       logger,
	}); err != nil {
		return nil, fmt.Errorf("failed to register eviction job: %w", err)
	}

	logger.Info("Application initialized successfully",
		"intake_delay", fmt.Sprintf("%s-%s", cfg.Pipeline.IntakeMin, cfg.Pipeline.IntakeMax),
		"analysis_delay", fmt.Sprintf("%s-%s", cfg.Pipeline.AnalysisMin, cfg.Pipeline.AnalysisMax),
		"eviction_schedule", cfg.Eviction.Schedule,
		"eviction_max_age", cfg.Eviction.MaxAge)
	return app, nil
}
