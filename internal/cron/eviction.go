package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/jobtrack-api/internal/metrics"
	"github.com/phrazzld/jobtrack-api/internal/store"
)

// Eviction defaults
const (
	DefaultEvictionSchedule = "*/5 * * * *"
	DefaultEvictionMaxAge   = 30 * time.Minute
)

// JobEvictionJob deletes jobs, and their results, created more than MaxAge ago.
// Status is not considered: a job still in its pipeline is evicted like any other.
type JobEvictionJob struct {
	Store        store.JobStore
	MaxAge       time.Duration    // zero = DefaultEvictionMaxAge
	Now          func() time.Time // nil = time.Now
	ScheduleExpr string           // empty = DefaultEvictionSchedule
	Logger       *slog.Logger
}

// Compile-time interface check.
var _ Job = (*JobEvictionJob)(nil)

// Name implements Job.
func (j *JobEvictionJob) Name() string {
	return "job_eviction"
}

// Schedule implements Job.
func (j *JobEvictionJob) Schedule() string {
	if j.ScheduleExpr != "" {
		return j.ScheduleExpr
	}
	return DefaultEvictionSchedule
}

// Run deletes every job older than MaxAge. Store failures on individual jobs
// do not stop the sweep; they are joined into the returned error.
func (j *JobEvictionJob) Run(ctx context.Context) error {
	logger := j.Logger
	if logger == nil {
		logger = slog.Default()
	}

	maxAge := j.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultEvictionMaxAge
	}

	now := time.Now()
	if j.Now != nil {
		now = j.Now()
	}

	jobs, err := j.Store.List(ctx)
	if err != nil {
		return fmt.Errorf("cron: listing jobs for eviction: %w", err)
	}

	var (
		evicted int
		errs    []error
	)
	for _, job := range jobs {
		if ctx.Err() != nil {
			errs = append(errs, fmt.Errorf("cron: eviction cancelled: %w", ctx.Err()))
			break
		}

		if job.Age(now) <= maxAge {
			continue
		}

		if err := j.Store.Delete(ctx, job.ID); err != nil {
			if store.IsNotFoundError(err) {
				continue
			}
			errs = append(errs, fmt.Errorf("cron: evicting job %s: %w", job.ID, err))
			continue
		}

		evicted++
		logger.Debug("cron: evicted job", "job_id", job.ID, "status", job.Status, "age", job.Age(now))
	}

	metrics.AddJobsEvicted(evicted)
	if evicted > 0 {
		logger.Info("cron: evicted expired jobs", "count", evicted, "remaining", len(jobs)-evicted)
	}

	return errors.Join(errs...)
}
