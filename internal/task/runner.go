package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/phrazzld/jobtrack-api/internal/metrics"
	"github.com/phrazzld/jobtrack-api/internal/store"
)

// ErrRunnerStopped is returned by Submit once Stop has been called.
var ErrRunnerStopped = errors.New("task runner is stopped")

// TaskRunner executes each submitted task on its own goroutine.
// There is no queue and no worker limit; every task starts immediately and
// runs under the runner's context, not the submitter's.
type TaskRunner struct {
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	mu         sync.Mutex
	stopped    bool
	inFlight   atomic.Int64
	logger     *slog.Logger
	errHandler func(task Task, err error)
}

// NewTaskRunner creates a new TaskRunner
func NewTaskRunner(logger *slog.Logger) *TaskRunner {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "task_runner")

	ctx, cancel := context.WithCancel(context.Background())

	return &TaskRunner{
		ctx:        ctx,
		cancelFunc: cancel,
		logger:     logger,
		errHandler: func(task Task, err error) {
			if store.IsNotFoundError(err) {
				logger.Debug("task target no longer exists",
					"task_id", task.ID(),
					"task_type", task.Type(),
					"error", err)
				return
			}
			logger.Error("task execution failed",
				"task_id", task.ID(),
				"task_type", task.Type(),
				"error", err)
		},
	}
}

// SetErrorHandler allows setting a custom error handler function
func (r *TaskRunner) SetErrorHandler(handler func(task Task, err error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errHandler = handler
}

// Submit starts the task in the background and returns without waiting for it.
// ctx only scopes the submission itself.
func (r *TaskRunner) Submit(ctx context.Context, task Task) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("task submission cancelled: %w", err)
	}

	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return ErrRunnerStopped
	}
	r.wg.Add(1)
	errHandler := r.errHandler
	r.mu.Unlock()

	r.inFlight.Add(1)
	metrics.IncInFlight()

	go r.processTask(task, errHandler)
	return nil
}

// Stop cancels every running task and waits for them to return.
// Submit fails with ErrRunnerStopped afterwards.
func (r *TaskRunner) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	r.mu.Unlock()

	r.logger.Info("stopping task runner", "in_flight", r.InFlight())
	r.cancelFunc()
	r.wg.Wait()
	r.logger.Info("task runner stopped")
}

// InFlight returns the number of tasks that have been submitted and not yet returned.
func (r *TaskRunner) InFlight() int {
	return int(r.inFlight.Load())
}

// processTask handles execution of a single task
func (r *TaskRunner) processTask(task Task, errHandler func(Task, error)) {
	logger := r.logger.With("task_id", task.ID(), "task_type", task.Type())

	defer func() {
		r.inFlight.Add(-1)
		metrics.DecInFlight()
		r.wg.Done()
	}()

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("task panicked", "panic", rec, "stack", string(debug.Stack()))
			errHandler(task, fmt.Errorf("task panicked: %v", rec))
		}
	}()

	logger.Debug("processing task")

	if err := task.Execute(r.ctx); err != nil {
		errHandler(task, err)
		return
	}

	logger.Debug("task completed successfully")
}
