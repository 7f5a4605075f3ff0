package task

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/phrazzld/jobtrack-api/internal/platform/logger"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func countLevel(buf *logger.TestLogBuffer, level slog.Level) int {
	return strings.Count(buf.String(), `"level":"`+level.String()+`"`)
}

// zeroDelays is a lifecycle config that never waits.
func zeroDelays() LifecycleConfig {
	return LifecycleConfig{}
}

// MockTask is a Task whose Execute behaviour is supplied by the test.
type MockTask struct {
	id        uuid.UUID
	ExecuteFn func(ctx context.Context) error
	calls     atomic.Int32
}

func NewMockTask(fn func(ctx context.Context) error) *MockTask {
	return &MockTask{id: uuid.New(), ExecuteFn: fn}
}

func (m *MockTask) ID() uuid.UUID      { return m.id }
func (m *MockTask) Type() string       { return "mock" }
func (m *MockTask) Status() TaskStatus { return TaskStatusPending }

func (m *MockTask) Execute(ctx context.Context) error {
	m.calls.Add(1)
	if m.ExecuteFn == nil {
		return nil
	}
	return m.ExecuteFn(ctx)
}

func (m *MockTask) Calls() int { return int(m.calls.Load()) }
