package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// ErrNoHandlers is returned by a strict emitter when an event has nowhere to go.
var ErrNoHandlers = errors.New("no handlers registered for event")

// InMemoryEventEmitter dispatches events synchronously to handlers registered
// in process. Handlers run on the caller's goroutine, in registration order.
type InMemoryEventEmitter struct {
	handlers []EventHandler
	mu       sync.RWMutex
	strict   bool
	logger   *slog.Logger
}

// NewInMemoryEventEmitter creates a new instance of InMemoryEventEmitter.
// A strict emitter fails with ErrNoHandlers when no handler is registered,
// so a job is never stored without something to process it.
func NewInMemoryEventEmitter(logger *slog.Logger, strict bool) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		handlers: make([]EventHandler, 0),
		strict:   strict,
		logger:   logger.With("component", "in_memory_event_emitter"),
	}
}

// RegisterHandler adds a new event handler to receive events.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
	e.logger.Debug("registered new event handler", "handler_count", len(e.handlers))
}

// EmitEvent publishes the given event to all registered handlers.
// If any handler returns an error, the event is still sent to all other handlers,
// and the first error encountered is returned.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *TaskRequestEvent) error {
	e.mu.RLock()
	handlers := make([]EventHandler, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	logger := e.logger.With("event_id", event.ID, "event_type", event.Type)

	if len(handlers) == 0 {
		logger.Warn("no handlers registered for event")
		if e.strict {
			return ErrNoHandlers
		}
		return nil
	}

	logger.Debug("emitting event", "handler_count", len(handlers))

	var firstErr error
	for i, handler := range handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			logger.Error("handler failed to process event", "error", err, "handler_index", i)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// Ensure InMemoryEventEmitter implements EventEmitter
var _ EventEmitter = (*InMemoryEventEmitter)(nil)
