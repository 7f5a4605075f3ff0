package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TypeJobLifecycle is the event type requesting that a stored job be driven
// through its lifecycle.
const TypeJobLifecycle = "job_lifecycle"

// TaskRequestEvent represents a request to start background work.
// It carries only what a handler needs to build a task, serialized as JSON.
type TaskRequestEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type indicates the task type that should be created
	Type string `json:"type"`

	// Payload contains the task-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// JobLifecyclePayload is the payload of a TypeJobLifecycle event.
type JobLifecyclePayload struct {
	JobID string `json:"job_id"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *TaskRequestEvent) UnmarshalPayload(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// NewTaskRequestEvent creates a new TaskRequestEvent with the specified type and payload.
func NewTaskRequestEvent(eventType string, payload any) (*TaskRequestEvent, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	return &TaskRequestEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewJobLifecycleEvent creates the event that starts the lifecycle pipeline for jobID.
func NewJobLifecycleEvent(jobID uuid.UUID) (*TaskRequestEvent, error) {
	return NewTaskRequestEvent(TypeJobLifecycle, JobLifecyclePayload{JobID: jobID.String()})
}

// JobID extracts the job ID from a TypeJobLifecycle event.
func (e *TaskRequestEvent) JobID() (uuid.UUID, error) {
	var payload JobLifecyclePayload
	if err := e.UnmarshalPayload(&payload); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	id, err := uuid.Parse(payload.JobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid job ID %q: %w", payload.JobID, err)
	}
	return id, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *TaskRequestEvent) error
}

// EventEmitter defines an interface for components that can emit events.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *TaskRequestEvent) error
}

// EventHandlerFunc adapts an ordinary function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event *TaskRequestEvent) error

// HandleEvent calls f(ctx, event).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *TaskRequestEvent) error {
	return f(ctx, event)
}
