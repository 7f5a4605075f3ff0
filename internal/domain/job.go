package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// JobStatus represents the processing state of a job
type JobStatus string

// Possible job status values, in lifecycle order
const (
	JobStatusCreated    JobStatus = "created"
	JobStatusProcessing JobStatus = "processing"
	JobStatusAnalyzing  JobStatus = "analyzing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

const (
	// MaxMessageLength is the maximum number of characters accepted in a job message,
	// measured before trimming.
	MaxMessageLength = 1000

	// DefaultJobType is used when the client does not supply a type.
	DefaultJobType = "chat"
)

// Job validation errors
var (
	// ErrJobIDEmpty is returned when a job ID is the nil UUID.
	ErrJobIDEmpty = errors.New("job ID cannot be empty")

	// ErrInvalidMessage is returned when a message is missing, not text, or blank after trimming.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrMessageTooLong is returned when a message exceeds MaxMessageLength characters.
	ErrMessageTooLong = errors.New("message too long")

	// ErrInvalidJobStatus is returned for a status outside the known set.
	ErrInvalidJobStatus = errors.New("invalid job status")

	// ErrInvalidTransition is returned when a status change would move a job
	// backwards or out of a terminal state.
	ErrInvalidTransition = errors.New("invalid job status transition")
)

// Job represents one submitted message and its processing state.
// ID, Message, Type and CreatedAt never change after creation.
type Job struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Status    JobStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeMessage validates raw client input and returns the text to store.
// Blank input fails with ErrInvalidMessage. The length limit applies to the
// untrimmed input and fails with ErrMessageTooLong.
func NormalizeMessage(message string) (string, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "", ErrInvalidMessage
	}

	if utf8.RuneCountInString(message) > MaxMessageLength {
		return "", ErrMessageTooLong
	}

	return trimmed, nil
}

// NewJob creates a new Job in the created state.
// The message is normalized with NormalizeMessage; an empty jobType becomes DefaultJobType.
func NewJob(message, jobType string) (*Job, error) {
	text, err := NormalizeMessage(message)
	if err != nil {
		return nil, err
	}

	if jobType == "" {
		jobType = DefaultJobType
	}

	now := time.Now().UTC()
	job := &Job{
		ID:        uuid.New(),
		Message:   text,
		Type:      jobType,
		Status:    JobStatusCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}

	return job, nil
}

// Validate checks if the Job has valid data.
func (j *Job) Validate() error {
	if j.ID == uuid.Nil {
		return ErrJobIDEmpty
	}

	if strings.TrimSpace(j.Message) == "" {
		return ErrInvalidMessage
	}

	if utf8.RuneCountInString(j.Message) > MaxMessageLength {
		return ErrMessageTooLong
	}

	if !j.Status.IsValid() {
		return ErrInvalidJobStatus
	}

	return nil
}

// TransitionTo moves the job to the given status and stamps UpdatedAt.
// Only the next step of the lifecycle, or failed from any non-terminal state,
// is accepted. UpdatedAt never moves backwards.
func (j *Job) TransitionTo(status JobStatus, at time.Time) error {
	if !status.IsValid() {
		return ErrInvalidJobStatus
	}

	if !j.Status.CanTransitionTo(status) {
		return ErrInvalidTransition
	}

	at = at.UTC()
	if at.Before(j.UpdatedAt) {
		at = j.UpdatedAt
	}

	j.Status = status
	j.UpdatedAt = at
	return nil
}

// Age returns how long ago the job was created, relative to now.
func (j *Job) Age(now time.Time) time.Duration {
	return now.Sub(j.CreatedAt)
}

// Clone returns a copy of the job that shares no state with the receiver.
func (j *Job) Clone() *Job {
	c := *j
	return &c
}

// IsValid reports whether s is one of the known statuses.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusCreated, JobStatusProcessing, JobStatusAnalyzing,
		JobStatusCompleted, JobStatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can happen from s.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	if s.IsTerminal() {
		return false
	}

	if next == JobStatusFailed {
		return true
	}

	switch s {
	case JobStatusCreated:
		return next == JobStatusProcessing
	case JobStatusProcessing:
		return next == JobStatusAnalyzing
	case JobStatusAnalyzing:
		return next == JobStatusCompleted
	default:
		return false
	}
}
