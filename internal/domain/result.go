package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// SummaryMessageLength is the number of characters of a job message shown in listings.
const SummaryMessageLength = 100

// summaryEllipsis marks a message that was cut for a listing.
const summaryEllipsis = "..."

// Result is the generated response text for a job. It is stored apart from the
// Job record and exists only once the job has reached a terminal status.
type Result struct {
	JobID     uuid.UUID `json:"job_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// JobView is a job together with its result, if one has been stored.
type JobView struct {
	Job    Job
	Result *Result
}

// JobSummary is the compact representation of a job used in listings.
type JobSummary struct {
	ID        uuid.UUID
	Status    JobStatus
	CreatedAt time.Time
	Message   string
}

// JobList is a snapshot of every job currently held.
type JobList struct {
	Jobs  []JobSummary
	Total int
}

// Summarize builds the listing view of a job.
func Summarize(job *Job) JobSummary {
	return JobSummary{
		ID:        job.ID,
		Status:    job.Status,
		CreatedAt: job.CreatedAt,
		Message:   TruncateMessage(job.Message, SummaryMessageLength),
	}
}

// TruncateMessage cuts text to at most limit characters and appends an
// ellipsis when anything was removed.
func TruncateMessage(text string, limit int) string {
	if limit < 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}

	runes := []rune(text)
	return string(runes[:limit]) + summaryEllipsis
}
