package api

import (
	"encoding/json"
	"time"

	"github.com/phrazzld/jobtrack-api/internal/domain"
)

// TimestampFormat renders times as RFC 3339 in UTC with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// CreateJobRequest defines the payload for POST /api/jobs.
// Message is kept raw so a non-string value can be told apart from a malformed body.
type CreateJobRequest struct {
	Message json.RawMessage `json:"message" validate:"required"`
	Type    string          `json:"type"`
}

// MessageText returns the message as a string, or domain.ErrInvalidMessage
// when the field is null or holds a non-string JSON value.
func (r CreateJobRequest) MessageText() (string, error) {
	if len(r.Message) == 0 || r.Message[0] != '"' {
		return "", domain.ErrInvalidMessage
	}

	var text string
	if err := json.Unmarshal(r.Message, &text); err != nil {
		return "", domain.ErrInvalidMessage
	}
	return text, nil
}

// CreateJobResponse is returned when a job has been accepted.
type CreateJobResponse struct {
	JobID   string `json:"jobId"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JobResponse describes a single job and, once finished, its result.
type JobResponse struct {
	JobID     string  `json:"jobId"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
	Result    *string `json:"result,omitempty"`
}

// JobSummaryResponse is one entry of a job listing.
type JobSummaryResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	Message   string `json:"message"`
}

// JobListResponse is the body of GET /api/jobs.
type JobListResponse struct {
	Jobs  []JobSummaryResponse `json:"jobs"`
	Total int                  `json:"total"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

func jobToResponse(view *domain.JobView) JobResponse {
	resp := JobResponse{
		JobID:     view.Job.ID.String(),
		Status:    string(view.Job.Status),
		CreatedAt: formatTimestamp(view.Job.CreatedAt),
		UpdatedAt: formatTimestamp(view.Job.UpdatedAt),
	}
	if view.Result != nil {
		text := view.Result.Text
		resp.Result = &text
	}
	return resp
}

func jobListToResponse(list *domain.JobList) JobListResponse {
	jobs := make([]JobSummaryResponse, 0, len(list.Jobs))
	for _, summary := range list.Jobs {
		jobs = append(jobs, JobSummaryResponse{
			ID:        summary.ID.String(),
			Status:    string(summary.Status),
			CreatedAt: formatTimestamp(summary.CreatedAt),
			Message:   summary.Message,
		})
	}
	return JobListResponse{Jobs: jobs, Total: list.Total}
}
