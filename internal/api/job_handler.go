package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/jobtrack-api/internal/api/shared"
	"github.com/phrazzld/jobtrack-api/internal/domain"
	"github.com/phrazzld/jobtrack-api/internal/platform/logger"
	"github.com/phrazzld/jobtrack-api/internal/redact"
	"github.com/phrazzld/jobtrack-api/internal/service"
)

// JobIDParam is the chi URL parameter holding the job id.
const JobIDParam = "jobId"

// JobHandler handles job-related HTTP requests
type JobHandler struct {
	jobService service.JobService
	logger     *slog.Logger
}

// NewJobHandler creates a new JobHandler.
// If logger is nil, slog.Default() is used.
func NewJobHandler(jobService service.JobService, logger *slog.Logger) *JobHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobHandler{
		jobService: jobService,
		logger:     logger.With("component", "job_handler"),
	}
}

// CreateJob handles POST /api/jobs requests.
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		h.respondWithError(w, r, fmt.Errorf("%w: %v", ErrMalformedRequest, err))
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		h.respondWithError(w, r, errors.Join(domain.ErrInvalidMessage, err))
		return
	}

	message, err := req.MessageText()
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	job, err := h.jobService.CreateJob(r.Context(), message, req.Type)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.log(r).Info("job accepted",
		"job_id", job.ID,
		"message_preview", redact.Preview(job.Message))

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateJobResponse{
		JobID:   job.ID.String(),
		Status:  string(job.Status),
		Message: "Job created successfully",
	})
}

// GetJob handles GET /api/jobs/{jobId} requests.
// An id that is not a valid UUID cannot name a job, so it is reported as not found.
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := getPathUUID(r, JobIDParam)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgJobNotFound)
		return
	}

	view, err := h.jobService.GetJob(r.Context(), jobID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, jobToResponse(view))
}

// ListJobs handles GET /api/jobs requests.
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	list, err := h.jobService.ListJobs(r.Context())
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, jobListToResponse(list))
}

func (h *JobHandler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// log prefers the request-scoped logger, which carries the trace id.
func (h *JobHandler) log(r *http.Request) *slog.Logger {
	if l := logger.FromContext(r.Context()); l != nil {
		return l.With("component", "job_handler")
	}
	return h.logger
}
