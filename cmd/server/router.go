package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/jobtrack-api/internal/api"
	apiMiddleware "github.com/phrazzld/jobtrack-api/internal/api/middleware"
	"github.com/phrazzld/jobtrack-api/internal/api/shared"
	"github.com/phrazzld/jobtrack-api/internal/metrics"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.Metrics)
	r.Use(apiMiddleware.Recover)

	jobHandler := api.NewJobHandler(app.jobService, app.logger)
	healthHandler := api.NewHealthHandler(app.config.Server.Environment, app.startedAt, nil)

	r.Route("/api/jobs", func(r chi.Router) {
		r.Post("/", jobHandler.CreateJob)
		r.Get("/", jobHandler.ListJobs)
		r.Get("/{"+api.JobIDParam+"}", jobHandler.GetJob)
	})

	r.Get("/health", healthHandler.Health)

	if app.config.Metrics.Enabled {
		r.Method(http.MethodGet, app.config.Metrics.Path, metrics.Handler())
	}

	// Unknown paths and unsupported methods are indistinguishable to clients.
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, api.MsgNotFound)
}
