package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// Run starts the eviction scheduler and the HTTP server and blocks until ctx
// is cancelled or the server fails. Shutdown stops accepting requests first,
// then the scheduler, then the task runner, whose in-flight jobs end as failed.
func (app *application) Run(ctx context.Context) error {
	addr := net.JoinHostPort("", strconv.Itoa(app.config.Server.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return app.serve(ctx, listener)
}

// serve runs the application on an already bound listener.
func (app *application) serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := app.scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info("Starting server", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.logger.Info("Shutting down server...")
		return app.shutdown(server)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	app.logger.Info("Server shutdown completed")
	return nil
}

// shutdown drains the HTTP server and stops background work within the
// configured timeout.
func (app *application) shutdown(server *http.Server) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("server shutdown failed: %w", err))
	}

	if err := app.scheduler.Stop(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("scheduler shutdown failed: %w", err))
	}

	inFlight := app.taskRunner.InFlight()
	app.taskRunner.Stop()
	app.logger.Info("Task runner stopped", "interrupted_tasks", inFlight)

	return errors.Join(errs...)
}
