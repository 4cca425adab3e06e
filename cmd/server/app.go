package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/tasktrack-api/internal/config"
	"github.com/phrazzld/tasktrack-api/internal/platform/postgres"
	"github.com/phrazzld/tasktrack-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown. Handlers receive their
// dependencies from here at composition time; nothing is process-global
// except the default logger.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	taskStore store.TaskStore
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	return &application{
		config:    cfg,
		logger:    logger,
		db:        db,
		taskStore: postgres.NewPostgresTaskStore(db, logger),
	}
}

// Run serves HTTP traffic until a termination signal, a context
// cancellation or a listener failure, then drains in-flight requests and
// releases application resources. It owns the full lifecycle; callers
// just wait for it to return.
func (app *application) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: app.setupRouter(),
	}

	errCh := app.serve(server)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		app.logger.Info("Shutting down server", "signal", sig.String())
	case <-ctx.Done():
		app.logger.Info("Shutting down server", "reason", "context canceled")
	case err := <-errCh:
		app.cleanup()
		return fmt.Errorf("server error: %w", err)
	}

	if err := app.drain(server); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		app.cleanup()
		return err
	}

	app.logger.Info("Server shutdown completed")
	app.cleanup()
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
