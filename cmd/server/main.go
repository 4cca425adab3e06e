// Package main implements the entry point for the tasktrack API server,
// a task-tracking HTTP service backed by PostgreSQL.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/tasktrack-api/internal/config"
	"github.com/phrazzld/tasktrack-api/internal/platform/logger"
)

// version is stamped into health responses; overridden at build time via
// -ldflags "-X main.version=...".
var version = "dev"

// main wires configuration, logging, the database pool and the HTTP
// server together, then runs until a termination signal drains it.
func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Serving traffic against an unverified schema is never acceptable;
	// bootstrap failure is fatal.
	if err := bootstrapSchema(db, appLogger); err != nil {
		appLogger.Error("Schema bootstrap failed", "error", err)
		log.Fatalf("Schema bootstrap failed: %v", err)
	}

	app := newApplication(cfg, appLogger, db)
	if err := app.Run(context.Background()); err != nil {
		appLogger.Error("Server exited with error", "error", err)
		log.Fatalf("Server exited with error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config, the root logger and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"version", version)
	appLogger.Debug("Database configuration",
		"host", cfg.Database.Host,
		"name", cfg.Database.Name,
		"ssl_mode", cfg.Database.SSLMode,
		"max_open_conns", cfg.Database.MaxOpenConns)

	return cfg, appLogger, nil
}
