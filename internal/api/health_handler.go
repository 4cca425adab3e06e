package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/tasktrack-api/internal/api/shared"
	"github.com/phrazzld/tasktrack-api/internal/platform/logger"
	"github.com/phrazzld/tasktrack-api/internal/store"
)

// probeTimeout bounds the storage round-trip for liveness checks so a
// stalled database turns into a 503 rather than a hung probe.
const probeTimeout = 2 * time.Second

// HealthResponse is the body of a successful GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
	Version   string `json:"version"`
}

// UnhealthyResponse is the body of a failed GET /health.
type UnhealthyResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error"`
}

// HealthHandler serves the liveness and readiness probes. Both issue a
// trivial query through the task store, distinguishing "process alive"
// from "dependency reachable".
type HealthHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
	version   string
	startedAt time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(taskStore store.TaskStore, version string, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for HealthHandler")
	}

	return &HealthHandler{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "health_handler")),
		version:   version,
		startedAt: time.Now().UTC(),
	}
}

// Health handles GET /health requests.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	now := time.Now().UTC()
	if err := h.taskStore.Ping(ctx); err != nil {
		log.Error("health probe failed", slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, UnhealthyResponse{
			Status:    "unhealthy",
			Timestamp: now.Format(time.RFC3339),
			Error:     "database unreachable",
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: now.Format(time.RFC3339),
		Uptime:    now.Sub(h.startedAt).Truncate(time.Second).String(),
		Version:   h.version,
	})
}

// Ready handles GET /ready requests.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.taskStore.Ping(ctx); err != nil {
		log.Error("readiness probe failed", slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable,
			map[string]string{"status": "not ready"})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}
