// Package api provides HTTP handlers for the API.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/phrazzld/tasktrack-api/internal/api/shared"
	"github.com/phrazzld/tasktrack-api/internal/domain"
	"github.com/phrazzld/tasktrack-api/internal/platform/logger"
	"github.com/phrazzld/tasktrack-api/internal/store"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /listTasks requests.
// Supports optional exact-match status filtering and offset/limit
// pagination; page and limit fall back to 1 and 10 when absent or
// non-numeric.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	query := r.URL.Query()
	page := parseIntParam(query.Get("page"))
	limit := parseIntParam(query.Get("limit"))

	var status *domain.TaskStatus
	if raw := query.Get("status"); raw != "" {
		// The filter is an exact-match predicate; an unknown value
		// simply matches no rows rather than failing the request.
		s := domain.TaskStatus(raw)
		status = &s
	}

	filter := store.NewListFilter(status, page, limit)

	tasks, total, err := h.taskStore.List(r.Context(), filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}

	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, taskToResponse(task))
	}

	log.Debug("listed tasks",
		slog.Int("count", len(responses)),
		slog.Int("total", total),
		slog.Int("page", filter.Page))
	shared.RespondWithJSON(w, r, http.StatusOK, ListTasksResponse{
		Tasks:      responses,
		Pagination: NewPagination(filter.Page, filter.Limit, total),
	})
}

// AddTask handles POST /addTask requests.
// It validates the payload, accumulating every field violation, then
// persists a new task with server-generated ID and defaults applied.
func (h *TaskHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Normalize()
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithValidationErrors(w, r, ValidationDetails(err))
		return
	}

	task, err := domain.NewTask(
		req.Title,
		req.Description,
		domain.TaskPriority(req.Priority),
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to create task", err)
		return
	}

	// The insert finishes even if the client disconnects; only the
	// context values (trace ID, logger) are carried across.
	if err := h.taskStore.Create(context.WithoutCancel(r.Context()), task); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to create task", err)
		return
	}

	log.Info("task created", slog.String("task_id", task.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, TaskEnvelope{
		Message: "Task created successfully",
		Task:    taskToResponse(task),
	})
}

// UpdateTask handles PUT /updateTask/{id} requests.
// Full-replace semantics: every field is set to the supplied value or,
// when omitted, to its documented default (description empty, status
// pending, priority medium). This is not a partial patch.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Normalize()
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithValidationErrors(w, r, ValidationDetails(err))
		return
	}

	task, err := domain.NewReplacement(id,
		req.Title,
		req.Description,
		domain.TaskStatus(req.Status),
		domain.TaskPriority(req.Priority),
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to update task", err)
		return
	}

	if err := h.taskStore.Update(context.WithoutCancel(r.Context()), task); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("task updated", slog.String("task_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, TaskEnvelope{
		Message: "Task updated successfully",
		Task:    taskToResponse(task),
	})
}

// DeleteTask handles DELETE /deleteTask/{id} requests.
// The deleted task's last-seen state is returned to the caller.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	task, err := h.taskStore.Delete(context.WithoutCancel(r.Context()), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("task deleted", slog.String("task_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, TaskEnvelope{
		Message: "Task deleted successfully",
		Task:    taskToResponse(task),
	})
}

// Stats handles GET /stats requests, exposing the read-only aggregate
// counts per status and priority.
func (h *TaskHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.taskStore.Counts(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to load task stats", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// taskIDFromPath extracts and parses the task ID path parameter.
// IDs are opaque to clients, so a malformed value is indistinguishable
// from an unknown task and yields 404.
func (h *TaskHandler) taskIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		log.Debug("malformed task ID in path", slog.String("task_id", raw))
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return uuid.Nil, false
	}
	return id, true
}

// parseIntParam parses a positive integer query parameter, returning 0
// (meaning "use the default") for absent, non-numeric or non-positive values.
func parseIntParam(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
