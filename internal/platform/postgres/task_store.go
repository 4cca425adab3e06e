package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/tasktrack-api/internal/domain"
	"github.com/phrazzld/tasktrack-api/internal/platform/logger"
	"github.com/phrazzld/tasktrack-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
// It inserts a fully-populated task row. The entity carries its own ID and
// timestamps (set by domain.NewTask), so the row mirrors it exactly.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return store.ErrInvalidEntity
	}

	query := `
		INSERT INTO tasks (id, title, description, status, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create task",
			"task_id", task.ID,
			"error", err)
		return mapError("create", err)
	}

	log.Debug("task created", "task_id", task.ID)
	return nil
}

// List implements store.TaskStore.List
// It returns tasks ordered by created_at descending together with the
// total count matching the filter. The data and count queries share the
// same predicate and argument positions (see listQuery); they run as two
// independent statements, so the pair is eventually consistent under
// concurrent writes.
func (s *PostgresTaskStore) List(
	ctx context.Context,
	filter store.ListFilter,
) ([]*domain.Task, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	q := newListQuery(filter)

	query, args := q.selectStatement()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks",
			"page", filter.Page,
			"limit", filter.Limit,
			"error", err)
		return nil, 0, mapError("list", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0, filter.Limit)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.Priority,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			log.Error("failed to scan task row", "error", err)
			return nil, 0, mapError("list", err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", "error", err)
		return nil, 0, mapError("list", err)
	}

	countQuery, countArgs := q.countStatement()
	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Error("failed to count tasks", "error", err)
		return nil, 0, mapError("count", err)
	}

	return tasks, total, nil
}

// Update implements store.TaskStore.Update
// Full-field replace: every mutable column is set to the value carried by
// the entity and updated_at is refreshed. The stored created_at is read
// back into the entity so callers receive the complete row.
// Returns store.ErrTaskNotFound if no row matches the ID.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, priority = $4, updated_at = $5
		WHERE id = $6
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.UpdatedAt,
		task.ID,
	).Scan(&task.CreatedAt)
	if err != nil {
		mapped := mapError("update", err)
		if store.IsNotFoundError(mapped) {
			log.Debug("task not found for update", "task_id", task.ID)
		} else {
			log.Error("failed to update task",
				"task_id", task.ID,
				"error", err)
		}
		return mapped
	}

	log.Debug("task updated", "task_id", task.ID)
	return nil
}

// Delete implements store.TaskStore.Delete
// It removes the row and returns its pre-deletion snapshot.
// Returns store.ErrTaskNotFound if no row matches the ID.
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM tasks
		WHERE id = $1
		RETURNING id, title, description, status, priority, created_at, updated_at
	`

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		mapped := mapError("delete", err)
		if store.IsNotFoundError(mapped) {
			log.Debug("task not found for delete", "task_id", id)
		} else {
			log.Error("failed to delete task",
				"task_id", id,
				"error", err)
		}
		return nil, mapped
	}

	log.Debug("task deleted", "task_id", id)
	return &task, nil
}

// Counts implements store.TaskStore.Counts
// It reads the task_stats view maintained alongside the tasks table.
func (s *PostgresTaskStore) Counts(ctx context.Context) (*store.TaskStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT status, priority, total FROM task_stats`)
	if err != nil {
		log.Error("failed to query task stats", "error", err)
		return nil, mapError("stats", err)
	}
	defer func() { _ = rows.Close() }()

	stats := &store.TaskStats{
		ByStatus:   make(map[string]int),
		ByPriority: make(map[string]int),
	}

	for rows.Next() {
		var status, priority string
		var count int
		if err := rows.Scan(&status, &priority, &count); err != nil {
			log.Error("failed to scan stats row", "error", err)
			return nil, mapError("stats", err)
		}
		stats.Total += count
		stats.ByStatus[status] += count
		stats.ByPriority[priority] += count
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating stats rows", "error", err)
		return nil, mapError("stats", err)
	}

	return stats, nil
}

// Ping implements store.TaskStore.Ping
// A single trivial statement verifies the whole dependency chain:
// pool slot, connection, and server round-trip.
func (s *PostgresTaskStore) Ping(ctx context.Context) error {
	var one int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return mapError("ping", err)
	}
	return nil
}
