package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack-api/internal/domain"
)

// Pagination defaults applied when the caller supplies nothing usable.
const (
	DefaultPage  = 1
	DefaultLimit = 10

	// MaxLimit bounds a single page. The small defaults stay untouched;
	// only pathological limit values are clamped.
	MaxLimit = 100
)

// ListFilter describes the predicate and pagination window for listing tasks.
// A nil Status means no status predicate is applied.
type ListFilter struct {
	Status *domain.TaskStatus
	Page   int
	Limit  int
}

// NewListFilter builds a ListFilter from raw query inputs, applying the
// documented defaults (page=1, limit=10) when values are absent or
// non-positive, and clamping limit to MaxLimit.
func NewListFilter(status *domain.TaskStatus, page, limit int) ListFilter {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return ListFilter{Status: status, Page: page, Limit: limit}
}

// Offset returns the row offset implied by the page and limit.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// TaskStats holds aggregate counts over the tasks table, grouped by
// status and priority. It is a read-only convenience derived from the
// task_stats view.
type TaskStats struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	ByPriority map[string]int `json:"by_priority"`
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	// The task must already be fully populated (ID, timestamps, defaults);
	// see domain.NewTask.
	Create(ctx context.Context, task *domain.Task) error

	// List retrieves tasks ordered by creation time descending, applying
	// the filter's status predicate and pagination window. The returned
	// count reflects the same predicate but ignores pagination.
	List(ctx context.Context, filter ListFilter) ([]*domain.Task, int, error)

	// Update replaces every mutable field of the task identified by
	// task.ID and refreshes its updated_at timestamp. The stored
	// created_at is written back into the task.
	// Returns ErrTaskNotFound if no task matches the ID.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given ID and returns its
	// last-seen state.
	// Returns ErrTaskNotFound if no task matches the ID.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Counts returns aggregate per-status and per-priority task counts.
	Counts(ctx context.Context) (*TaskStats, error)

	// Ping issues a trivial query to verify that the storage dependency
	// is reachable. Used by the health and readiness probes.
	Ping(ctx context.Context) error
}
