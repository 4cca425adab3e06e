package api

import (
	"strings"
	"time"

	"github.com/phrazzld/tasktrack-api/internal/domain"
)

// CreateTaskRequest is the body of POST /addTask.
// Title is validated after trimming; priority defaults downstream when empty.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
}

// Normalize trims whitespace from the string fields so validation sees
// the canonical values. Called before validation.
func (r *CreateTaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

// UpdateTaskRequest is the body of PUT /updateTask/{id}.
// Updates are full-field replaces: omitted status/priority/description
// revert to their documented defaults rather than keeping prior values.
type UpdateTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
	Status      string `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
}

// Normalize trims whitespace from the string fields so validation sees
// the canonical values. Called before validation.
func (r *UpdateTaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// TaskEnvelope wraps a task together with a human-readable message,
// used by the create/update/delete responses.
type TaskEnvelope struct {
	Message string       `json:"message"`
	Task    TaskResponse `json:"task"`
}

// Pagination carries the listing metadata returned by GET /listTasks.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalTasks  int  `json:"totalTasks"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// NewPagination derives the metadata for a page of the given size over
// total matching tasks. totalPages is ceil(total/limit).
func NewPagination(page, limit, total int) Pagination {
	totalPages := (total + limit - 1) / limit
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalTasks:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// ListTasksResponse is the body of GET /listTasks.
type ListTasksResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	Pagination Pagination     `json:"pagination"`
}
