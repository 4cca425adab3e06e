package domain

import (
	"errors"
	"html"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Task-specific validation errors
var (
	// ErrTaskIDEmpty is returned when a task ID is empty or nil.
	ErrTaskIDEmpty = errors.New("task ID cannot be empty")

	// ErrTaskTitleEmpty is returned when a task's title is empty.
	ErrTaskTitleEmpty = errors.New("task title cannot be empty")

	// ErrTaskTitleTooLong is returned when a task's title exceeds MaxTitleLength.
	ErrTaskTitleTooLong = errors.New("task title cannot exceed 255 characters")

	// ErrTaskDescriptionTooLong is returned when a task's description exceeds
	// MaxDescriptionLength.
	ErrTaskDescriptionTooLong = errors.New("task description cannot exceed 1000 characters")

	// ErrInvalidTaskStatus is returned when a status is not one of the
	// enumerated TaskStatus values.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrInvalidTaskPriority is returned when a priority is not one of the
	// enumerated TaskPriority values.
	ErrInvalidTaskPriority = errors.New("invalid task priority")
)

// Field length limits enforced on caller-supplied input, counted in runes.
// Values are HTML-escaped before storage and a single character escapes to
// at most five (&amp; and the numeric quote entities), so the stored text
// may be up to escapeExpansion times longer than the input limit allows.
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000

	escapeExpansion = 5

	maxStoredTitleLength       = MaxTitleLength * escapeExpansion
	maxStoredDescriptionLength = MaxDescriptionLength * escapeExpansion
)

// TaskStatus represents the workflow state of a task.
type TaskStatus string

// Valid task statuses.
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// IsValid reports whether the status is one of the enumerated values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// TaskPriority represents the urgency of a task.
type TaskPriority string

// Valid task priorities.
const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// IsValid reports whether the priority is one of the enumerated values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task represents a tracked work item. The database row is the sole source
// of truth; this struct is a plain value mapped to and from it.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewTask creates a new Task with the given title, description and priority.
// It generates a new UUID for the task ID, applies the documented defaults
// (status=pending, priority=medium when empty) and sets both timestamps to
// the same instant so that created_at == updated_at on a fresh task.
// The caller-supplied strings are length-checked as sent, then HTML-escaped
// for storage; a title at the limit stays valid whatever characters it holds.
func NewTask(title, description string, priority TaskPriority) (*Task, error) {
	if priority == "" {
		priority = TaskPriorityMedium
	}

	if err := validateInput(title, description); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		Title:       html.EscapeString(title),
		Description: html.EscapeString(description),
		Status:      TaskStatusPending,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// NewReplacement builds the full-field replacement for the task with the
// given ID. Omitted status and priority revert to their defaults, and the
// strings go through the same validate-then-escape treatment as NewTask.
// Timestamps are left zero for the store to manage.
func NewReplacement(
	id uuid.UUID,
	title, description string,
	status TaskStatus,
	priority TaskPriority,
) (*Task, error) {
	if status == "" {
		status = TaskStatusPending
	}
	if priority == "" {
		priority = TaskPriorityMedium
	}

	if err := validateInput(title, description); err != nil {
		return nil, err
	}

	task := &Task{
		ID:          id,
		Title:       html.EscapeString(title),
		Description: html.EscapeString(description),
		Status:      status,
		Priority:    priority,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// validateInput checks the caller-supplied strings against the documented
// limits before escaping, so the 255/1000 contract applies to what the
// client actually sent rather than to the expanded storage form.
func validateInput(title, description string) error {
	if title == "" {
		return ErrTaskTitleEmpty
	}

	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTaskTitleTooLong
	}

	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrTaskDescriptionTooLong
	}

	return nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}

	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if len(t.Title) > maxStoredTitleLength {
		return ErrTaskTitleTooLong
	}

	if len(t.Description) > maxStoredDescriptionLength {
		return ErrTaskDescriptionTooLong
	}

	if !t.Status.IsValid() {
		return ErrInvalidTaskStatus
	}

	if !t.Priority.IsValid() {
		return ErrInvalidTaskPriority
	}

	return nil
}
