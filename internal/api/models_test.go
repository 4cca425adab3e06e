package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/tasktrack-api/internal/domain"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		limit    int
		total    int
		expected Pagination
	}{
		{
			name:  "first of several pages",
			page:  1, limit: 10, total: 25,
			expected: Pagination{CurrentPage: 1, TotalPages: 3, TotalTasks: 25, HasNext: true, HasPrev: false},
		},
		{
			name:  "middle page",
			page:  2, limit: 10, total: 25,
			expected: Pagination{CurrentPage: 2, TotalPages: 3, TotalTasks: 25, HasNext: true, HasPrev: true},
		},
		{
			name:  "last page",
			page:  3, limit: 10, total: 25,
			expected: Pagination{CurrentPage: 3, TotalPages: 3, TotalTasks: 25, HasNext: false, HasPrev: true},
		},
		{
			name:  "exact multiple",
			page:  2, limit: 10, total: 20,
			expected: Pagination{CurrentPage: 2, TotalPages: 2, TotalTasks: 20, HasNext: false, HasPrev: true},
		},
		{
			name:  "no tasks",
			page:  1, limit: 10, total: 0,
			expected: Pagination{CurrentPage: 1, TotalPages: 0, TotalTasks: 0, HasNext: false, HasPrev: false},
		},
		{
			name:  "page beyond the end",
			page:  9, limit: 10, total: 14,
			expected: Pagination{CurrentPage: 9, TotalPages: 2, TotalTasks: 14, HasNext: false, HasPrev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPagination(tt.page, tt.limit, tt.total))
		})
	}
}

func TestRequestNormalize(t *testing.T) {
	t.Run("create request trims fields", func(t *testing.T) {
		req := CreateTaskRequest{Title: "  padded  ", Description: "\tindented\n"}
		req.Normalize()

		assert.Equal(t, "padded", req.Title)
		assert.Equal(t, "indented", req.Description)
	})

	t.Run("update request trims fields", func(t *testing.T) {
		req := UpdateTaskRequest{Title: " x ", Description: " y "}
		req.Normalize()

		assert.Equal(t, "x", req.Title)
		assert.Equal(t, "y", req.Description)
	})
}

func TestTaskToResponse(t *testing.T) {
	task, err := domain.NewTask("a title", "a description", domain.TaskPriorityHigh)
	require.NoError(t, err)

	resp := taskToResponse(task)

	assert.Equal(t, task.ID.String(), resp.ID)
	assert.Equal(t, "a title", resp.Title)
	assert.Equal(t, "a description", resp.Description)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "high", resp.Priority)
	assert.Equal(t, task.CreatedAt, resp.CreatedAt)
	assert.Equal(t, task.UpdatedAt, resp.UpdatedAt)
}
