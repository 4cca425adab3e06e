package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "wrapped generic error",
			err:      fmt.Errorf("failed to do something: %w", errors.New("some error")),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "ErrTaskNotFound",
			err:      ErrTaskNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrTaskNotFound",
			err:      fmt.Errorf("failed to find task: %w", ErrTaskNotFound),
			expected: true,
		},
		{
			name:     "duplicate error",
			err:      ErrDuplicate,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "ErrDuplicate",
			err:      ErrDuplicate,
			expected: true,
		},
		{
			name:     "wrapped ErrDuplicate",
			err:      fmt.Errorf("create failed: %w", ErrDuplicate),
			expected: true,
		},
		{
			name:     "not found error",
			err:      ErrTaskNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateError(tt.err); got != tt.expected {
				t.Errorf("IsDuplicateError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStoreError(t *testing.T) {
	underlying := errors.New("connection reset")
	err := NewStoreError("task", "create", "insert failed", underlying)

	if got := err.Error(); got != "create operation on task failed: insert failed: connection reset" {
		t.Errorf("unexpected error string: %q", got)
	}

	if !errors.Is(err, underlying) {
		t.Error("StoreError should unwrap to the underlying error")
	}

	bare := NewStoreError("task", "delete", "no rows", nil)
	if got := bare.Error(); got != "delete operation on task failed: no rows" {
		t.Errorf("unexpected error string: %q", got)
	}
}

func TestNewListFilter(t *testing.T) {
	tests := []struct {
		name          string
		page, limit   int
		expectedPage  int
		expectedLimit int
	}{
		{"defaults applied", 0, 0, DefaultPage, DefaultLimit},
		{"negative values", -3, -1, DefaultPage, DefaultLimit},
		{"values preserved", 4, 25, 4, 25},
		{"limit clamped", 1, 100000, 1, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewListFilter(nil, tt.page, tt.limit)
			if f.Page != tt.expectedPage {
				t.Errorf("Page = %d, want %d", f.Page, tt.expectedPage)
			}
			if f.Limit != tt.expectedLimit {
				t.Errorf("Limit = %d, want %d", f.Limit, tt.expectedLimit)
			}
		})
	}
}

func TestListFilterOffset(t *testing.T) {
	f := NewListFilter(nil, 3, 10)
	if got := f.Offset(); got != 20 {
		t.Errorf("Offset() = %d, want 20", got)
	}
}
