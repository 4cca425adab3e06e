package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/tasktrack-api/internal/domain"
	"github.com/phrazzld/tasktrack-api/internal/store"
)

func TestListQueryWithoutFilter(t *testing.T) {
	q := newListQuery(store.NewListFilter(nil, 1, 10))

	selectSQL, selectArgs := q.selectStatement()
	assert.NotContains(t, selectSQL, "WHERE")
	assert.Contains(t, selectSQL, "ORDER BY created_at DESC")
	assert.Contains(t, selectSQL, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{10, 0}, selectArgs)

	countSQL, countArgs := q.countStatement()
	assert.Equal(t, "SELECT COUNT(*) FROM tasks", countSQL)
	assert.Empty(t, countArgs)
}

func TestListQueryWithStatusFilter(t *testing.T) {
	status := domain.TaskStatusCompleted
	q := newListQuery(store.NewListFilter(&status, 3, 20))

	selectSQL, selectArgs := q.selectStatement()
	assert.Contains(t, selectSQL, "WHERE status = $1")
	assert.Contains(t, selectSQL, "LIMIT $2 OFFSET $3")
	require.Len(t, selectArgs, 3)
	assert.Equal(t, domain.TaskStatusCompleted, selectArgs[0])
	assert.Equal(t, 20, selectArgs[1])
	assert.Equal(t, 40, selectArgs[2])

	countSQL, countArgs := q.countStatement()
	assert.Equal(t, "SELECT COUNT(*) FROM tasks WHERE status = $1", countSQL)
	assert.Equal(t, []any{domain.TaskStatusCompleted}, countArgs)
}

// The filter predicate must occupy identical parameter positions in the
// data query and its paired count query, whatever the filter shape.
func TestListQueryParameterAlignment(t *testing.T) {
	status := domain.TaskStatusPending
	filters := []store.ListFilter{
		store.NewListFilter(nil, 1, 10),
		store.NewListFilter(&status, 2, 5),
	}

	for _, filter := range filters {
		q := newListQuery(filter)

		selectSQL, selectArgs := q.selectStatement()
		countSQL, countArgs := q.countStatement()

		// Count args are a strict prefix of the select args.
		require.LessOrEqual(t, len(countArgs), len(selectArgs))
		assert.Equal(t, countArgs, selectArgs[:len(countArgs)])

		// Both share the predicate text verbatim.
		if strings.Contains(countSQL, "WHERE") {
			whereClause := countSQL[strings.Index(countSQL, "WHERE"):]
			assert.Contains(t, selectSQL, whereClause)
		}
	}
}
