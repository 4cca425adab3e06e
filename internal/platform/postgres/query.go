package postgres

import (
	"fmt"
	"strings"

	"github.com/phrazzld/tasktrack-api/internal/store"
)

// listQuery builds the paired data and count statements for a task listing.
// Both statements are derived from the same WHERE clause and argument
// slice, which keeps positional parameters aligned between them: the
// filter predicate occupies $1..$n in both queries, and the data query
// appends LIMIT/OFFSET as $n+1/$n+2.
type listQuery struct {
	where  string
	args   []any
	limit  int
	offset int
}

// newListQuery derives a listQuery from the given filter.
func newListQuery(filter store.ListFilter) *listQuery {
	// args starts non-nil so the count args always compare equal to the
	// matching prefix of the select args, filter or no filter.
	q := &listQuery{
		args:   make([]any, 0, 1),
		limit:  filter.Limit,
		offset: filter.Offset(),
	}

	var predicates []string
	if filter.Status != nil {
		q.args = append(q.args, *filter.Status)
		predicates = append(predicates, fmt.Sprintf("status = $%d", len(q.args)))
	}

	if len(predicates) > 0 {
		q.where = " WHERE " + strings.Join(predicates, " AND ")
	}

	return q
}

// selectStatement returns the data query and its full argument list,
// including the pagination parameters.
func (q *listQuery) selectStatement() (string, []any) {
	query := fmt.Sprintf(
		`SELECT id, title, description, status, priority, created_at, updated_at
		FROM tasks%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		q.where,
		len(q.args)+1,
		len(q.args)+2,
	)

	args := make([]any, 0, len(q.args)+2)
	args = append(args, q.args...)
	args = append(args, q.limit, q.offset)
	return query, args
}

// countStatement returns the paired count query sharing the filter
// predicate and its arguments, without pagination.
func (q *listQuery) countStatement() (string, []any) {
	return "SELECT COUNT(*) FROM tasks" + q.where, q.args
}
