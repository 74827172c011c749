package pgsql

import (
	"fmt"
	"strings"
)

// updateBuilder assembles a "SET col = $n, …" clause from trusted
// column names, binding every value positionally. Column names are
// appended only from compile-time string literals in the repositories;
// request-supplied keys never reach this type, so caller input cannot
// become SQL text.
type updateBuilder struct {
	assignments []string
	args        []any
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{}
}

// Set appends an assignment for column. The value is added to the
// positional argument list, never interpolated.
func (b *updateBuilder) Set(column string, value any) *updateBuilder {
	b.args = append(b.args, value)
	b.assignments = append(b.assignments, fmt.Sprintf("%s = $%d", column, len(b.args)))
	return b
}

// SetRaw appends an assignment whose right-hand side is a SQL
// expression with no bound value (e.g. "NOW()").
func (b *updateBuilder) SetRaw(column, expr string) *updateBuilder {
	b.assignments = append(b.assignments, fmt.Sprintf("%s = %s", column, expr))
	return b
}

// Empty reports whether no assignments have been added.
func (b *updateBuilder) Empty() bool {
	return len(b.assignments) == 0
}

// Clause returns the SET clause body and the argument list, plus the
// placeholder index to use for the next bound parameter (the WHERE id).
func (b *updateBuilder) Clause() (string, []any, int) {
	return strings.Join(b.assignments, ", "), b.args, len(b.args) + 1
}
