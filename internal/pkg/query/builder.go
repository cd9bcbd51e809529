// Package query builds parameterized SQL SELECT statements for Cloud
// Spanner with a small fluent API. Parameter names are generated so
// callers never synchronize them by hand.
package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc sorts ascending.
	Asc Direction = iota
	// Desc sorts descending.
	Desc
)

// OrderTerm is one ORDER BY expression with its direction.
type OrderTerm struct {
	Expr string
	Dir  Direction
}

// Builder constructs a SELECT statement. Builders are immutable; every
// method returns a modified copy, so partial queries can be shared (the
// catalog derives its COUNT query from the same filtered builder).
type Builder struct {
	table        string
	selectCols   []string
	whereClauses []Condition
	orderTerms   []OrderTerm
	limitVal     int64
	offsetVal    int64
}

// From creates a Builder for the given table.
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select sets the columns (or expressions) to retrieve.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, columns...)
	return nb
}

// Where adds a condition; multiple calls are joined with AND.
func (b *Builder) Where(condition Condition) *Builder {
	nb := b.clone()
	nb.whereClauses = append(nb.whereClauses, condition)
	return nb
}

// OrderBy appends an ORDER BY term. Repeated calls build a multi-term
// ordering, useful for a deterministic tie-break column.
func (b *Builder) OrderBy(expr string, dir Direction) *Builder {
	nb := b.clone()
	nb.orderTerms = append(nb.orderTerms, OrderTerm{Expr: expr, Dir: dir})
	return nb
}

// Limit sets the maximum number of rows.
func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.limitVal = limit
	return nb
}

// Offset sets the number of rows to skip.
func (b *Builder) Offset(offset int64) *Builder {
	nb := b.clone()
	nb.offsetVal = offset
	return nb
}

// Count derives a COUNT(*) query with the same FROM and WHERE clauses,
// dropping pagination and ordering.
func (b *Builder) Count() *Builder {
	nb := b.clone()
	nb.selectCols = []string{"COUNT(*)"}
	nb.orderTerms = nil
	nb.limitVal = 0
	nb.offsetVal = 0
	return nb
}

// Build constructs the final spanner.Statement.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.whereClauses) > 0 {
		sql.WriteString(" WHERE ")
		parts := make([]string, 0, len(b.whereClauses))
		paramIndex := 0
		for _, condition := range b.whereClauses {
			fragment, condParams := condition.SQL(paramIndex)
			parts = append(parts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
			paramIndex += len(condParams)
		}
		sql.WriteString(strings.Join(parts, " AND "))
	}

	if len(b.orderTerms) > 0 {
		sql.WriteString(" ORDER BY ")
		terms := make([]string, 0, len(b.orderTerms))
		for _, term := range b.orderTerms {
			if term.Dir == Desc {
				terms = append(terms, term.Expr+" DESC")
			} else {
				terms = append(terms, term.Expr+" ASC")
			}
		}
		sql.WriteString(strings.Join(terms, ", "))
	}

	if b.limitVal > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limitVal
	}

	if b.offsetVal > 0 {
		sql.WriteString(" OFFSET @offset")
		params["offset"] = b.offsetVal
	}

	return spanner.Statement{SQL: sql.String(), Params: params}
}

// String renders the statement for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}

func (b *Builder) clone() *Builder {
	nb := &Builder{
		table:        b.table,
		selectCols:   make([]string, len(b.selectCols)),
		whereClauses: make([]Condition, len(b.whereClauses)),
		orderTerms:   make([]OrderTerm, len(b.orderTerms)),
		limitVal:     b.limitVal,
		offsetVal:    b.offsetVal,
	}
	copy(nb.selectCols, b.selectCols)
	copy(nb.whereClauses, b.whereClauses)
	copy(nb.orderTerms, b.orderTerms)
	return nb
}
