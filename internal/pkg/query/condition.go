package query

import (
	"fmt"
	"strings"
)

// Condition is one WHERE clause fragment. Implementations generate SQL
// using Spanner's named parameter format; paramIndex keeps generated
// names (@p0, @p1, ...) unique across the whole statement.
type Condition interface {
	SQL(paramIndex int) (string, map[string]interface{})
}

type binaryCondition struct {
	field string
	op    string
	value interface{}
}

func (c *binaryCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s %s @%s", c.field, c.op, name), map[string]interface{}{name: c.value}
}

// Eq creates "field = @pN".
func Eq(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: "=", value: value}
}

// Lte creates "field <= @pN". The field may be any SQL expression, e.g.
// SAFE_DIVIDE(base_price_numerator, base_price_denominator).
func Lte(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: "<=", value: value}
}

// Gte creates "field >= @pN".
func Gte(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: ">=", value: value}
}

// Like creates "field LIKE @pN". Callers escape wildcards themselves.
func Like(field string, value string) Condition {
	return &binaryCondition{field: field, op: "LIKE", value: value}
}

// InUnnest creates "field IN UNNEST(@pN)" for array-valued parameters.
func InUnnest(field string, values interface{}) Condition {
	return &inUnnestCondition{field: field, values: values}
}

type inUnnestCondition struct {
	field  string
	values interface{}
}

func (c *inUnnestCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s IN UNNEST(@%s)", c.field, name), map[string]interface{}{name: c.values}
}

// Exists wraps a correlated subquery with a single array parameter. The
// subquery template must contain exactly one "@%s" placeholder for the
// generated parameter name.
func Exists(subquery string, values interface{}) Condition {
	return &existsCondition{subquery: subquery, values: values}
}

type existsCondition struct {
	subquery string
	values   interface{}
}

func (c *existsCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	sub := fmt.Sprintf(c.subquery, name)
	return fmt.Sprintf("EXISTS (%s)", sub), map[string]interface{}{name: c.values}
}

// Or combines conditions with OR, parenthesized as one fragment.
func Or(conditions ...Condition) Condition {
	return &orCondition{conditions: conditions}
}

type orCondition struct {
	conditions []Condition
}

func (c *orCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	parts := make([]string, 0, len(c.conditions))
	params := make(map[string]interface{})
	for _, cond := range c.conditions {
		fragment, condParams := cond.SQL(paramIndex)
		parts = append(parts, fragment)
		for k, v := range condParams {
			params[k] = v
		}
		paramIndex += len(condParams)
	}
	return "(" + strings.Join(parts, " OR ") + ")", params
}

// IsNull creates "field IS NULL".
func IsNull(field string) Condition {
	return &nullCondition{field: field}
}

// IsNotNull creates "field IS NOT NULL".
func IsNotNull(field string) Condition {
	return &nullCondition{field: field, negate: true}
}

type nullCondition struct {
	field  string
	negate bool
}

func (c *nullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	if c.negate {
		return fmt.Sprintf("%s IS NOT NULL", c.field), map[string]interface{}{}
	}
	return fmt.Sprintf("%s IS NULL", c.field), map[string]interface{}{}
}
