// Package filterql compiles serializable filter conditions into safe,
// parameterized SQL predicates and builds the row and count queries that
// list endpoints page through.
//
// The package generates an Abstract Syntax Tree (AST) from filter
// conditions and fluent builder calls, then renders it to SQL with named
// parameters. Column names and operators never reach the SQL text
// unvalidated; every user-supplied value is a bound parameter.
//
// # Compiling Filters
//
// A Classifier tells the compiler each column's type and the field it maps to:
//
//	columns := filterql.NewColumnSet(map[string]filterql.Field{
//		"name":      filterql.F("name").WithTable("l"),
//		"createdAt": filterql.F("created_at").WithTable("l"),
//	}).Dates("createdAt")
//
//	compiler := filterql.NewCompiler(columns, postgres.New())
//	result, err := compiler.Compile([]filterql.FilterCondition{
//		{Column: "name", Operator: "contains", Value: "Alpha"},
//	}, "AND")
//	// result.Predicate(): LOWER(l."name") LIKE LOWER(:param0)
//	// result.Params():    param0 = "%Alpha%"
//
// Filters whose value cannot be used (an unparsable number, an empty
// list, an operator the column type does not support) compile to the
// inert predicate 1=1 instead of failing the whole query.
//
// # Building Queries
//
//	query := filterql.Select(filterql.T("leads", "l")).
//		Fields(filterql.F("id").WithTable("l")).
//		Where(result.Condition()).
//		OrderBy(filterql.F("id").WithTable("l"), filterql.DESC).
//		Limit(10)
//
//	sql, err := query.Render(postgres.New())
//
// # Multi-Dialect Support
//
// Available dialects: postgres, sqlite, mysql, mssql, duckdb.
//
// # Output Format
//
// All queries use named parameters (`:param_name`). The bind step in the
// executors rewrites them to the driver's positional syntax.
package filterql

import (
	"github.com/zoobzio/filterql/internal/render"
	"github.com/zoobzio/filterql/internal/types"
)

// AST represents the abstract syntax tree for a query.
// This is re-exported from internal/types for use by consumers.
type AST = types.AST

// RenderResult contains the rendered SQL and required parameters.
type RenderResult = types.QueryResult

// Field is a validated column reference.
type Field = types.Field

// Table is a validated table reference.
type Table = types.Table

// Param is a named parameter reference.
type Param = types.Param

// Params is an insertion-ordered parameter map.
type Params = types.Params

// NewParams creates an empty parameter map.
func NewParams() *Params {
	return types.NewParams()
}

// Operation represents the type of query operation.
type Operation = types.Operation

// Re-export operation constants for public API.
const (
	OpSelect = types.OpSelect
	OpCount  = types.OpCount
)

// Direction represents sort direction.
type Direction = types.Direction

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// Operator represents SQL comparison operators.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	EQ         = types.EQ
	NE         = types.NE
	GT         = types.GT
	GE         = types.GE
	LT         = types.LT
	LE         = types.LE
	IN         = types.IN
	NotIn      = types.NotIn
	LIKE       = types.LIKE
	NotLike    = types.NotLike
	IsNull     = types.IsNull
	IsNotNull  = types.IsNotNull
	IsBlank    = types.IsBlank
	IsNotBlank = types.IsNotBlank
)

// JoinType represents the type of SQL join.
type JoinType = types.JoinType

// Re-export join type constants for public API.
const (
	InnerJoin = types.InnerJoin
	LeftJoin  = types.LeftJoin
)

// ConditionItem represents either a single condition or a group of conditions.
type ConditionItem = types.ConditionItem

// Capabilities describes the SQL features supported by a dialect.
type Capabilities = render.Capabilities

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError = render.UnsupportedFeatureError
