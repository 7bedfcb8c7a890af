package types

import "fmt"

// Operation represents the type of query operation.
type Operation string

const (
	OpSelect Operation = "SELECT"
	OpCount  Operation = "COUNT"
)

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// OrderBy represents an ORDER BY clause.
type OrderBy struct {
	Field     Field
	Direction Direction
}

// JoinType represents the type of SQL join.
type JoinType string

const (
	InnerJoin JoinType = "INNER JOIN"
	LeftJoin  JoinType = "LEFT JOIN"
)

// Join represents a SQL JOIN clause.
type Join struct {
	On    ConditionItem
	Table Table
	Type  JoinType
}

// AST represents the abstract syntax tree for a read query.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type AST struct {
	Operation   Operation
	Target      Table
	Fields      []Field
	Joins       []Join
	WhereClause ConditionItem
	Ordering    []OrderBy
	Limit       *int
	Offset      *int
	Distinct    bool   // SELECT DISTINCT, or COUNT(DISTINCT CountField)
	CountField  *Field // COUNT target; nil means COUNT(*)
}

// Validate performs basic validation on the AST.
func (ast *AST) Validate() error {
	if ast.Target.Name == "" {
		return fmt.Errorf("target table is required")
	}

	switch ast.Operation {
	case OpSelect:
		if ast.CountField != nil {
			return fmt.Errorf("SELECT cannot have a count field")
		}
	case OpCount:
		if len(ast.Fields) > 0 || len(ast.Ordering) > 0 {
			return fmt.Errorf("COUNT cannot have fields or ordering")
		}
		if ast.Limit != nil || ast.Offset != nil {
			return fmt.Errorf("COUNT cannot have LIMIT or OFFSET")
		}
		if ast.Distinct && ast.CountField == nil {
			return fmt.Errorf("COUNT DISTINCT requires a count field")
		}
	default:
		return fmt.Errorf("unsupported operation: %s", ast.Operation)
	}

	if ast.Limit != nil && *ast.Limit < 0 {
		return fmt.Errorf("LIMIT must be non-negative, got %d", *ast.Limit)
	}
	if ast.Offset != nil && *ast.Offset < 0 {
		return fmt.Errorf("OFFSET must be non-negative, got %d", *ast.Offset)
	}

	for _, join := range ast.Joins {
		if join.On == nil {
			return fmt.Errorf("%s %s requires ON clause", join.Type, join.Table.Name)
		}
	}

	return nil
}
