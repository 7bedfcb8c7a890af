package filterql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/filterql/internal/types"
)

// FilterCondition is one user-supplied predicate. Value is a string, a
// bool, a number or nil.
type FilterCondition struct {
	Column   string `json:"column"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// ColumnType selects the operator table a column is compiled with.
type ColumnType int

const (
	StringColumn ColumnType = iota
	NumberColumn
	DateColumn
	BooleanColumn
)

func (t ColumnType) String() string {
	switch t {
	case NumberColumn:
		return "number"
	case DateColumn:
		return "date"
	case BooleanColumn:
		return "boolean"
	default:
		return "string"
	}
}

// LogicOperator joins the compiled filters.
type LogicOperator = types.LogicOperator

// Re-export logic constants for public API.
const (
	AND = types.AND
	OR  = types.OR
)

// ParseLogicOperator normalizes s. The empty string means AND.
func ParseLogicOperator(s string) (LogicOperator, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "AND":
		return AND, nil
	case "OR":
		return OR, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLogicOperator, s)
	}
}
