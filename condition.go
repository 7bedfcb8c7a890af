package filterql

import (
	"fmt"

	"github.com/zoobzio/filterql/internal/types"
)

// C creates a simple condition.
func C(f types.Field, op types.Operator, v types.Param) types.Condition {
	return types.Condition{
		Field:    f,
		Operator: op,
		Value:    v,
	}
}

// CI creates a case-insensitive condition: both sides are lower-cased.
func CI(f types.Field, op types.Operator, v types.Param) types.Condition {
	c := C(f, op, v)
	c.Transform = types.Lower
	return c
}

// Day creates a condition comparing both sides truncated to the calendar day.
func Day(f types.Field, op types.Operator, v types.Param) types.Condition {
	c := C(f, op, v)
	c.Transform = types.TruncDate
	return c
}

// Null creates an IS NULL condition.
func Null(f types.Field) types.Condition {
	return types.Condition{Field: f, Operator: types.IsNull}
}

// NotNull creates an IS NOT NULL condition.
func NotNull(f types.Field) types.Condition {
	return types.Condition{Field: f, Operator: types.IsNotNull}
}

// Blank matches NULL or whitespace-only values.
func Blank(f types.Field) types.ConditionGroup {
	return Or(Null(f), types.Condition{Field: f, Operator: types.IsBlank})
}

// NotBlank matches values with at least one non-space character.
func NotBlank(f types.Field) types.ConditionGroup {
	return And(NotNull(f), types.Condition{Field: f, Operator: types.IsNotBlank})
}

// Always is the no-op predicate 1=1.
func Always() types.Tautology {
	return types.Tautology{}
}

// On creates a join condition comparing two fields.
func On(left types.Field, op types.Operator, right types.Field) types.FieldComparison {
	return types.FieldComparison{
		LeftField:  left,
		Operator:   op,
		RightField: right,
	}
}

// TryAnd creates a ConditionGroup with AND logic, returning an error if invalid.
func TryAnd(conditions ...types.ConditionItem) (types.ConditionGroup, error) {
	if len(conditions) == 0 {
		return types.ConditionGroup{}, fmt.Errorf("AND requires at least one condition")
	}
	return types.ConditionGroup{
		Logic:      types.AND,
		Conditions: conditions,
	}, nil
}

// And creates a ConditionGroup with AND logic.
func And(conditions ...types.ConditionItem) types.ConditionGroup {
	g, err := TryAnd(conditions...)
	if err != nil {
		panic(err)
	}
	return g
}

// TryOr creates a ConditionGroup with OR logic, returning an error if invalid.
func TryOr(conditions ...types.ConditionItem) (types.ConditionGroup, error) {
	if len(conditions) == 0 {
		return types.ConditionGroup{}, fmt.Errorf("OR requires at least one condition")
	}
	return types.ConditionGroup{
		Logic:      types.OR,
		Conditions: conditions,
	}, nil
}

// Or creates a ConditionGroup with OR logic.
func Or(conditions ...types.ConditionItem) types.ConditionGroup {
	g, err := TryOr(conditions...)
	if err != nil {
		panic(err)
	}
	return g
}

// Predicate joins terms with one logic operator. At the top of a WHERE
// clause it renders without parentheses; nested, it is parenthesized when
// it has more than one term.
func Predicate(logic types.LogicOperator, terms ...types.ConditionItem) types.Predicate {
	return types.Predicate{Logic: logic, Terms: terms}
}
