package filterql

import "github.com/zoobzio/filterql/internal/types"

var dateComparisons = map[string]types.Operator{
	OpIs:              types.EQ,
	OpNot:             types.NE,
	OpIsAfter:         types.GT,
	OpIsBefore:        types.LT,
	OpIsAfterOrEqual:  types.GE,
	OpIsBeforeOrEqual: types.LE,
}

// dateTerm compares calendar days: both the column and the bound value are
// truncated to the day.
func dateTerm(b binder, op string, value any) (types.ConditionItem, bool) {
	switch op {
	case OpIsEmpty:
		return Null(b.field), true
	case OpIsNotEmpty:
		return NotNull(b.field), true
	}

	cmp, found := dateComparisons[op]
	if !found {
		return nil, false
	}
	s, ok := valueString(value)
	if !ok {
		return nil, false
	}
	day, ok := parseDay(s)
	if !ok {
		return nil, false
	}
	return Day(b.field, cmp, b.bind(day)), true
}
