package filterql

import "github.com/zoobzio/filterql/internal/types"

var numberComparisons = map[string]types.Operator{
	OpEquals:             types.EQ,
	OpNotEquals:          types.NE,
	OpLessThan:           types.LT,
	OpGreaterThan:        types.GT,
	OpLessThanOrEqual:    types.LE,
	OpGreaterThanOrEqual: types.GE,
}

func numberTerm(b binder, op string, value any) (types.ConditionItem, bool) {
	switch op {
	case OpIsEmpty:
		return Null(b.field), true
	case OpIsNotEmpty:
		return NotNull(b.field), true
	}

	s, ok := valueString(value)
	if !ok {
		return nil, false
	}

	if cmp, found := numberComparisons[op]; found {
		n, ok := parseNumber(s)
		if !ok {
			return nil, false
		}
		return C(b.field, cmp, b.bind(n)), true
	}

	switch op {
	case OpIsOneOf, OpIsNotOneOf:
		list := numberList(s)
		if len(list) == 0 {
			return nil, false
		}
		in := types.IN
		if op == OpIsNotOneOf {
			in = types.NotIn
		}
		return C(b.field, in, b.bind(list)), true
	}
	return nil, false
}
