package filterql

import "github.com/zoobzio/filterql/internal/types"

func stringTerm(b binder, op string, value any) (types.ConditionItem, bool) {
	switch op {
	case OpIsEmpty:
		return Blank(b.field), true
	case OpIsNotEmpty:
		return NotBlank(b.field), true
	}

	s, ok := valueString(value)
	if !ok {
		return nil, false
	}

	switch op {
	case OpContains:
		return CI(b.field, types.LIKE, b.bind("%"+s+"%")), true
	case OpDoesNotContain:
		return CI(b.field, types.NotLike, b.bind("%"+s+"%")), true
	case OpStartsWith:
		return CI(b.field, types.LIKE, b.bind(s+"%")), true
	case OpEndsWith:
		return CI(b.field, types.LIKE, b.bind("%"+s)), true
	case OpEquals:
		return CI(b.field, types.EQ, b.bind(s)), true
	case OpDoesNotEqual:
		return CI(b.field, types.NE, b.bind(s)), true
	case OpIsOneOf, OpIsNotOneOf:
		list := cleanList(s)
		if len(list) == 0 {
			return nil, false
		}
		in := types.IN
		if op == OpIsNotOneOf {
			in = types.NotIn
		}
		return CI(b.field, in, b.bind(list)), true
	case OpContainsOneOf:
		tokens := splitTokens(s)
		if len(tokens) == 0 {
			return nil, false
		}
		likes := make([]types.ConditionItem, 0, len(tokens))
		for j, tok := range tokens {
			likes = append(likes, CI(b.field, types.LIKE, b.bindSub(j, "%"+tok+"%")))
		}
		return Or(likes...), true
	}
	return nil, false
}
