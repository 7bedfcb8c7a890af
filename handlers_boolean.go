package filterql

import "github.com/zoobzio/filterql/internal/types"

func booleanTerm(b binder, op string, value any) (types.ConditionItem, bool) {
	if op != OpIs {
		return nil, false
	}
	v, ok := parseBool(value)
	if !ok {
		return nil, false
	}
	return C(b.field, types.EQ, b.bind(v)), true
}
