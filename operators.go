package filterql

// Operator names accepted in FilterCondition.Operator.
const (
	OpContains       = "contains"
	OpDoesNotContain = "doesNotContain"
	OpStartsWith     = "startsWith"
	OpEndsWith       = "endsWith"
	OpEquals         = "equals"
	OpDoesNotEqual   = "doesNotEqual"
	OpIsEmpty        = "isEmpty"
	OpIsNotEmpty     = "isNotEmpty"
	OpIsOneOf        = "isOneOf"
	OpIsNotOneOf     = "isNotOneOf"
	OpContainsOneOf  = "containsOneOf"

	OpNotEquals          = "notEquals"
	OpLessThan           = "lessThan"
	OpGreaterThan        = "greaterThan"
	OpLessThanOrEqual    = "lessThanOrEqual"
	OpGreaterThanOrEqual = "greaterThanOrEqual"

	OpIs              = "is"
	OpNot             = "not"
	OpIsAfter         = "isAfter"
	OpIsBefore        = "isBefore"
	OpIsAfterOrEqual  = "isAfterOrEqual"
	OpIsBeforeOrEqual = "isBeforeOrEqual"
)

var operatorTables = map[ColumnType][]string{
	StringColumn: {
		OpContains, OpDoesNotContain, OpStartsWith, OpEndsWith,
		OpEquals, OpDoesNotEqual, OpIsEmpty, OpIsNotEmpty,
		OpIsOneOf, OpIsNotOneOf, OpContainsOneOf,
	},
	NumberColumn: {
		OpEquals, OpNotEquals, OpLessThan, OpGreaterThan,
		OpLessThanOrEqual, OpGreaterThanOrEqual,
		OpIsOneOf, OpIsNotOneOf, OpIsEmpty, OpIsNotEmpty,
	},
	DateColumn: {
		OpIs, OpNot, OpIsAfter, OpIsBefore,
		OpIsAfterOrEqual, OpIsBeforeOrEqual, OpIsEmpty, OpIsNotEmpty,
	},
	BooleanColumn: {OpIs},
}

// Operators returns the operator names accepted for a column type.
func Operators(t ColumnType) []string {
	ops := operatorTables[t]
	out := make([]string, len(ops))
	copy(out, ops)
	return out
}

// Supports reports whether op is accepted for a column type.
// Matching is exact: operator names are case-sensitive.
func Supports(t ColumnType, op string) bool {
	for _, candidate := range operatorTables[t] {
		if candidate == op {
			return true
		}
	}
	return false
}
