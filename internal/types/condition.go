package types

// ConditionItem represents any node that can appear in a WHERE or ON clause.
type ConditionItem interface {
	IsConditionItem()
}

// LogicOperator represents how conditions are combined.
type LogicOperator string

const (
	AND LogicOperator = "AND"
	OR  LogicOperator = "OR"
)

// Transform wraps both sides of a comparison in a function.
type Transform string

const (
	NoTransform Transform = ""
	Lower       Transform = "LOWER"    // case folding
	TruncDate   Transform = "TRUNCDAY" // truncation to calendar day, dialect specific
)

// Condition compares a field against a parameter.
// Values are always parameters, never literals.
type Condition struct {
	Field     Field
	Operator  Operator
	Value     Param
	Transform Transform
}

// ConditionGroup represents grouped conditions with AND/OR logic.
// Groups always render inside parentheses.
type ConditionGroup struct {
	Logic      LogicOperator
	Conditions []ConditionItem
}

// Predicate is a flat list of terms joined by one logic operator.
// Unlike ConditionGroup it renders without surrounding parentheses at the
// top level; a term is parenthesized only when it is itself a group.
type Predicate struct {
	Logic LogicOperator
	Terms []ConditionItem
}

// Tautology is the always-true predicate 1=1.
type Tautology struct{}

// FieldComparison represents a comparison between two fields, used for join conditions.
type FieldComparison struct {
	LeftField  Field
	Operator   Operator
	RightField Field
}

func (Condition) IsConditionItem()       {}
func (ConditionGroup) IsConditionItem()  {}
func (Predicate) IsConditionItem()       {}
func (Tautology) IsConditionItem()       {}
func (FieldComparison) IsConditionItem() {}

// ContainsOr reports whether rendering the item introduces an OR at its top level.
func ContainsOr(item ConditionItem) bool {
	switch c := item.(type) {
	case ConditionGroup:
		return c.Logic == OR && len(c.Conditions) > 1
	case Predicate:
		return c.Logic == OR && len(c.Terms) > 1
	default:
		return false
	}
}

// FieldsOf returns every field referenced by the item, in visit order.
func FieldsOf(item ConditionItem) []Field {
	var out []Field
	var walk func(ConditionItem)
	walk = func(it ConditionItem) {
		switch c := it.(type) {
		case Condition:
			out = append(out, c.Field)
		case ConditionGroup:
			for _, sub := range c.Conditions {
				walk(sub)
			}
		case Predicate:
			for _, sub := range c.Terms {
				walk(sub)
			}
		case FieldComparison:
			out = append(out, c.LeftField, c.RightField)
		}
	}
	if item != nil {
		walk(item)
	}
	return out
}
