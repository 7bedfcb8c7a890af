package types

// Operator represents query comparison operators.
type Operator string

const (
	// Basic comparison operators.
	EQ Operator = "="
	NE Operator = "!="
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="

	// Extended operators.
	IN         Operator = "IN"
	NotIn      Operator = "NOT IN"
	LIKE       Operator = "LIKE"
	NotLike    Operator = "NOT LIKE"
	IsNull     Operator = "IS NULL"
	IsNotNull  Operator = "IS NOT NULL"
	IsBlank    Operator = "IS BLANK"
	IsNotBlank Operator = "IS NOT BLANK"
)

// TakesValue reports whether the operator binds a parameter.
func (op Operator) TakesValue() bool {
	switch op {
	case IsNull, IsNotNull, IsBlank, IsNotBlank:
		return false
	default:
		return true
	}
}
