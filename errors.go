package filterql

import "errors"

// Validation errors. Callers receive them wrapped with the offending value,
// so compare with errors.Is.
var (
	ErrInvalidColumn        = errors.New("invalid column")
	ErrInvalidOperator      = errors.New("invalid operator")
	ErrInvalidLogicOperator = errors.New("invalid logic operator")
	ErrInvalidPagination    = errors.New("invalid pagination")
)
