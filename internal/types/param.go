package types

// Param represents a named parameter reference in a query.
// Values are never rendered inline; they are bound by name at execution.
type Param struct {
	Name string
}

// GetName returns the parameter name.
func (p Param) GetName() string {
	return p.Name
}
