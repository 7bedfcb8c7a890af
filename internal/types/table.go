package types

// Table represents a validated table reference.
type Table struct {
	Name  string
	Alias string
}

// GetName returns the table name.
func (t Table) GetName() string {
	return t.Name
}

// GetAlias returns the table alias.
func (t Table) GetAlias() string {
	return t.Alias
}

// Ref returns the name columns of this table are qualified with:
// the alias when set, otherwise the table name.
func (t Table) Ref() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.Name
}
