package types

// Field represents a validated column reference.
// This is exported from the internal package so dialects can use it,
// but external users cannot import this package.
type Field struct {
	Name  string // The column name (required)
	Table string // Optional table alias prefix
}

// GetName returns the column name.
func (f Field) GetName() string {
	return f.Name
}

// GetTable returns the table alias prefix.
func (f Field) GetTable() string {
	return f.Table
}

// WithTable returns a copy of the field qualified by the given alias.
func (f Field) WithTable(alias string) Field {
	f.Table = alias
	return f
}
