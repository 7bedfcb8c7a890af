package filterql

import (
	"sort"

	"github.com/zoobzio/filterql/internal/types"
)

// Classifier resolves API column names for one entity.
type Classifier interface {
	// Classify returns the column's type. Unclassified columns are strings.
	Classify(column string) ColumnType
	// Field returns the alias-qualified field the column maps to.
	Field(column string) (types.Field, bool)
}

// ColumnSet is the standard Classifier: a column-to-field map plus the
// date, boolean and number column lists.
type ColumnSet struct {
	fields map[string]types.Field
	kinds  map[string]ColumnType
}

// NewColumnSet creates a ColumnSet where every column is a string until
// classified otherwise.
func NewColumnSet(fields map[string]types.Field) *ColumnSet {
	cs := &ColumnSet{
		fields: make(map[string]types.Field, len(fields)),
		kinds:  make(map[string]ColumnType),
	}
	for name, f := range fields {
		cs.fields[name] = f
	}
	return cs
}

// Dates marks columns as dates.
func (cs *ColumnSet) Dates(columns ...string) *ColumnSet {
	return cs.mark(DateColumn, columns)
}

// Booleans marks columns as booleans.
func (cs *ColumnSet) Booleans(columns ...string) *ColumnSet {
	return cs.mark(BooleanColumn, columns)
}

// Numbers marks columns as numbers.
func (cs *ColumnSet) Numbers(columns ...string) *ColumnSet {
	return cs.mark(NumberColumn, columns)
}

func (cs *ColumnSet) mark(t ColumnType, columns []string) *ColumnSet {
	for _, c := range columns {
		if _, ok := cs.fields[c]; !ok {
			panic("filterql: classified column " + c + " has no field mapping")
		}
		cs.kinds[c] = t
	}
	return cs
}

// Classify implements Classifier.
func (cs *ColumnSet) Classify(column string) ColumnType {
	return cs.kinds[column]
}

// Field implements Classifier.
func (cs *ColumnSet) Field(column string) (types.Field, bool) {
	f, ok := cs.fields[column]
	return f, ok
}

// Columns returns the known column names, sorted.
func (cs *ColumnSet) Columns() []string {
	out := make([]string, 0, len(cs.fields))
	for name := range cs.fields {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
