package filterql

import (
	"fmt"
	"sort"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/filterql/internal/types"
)

// Schema validates table and column references against a DBML project.
type Schema struct {
	project *dbml.Project
	// Internal indexes for fast validation
	tables map[string]*dbml.Table
	fields map[string]map[string]*dbml.Column // table -> column -> definition
}

// NewFromDBML creates a new Schema from a DBML project.
func NewFromDBML(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		project: project,
		tables:  make(map[string]*dbml.Table),
		fields:  make(map[string]map[string]*dbml.Column),
	}

	for _, table := range project.Tables {
		if !isValidSQLIdentifier(table.Name) {
			return nil, fmt.Errorf("table %q is not a valid identifier", table.Name)
		}
		s.tables[table.Name] = table
		s.fields[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			if !isValidSQLIdentifier(col.Name) {
				return nil, fmt.Errorf("column %s.%s is not a valid identifier", table.Name, col.Name)
			}
			s.fields[table.Name][col.Name] = col
		}
	}

	return s, nil
}

// Project returns the underlying DBML project.
func (s *Schema) Project() *dbml.Project {
	return s.project
}

// TableNames returns every table name in sorted order.
func (s *Schema) TableNames() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasColumn reports whether the table defines the column.
func (s *Schema) HasColumn(table, column string) bool {
	cols, ok := s.fields[table]
	if !ok {
		return false
	}
	_, ok = cols[column]
	return ok
}

// TryT creates a validated table reference, returning an error if invalid.
func (s *Schema) TryT(name string, alias ...string) (types.Table, error) {
	if _, ok := s.tables[name]; !ok {
		return types.Table{}, fmt.Errorf("table '%s' not found in schema", name)
	}
	return TryT(name, alias...)
}

// T creates a validated table reference.
func (s *Schema) T(name string, alias ...string) types.Table {
	t, err := s.TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryF creates a field reference to a column of table, qualified by the
// table's alias (or name), returning an error if the column is not defined.
func (s *Schema) TryF(table types.Table, column string) (types.Field, error) {
	if !s.HasColumn(table.Name, column) {
		return types.Field{}, fmt.Errorf("field '%s' not found in table '%s'", column, table.Name)
	}
	return types.Field{Name: column, Table: table.Ref()}, nil
}

// F creates a validated, qualified field reference.
func (s *Schema) F(table types.Table, column string) types.Field {
	f, err := s.TryF(table, column)
	if err != nil {
		panic(err)
	}
	return f
}
