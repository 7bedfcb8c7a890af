package repository

import (
	"fmt"

	"github.com/zoobzio/filterql"
)

// Entity describes how one table is searched.
type Entity struct {
	// Name identifies the entity in logs and routes.
	Name string
	// Table is the aliased source table.
	Table filterql.Table
	// PrimaryKey orders rows and counts distinct matches.
	PrimaryKey filterql.Field
	// Tenant scopes every query to one tenant.
	Tenant filterql.Field
	// SoftDelete, when set, hides deleted rows unless requested.
	SoftDelete *filterql.Field
	// Select lists the row query's columns, in scan order.
	Select []filterql.Field
	// Columns classifies and maps the API column names.
	Columns filterql.Classifier
	// Fetch joins are always part of the row query.
	Fetch []Join
	// Conditional joins are added only when a filter needs them.
	Conditional []ConditionalJoin
}

// Join is a joined table.
type Join struct {
	Table filterql.Table
	On    filterql.ConditionItem
	// Type defaults to LEFT JOIN for fetch joins.
	Type filterql.JoinType
	// Select is appended to the row query's columns.
	Select []filterql.Field
	// ToMany marks joins that can repeat source rows.
	ToMany bool
}

// ConditionalJoin is joined when a filter references one of Triggers.
type ConditionalJoin struct {
	Join
	// Triggers are API column names.
	Triggers []string
	// Numeric makes the join LEFT when a number-typed trigger's value is
	// not an integer.
	Numeric bool
}

// Validate checks that the entity is usable.
func (e Entity) Validate() error {
	if e.Table.Name == "" {
		return fmt.Errorf("entity %s: table is required", e.Name)
	}
	if e.PrimaryKey.Name == "" {
		return fmt.Errorf("entity %s: primary key is required", e.Name)
	}
	if e.Tenant.Name == "" {
		return fmt.Errorf("entity %s: tenant field is required", e.Name)
	}
	if len(e.Select) == 0 {
		return fmt.Errorf("entity %s: at least one selected field is required", e.Name)
	}
	if e.Columns == nil {
		return fmt.Errorf("entity %s: column classifier is required", e.Name)
	}

	aliases := map[string]bool{e.Table.Ref(): true}
	for _, j := range e.joins() {
		if aliases[j.Table.Ref()] {
			return fmt.Errorf("entity %s: alias %q used twice", e.Name, j.Table.Ref())
		}
		aliases[j.Table.Ref()] = true
		if j.On == nil {
			return fmt.Errorf("entity %s: join %s has no ON clause", e.Name, j.Table.Name)
		}
	}
	for _, cj := range e.Conditional {
		if len(cj.Triggers) == 0 {
			return fmt.Errorf("entity %s: conditional join %s has no triggers", e.Name, cj.Table.Name)
		}
		for _, col := range cj.Triggers {
			if _, ok := e.Columns.Field(col); !ok {
				return fmt.Errorf("entity %s: trigger %q is not a known column", e.Name, col)
			}
		}
	}
	return e.validateConditionalColumns()
}

// validateConditionalColumns checks that every column mapped into a
// conditional join's alias is one of that join's triggers. It needs a
// Classifier that can list its columns.
func (e Entity) validateConditionalColumns() error {
	lister, ok := e.Columns.(interface{ Columns() []string })
	if !ok {
		return nil
	}
	triggers := make(map[string]map[string]bool, len(e.Conditional))
	for _, cj := range e.Conditional {
		set := make(map[string]bool, len(cj.Triggers))
		for _, col := range cj.Triggers {
			set[col] = true
		}
		triggers[cj.Table.Ref()] = set
	}
	for _, col := range lister.Columns() {
		field, _ := e.Columns.Field(col)
		set, conditional := triggers[field.Table]
		if conditional && !set[col] {
			return fmt.Errorf("entity %s: column %q maps into conditional join %s but is not a trigger", e.Name, col, field.Table)
		}
	}
	return nil
}

func (e Entity) joins() []Join {
	out := make([]Join, 0, len(e.Fetch)+len(e.Conditional))
	out = append(out, e.Fetch...)
	for _, cj := range e.Conditional {
		out = append(out, cj.Join)
	}
	return out
}

func (j Join) joinType(fallback filterql.JoinType) filterql.JoinType {
	if j.Type == "" {
		return fallback
	}
	return j.Type
}
