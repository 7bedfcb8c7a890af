package filterql

import (
	"fmt"

	"github.com/zoobzio/filterql/internal/types"
)

// Builder provides a fluent API for constructing queries.
type Builder struct {
	ast *types.AST
	err error
}

// GetAST returns the internal AST.
func (b *Builder) GetAST() *types.AST {
	return b.ast
}

// GetError returns the first error recorded by the builder.
func (b *Builder) GetError() error {
	return b.err
}

// Select creates a new SELECT query builder.
func Select(t types.Table) *Builder {
	return &Builder{
		ast: &types.AST{
			Operation: types.OpSelect,
			Target:    t,
		},
	}
}

// Count creates a new COUNT query builder.
func Count(t types.Table) *Builder {
	return &Builder{
		ast: &types.AST{
			Operation: types.OpCount,
			Target:    t,
		},
	}
}

// Fields sets the fields to select.
func (b *Builder) Fields(fields ...types.Field) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect {
		b.err = fmt.Errorf("Fields() can only be used with SELECT queries")
		return b
	}
	b.ast.Fields = fields
	return b
}

// Where adds a condition. Successive calls are combined with AND.
func (b *Builder) Where(condition types.ConditionItem) *Builder {
	if b.err != nil {
		return b
	}
	if condition == nil {
		return b
	}

	switch existing := b.ast.WhereClause.(type) {
	case nil:
		b.ast.WhereClause = condition
	case types.Predicate:
		if existing.Logic == types.AND {
			terms := make([]types.ConditionItem, 0, len(existing.Terms)+1)
			terms = append(terms, existing.Terms...)
			b.ast.WhereClause = types.Predicate{Logic: types.AND, Terms: append(terms, condition)}
			return b
		}
		b.ast.WhereClause = types.Predicate{Logic: types.AND, Terms: []types.ConditionItem{existing, condition}}
	default:
		b.ast.WhereClause = types.Predicate{Logic: types.AND, Terms: []types.ConditionItem{existing, condition}}
	}

	return b
}

// WhereField is a convenience method for simple field conditions.
func (b *Builder) WhereField(f types.Field, op types.Operator, p types.Param) *Builder {
	return b.Where(C(f, op, p))
}

// OrderBy adds ordering.
func (b *Builder) OrderBy(f types.Field, direction types.Direction) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect {
		b.err = fmt.Errorf("ORDER BY can only be used with SELECT queries")
		return b
	}
	b.ast.Ordering = append(b.ast.Ordering, types.OrderBy{
		Field:     f,
		Direction: direction,
	})
	return b
}

// Limit sets the limit.
func (b *Builder) Limit(limit int) *Builder {
	if b.err != nil {
		return b
	}
	b.ast.Limit = &limit
	return b
}

// Offset sets the offset.
func (b *Builder) Offset(offset int) *Builder {
	if b.err != nil {
		return b
	}
	b.ast.Offset = &offset
	return b
}

// Distinct sets the DISTINCT flag for SELECT queries.
func (b *Builder) Distinct() *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect {
		b.err = fmt.Errorf("DISTINCT can only be used with SELECT queries, use CountDistinct")
		return b
	}
	b.ast.Distinct = true
	return b
}

// CountField counts non-null values of f instead of rows.
func (b *Builder) CountField(f types.Field) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpCount {
		b.err = fmt.Errorf("CountField can only be used with COUNT queries")
		return b
	}
	b.ast.CountField = &f
	return b
}

// CountDistinct counts distinct values of f.
func (b *Builder) CountDistinct(f types.Field) *Builder {
	b.CountField(f)
	if b.err == nil {
		b.ast.Distinct = true
	}
	return b
}

// Join adds an INNER JOIN.
func (b *Builder) Join(table types.Table, on types.ConditionItem) *Builder {
	return b.addJoin(types.InnerJoin, table, on)
}

// InnerJoin adds an INNER JOIN.
func (b *Builder) InnerJoin(table types.Table, on types.ConditionItem) *Builder {
	return b.addJoin(types.InnerJoin, table, on)
}

// LeftJoin adds a LEFT JOIN.
func (b *Builder) LeftJoin(table types.Table, on types.ConditionItem) *Builder {
	return b.addJoin(types.LeftJoin, table, on)
}

// JoinAs adds a join of the given type.
func (b *Builder) JoinAs(joinType types.JoinType, table types.Table, on types.ConditionItem) *Builder {
	return b.addJoin(joinType, table, on)
}

// addJoin is a helper to add joins.
func (b *Builder) addJoin(joinType types.JoinType, table types.Table, on types.ConditionItem) *Builder {
	if b.err != nil {
		return b
	}
	if on == nil {
		b.err = fmt.Errorf("%s requires ON clause", joinType)
		return b
	}
	if table.Alias != "" && table.Alias == b.ast.Target.Alias {
		b.err = fmt.Errorf("join alias %q collides with target alias", table.Alias)
		return b
	}
	for _, existing := range b.ast.Joins {
		if existing.Table.Ref() == table.Ref() {
			b.err = fmt.Errorf("table %q joined twice", table.Ref())
			return b
		}
	}

	b.ast.Joins = append(b.ast.Joins, types.Join{
		Type:  joinType,
		Table: table,
		On:    on,
	})
	return b
}

// Build returns the constructed AST or an error.
func (b *Builder) Build() (*types.AST, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.ast.Validate(); err != nil {
		return nil, err
	}
	return b.ast, nil
}

// MustBuild returns the AST or panics on error.
func (b *Builder) MustBuild() *types.AST {
	ast, err := b.Build()
	if err != nil {
		panic(err)
	}
	return ast
}

// Render builds the AST and renders it with the given dialect.
func (b *Builder) Render(r Renderer) (*RenderResult, error) {
	ast, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r.Render(ast)
}

// MustRender builds and renders the AST or panics on error.
func (b *Builder) MustRender(r Renderer) *RenderResult {
	result, err := b.Render(r)
	if err != nil {
		panic(err)
	}
	return result
}
