package render

import (
	"fmt"
	"strings"

	"github.com/zoobzio/filterql/internal/types"
)

// countStarSQL is the SQL for COUNT(*) aggregate.
const countStarSQL = "COUNT(*)"

// renderContext collects parameters in first-use order.
type renderContext struct {
	usedParams map[string]bool
	params     []string
}

func newRenderContext() *renderContext {
	return &renderContext{usedParams: make(map[string]bool)}
}

// addParam registers a parameter and returns its named placeholder.
func (ctx *renderContext) addParam(param types.Param) string {
	if !ctx.usedParams[param.Name] {
		ctx.params = append(ctx.params, param.Name)
		ctx.usedParams[param.Name] = true
	}
	return ":" + param.Name
}

// Writer renders ASTs to SQL with named parameters for a given dialect.
type Writer struct {
	dialect Dialect
}

// NewWriter creates a writer for the dialect.
func NewWriter(d Dialect) *Writer {
	return &Writer{dialect: d}
}

// Render converts an AST to a QueryResult.
func (w *Writer) Render(ast *types.AST) (*types.QueryResult, error) {
	if err := ast.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AST: %w", err)
	}

	var sql strings.Builder
	ctx := newRenderContext()

	switch ast.Operation {
	case types.OpSelect:
		if err := w.renderSelect(ast, &sql, ctx); err != nil {
			return nil, err
		}
	case types.OpCount:
		if err := w.renderCount(ast, &sql, ctx); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported operation: %s", ast.Operation)
	}

	return &types.QueryResult{
		SQL:            sql.String(),
		RequiredParams: ctx.params,
	}, nil
}

// RenderCondition renders a standalone predicate.
func (w *Writer) RenderCondition(item types.ConditionItem) (*types.QueryResult, error) {
	var sql strings.Builder
	ctx := newRenderContext()
	if err := w.renderCondition(item, &sql, ctx, true); err != nil {
		return nil, err
	}
	return &types.QueryResult{
		SQL:            sql.String(),
		RequiredParams: ctx.params,
	}, nil
}

func (w *Writer) renderSelect(ast *types.AST, sql *strings.Builder, ctx *renderContext) error {
	sql.WriteString("SELECT ")
	if ast.Distinct {
		sql.WriteString("DISTINCT ")
	}

	if len(ast.Fields) == 0 {
		sql.WriteString("*")
	} else {
		selections := make([]string, 0, len(ast.Fields))
		for _, field := range ast.Fields {
			selections = append(selections, w.renderField(field))
		}
		sql.WriteString(strings.Join(selections, ", "))
	}

	if err := w.renderFrom(ast, sql, ctx); err != nil {
		return err
	}

	if len(ast.Ordering) > 0 {
		sql.WriteString(" ORDER BY ")
		parts := make([]string, 0, len(ast.Ordering))
		for _, order := range ast.Ordering {
			parts = append(parts, fmt.Sprintf("%s %s", w.renderField(order.Field), order.Direction))
		}
		sql.WriteString(strings.Join(parts, ", "))
	}

	return w.renderPagination(ast, sql)
}

func (w *Writer) renderCount(ast *types.AST, sql *strings.Builder, ctx *renderContext) error {
	sql.WriteString("SELECT ")
	switch {
	case ast.CountField == nil:
		sql.WriteString(countStarSQL)
	case ast.Distinct:
		fmt.Fprintf(sql, "COUNT(DISTINCT %s)", w.renderField(*ast.CountField))
	default:
		fmt.Fprintf(sql, "COUNT(%s)", w.renderField(*ast.CountField))
	}
	return w.renderFrom(ast, sql, ctx)
}

// renderFrom writes FROM, JOINs and WHERE, shared by SELECT and COUNT so
// both see identical sources and predicates.
func (w *Writer) renderFrom(ast *types.AST, sql *strings.Builder, ctx *renderContext) error {
	sql.WriteString(" FROM ")
	sql.WriteString(w.renderTable(ast.Target))

	for _, join := range ast.Joins {
		sql.WriteString(" ")
		sql.WriteString(string(join.Type))
		sql.WriteString(" ")
		sql.WriteString(w.renderTable(join.Table))
		sql.WriteString(" ON ")
		if err := w.renderCondition(join.On, sql, ctx, true); err != nil {
			return err
		}
	}

	if ast.WhereClause != nil {
		sql.WriteString(" WHERE ")
		if err := w.renderCondition(ast.WhereClause, sql, ctx, true); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) renderPagination(ast *types.AST, sql *strings.Builder) error {
	if ast.Limit == nil && ast.Offset == nil {
		return nil
	}

	if w.dialect.Capabilities().OffsetFetch {
		if len(ast.Ordering) == 0 {
			return NewUnsupportedFeatureError(w.dialect.Name(), "LIMIT/OFFSET without ORDER BY",
				"add ORDER BY clause when using LIMIT or OFFSET")
		}
		offset := 0
		if ast.Offset != nil {
			offset = *ast.Offset
		}
		fmt.Fprintf(sql, " OFFSET %d ROWS", offset)
		if ast.Limit != nil {
			fmt.Fprintf(sql, " FETCH NEXT %d ROWS ONLY", *ast.Limit)
		}
		return nil
	}

	if ast.Limit != nil {
		fmt.Fprintf(sql, " LIMIT %d", *ast.Limit)
	}
	if ast.Offset != nil {
		fmt.Fprintf(sql, " OFFSET %d", *ast.Offset)
	}
	return nil
}

func (w *Writer) renderTable(table types.Table) string {
	quoted := w.dialect.QuoteIdentifier(table.Name)
	if table.Alias != "" {
		// Aliases don't need quoting since they're restricted to single lowercase letters
		return fmt.Sprintf("%s %s", quoted, table.Alias)
	}
	return quoted
}

func (w *Writer) renderField(field types.Field) string {
	quoted := w.dialect.QuoteIdentifier(field.Name)
	if field.Table != "" {
		return fmt.Sprintf("%s.%s", field.Table, quoted)
	}
	return quoted
}

// renderCondition writes a condition item. top is true when the item is the
// whole clause, in which case a Predicate is written without parentheses.
func (w *Writer) renderCondition(cond types.ConditionItem, sql *strings.Builder, ctx *renderContext, top bool) error {
	switch c := cond.(type) {
	case types.Condition:
		sql.WriteString(w.renderSimpleCondition(c, ctx))
	case types.ConditionGroup:
		if len(c.Conditions) == 0 {
			return fmt.Errorf("empty condition group")
		}
		sql.WriteString("(")
		if err := w.renderJoined(c.Logic, c.Conditions, sql, ctx); err != nil {
			return err
		}
		sql.WriteString(")")
	case types.Predicate:
		if len(c.Terms) == 0 {
			return fmt.Errorf("empty predicate")
		}
		wrap := !top && len(c.Terms) > 1
		if wrap {
			sql.WriteString("(")
		}
		if err := w.renderJoined(c.Logic, c.Terms, sql, ctx); err != nil {
			return err
		}
		if wrap {
			sql.WriteString(")")
		}
	case types.Tautology:
		sql.WriteString("1=1")
	case types.FieldComparison:
		fmt.Fprintf(sql, "%s %s %s",
			w.renderField(c.LeftField),
			c.Operator,
			w.renderField(c.RightField))
	default:
		return fmt.Errorf("unknown condition type: %T", c)
	}
	return nil
}

func (w *Writer) renderJoined(logic types.LogicOperator, items []types.ConditionItem, sql *strings.Builder, ctx *renderContext) error {
	for i, item := range items {
		if i > 0 {
			fmt.Fprintf(sql, " %s ", logic)
		}
		if err := w.renderCondition(item, sql, ctx, false); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) renderSimpleCondition(cond types.Condition, ctx *renderContext) string {
	field := w.renderField(cond.Field)

	switch cond.Operator {
	case types.IsNull:
		return fmt.Sprintf("%s IS NULL", field)
	case types.IsNotNull:
		return fmt.Sprintf("%s IS NOT NULL", field)
	case types.IsBlank:
		return fmt.Sprintf("TRIM(%s) = ''", field)
	case types.IsNotBlank:
		return fmt.Sprintf("TRIM(%s) != ''", field)
	case types.IN, types.NotIn:
		// List parameters are expanded at bind time, so only the field side
		// can be transformed; list values arrive already normalized.
		return fmt.Sprintf("%s %s (%s)", w.transform(cond.Transform, field), cond.Operator, ctx.addParam(cond.Value))
	default:
		return fmt.Sprintf("%s %s %s",
			w.transform(cond.Transform, field),
			cond.Operator,
			w.transform(cond.Transform, ctx.addParam(cond.Value)))
	}
}

func (w *Writer) transform(t types.Transform, expr string) string {
	switch t {
	case types.Lower:
		return "LOWER(" + expr + ")"
	case types.TruncDate:
		return w.dialect.TruncateDate(expr)
	default:
		return expr
	}
}
