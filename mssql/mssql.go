// Package mssql provides the SQL Server dialect renderer for filterql.
package mssql

import (
	"github.com/zoobzio/filterql/internal/render"
	"github.com/zoobzio/filterql/internal/types"
)

// Renderer implements the SQL Server dialect renderer.
type Renderer struct {
	writer *render.Writer
}

// New creates a new SQL Server renderer.
func New() *Renderer {
	r := &Renderer{}
	r.writer = render.NewWriter(r)
	return r
}

// Render converts an AST to a QueryResult with SQL Server SQL.
func (r *Renderer) Render(ast *types.AST) (*types.QueryResult, error) {
	return r.writer.Render(ast)
}

// RenderCondition renders a standalone predicate.
func (r *Renderer) RenderCondition(cond types.ConditionItem) (*types.QueryResult, error) {
	return r.writer.RenderCondition(cond)
}

// Name returns the dialect name.
func (*Renderer) Name() string {
	return "mssql"
}

// QuoteIdentifier quotes a SQL Server identifier with square brackets.
func (*Renderer) QuoteIdentifier(name string) string {
	return render.QuoteBracket(name)
}

// TruncateDate casts the expression to DATE.
func (*Renderer) TruncateDate(expr string) string {
	return render.CastDate(expr)
}

// Capabilities returns the SQL features supported by SQL Server.
func (*Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholder:         render.PlaceholderAtP,
		MaxParams:           2100,
		CaseInsensitiveLike: false,
		NativeBoolean:       false,
		OffsetFetch:         true,
	}
}
