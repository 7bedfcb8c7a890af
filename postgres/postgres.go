// Package postgres provides the PostgreSQL dialect renderer for filterql.
package postgres

import (
	"github.com/zoobzio/filterql/internal/render"
	"github.com/zoobzio/filterql/internal/types"
)

// Renderer implements the PostgreSQL dialect renderer.
type Renderer struct {
	writer *render.Writer
}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	r := &Renderer{}
	r.writer = render.NewWriter(r)
	return r
}

// Render converts an AST to a QueryResult with PostgreSQL SQL.
func (r *Renderer) Render(ast *types.AST) (*types.QueryResult, error) {
	return r.writer.Render(ast)
}

// RenderCondition renders a standalone predicate.
func (r *Renderer) RenderCondition(cond types.ConditionItem) (*types.QueryResult, error) {
	return r.writer.RenderCondition(cond)
}

// Name returns the dialect name.
func (*Renderer) Name() string {
	return "postgres"
}

// QuoteIdentifier quotes a PostgreSQL identifier with double quotes.
func (*Renderer) QuoteIdentifier(name string) string {
	return render.QuoteDouble(name)
}

// TruncateDate casts the expression to DATE.
func (*Renderer) TruncateDate(expr string) string {
	return render.CastDate(expr)
}

// Capabilities returns the SQL features supported by PostgreSQL.
func (*Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholder:         render.PlaceholderDollar,
		MaxParams:           65535,
		CaseInsensitiveLike: true,
		NativeBoolean:       true,
		OffsetFetch:         false,
	}
}
