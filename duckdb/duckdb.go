// Package duckdb provides the DuckDB dialect renderer for filterql.
package duckdb

import (
	"github.com/zoobzio/filterql/internal/render"
	"github.com/zoobzio/filterql/internal/types"
)

// Renderer implements the DuckDB dialect renderer.
type Renderer struct {
	writer *render.Writer
}

// New creates a new DuckDB renderer.
func New() *Renderer {
	r := &Renderer{}
	r.writer = render.NewWriter(r)
	return r
}

// Render converts an AST to a QueryResult with DuckDB SQL.
func (r *Renderer) Render(ast *types.AST) (*types.QueryResult, error) {
	return r.writer.Render(ast)
}

// RenderCondition renders a standalone predicate.
func (r *Renderer) RenderCondition(cond types.ConditionItem) (*types.QueryResult, error) {
	return r.writer.RenderCondition(cond)
}

// Name returns the dialect name.
func (*Renderer) Name() string {
	return "duckdb"
}

// QuoteIdentifier quotes a DuckDB identifier with double quotes.
func (*Renderer) QuoteIdentifier(name string) string {
	return render.QuoteDouble(name)
}

// TruncateDate casts the expression to DATE.
func (*Renderer) TruncateDate(expr string) string {
	return render.CastDate(expr)
}

// Capabilities returns the SQL features supported by DuckDB.
func (*Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholder:         render.PlaceholderQuestion,
		MaxParams:           0,
		CaseInsensitiveLike: true,
		NativeBoolean:       true,
		OffsetFetch:         false,
	}
}
