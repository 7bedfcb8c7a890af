// Package sqlite provides the SQLite dialect renderer for filterql.
package sqlite

import (
	"github.com/zoobzio/filterql/internal/render"
	"github.com/zoobzio/filterql/internal/types"
)

// Renderer implements the SQLite dialect renderer.
type Renderer struct {
	writer *render.Writer
}

// New creates a new SQLite renderer.
func New() *Renderer {
	r := &Renderer{}
	r.writer = render.NewWriter(r)
	return r
}

// Render converts an AST to a QueryResult with SQLite SQL.
func (r *Renderer) Render(ast *types.AST) (*types.QueryResult, error) {
	return r.writer.Render(ast)
}

// RenderCondition renders a standalone predicate.
func (r *Renderer) RenderCondition(cond types.ConditionItem) (*types.QueryResult, error) {
	return r.writer.RenderCondition(cond)
}

// Name returns the dialect name.
func (*Renderer) Name() string {
	return "sqlite"
}

// QuoteIdentifier quotes a SQLite identifier with double quotes.
func (*Renderer) QuoteIdentifier(name string) string {
	return render.QuoteDouble(name)
}

// TruncateDate uses the DATE() function, which also normalizes
// timestamps stored as text.
func (*Renderer) TruncateDate(expr string) string {
	return render.DateFunc(expr)
}

// Capabilities returns the SQL features supported by SQLite.
func (*Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholder:         render.PlaceholderQuestion,
		MaxParams:           32766,
		CaseInsensitiveLike: false,
		NativeBoolean:       false,
		OffsetFetch:         false,
	}
}
