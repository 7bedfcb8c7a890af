// Package mysql provides the MySQL dialect renderer for filterql.
package mysql

import (
	"github.com/zoobzio/filterql/internal/render"
	"github.com/zoobzio/filterql/internal/types"
)

// Renderer implements the MySQL dialect renderer.
type Renderer struct {
	writer *render.Writer
}

// New creates a new MySQL renderer.
func New() *Renderer {
	r := &Renderer{}
	r.writer = render.NewWriter(r)
	return r
}

// Render converts an AST to a QueryResult with MySQL SQL.
func (r *Renderer) Render(ast *types.AST) (*types.QueryResult, error) {
	return r.writer.Render(ast)
}

// RenderCondition renders a standalone predicate.
func (r *Renderer) RenderCondition(cond types.ConditionItem) (*types.QueryResult, error) {
	return r.writer.RenderCondition(cond)
}

// Name returns the dialect name.
func (*Renderer) Name() string {
	return "mysql"
}

// QuoteIdentifier quotes a MySQL identifier with backticks.
func (*Renderer) QuoteIdentifier(name string) string {
	return render.QuoteBacktick(name)
}

// TruncateDate uses the DATE() function.
func (*Renderer) TruncateDate(expr string) string {
	return render.DateFunc(expr)
}

// Capabilities returns the SQL features supported by MySQL.
func (*Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholder:         render.PlaceholderQuestion,
		MaxParams:           65535,
		CaseInsensitiveLike: false,
		NativeBoolean:       false,
		OffsetFetch:         false,
	}
}
