package filterql

import "github.com/zoobzio/filterql/internal/types"

// Renderer defines the interface for SQL dialect-specific rendering.
// Implementations convert an AST to dialect-specific SQL with named parameters.
type Renderer interface {
	// Render converts an AST to a QueryResult with dialect-specific SQL.
	Render(ast *types.AST) (*types.QueryResult, error)

	// RenderCondition renders a standalone predicate.
	RenderCondition(cond types.ConditionItem) (*types.QueryResult, error)

	// Name identifies the dialect.
	Name() string

	// Capabilities reports placeholder style and feature support.
	Capabilities() Capabilities
}
