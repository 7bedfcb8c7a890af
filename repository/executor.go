package repository

import (
	"context"

	"github.com/zoobzio/filterql"
)

// Row is one result row.
type Row interface {
	Scan(dest ...any) error
}

// Executor runs named-parameter SQL produced by a filterql Renderer.
// Implementations bind the parameters in the driver's placeholder style.
type Executor interface {
	// Count runs a single-value query and returns the value.
	Count(ctx context.Context, query string, params *filterql.Params) (int64, error)
	// Query runs a query and calls scan once per row, in order.
	Query(ctx context.Context, query string, params *filterql.Params, scan func(Row) error) error
}
