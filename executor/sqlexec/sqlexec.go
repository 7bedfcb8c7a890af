// Package sqlexec executes filterql statements through database/sql.
package sqlexec

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/internal/bind"
	"github.com/zoobzio/filterql/repository"
)

// Executor binds named parameters for one dialect and runs them on a *sql.DB.
type Executor struct {
	db   *sql.DB
	caps filterql.Capabilities
}

// New creates an executor. caps must come from the Renderer that produced
// the statements.
func New(db *sql.DB, caps filterql.Capabilities) *Executor {
	return &Executor{db: db, caps: caps}
}

// DB returns the underlying database handle.
func (e *Executor) DB() *sql.DB {
	return e.db
}

// Count implements repository.Executor.
func (e *Executor) Count(ctx context.Context, query string, params *filterql.Params) (int64, error) {
	stmt, args, err := bind.Named(query, params, e.caps)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := e.db.QueryRowContext(ctx, stmt, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Query implements repository.Executor.
func (e *Executor) Query(ctx context.Context, query string, params *filterql.Params, scan func(repository.Row) error) error {
	stmt, args, err := bind.Named(query, params, e.caps)
	if err != nil {
		return err
	}
	rows, err := e.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
	}
	return rows.Err()
}
