// Package pgxexec executes filterql statements on a pgx connection pool.
package pgxexec

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/internal/bind"
	"github.com/zoobzio/filterql/postgres"
	"github.com/zoobzio/filterql/repository"
)

// Executor runs PostgreSQL statements on a pool.
type Executor struct {
	pool *pgxpool.Pool
	caps filterql.Capabilities
}

// New creates an executor using PostgreSQL placeholders.
func New(pool *pgxpool.Pool) *Executor {
	return &Executor{pool: pool, caps: postgres.New().Capabilities()}
}

// Connect opens a pool for the connection string.
func Connect(ctx context.Context, dsn string) (*Executor, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return New(pool), nil
}

// Pool returns the underlying pool.
func (e *Executor) Pool() *pgxpool.Pool {
	return e.pool
}

// Close releases the pool.
func (e *Executor) Close() {
	e.pool.Close()
}

// Count implements repository.Executor.
func (e *Executor) Count(ctx context.Context, query string, params *filterql.Params) (int64, error) {
	stmt, args, err := bind.Named(query, params, e.caps)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := e.pool.QueryRow(ctx, stmt, args...).Scan(&n); err != nil {
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
	rows, err := e.pool.Query(ctx, stmt, args...)
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

// Exec runs a statement without parameters.
func (e *Executor) Exec(ctx context.Context, stmt string) error {
	_, err := e.pool.Exec(ctx, stmt)
	return err
}
