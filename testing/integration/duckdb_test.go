//go:build integration

package integration

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/zoobzio/filterql/duckdb"
	"github.com/zoobzio/filterql/executor/sqlexec"
)

func TestDuckDBIntegration_Search(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("duckdb", "")
	if err != nil {
		t.Fatalf("Failed to open duckdb: %v", err)
	}
	// A single connection keeps the in-memory database shared.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	renderer := duckdb.New()
	seed(ctx, t, "duckdb", renderer.Capabilities(), sqlExec(db))

	runSearchSuite(t, newCatalog(t, renderer, sqlexec.New(db, renderer.Capabilities())))
}
