// Package testing provides test utilities for filterql.
package testing

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/entities"
	"github.com/zoobzio/filterql/sqlite"
	_ "modernc.org/sqlite"
)

// TestSchema creates a small schema: leads (alias l) with an address
// table (alias a).
func TestSchema(t *testing.T) *filterql.Schema {
	t.Helper()

	project := dbml.NewProject("test")

	leads := dbml.NewTable("leads")
	leads.AddColumn(dbml.NewColumn("id", "bigint"))
	leads.AddColumn(dbml.NewColumn("tenant_id", "bigint"))
	leads.AddColumn(dbml.NewColumn("name", "varchar"))
	leads.AddColumn(dbml.NewColumn("status", "varchar"))
	leads.AddColumn(dbml.NewColumn("score", "bigint"))
	leads.AddColumn(dbml.NewColumn("is_converted", "boolean"))
	leads.AddColumn(dbml.NewColumn("address_id", "bigint"))
	leads.AddColumn(dbml.NewColumn("created_at", "timestamp"))
	leads.AddColumn(dbml.NewColumn("is_deleted", "boolean"))
	project.AddTable(leads)

	addresses := dbml.NewTable("addresses")
	addresses.AddColumn(dbml.NewColumn("id", "bigint"))
	addresses.AddColumn(dbml.NewColumn("city", "varchar"))
	project.AddTable(addresses)

	schema, err := filterql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	return schema
}

// TestColumns maps API columns onto TestSchema: name, status and city are
// strings, score a number, createdAt a date and converted a boolean.
func TestColumns(t *testing.T) *filterql.ColumnSet {
	t.Helper()

	s := TestSchema(t)
	l := s.T("leads", "l")
	a := s.T("addresses", "a")

	return filterql.NewColumnSet(map[string]filterql.Field{
		"name":      s.F(l, "name"),
		"status":    s.F(l, "status"),
		"score":     s.F(l, "score"),
		"createdAt": s.F(l, "created_at"),
		"converted": s.F(l, "is_converted"),
		"city":      s.F(a, "city"),
	}).
		Numbers("score").
		Dates("createdAt").
		Booleans("converted")
}

// OpenSQLite opens an in-memory SQLite database holding every entity
// table. It is closed when the test ends.
func OpenSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", "file::memory:?_time_format=sqlite")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	// One connection keeps the in-memory database alive.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	stmts, err := entities.DDL("sqlite")
	if err != nil {
		t.Fatalf("Failed to build DDL: %v", err)
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to execute DDL: %v\nSQL: %s", err, stmt)
		}
	}
	return db
}

// SeededSQLite returns OpenSQLite loaded with Fixtures.
func SeededSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db := OpenSQLite(t)
	err := Load(context.Background(), sqlite.New().Capabilities(), func(ctx context.Context, stmt string, args ...any) error {
		_, err := db.ExecContext(ctx, stmt, args...)
		return err
	})
	if err != nil {
		t.Fatalf("Failed to load fixtures: %v", err)
	}
	return db
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertParamNames checks that params binds exactly the expected names, in order.
func AssertParamNames(t *testing.T, params *filterql.Params, expected ...string) {
	t.Helper()
	actual := params.Keys()
	if strings.Join(actual, ",") != strings.Join(expected, ",") {
		t.Errorf("Param names mismatch:\nExpected: %v\nActual:   %v", expected, actual)
	}
}

// AssertParamsEqual checks that both maps bind the same names to equal values.
func AssertParamsEqual(t *testing.T, expected, actual *filterql.Params) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("Params mismatch:\nExpected: %v\nActual:   %v", expected.Map(), actual.Map())
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertErrorIs fails the test unless err wraps target.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("Expected error wrapping %v, got: %v", target, err)
	}
}

// AssertPanicsWithMessage verifies that a function panics with a specific message.
func AssertPanicsWithMessage(t *testing.T, fn func(), substr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected panic containing %q but function completed normally", substr)
			return
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		default:
			t.Errorf("Panic value is not string or error: %T", r)
			return
		}
		if !strings.Contains(msg, substr) {
			t.Errorf("Expected panic containing %q, got: %s", substr, msg)
		}
	}()
	fn()
}
