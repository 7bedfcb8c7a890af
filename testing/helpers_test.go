package testing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/zoobzio/filterql"
)

func TestTestSchema(t *testing.T) {
	schema := TestSchema(t)
	if schema == nil {
		t.Fatal("Expected non-nil schema")
	}

	leads := schema.T("leads", "l")
	if f := schema.F(leads, "created_at"); f.Table != "l" {
		t.Errorf("Field table = %q, want %q", f.Table, "l")
	}
	if schema.HasColumn("addresses", "street") {
		t.Error("addresses.street should not exist in the test schema")
	}
}

func TestTestColumns(t *testing.T) {
	columns := TestColumns(t)

	tests := []struct {
		column string
		want   filterql.ColumnType
	}{
		{"name", filterql.StringColumn},
		{"score", filterql.NumberColumn},
		{"createdAt", filterql.DateColumn},
		{"converted", filterql.BooleanColumn},
		{"city", filterql.StringColumn},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			if got := columns.Classify(tt.column); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.column, got, tt.want)
			}
		})
	}
}

func TestSeededSQLite(t *testing.T) {
	db := SeededSQLite(t)

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM leads").Scan(&n); err != nil {
		t.Fatalf("count error = %v", err)
	}
	if n != 5 {
		t.Errorf("leads = %d, want 5", n)
	}
}

func TestFixtures_ColumnsMatchValues(t *testing.T) {
	for i, r := range Fixtures() {
		if len(r.Columns) != len(r.Values) {
			t.Errorf("fixture %d (%s): %d columns, %d values", i, r.Table, len(r.Columns), len(r.Values))
		}
	}
}

func TestAssertSQL_Match(t *testing.T) {
	AssertSQL(t, `SELECT * FROM "leads" l`, `SELECT * FROM "leads" l`)
}

func TestAssertParamNames_Match(t *testing.T) {
	params := filterql.NewParams()
	params.Set("param0", "a")
	params.Set("tenantId", int64(1))
	AssertParamNames(t, params, "param0", "tenantId")
}

func TestAssertParamsEqual_IgnoresOrder(t *testing.T) {
	a := filterql.NewParams()
	a.Set("x", 1)
	a.Set("y", []any{"b"})
	b := filterql.NewParams()
	b.Set("y", []any{"b"})
	b.Set("x", 1)
	AssertParamsEqual(t, a, b)
}

func TestAssertNoError_Nil(t *testing.T) {
	AssertNoError(t, nil)
}

func TestAssertErrorIs_Wrapped(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
}

func TestAssertPanicsWithMessage_String(t *testing.T) {
	AssertPanicsWithMessage(t, func() {
		panic("test panic message")
	}, "panic message")
}

func TestAssertPanicsWithMessage_Error(t *testing.T) {
	AssertPanicsWithMessage(t, func() {
		panic(errors.New("error panic message"))
	}, "error panic")
}
