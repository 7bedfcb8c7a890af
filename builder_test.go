package filterql_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/mssql"
	"github.com/zoobzio/filterql/postgres"
	ftesting "github.com/zoobzio/filterql/testing"
)

func TestBuilder_SelectAllFields(t *testing.T) {
	s := ftesting.TestSchema(t)

	result, err := filterql.Select(s.T("leads", "l")).Render(postgres.New())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	ftesting.AssertSQL(t, `SELECT * FROM "leads" l`, result.SQL)
	if len(result.RequiredParams) != 0 {
		t.Errorf("RequiredParams = %v, want none", result.RequiredParams)
	}
}

func TestBuilder_SelectWithJoinWhereOrderPage(t *testing.T) {
	s := ftesting.TestSchema(t)
	l := s.T("leads", "l")
	a := s.T("addresses", "a")

	result, err := filterql.Select(l).
		Fields(s.F(l, "id"), s.F(l, "name"), s.F(a, "city")).
		LeftJoin(a, filterql.On(s.F(a, "id"), filterql.EQ, s.F(l, "address_id"))).
		Where(filterql.CI(s.F(l, "name"), filterql.LIKE, filterql.P("name"))).
		Where(filterql.C(s.F(l, "tenant_id"), filterql.EQ, filterql.P("tenantId"))).
		OrderBy(s.F(l, "id"), filterql.DESC).
		Limit(10).
		Offset(20).
		Render(postgres.New())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	ftesting.AssertSQL(t,
		`SELECT l."id", l."name", a."city" FROM "leads" l LEFT JOIN "addresses" a ON a."id" = l."address_id" `+
			`WHERE LOWER(l."name") LIKE LOWER(:name) AND l."tenant_id" = :tenantId ORDER BY l."id" DESC LIMIT 10 OFFSET 20`,
		result.SQL)
	if strings.Join(result.RequiredParams, ",") != "name,tenantId" {
		t.Errorf("RequiredParams = %v, want [name tenantId]", result.RequiredParams)
	}
}

func TestBuilder_WhereNestsOrPredicate(t *testing.T) {
	s := ftesting.TestSchema(t)
	l := s.T("leads", "l")

	or := filterql.Predicate(filterql.OR,
		filterql.C(s.F(l, "status"), filterql.EQ, filterql.P("a")),
		filterql.C(s.F(l, "status"), filterql.EQ, filterql.P("b")),
	)
	result, err := filterql.Count(l).
		Where(or).
		Where(filterql.C(s.F(l, "tenant_id"), filterql.EQ, filterql.P("tenantId"))).
		Render(postgres.New())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	ftesting.AssertSQL(t,
		`SELECT COUNT(*) FROM "leads" l WHERE (l."status" = :a OR l."status" = :b) AND l."tenant_id" = :tenantId`,
		result.SQL)
}

func TestBuilder_CountDistinct(t *testing.T) {
	s := ftesting.TestSchema(t)
	l := s.T("leads", "l")
	a := s.T("addresses", "a")

	result, err := filterql.Count(l).
		InnerJoin(a, filterql.On(s.F(a, "id"), filterql.EQ, s.F(l, "address_id"))).
		CountDistinct(s.F(l, "id")).
		Where(filterql.Blank(s.F(a, "city"))).
		Render(postgres.New())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	ftesting.AssertSQL(t,
		`SELECT COUNT(DISTINCT l."id") FROM "leads" l INNER JOIN "addresses" a ON a."id" = l."address_id" WHERE (a."city" IS NULL OR TRIM(a."city") = '')`,
		result.SQL)
}

func TestBuilder_Distinct(t *testing.T) {
	s := ftesting.TestSchema(t)
	l := s.T("leads", "l")

	result := filterql.Select(l).Distinct().Fields(s.F(l, "id")).MustRender(postgres.New())
	ftesting.AssertSQL(t, `SELECT DISTINCT l."id" FROM "leads" l`, result.SQL)
}

func TestBuilder_Errors(t *testing.T) {
	s := ftesting.TestSchema(t)
	l := s.T("leads", "l")
	a := s.T("addresses", "a")
	id := s.F(l, "id")

	tests := []struct {
		name    string
		builder *filterql.Builder
		want    string
	}{
		{"fields on count", filterql.Count(l).Fields(id), "Fields() can only be used with SELECT"},
		{"order on count", filterql.Count(l).OrderBy(id, filterql.ASC), "ORDER BY can only be used with SELECT"},
		{"distinct on count", filterql.Count(l).Distinct(), "use CountDistinct"},
		{"count field on select", filterql.Select(l).CountField(id), "CountField can only be used with COUNT"},
		{"limit on count", filterql.Count(l).Limit(5), "COUNT cannot have LIMIT"},
		{"negative limit", filterql.Select(l).Limit(-1), "LIMIT must be non-negative"},
		{"join without on", filterql.Select(l).Join(a, nil), "requires ON clause"},
		{"join alias collision", filterql.Select(l).Join(filterql.T("addresses", "l"), filterql.Always()), "collides with target alias"},
		{"join twice", filterql.Select(l).Join(a, filterql.Always()).LeftJoin(a, filterql.Always()), "joined twice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if err == nil {
				t.Fatal("Build() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Build() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	s := ftesting.TestSchema(t)
	l := s.T("leads", "l")

	b := filterql.Count(l).Fields(s.F(l, "id")).OrderBy(s.F(l, "id"), filterql.ASC)
	if err := b.GetError(); err == nil || !strings.Contains(err.Error(), "Fields()") {
		t.Errorf("GetError() = %v, want the Fields() error", err)
	}
}

func TestBuilder_MustBuildPanics(t *testing.T) {
	s := ftesting.TestSchema(t)
	ftesting.AssertPanicsWithMessage(t, func() {
		filterql.Count(s.T("leads")).Limit(1).MustBuild()
	}, "COUNT cannot have LIMIT")
}

func TestBuilder_OffsetFetchNeedsOrderBy(t *testing.T) {
	s := ftesting.TestSchema(t)
	l := s.T("leads", "l")

	_, err := filterql.Select(l).Limit(10).Render(mssql.New())
	var unsupported filterql.UnsupportedFeatureError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Render() error = %v, want UnsupportedFeatureError", err)
	}

	result, err := filterql.Select(l).OrderBy(s.F(l, "id"), filterql.DESC).Limit(10).Offset(30).Render(mssql.New())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	ftesting.AssertSQL(t, `SELECT * FROM [leads] l ORDER BY l.[id] DESC OFFSET 30 ROWS FETCH NEXT 10 ROWS ONLY`, result.SQL)
}

func TestBuilder_DayAndAlways(t *testing.T) {
	s := ftesting.TestSchema(t)
	l := s.T("leads", "l")

	result, err := filterql.Select(l).
		Where(filterql.And(
			filterql.Always(),
			filterql.Day(s.F(l, "created_at"), filterql.GE, filterql.P("since")),
			filterql.NotBlank(s.F(l, "status")),
		)).
		Render(postgres.New())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	ftesting.AssertSQL(t,
		`SELECT * FROM "leads" l WHERE (1=1 AND CAST(l."created_at" AS DATE) >= CAST(:since AS DATE) AND (l."status" IS NOT NULL AND TRIM(l."status") != ''))`,
		result.SQL)
}
