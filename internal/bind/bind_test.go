package bind

import (
	"reflect"
	"strings"
	"testing"

	"github.com/zoobzio/filterql/internal/render"
	"github.com/zoobzio/filterql/internal/types"
)

func params(kv ...any) *types.Params {
	p := types.NewParams()
	for i := 0; i < len(kv); i += 2 {
		p.Set(kv[i].(string), kv[i+1])
	}
	return p
}

func TestNamed_Placeholders(t *testing.T) {
	sql := `SELECT * FROM "leads" l WHERE l."name" = :param0 AND l."score" > :param1`
	p := params("param0", "alpha", "param1", int64(3))

	tests := []struct {
		name     string
		style    render.PlaceholderStyle
		expected string
	}{
		{"question", render.PlaceholderQuestion, `SELECT * FROM "leads" l WHERE l."name" = ? AND l."score" > ?`},
		{"dollar", render.PlaceholderDollar, `SELECT * FROM "leads" l WHERE l."name" = $1 AND l."score" > $2`},
		{"at p", render.PlaceholderAtP, `SELECT * FROM "leads" l WHERE l."name" = @p1 AND l."score" > @p2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, args, err := Named(sql, p, render.Capabilities{Placeholder: tt.style})
			if err != nil {
				t.Fatalf("Named() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("SQL = %s, want %s", got, tt.expected)
			}
			if !reflect.DeepEqual(args, []any{"alpha", int64(3)}) {
				t.Errorf("args = %v", args)
			}
		})
	}
}

func TestNamed_RepeatedParameter(t *testing.T) {
	got, args, err := Named("a = :x OR b = :x", params("x", 1), render.Capabilities{Placeholder: render.PlaceholderDollar})
	if err != nil {
		t.Fatalf("Named() error = %v", err)
	}
	if got != "a = $1 OR b = $2" {
		t.Errorf("SQL = %s", got)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, want 2 entries", args)
	}
}

func TestNamed_ExpandsLists(t *testing.T) {
	p := params("ids", []int64{1, 2, 3}, "names", []any{"a", "b"}, "tenantId", int64(9))
	got, args, err := Named("id IN (:ids) AND name IN (:names) AND tenant = :tenantId", p, render.Capabilities{Placeholder: render.PlaceholderDollar})
	if err != nil {
		t.Fatalf("Named() error = %v", err)
	}
	if got != "id IN ($1, $2, $3) AND name IN ($4, $5) AND tenant = $6" {
		t.Errorf("SQL = %s", got)
	}
	want := []any{int64(1), int64(2), int64(3), "a", "b", int64(9)}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestNamed_ScalarsNotExpanded(t *testing.T) {
	p := params("s", "abc", "b", []byte("raw"))
	_, args, err := Named(":s :b", p, render.Capabilities{})
	if err != nil {
		t.Fatalf("Named() error = %v", err)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, want 2 entries", args)
	}
}

func TestNamed_SkipsQuotedAndCasts(t *testing.T) {
	p := params("x", 1)
	sql := `SELECT ':no', "a:b", ` + "`c:d`" + `, [e:f], x::text, 'it''s :no' FROM t WHERE y = :x`
	got, args, err := Named(sql, p, render.Capabilities{})
	if err != nil {
		t.Fatalf("Named() error = %v", err)
	}
	want := `SELECT ':no', "a:b", ` + "`c:d`" + `, [e:f], x::text, 'it''s :no' FROM t WHERE y = ?`
	if got != want {
		t.Errorf("SQL = %s, want %s", got, want)
	}
	if len(args) != 1 {
		t.Errorf("args = %v", args)
	}
}

func TestNamed_LoneColon(t *testing.T) {
	got, _, err := Named("a : b", params(), render.Capabilities{})
	if err != nil {
		t.Fatalf("Named() error = %v", err)
	}
	if got != "a : b" {
		t.Errorf("SQL = %s", got)
	}
}

func TestNamed_Errors(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		params  *types.Params
		caps    render.Capabilities
		wantErr string
	}{
		{"missing", "a = :x", params(), render.Capabilities{}, `missing parameter "x"`},
		{"empty list", "a IN (:xs)", params("xs", []string{}), render.Capabilities{}, `"xs" is an empty list`},
		{"too many", "a IN (:xs)", params("xs", []int{1, 2, 3}), render.Capabilities{MaxParams: 2}, "limit is 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Named(tt.sql, tt.params, tt.caps)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Named() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
