package repository_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sync"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/repository"
)

// fakeRow assigns its values to the scan destinations in order.
// A nil value leaves the destination untouched.
type fakeRow []any

func (r fakeRow) Scan(dest ...any) error {
	if len(dest) != len(r) {
		return fmt.Errorf("expected %d destinations, got %d", len(r), len(dest))
	}
	for i, v := range r {
		if v == nil {
			continue
		}
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

type call struct {
	kind   string
	sql    string
	params *filterql.Params
}

// fakeExecutor records every statement. Query calls consume results in order.
type fakeExecutor struct {
	mu       sync.Mutex
	calls    []call
	count    int64
	results  [][]fakeRow
	countErr error
	queryErr error
}

func (e *fakeExecutor) Count(_ context.Context, query string, params *filterql.Params) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, call{kind: "count", sql: query, params: params})
	if e.countErr != nil {
		return 0, e.countErr
	}
	return e.count, nil
}

func (e *fakeExecutor) Query(_ context.Context, query string, params *filterql.Params, scan func(repository.Row) error) error {
	e.mu.Lock()
	e.calls = append(e.calls, call{kind: "query", sql: query, params: params})
	var rows []fakeRow
	if len(e.results) > 0 {
		rows, e.results = e.results[0], e.results[1:]
	}
	err := e.queryErr
	e.mu.Unlock()

	if err != nil {
		return err
	}
	for _, row := range rows {
		if err := scan(row); err != nil {
			return err
		}
	}
	return nil
}

func (e *fakeExecutor) kinds() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.calls))
	for i, c := range e.calls {
		out[i] = c.kind
	}
	return out
}

type lead struct {
	ID    int64
	Name  string
	City  string
	Notes []note
}

type note struct {
	ID   int64
	Body string
}

func scanLead(row repository.Row) (lead, error) {
	var l lead
	err := row.Scan(&l.ID, &l.Name, &l.City)
	return l, err
}

func lf(name string) filterql.Field {
	return filterql.F(name).WithTable("l")
}

// testEntity is leads with an address fetch join, a to-many tag join and a
// numeric owner join.
func testEntity() repository.Entity {
	deleted := lf("is_deleted")
	return repository.Entity{
		Name:       "leads",
		Table:      filterql.T("leads", "l"),
		PrimaryKey: lf("id"),
		Tenant:     lf("tenant_id"),
		SoftDelete: &deleted,
		Select:     []filterql.Field{lf("id"), lf("name")},
		Columns: filterql.NewColumnSet(map[string]filterql.Field{
			"name":      lf("name"),
			"score":     lf("score"),
			"city":      filterql.F("city").WithTable("a"),
			"tag":       filterql.F("label").WithTable("g"),
			"ownerId":   filterql.F("id").WithTable("o"),
			"ownerName": filterql.F("name").WithTable("o"),
		}).Numbers("score", "ownerId"),
		Fetch: []repository.Join{{
			Table:  filterql.T("addresses", "a"),
			On:     filterql.On(filterql.F("id").WithTable("a"), filterql.EQ, lf("address_id")),
			Select: []filterql.Field{filterql.F("city").WithTable("a")},
		}},
		Conditional: []repository.ConditionalJoin{
			{
				Join: repository.Join{
					Table:  filterql.T("lead_tags", "g"),
					On:     filterql.On(filterql.F("lead_id").WithTable("g"), filterql.EQ, lf("id")),
					ToMany: true,
				},
				Triggers: []string{"tag"},
			},
			{
				Join: repository.Join{
					Table: filterql.T("owners", "o"),
					On:    filterql.On(filterql.F("id").WithTable("o"), filterql.EQ, lf("owner_id")),
				},
				Triggers: []string{"ownerId", "ownerName"},
				Numeric:  true,
			},
		},
	}
}

func quietConfig() repository.Config {
	return repository.Config{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
