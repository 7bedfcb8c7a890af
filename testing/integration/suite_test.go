//go:build integration

package integration

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/entities"
	"github.com/zoobzio/filterql/repository"
	ftesting "github.com/zoobzio/filterql/testing"
)

// execFunc runs one statement with positional arguments.
type execFunc func(ctx context.Context, stmt string, args ...any) error

func sqlExec(db *sql.DB) execFunc {
	return func(ctx context.Context, stmt string, args ...any) error {
		_, err := db.ExecContext(ctx, stmt, args...)
		return err
	}
}

// seed creates every entity table for the dialect and loads the fixtures.
func seed(ctx context.Context, t *testing.T, dialect string, caps filterql.Capabilities, exec execFunc) {
	t.Helper()

	stmts, err := entities.DDL(dialect)
	require.NoError(t, err)
	for _, stmt := range stmts {
		if err := exec(ctx, stmt); err != nil {
			t.Fatalf("Failed to execute DDL: %v\nSQL: %s", err, stmt)
		}
	}
	require.NoError(t, ftesting.Load(ctx, caps, exec))
}

func newCatalog(t *testing.T, renderer filterql.Renderer, exec repository.Executor) *entities.Catalog {
	t.Helper()
	catalog, err := entities.NewCatalog(renderer, exec, repository.Config{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return catalog
}

func f(column, operator string, value any) filterql.FilterCondition {
	return filterql.FilterCondition{Column: column, Operator: operator, Value: value}
}

// runSearchSuite checks the same searches on every database.
func runSearchSuite(t *testing.T, c *entities.Catalog) {
	ctx := context.Background()

	t.Run("leads", func(t *testing.T) {
		tests := []struct {
			name string
			req  repository.Request
			ids  []int64
		}{
			{"unfiltered", repository.Request{}, []int64{3, 2, 1}},
			{"contains", repository.Request{Filters: []filterql.FilterCondition{f("name", "contains", "ALPHA")}}, []int64{1}},
			{"doesNotContain", repository.Request{Filters: []filterql.FilterCondition{f("name", "doesNotContain", "alpha")}}, []int64{3, 2}},
			{"endsWith", repository.Request{Filters: []filterql.FilterCondition{f("name", "endsWith", "llc")}}, []int64{2}},
			{"include deleted", repository.Request{IncludeDeleted: true, Filters: []filterql.FilterCondition{f("name", "startsWith", "alpha")}}, []int64{4, 1}},
			{"selected ids", repository.Request{SelectedIDs: []int64{1, 3, 5}}, []int64{3, 1}},
			{"fetch join", repository.Request{Filters: []filterql.FilterCondition{f("city", "equals", "berlin")}}, []int64{1}},
			{"isEmpty", repository.Request{Filters: []filterql.FilterCondition{f("email", "isEmpty", nil)}}, []int64{3}},
			{"isOneOf", repository.Request{Filters: []filterql.FilterCondition{f("status", "isOneOf", "new;QUALIFIED")}}, []int64{3, 2, 1}},
			{"containsOneOf", repository.Request{Filters: []filterql.FilterCondition{f("name", "containsOneOf", "beta, gamma")}}, []int64{3, 2}},
			{"number", repository.Request{Filters: []filterql.FilterCondition{f("score", "lessThan", 25)}}, []int64{3, 1}},
			{"number list", repository.Request{Filters: []filterql.FilterCondition{f("score", "isOneOf", "5;25")}}, []int64{3, 2}},
			{"boolean", repository.Request{Filters: []filterql.FilterCondition{f("isConverted", "is", true)}}, []int64{2}},
			{"date", repository.Request{Filters: []filterql.FilterCondition{f("createdAt", "is", "2026-02-10")}}, []int64{1}},
			{"date range", repository.Request{Filters: []filterql.FilterCondition{
				f("createdAt", "isAfterOrEqual", "2026-02-11"), f("createdAt", "isBefore", "2026-02-12"),
			}}, []int64{2}},
			{"or", repository.Request{Logic: "or", Filters: []filterql.FilterCondition{
				f("name", "contains", "beta"), f("city", "equals", "Berlin"),
			}}, []int64{2, 1}},
			{"degraded", repository.Request{Filters: []filterql.FilterCondition{f("score", "equals", "lots")}}, []int64{3, 2, 1}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := tt.req
				req.TenantID, req.End = 1, 10
				page, err := c.Leads.FindPaginated(ctx, req)
				require.NoError(t, err)

				ids := make([]int64, len(page.Items))
				for i, l := range page.Items {
					ids[i] = l.ID
				}
				assert.Equal(t, tt.ids, ids)
				assert.Equal(t, int64(len(tt.ids)), page.TotalCount)
			})
		}
	})

	t.Run("lead columns", func(t *testing.T) {
		page, err := c.Leads.FindPaginated(ctx, repository.Request{TenantID: 1, SelectedIDs: []int64{2}, End: 10})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)

		lead := page.Items[0]
		assert.Equal(t, "Beta LLC", lead.Name)
		assert.True(t, lead.IsConverted)
		require.NotNil(t, lead.City)
		assert.Equal(t, "Paris", *lead.City)
		assert.Nil(t, lead.Phone)
		assert.Equal(t, 11, lead.CreatedAt.Day())
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := c.Leads.FindPaginated(ctx, repository.Request{TenantID: 1, Start: 2, End: 4})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, int64(1), page.Items[0].ID)
		assert.Equal(t, int64(3), page.TotalCount)
	})

	t.Run("distinct to-many join", func(t *testing.T) {
		page, err := c.Shipments.FindPaginated(ctx, repository.Request{TenantID: 1, End: 10,
			Filters: []filterql.FilterCondition{f("packageTrackingNumber", "startsWith", "trk")}})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.TotalCount)
		assert.Len(t, page.Items, 2)
	})

	t.Run("conditional join", func(t *testing.T) {
		page, err := c.Packages.FindPaginated(ctx, repository.Request{TenantID: 1, End: 10,
			Filters: []filterql.FilterCondition{f("pickupLocationId", "equals", 1)}})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, int64(1), page.Items[0].ID)

		page, err = c.Packages.FindPaginated(ctx, repository.Request{TenantID: 1, End: 10,
			Filters: []filterql.FilterCondition{f("pickupLocationId", "equals", "north")}})
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.TotalCount)
	})

	t.Run("purchase order details", func(t *testing.T) {
		page, err := c.PurchaseOrdersWithDetails(ctx, repository.Request{TenantID: 1, End: 10})
		require.NoError(t, err)
		require.Len(t, page.Items, 3)

		po1 := page.Items[2]
		assert.Equal(t, "PO-1", po1.OrderNumber)
		assert.Len(t, po1.Packages, 2)
		assert.Len(t, po1.Attachments, 1)
		assert.Empty(t, po1.Payments)

		po2 := page.Items[1]
		require.Len(t, po2.Payments, 1)
		assert.InDelta(t, 250.0, po2.Payments[0].Amount, 0.001)
	})

	t.Run("every entity searches", func(t *testing.T) {
		for _, name := range c.Names() {
			_, err := c.Search(ctx, name, repository.Request{TenantID: 1, End: 5})
			assert.NoError(t, err, name)
		}
	})
}
