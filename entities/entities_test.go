package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/entities"
	"github.com/zoobzio/filterql/repository"
)

func TestEntities_Validate(t *testing.T) {
	s := entities.Schema()
	all := map[string]func(*filterql.Schema) repository.Entity{
		"leads":            entities.Leads,
		"products":         entities.Products,
		"packages":         entities.Packages,
		"purchase-orders":  entities.PurchaseOrders,
		"shipments":        entities.Shipments,
		"users":            entities.Users,
		"promos":           entities.Promos,
		"pickup-locations": entities.PickupLocations,
		"logs":             entities.Logs,
		"reviews":          entities.Reviews,
	}

	for name, build := range all {
		t.Run(name, func(t *testing.T) {
			e := build(s)
			require.NoError(t, e.Validate())
			assert.Equal(t, name, e.Name)
		})
	}
}

func TestSchema_CoversEveryTable(t *testing.T) {
	s := entities.Schema()
	assert.Same(t, s, entities.Schema())
	assert.Contains(t, s.TableNames(), "shipment_packages")
	assert.Contains(t, s.TableNames(), "order_payments")
	assert.True(t, s.HasColumn("leads", "is_deleted"))
	assert.False(t, s.HasColumn("audit_logs", "is_deleted"))
}

func TestDDL(t *testing.T) {
	tables := len(entities.Schema().TableNames())

	for _, dialect := range []string{"sqlite", "postgres", "mysql", "mssql", "duckdb"} {
		t.Run(dialect, func(t *testing.T) {
			stmts, err := entities.DDL(dialect)
			require.NoError(t, err)
			assert.Len(t, stmts, tables)
			for _, stmt := range stmts {
				assert.True(t, strings.HasPrefix(stmt, "CREATE TABLE "), stmt)
				assert.Contains(t, stmt, "id ")
				assert.NotContains(t, stmt, "  ", "unmapped column type in %s", stmt)
			}
		})
	}

	_, err := entities.DDL("oracle")
	assert.ErrorContains(t, err, `no DDL for dialect "oracle"`)
}

func TestDDL_ColumnTypes(t *testing.T) {
	stmts, err := entities.DDL("mssql")
	require.NoError(t, err)

	var leads string
	for _, stmt := range stmts {
		if strings.HasPrefix(stmt, "CREATE TABLE leads ") {
			leads = stmt
		}
	}
	require.NotEmpty(t, leads)
	assert.Contains(t, leads, "id BIGINT PRIMARY KEY")
	assert.Contains(t, leads, "is_converted BIT NOT NULL")
	assert.Contains(t, leads, "created_at DATETIME2 NOT NULL")
	assert.Contains(t, leads, "email NVARCHAR(255),")
}
