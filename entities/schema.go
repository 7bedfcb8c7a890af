// Package entities configures the searchable entities: their tables,
// API column mappings and row types.
package entities

import (
	"sync"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/filterql"
)

type column struct {
	name     string
	kind     string // dbml type
	nullable bool
}

type table struct {
	name    string
	columns []column
}

func col(name, kind string) column     { return column{name: name, kind: kind} }
func nullCol(name, kind string) column { return column{name: name, kind: kind, nullable: true} }

// tables is the single source for the DBML project and the DDL.
var tables = []table{
	{"addresses", []column{
		col("id", "bigint"), col("tenant_id", "bigint"),
		nullCol("street", "varchar"), nullCol("city", "varchar"), nullCol("country", "varchar"),
	}},
	{"leads", []column{
		col("id", "bigint"), col("tenant_id", "bigint"),
		col("name", "varchar"), nullCol("email", "varchar"), nullCol("phone", "varchar"),
		nullCol("status", "varchar"), nullCol("source", "varchar"), nullCol("score", "bigint"),
		col("is_converted", "boolean"), nullCol("address_id", "bigint"),
		col("created_at", "timestamp"), col("is_deleted", "boolean"),
	}},
	{"products", []column{
		col("id", "bigint"), col("tenant_id", "bigint"),
		col("name", "varchar"), nullCol("sku", "varchar"), nullCol("category", "varchar"),
		nullCol("price", "double"), nullCol("stock", "bigint"), col("is_active", "boolean"),
		col("created_at", "timestamp"), col("is_deleted", "boolean"),
	}},
	{"pickup_locations", []column{
		col("id", "bigint"), col("tenant_id", "bigint"),
		col("name", "varchar"), nullCol("city", "varchar"), nullCol("country", "varchar"),
		nullCol("capacity", "bigint"), col("is_active", "boolean"),
		col("created_at", "timestamp"), col("is_deleted", "boolean"),
	}},
	{"packages", []column{
		col("id", "bigint"), col("tenant_id", "bigint"),
		col("tracking_number", "varchar"), nullCol("status", "varchar"), nullCol("weight", "double"),
		nullCol("pickup_location_id", "bigint"), nullCol("shipped_at", "timestamp"),
		col("created_at", "timestamp"), col("is_deleted", "boolean"),
	}},
	{"purchase_orders", []column{
		col("id", "bigint"), col("tenant_id", "bigint"),
		col("order_number", "varchar"), nullCol("supplier", "varchar"), nullCol("status", "varchar"),
		nullCol("total", "double"), col("is_paid", "boolean"), nullCol("ordered_at", "timestamp"),
		col("created_at", "timestamp"), col("is_deleted", "boolean"),
	}},
	{"order_packages", []column{
		col("id", "bigint"), col("tenant_id", "bigint"), col("purchase_order_id", "bigint"),
		col("description", "varchar"), col("quantity", "bigint"),
	}},
	{"order_attachments", []column{
		col("id", "bigint"), col("tenant_id", "bigint"), col("purchase_order_id", "bigint"),
		col("file_name", "varchar"), nullCol("url", "varchar"), col("is_deleted", "boolean"),
	}},
	{"order_payments", []column{
		col("id", "bigint"), col("tenant_id", "bigint"), col("purchase_order_id", "bigint"),
		col("amount", "double"), nullCol("paid_at", "timestamp"),
	}},
	{"shipments", []column{
		col("id", "bigint"), col("tenant_id", "bigint"),
		col("reference", "varchar"), nullCol("carrier", "varchar"), nullCol("status", "varchar"),
		nullCol("cost", "double"), nullCol("shipped_at", "timestamp"), nullCol("delivered_at", "timestamp"),
		col("created_at", "timestamp"), col("is_deleted", "boolean"),
	}},
	{"shipment_packages", []column{
		col("id", "bigint"), col("shipment_id", "bigint"), col("tracking_number", "varchar"),
	}},
	{"users", []column{
		col("id", "bigint"), col("tenant_id", "bigint"),
		col("first_name", "varchar"), col("last_name", "varchar"), col("email", "varchar"),
		nullCol("role", "varchar"), col("is_active", "boolean"), nullCol("last_login_at", "timestamp"),
		col("created_at", "timestamp"), col("is_deleted", "boolean"),
	}},
	{"promos", []column{
		col("id", "bigint"), col("tenant_id", "bigint"),
		col("code", "varchar"), nullCol("description", "varchar"), nullCol("discount", "double"),
		nullCol("starts_at", "timestamp"), nullCol("ends_at", "timestamp"), col("is_active", "boolean"),
		col("created_at", "timestamp"), col("is_deleted", "boolean"),
	}},
	{"audit_logs", []column{
		col("id", "bigint"), col("tenant_id", "bigint"),
		col("actor", "varchar"), col("action", "varchar"), nullCol("entity_type", "varchar"),
		nullCol("entity_id", "bigint"), nullCol("message", "text"), col("created_at", "timestamp"),
	}},
	{"reviews", []column{
		col("id", "bigint"), col("tenant_id", "bigint"), col("product_id", "bigint"),
		col("author", "varchar"), col("rating", "bigint"), nullCol("comment", "text"),
		col("is_published", "boolean"), col("created_at", "timestamp"), col("is_deleted", "boolean"),
	}},
}

// Project returns the DBML project describing every table.
func Project() *dbml.Project {
	project := dbml.NewProject("filterql")
	for _, t := range tables {
		dt := dbml.NewTable(t.name)
		for _, c := range t.columns {
			dt.AddColumn(dbml.NewColumn(c.name, c.kind))
		}
		project.AddTable(dt)
	}
	return project
}

var (
	schemaOnce sync.Once
	schema     *filterql.Schema
)

// Schema returns the validated schema for Project.
func Schema() *filterql.Schema {
	schemaOnce.Do(func() {
		s, err := filterql.NewFromDBML(Project())
		if err != nil {
			panic(err)
		}
		schema = s
	})
	return schema
}
