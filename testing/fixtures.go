package testing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/internal/bind"
)

// Row is one fixture row.
type Row struct {
	Table   string
	Columns []string
	Values  []any
}

func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2026, month, day, hour, minute, 0, 0, time.UTC)
}

func row(table string, columns string, values ...any) Row {
	return Row{Table: table, Columns: strings.Split(columns, ","), Values: values}
}

// Fixtures returns the shared dataset. Tenant 1 owns everything except
// lead 5, which belongs to tenant 2. Lead 4 and attachment 2 are deleted.
func Fixtures() []Row {
	const (
		addressCols  = "id,tenant_id,street,city,country"
		leadCols     = "id,tenant_id,name,email,phone,status,source,score,is_converted,address_id,created_at,is_deleted"
		productCols  = "id,tenant_id,name,sku,category,price,stock,is_active,created_at,is_deleted"
		reviewCols   = "id,tenant_id,product_id,author,rating,comment,is_published,created_at,is_deleted"
		locationCols = "id,tenant_id,name,city,country,capacity,is_active,created_at,is_deleted"
		packageCols  = "id,tenant_id,tracking_number,status,weight,pickup_location_id,shipped_at,created_at,is_deleted"
		shipmentCols = "id,tenant_id,reference,carrier,status,cost,shipped_at,delivered_at,created_at,is_deleted"
		orderCols    = "id,tenant_id,order_number,supplier,status,total,is_paid,ordered_at,created_at,is_deleted"
		userCols     = "id,tenant_id,first_name,last_name,email,role,is_active,last_login_at,created_at,is_deleted"
		promoCols    = "id,tenant_id,code,description,discount,starts_at,ends_at,is_active,created_at,is_deleted"
		logCols      = "id,tenant_id,actor,action,entity_type,entity_id,message,created_at"
	)

	return []Row{
		row("addresses", addressCols, 1, 1, "Main St 1", "Berlin", "DE"),
		row("addresses", addressCols, 2, 1, "Rue 2", "Paris", "FR"),

		row("leads", leadCols, 1, 1, "Alpha Corp", "alpha@example.com", nil, "new", "web", 10, false, 1, at(time.February, 10, 9, 15), false),
		row("leads", leadCols, 2, 1, "Beta LLC", "beta@example.com", nil, "qualified", "referral", 25, true, 2, at(time.February, 11, 14, 0), false),
		row("leads", leadCols, 3, 1, "Gamma Inc", "   ", nil, "NEW", "web", 5, false, nil, at(time.February, 12, 8, 0), false),
		row("leads", leadCols, 4, 1, "Alpha Deleted", nil, nil, "lost", "web", 1, false, nil, at(time.February, 9, 10, 0), true),
		row("leads", leadCols, 5, 2, "Alpha Elsewhere", nil, nil, "new", "web", 50, false, nil, at(time.February, 10, 11, 0), false),

		row("products", productCols, 1, 1, "Widget", "W-1", "tools", 9.99, 100, true, at(time.January, 5, 0, 0), false),
		row("products", productCols, 2, 1, "Gadget", "G-1", "toys", 19.5, 0, false, at(time.January, 6, 0, 0), false),

		row("reviews", reviewCols, 1, 1, 1, "ann", 5, "great", true, at(time.February, 1, 0, 0), false),
		row("reviews", reviewCols, 2, 1, 2, "bob", 2, nil, true, at(time.February, 2, 0, 0), false),
		row("reviews", reviewCols, 3, 1, 1, "cy", 4, "ok", false, at(time.February, 3, 0, 0), false),

		row("pickup_locations", locationCols, 1, 1, "North Depot", "Berlin", "DE", 10, true, at(time.January, 1, 0, 0), false),
		row("pickup_locations", locationCols, 2, 1, "South Depot", "Munich", "DE", 5, true, at(time.January, 1, 0, 0), false),

		row("packages", packageCols, 1, 1, "TRK-1", "shipped", 1.5, 1, at(time.February, 5, 10, 0), at(time.February, 4, 0, 0), false),
		row("packages", packageCols, 2, 1, "TRK-2", "pending", 2.0, 2, nil, at(time.February, 4, 0, 0), false),
		row("packages", packageCols, 3, 1, "TRK-3", "pending", 0.5, nil, nil, at(time.February, 6, 0, 0), false),

		row("shipments", shipmentCols, 1, 1, "SHP-1", "DHL", "delivered", 12.5, at(time.February, 5, 0, 0), at(time.February, 7, 0, 0), at(time.February, 4, 0, 0), false),
		row("shipments", shipmentCols, 2, 1, "SHP-2", "UPS", "in_transit", 8.0, at(time.February, 6, 0, 0), nil, at(time.February, 5, 0, 0), false),
		row("shipment_packages", "id,shipment_id,tracking_number", 1, 1, "TRK-1"),
		row("shipment_packages", "id,shipment_id,tracking_number", 2, 1, "TRK-2"),
		row("shipment_packages", "id,shipment_id,tracking_number", 3, 2, "TRK-3"),

		row("purchase_orders", orderCols, 1, 1, "PO-1", "Acme", "open", 100.0, false, at(time.February, 1, 0, 0), at(time.February, 1, 0, 0), false),
		row("purchase_orders", orderCols, 2, 1, "PO-2", "Acme", "closed", 250.0, true, at(time.February, 2, 0, 0), at(time.February, 2, 0, 0), false),
		row("purchase_orders", orderCols, 3, 1, "PO-3", "Globex", "open", 75.0, false, nil, at(time.February, 3, 0, 0), false),
		row("order_packages", "id,tenant_id,purchase_order_id,description,quantity", 1, 1, 1, "Box A", 2),
		row("order_packages", "id,tenant_id,purchase_order_id,description,quantity", 2, 1, 1, "Box B", 1),
		row("order_packages", "id,tenant_id,purchase_order_id,description,quantity", 3, 1, 2, "Crate", 5),
		row("order_attachments", "id,tenant_id,purchase_order_id,file_name,url,is_deleted", 1, 1, 1, "invoice.pdf", nil, false),
		row("order_attachments", "id,tenant_id,purchase_order_id,file_name,url,is_deleted", 2, 1, 1, "old.pdf", nil, true),
		row("order_attachments", "id,tenant_id,purchase_order_id,file_name,url,is_deleted", 3, 1, 3, "datasheet.pdf", "https://files.example.com/datasheet.pdf", false),
		row("order_payments", "id,tenant_id,purchase_order_id,amount,paid_at", 1, 1, 2, 250.0, at(time.February, 3, 0, 0)),

		row("users", userCols, 1, 1, "Ada", "Lovelace", "ada@example.com", "admin", true, at(time.February, 10, 8, 0), at(time.January, 1, 0, 0), false),
		row("users", userCols, 2, 1, "Alan", "Turing", "alan@example.com", nil, false, nil, at(time.January, 2, 0, 0), false),

		row("promos", promoCols, 1, 1, "SPRING", "Spring sale", 10.0, at(time.March, 1, 0, 0), at(time.March, 31, 0, 0), true, at(time.February, 1, 0, 0), false),

		row("audit_logs", logCols, 1, 1, "ada", "login", "user", 1, "signed in", at(time.February, 10, 8, 0)),
		row("audit_logs", logCols, 2, 1, "ada", "update", "lead", 2, nil, at(time.February, 11, 9, 0)),
	}
}

// Load inserts every fixture row, binding values in the placeholder style
// of caps.
func Load(ctx context.Context, caps filterql.Capabilities, exec func(ctx context.Context, stmt string, args ...any) error) error {
	for _, r := range Fixtures() {
		params := filterql.NewParams()
		names := make([]string, len(r.Columns))
		for i, c := range r.Columns {
			names[i] = ":" + c
			params.Set(c, r.Values[i])
		}
		named := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", r.Table, strings.Join(r.Columns, ", "), strings.Join(names, ", "))
		stmt, args, err := bind.Named(named, params, caps)
		if err != nil {
			return fmt.Errorf("bind %s: %w", r.Table, err)
		}
		if err := exec(ctx, stmt, args...); err != nil {
			return fmt.Errorf("insert %s: %w", r.Table, err)
		}
	}
	return nil
}
