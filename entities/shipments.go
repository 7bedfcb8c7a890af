package entities

import (
	"time"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/repository"
)

// Shipment groups packages handed to a carrier.
type Shipment struct {
	ID          int64      `json:"id"`
	Reference   string     `json:"reference"`
	Carrier     *string    `json:"carrier"`
	Status      *string    `json:"status"`
	Cost        *float64   `json:"cost"`
	ShippedAt   *time.Time `json:"shippedAt"`
	DeliveredAt *time.Time `json:"deliveredAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Shipments filtered by a package tracking number join their packages,
// which can repeat a shipment, so the search switches to DISTINCT.
func Shipments(s *filterql.Schema) repository.Entity {
	sh := s.T("shipments", "s")
	x := s.T("shipment_packages", "x")

	return repository.Entity{
		Name:       "shipments",
		Table:      sh,
		PrimaryKey: s.F(sh, "id"),
		Tenant:     s.F(sh, "tenant_id"),
		SoftDelete: ptr(s.F(sh, "is_deleted")),
		Select:     fields(s, sh, "id", "reference", "carrier", "status", "cost", "shipped_at", "delivered_at", "created_at"),
		Columns: filterql.NewColumnSet(map[string]filterql.Field{
			"id":                    s.F(sh, "id"),
			"reference":             s.F(sh, "reference"),
			"carrier":               s.F(sh, "carrier"),
			"status":                s.F(sh, "status"),
			"cost":                  s.F(sh, "cost"),
			"shippedAt":             s.F(sh, "shipped_at"),
			"deliveredAt":           s.F(sh, "delivered_at"),
			"createdAt":             s.F(sh, "created_at"),
			"packageTrackingNumber": s.F(x, "tracking_number"),
		}).
			Numbers("id", "cost").
			Dates("shippedAt", "deliveredAt", "createdAt"),
		Conditional: []repository.ConditionalJoin{{
			Join: repository.Join{
				Table:  x,
				On:     filterql.On(s.F(x, "shipment_id"), filterql.EQ, s.F(sh, "id")),
				ToMany: true,
			},
			Triggers: []string{"packageTrackingNumber"},
		}},
	}
}

func scanShipment(row repository.Row) (Shipment, error) {
	var v Shipment
	err := row.Scan(&v.ID, &v.Reference, &v.Carrier, &v.Status, &v.Cost, &v.ShippedAt, &v.DeliveredAt, &v.CreatedAt)
	return v, err
}
