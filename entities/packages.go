package entities

import (
	"time"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/repository"
)

// Package is a tracked parcel.
type Package struct {
	ID               int64      `json:"id"`
	TrackingNumber   string     `json:"trackingNumber"`
	Status           *string    `json:"status"`
	Weight           *float64   `json:"weight"`
	PickupLocationID *int64     `json:"pickupLocationId"`
	ShippedAt        *time.Time `json:"shippedAt"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// Packages join their pickup location only when filtered by it. A
// pickupLocationId value that is not an integer keeps the rows through a
// LEFT JOIN and the filter itself degrades to 1=1.
func Packages(s *filterql.Schema) repository.Entity {
	k := s.T("packages", "k")
	o := s.T("pickup_locations", "o")

	return repository.Entity{
		Name:       "packages",
		Table:      k,
		PrimaryKey: s.F(k, "id"),
		Tenant:     s.F(k, "tenant_id"),
		SoftDelete: ptr(s.F(k, "is_deleted")),
		Select:     fields(s, k, "id", "tracking_number", "status", "weight", "pickup_location_id", "shipped_at", "created_at"),
		Columns: filterql.NewColumnSet(map[string]filterql.Field{
			"id":                 s.F(k, "id"),
			"trackingNumber":     s.F(k, "tracking_number"),
			"status":             s.F(k, "status"),
			"weight":             s.F(k, "weight"),
			"shippedAt":          s.F(k, "shipped_at"),
			"createdAt":          s.F(k, "created_at"),
			"pickupLocationId":   s.F(o, "id"),
			"pickupLocationName": s.F(o, "name"),
		}).
			Numbers("id", "weight", "pickupLocationId").
			Dates("shippedAt", "createdAt"),
		Conditional: []repository.ConditionalJoin{{
			Join: repository.Join{
				Table: o,
				On:    filterql.On(s.F(o, "id"), filterql.EQ, s.F(k, "pickup_location_id")),
			},
			Triggers: []string{"pickupLocationId", "pickupLocationName"},
			Numeric:  true,
		}},
	}
}

func scanPackage(row repository.Row) (Package, error) {
	var v Package
	err := row.Scan(&v.ID, &v.TrackingNumber, &v.Status, &v.Weight, &v.PickupLocationID, &v.ShippedAt, &v.CreatedAt)
	return v, err
}
