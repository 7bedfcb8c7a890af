package entities

import (
	"time"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/repository"
)

// PickupLocation is a depot packages are collected from.
type PickupLocation struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      *string   `json:"city"`
	Country   *string   `json:"country"`
	Capacity  *int64    `json:"capacity"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// PickupLocations searches depots by name, place and capacity.
func PickupLocations(s *filterql.Schema) repository.Entity {
	o := s.T("pickup_locations", "o")

	return repository.Entity{
		Name:       "pickup-locations",
		Table:      o,
		PrimaryKey: s.F(o, "id"),
		Tenant:     s.F(o, "tenant_id"),
		SoftDelete: ptr(s.F(o, "is_deleted")),
		Select:     fields(s, o, "id", "name", "city", "country", "capacity", "is_active", "created_at"),
		Columns: filterql.NewColumnSet(map[string]filterql.Field{
			"id":        s.F(o, "id"),
			"name":      s.F(o, "name"),
			"city":      s.F(o, "city"),
			"country":   s.F(o, "country"),
			"capacity":  s.F(o, "capacity"),
			"isActive":  s.F(o, "is_active"),
			"createdAt": s.F(o, "created_at"),
		}).
			Numbers("id", "capacity").
			Booleans("isActive").
			Dates("createdAt"),
	}
}

func scanPickupLocation(row repository.Row) (PickupLocation, error) {
	var v PickupLocation
	err := row.Scan(&v.ID, &v.Name, &v.City, &v.Country, &v.Capacity, &v.IsActive, &v.CreatedAt)
	return v, err
}
