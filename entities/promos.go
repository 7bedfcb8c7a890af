package entities

import (
	"time"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/repository"
)

// Promo is a discount code.
type Promo struct {
	ID          int64      `json:"id"`
	Code        string     `json:"code"`
	Description *string    `json:"description"`
	Discount    *float64   `json:"discount"`
	StartsAt    *time.Time `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Promos searches discount codes by code and validity window.
func Promos(s *filterql.Schema) repository.Entity {
	m := s.T("promos", "m")

	return repository.Entity{
		Name:       "promos",
		Table:      m,
		PrimaryKey: s.F(m, "id"),
		Tenant:     s.F(m, "tenant_id"),
		SoftDelete: ptr(s.F(m, "is_deleted")),
		Select:     fields(s, m, "id", "code", "description", "discount", "starts_at", "ends_at", "is_active", "created_at"),
		Columns: filterql.NewColumnSet(map[string]filterql.Field{
			"id":          s.F(m, "id"),
			"code":        s.F(m, "code"),
			"description": s.F(m, "description"),
			"discount":    s.F(m, "discount"),
			"startsAt":    s.F(m, "starts_at"),
			"endsAt":      s.F(m, "ends_at"),
			"isActive":    s.F(m, "is_active"),
			"createdAt":   s.F(m, "created_at"),
		}).
			Numbers("id", "discount").
			Booleans("isActive").
			Dates("startsAt", "endsAt", "createdAt"),
	}
}

func scanPromo(row repository.Row) (Promo, error) {
	var v Promo
	err := row.Scan(&v.ID, &v.Code, &v.Description, &v.Discount, &v.StartsAt, &v.EndsAt, &v.IsActive, &v.CreatedAt)
	return v, err
}
