package entities

import (
	"time"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/repository"
)

// Lead is a prospective customer.
type Lead struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Status      *string   `json:"status"`
	Source      *string   `json:"source"`
	Score       *int64    `json:"score"`
	IsConverted bool      `json:"isConverted"`
	CreatedAt   time.Time `json:"createdAt"`
	City        *string   `json:"city"`
	Country     *string   `json:"country"`
}

// Leads fetch their address; filtering on city or country also joins it
// into the count.
func Leads(s *filterql.Schema) repository.Entity {
	l := s.T("leads", "l")
	a := s.T("addresses", "a")

	return repository.Entity{
		Name:       "leads",
		Table:      l,
		PrimaryKey: s.F(l, "id"),
		Tenant:     s.F(l, "tenant_id"),
		SoftDelete: ptr(s.F(l, "is_deleted")),
		Select:     fields(s, l, "id", "name", "email", "phone", "status", "source", "score", "is_converted", "created_at"),
		Columns: filterql.NewColumnSet(map[string]filterql.Field{
			"id":          s.F(l, "id"),
			"name":        s.F(l, "name"),
			"email":       s.F(l, "email"),
			"phone":       s.F(l, "phone"),
			"status":      s.F(l, "status"),
			"source":      s.F(l, "source"),
			"score":       s.F(l, "score"),
			"isConverted": s.F(l, "is_converted"),
			"createdAt":   s.F(l, "created_at"),
			"city":        s.F(a, "city"),
			"country":     s.F(a, "country"),
		}).
			Numbers("id", "score").
			Booleans("isConverted").
			Dates("createdAt"),
		Fetch: []repository.Join{{
			Table:  a,
			On:     filterql.On(s.F(a, "id"), filterql.EQ, s.F(l, "address_id")),
			Select: fields(s, a, "city", "country"),
		}},
	}
}

func scanLead(row repository.Row) (Lead, error) {
	var v Lead
	err := row.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Status, &v.Source, &v.Score,
		&v.IsConverted, &v.CreatedAt, &v.City, &v.Country)
	return v, err
}
