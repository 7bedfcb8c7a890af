package entities

import (
	"time"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/repository"
)

// Product is a catalog item.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	SKU       *string   `json:"sku"`
	Category  *string   `json:"category"`
	Price     *float64  `json:"price"`
	Stock     *int64    `json:"stock"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Products searches the catalog.
func Products(s *filterql.Schema) repository.Entity {
	p := s.T("products", "p")

	return repository.Entity{
		Name:       "products",
		Table:      p,
		PrimaryKey: s.F(p, "id"),
		Tenant:     s.F(p, "tenant_id"),
		SoftDelete: ptr(s.F(p, "is_deleted")),
		Select:     fields(s, p, "id", "name", "sku", "category", "price", "stock", "is_active", "created_at"),
		Columns: filterql.NewColumnSet(map[string]filterql.Field{
			"id":        s.F(p, "id"),
			"name":      s.F(p, "name"),
			"sku":       s.F(p, "sku"),
			"category":  s.F(p, "category"),
			"price":     s.F(p, "price"),
			"stock":     s.F(p, "stock"),
			"isActive":  s.F(p, "is_active"),
			"createdAt": s.F(p, "created_at"),
		}).
			Numbers("id", "price", "stock").
			Booleans("isActive").
			Dates("createdAt"),
	}
}

func scanProduct(row repository.Row) (Product, error) {
	var v Product
	err := row.Scan(&v.ID, &v.Name, &v.SKU, &v.Category, &v.Price, &v.Stock, &v.IsActive, &v.CreatedAt)
	return v, err
}
