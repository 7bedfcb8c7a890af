package entities

import (
	"time"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/repository"
)

// Review is a customer's product rating.
type Review struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"productId"`
	Author      string    `json:"author"`
	Rating      int64     `json:"rating"`
	Comment     *string   `json:"comment"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	ProductName *string   `json:"productName"`
}

// Reviews fetch their product name; a productName filter also joins it
// into the count.
func Reviews(s *filterql.Schema) repository.Entity {
	r := s.T("reviews", "r")
	p := s.T("products", "p")

	return repository.Entity{
		Name:       "reviews",
		Table:      r,
		PrimaryKey: s.F(r, "id"),
		Tenant:     s.F(r, "tenant_id"),
		SoftDelete: ptr(s.F(r, "is_deleted")),
		Select:     fields(s, r, "id", "product_id", "author", "rating", "comment", "is_published", "created_at"),
		Columns: filterql.NewColumnSet(map[string]filterql.Field{
			"id":          s.F(r, "id"),
			"productId":   s.F(r, "product_id"),
			"author":      s.F(r, "author"),
			"rating":      s.F(r, "rating"),
			"comment":     s.F(r, "comment"),
			"isPublished": s.F(r, "is_published"),
			"createdAt":   s.F(r, "created_at"),
			"productName": s.F(p, "name"),
		}).
			Numbers("id", "productId", "rating").
			Booleans("isPublished").
			Dates("createdAt"),
		Fetch: []repository.Join{{
			Table:  p,
			On:     filterql.On(s.F(p, "id"), filterql.EQ, s.F(r, "product_id")),
			Select: fields(s, p, "name"),
		}},
	}
}

func scanReview(row repository.Row) (Review, error) {
	var v Review
	err := row.Scan(&v.ID, &v.ProductID, &v.Author, &v.Rating, &v.Comment, &v.IsPublished, &v.CreatedAt, &v.ProductName)
	return v, err
}
