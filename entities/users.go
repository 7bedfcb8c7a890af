package entities

import (
	"time"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/repository"
)

// User is an operator account.
type User struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Role        *string    `json:"role"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Users searches operator accounts.
func Users(s *filterql.Schema) repository.Entity {
	u := s.T("users", "u")

	return repository.Entity{
		Name:       "users",
		Table:      u,
		PrimaryKey: s.F(u, "id"),
		Tenant:     s.F(u, "tenant_id"),
		SoftDelete: ptr(s.F(u, "is_deleted")),
		Select:     fields(s, u, "id", "first_name", "last_name", "email", "role", "is_active", "last_login_at", "created_at"),
		Columns: filterql.NewColumnSet(map[string]filterql.Field{
			"id":          s.F(u, "id"),
			"firstName":   s.F(u, "first_name"),
			"lastName":    s.F(u, "last_name"),
			"email":       s.F(u, "email"),
			"role":        s.F(u, "role"),
			"isActive":    s.F(u, "is_active"),
			"lastLoginAt": s.F(u, "last_login_at"),
			"createdAt":   s.F(u, "created_at"),
		}).
			Numbers("id").
			Booleans("isActive").
			Dates("lastLoginAt", "createdAt"),
	}
}

func scanUser(row repository.Row) (User, error) {
	var v User
	err := row.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Role, &v.IsActive, &v.LastLoginAt, &v.CreatedAt)
	return v, err
}
