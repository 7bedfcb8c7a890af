package entities

import (
	"time"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/repository"
)

// LogEntry is an audit record. Audit records are never soft-deleted.
type LogEntry struct {
	ID         int64     `json:"id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	EntityType *string   `json:"entityType"`
	EntityID   *int64    `json:"entityId"`
	Message    *string   `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Logs searches the audit trail, which has no soft-delete column.
func Logs(s *filterql.Schema) repository.Entity {
	g := s.T("audit_logs", "g")

	return repository.Entity{
		Name:       "logs",
		Table:      g,
		PrimaryKey: s.F(g, "id"),
		Tenant:     s.F(g, "tenant_id"),
		Select:     fields(s, g, "id", "actor", "action", "entity_type", "entity_id", "message", "created_at"),
		Columns: filterql.NewColumnSet(map[string]filterql.Field{
			"id":         s.F(g, "id"),
			"actor":      s.F(g, "actor"),
			"action":     s.F(g, "action"),
			"entityType": s.F(g, "entity_type"),
			"entityId":   s.F(g, "entity_id"),
			"message":    s.F(g, "message"),
			"createdAt":  s.F(g, "created_at"),
		}).
			Numbers("id", "entityId").
			Dates("createdAt"),
	}
}

func scanLogEntry(row repository.Row) (LogEntry, error) {
	var v LogEntry
	err := row.Scan(&v.ID, &v.Actor, &v.Action, &v.EntityType, &v.EntityID, &v.Message, &v.CreatedAt)
	return v, err
}
