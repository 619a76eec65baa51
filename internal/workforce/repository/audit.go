package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
	"github.com/fixpoint/fixpoint-backend/pkg/database"
	"github.com/google/uuid"
)

// AuditLogRepository is the primary audit sink. It writes full before/after
// snapshots into the audit_logs table.
type AuditLogRepository struct {
	db *database.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *database.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Name identifies this sink in correction results and logs.
func (r *AuditLogRepository) Name() string { return "audit_log" }

// Record persists a full audit entry
func (r *AuditLogRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	payloadJSON, err := json.Marshal(entry.Payload)
	if err != nil {
		payloadJSON = []byte("{}")
	}

	query := `
		INSERT INTO audit_logs (id, scope, ref_id, user_name, actor, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	return r.db.QueryRowxContext(ctx, query,
		entry.ID, entry.Scope, entry.RefID, entry.User, entry.Actor, payloadJSON,
	).Scan(&entry.CreatedAt)
}

// KeyValueRepository is the degraded audit sink. When the audit log is down
// it stashes a condensed entry into the generic key_values table so the
// correction still leaves a trace that can be reconciled later.
type KeyValueRepository struct {
	db *database.DB
}

// NewKeyValueRepository creates a new key-value repository
func NewKeyValueRepository(db *database.DB) *KeyValueRepository {
	return &KeyValueRepository{db: db}
}

// Name identifies this sink in correction results and logs.
func (r *KeyValueRepository) Name() string { return "key_value" }

// Record persists a condensed audit entry under the fallback scope.
func (r *KeyValueRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	condensed := map[string]interface{}{
		"punch_id": entry.RefID,
		"user":     entry.User,
		"note":     entry.Payload.Note,
		"after":    entry.Payload.After,
		"at":       time.Now().UTC(),
	}

	valueJSON, err := json.Marshal(condensed)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO key_values (id, scope, value_json)
		VALUES ($1, $2, $3)
	`

	_, err = r.db.ExecContext(ctx, query,
		uuid.New().String(), domain.AuditScopePunchEditFallback, valueJSON,
	)
	return err
}
