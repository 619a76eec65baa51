package domain

import "time"

// Audit scopes. The fallback sink uses its own scope so degraded entries are
// distinguishable when reconciling.
const (
	AuditScopePunchEdit         = "punch_edit"
	AuditScopePunchEditFallback = "audit_punch_edit"
)

// Audit statuses reported on a correction result.
const (
	AuditStatusRecorded = "recorded"
	AuditStatusFallback = "fallback"
	AuditStatusLost     = "lost"
)

// AuditPayload captures the full before/after snapshot of a correction.
type AuditPayload struct {
	Note   string       `json:"note"`
	Before *PunchRecord `json:"before,omitempty"`
	After  *PunchRecord `json:"after,omitempty"`
}

// AuditEntry is a record of a privileged mutation. User names the employee
// the mutation is about; Actor names who performed it.
type AuditEntry struct {
	ID        string       `db:"id" json:"id"`
	Scope     string       `db:"scope" json:"scope"`
	RefID     string       `db:"ref_id" json:"ref_id"`
	User      string       `db:"user_name" json:"user"`
	Actor     string       `db:"actor" json:"actor"`
	Payload   AuditPayload `json:"payload"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
}
