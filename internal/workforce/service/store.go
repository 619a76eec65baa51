package service

import (
	"context"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
)

// Sort orders accepted by PunchStore.Filter.
const (
	SortClockInDesc = "-clock_in"
	SortClockInAsc  = "clock_in"
)

// PunchStore is the persistence contract for punch records. The engine never
// touches storage directly; any backend satisfying this interface works.
type PunchStore interface {
	// Filter returns punches matching the filter, ordered by sort, capped at
	// limit. limit <= 0 means no cap.
	Filter(ctx context.Context, filter domain.PunchFilter, sort string, limit int) ([]domain.PunchRecord, error)
	GetByID(ctx context.Context, id string) (*domain.PunchRecord, error)
	Create(ctx context.Context, punch *domain.PunchRecord) error
	Update(ctx context.Context, id string, patch domain.PunchPatch) (*domain.PunchRecord, error)
}

// EmployeeDirectory exposes the employee profiles payroll estimation reads.
type EmployeeDirectory interface {
	ListActive(ctx context.Context) ([]domain.EmployeeProfile, error)
}

// AuditSink records audit entries for privileged mutations. Sinks are tried
// in order; a later sink is a degraded fallback for the one before it.
type AuditSink interface {
	Name() string
	Record(ctx context.Context, entry *domain.AuditEntry) error
}

// PaymentLedger persists immutable settlement records.
type PaymentLedger interface {
	Create(ctx context.Context, payment *domain.PaymentRecord) error
}

// EventPublisher pushes best-effort domain events. Implementations must not
// fail the calling operation; publish errors are logged and swallowed.
type EventPublisher interface {
	PublishClockIn(ctx context.Context, punch *domain.PunchRecord)
	PublishClockOut(ctx context.Context, punch *domain.PunchRecord)
	PublishPunchCorrected(ctx context.Context, punch *domain.PunchRecord, correctedBy, auditStatus string)
	PublishPaymentRecorded(ctx context.Context, payment *domain.PaymentRecord)
}
