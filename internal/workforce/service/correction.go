package service

import (
	"context"
	"strings"
	"time"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
	"github.com/fixpoint/fixpoint-backend/pkg/actor"
	"github.com/fixpoint/fixpoint-backend/pkg/errors"
)

// CorrectionInput describes a manual punch correction.
type CorrectionInput struct {
	PunchID  string
	ClockIn  time.Time
	ClockOut *time.Time
	Note     string
}

// CorrectionResult is the outcome of a correction. AuditStatus is always set:
// "recorded" when the primary sink took the entry, "fallback" when only a
// degraded sink did, "lost" when no sink did. A lost audit does not fail the
// correction; the punch update has already been committed.
type CorrectionResult struct {
	Punch       *domain.PunchRecord `json:"punch"`
	AuditStatus string              `json:"audit_status"`
	AuditSink   string              `json:"audit_sink,omitempty"`
}

// CorrectPunch applies a privileged correction to an existing punch and
// records an audit trail of the change.
func (s *PunchService) CorrectPunch(ctx context.Context, in CorrectionInput) (*CorrectionResult, error) {
	act := actor.FromContext(ctx)
	if act == nil || !act.IsPrivileged() {
		return nil, errors.Forbidden("punch corrections require a manager or admin role")
	}

	note := strings.TrimSpace(in.Note)
	if note == "" {
		return nil, errors.BadRequest("a note is required for punch corrections")
	}
	if in.ClockIn.IsZero() {
		return nil, errors.BadRequest("clock in time is required")
	}

	before, err := s.store.GetByID(ctx, in.PunchID)
	if err != nil {
		return nil, errors.Store(err, "failed to load punch")
	}
	if before == nil {
		return nil, errors.NotFound("punch")
	}

	after := *before
	after.ClockIn = in.ClockIn
	after.ClockOut = in.ClockOut

	for _, guard := range s.guards {
		if err := guard.Check(ctx, before, &after); err != nil {
			return nil, err
		}
	}

	editedAt := time.Now()
	updated, err := s.store.Update(ctx, in.PunchID, domain.PunchPatch{
		ClockIn:  in.ClockIn,
		ClockOut: in.ClockOut,
		EditedAt: &editedAt,
	})
	if err != nil {
		return nil, errors.Store(err, "failed to update punch")
	}

	status, sinkName := s.recordAudit(ctx, &domain.AuditEntry{
		Scope: domain.AuditScopePunchEdit,
		RefID: updated.ID,
		User:  before.EmployeeName,
		Actor: act.Name,
		Payload: domain.AuditPayload{
			Note:   note,
			Before: before,
			After:  updated,
		},
	})

	s.logger.Info().
		Str("punch_id", updated.ID).
		Str("corrected_by", act.Name).
		Str("audit_status", status).
		Msg("punch corrected")

	s.publisher.PublishPunchCorrected(ctx, updated, act.Name, status)

	return &CorrectionResult{
		Punch:       updated,
		AuditStatus: status,
		AuditSink:   sinkName,
	}, nil
}

// recordAudit walks the sink chain until one accepts the entry. The first
// sink is the primary; any later sink counts as a degraded fallback.
func (s *PunchService) recordAudit(ctx context.Context, entry *domain.AuditEntry) (string, string) {
	for i, sink := range s.sinks {
		if err := sink.Record(ctx, entry); err != nil {
			s.logger.Error().Err(err).
				Str("sink", sink.Name()).
				Str("ref_id", entry.RefID).
				Msg("audit sink failed")
			continue
		}

		if i == 0 {
			return domain.AuditStatusRecorded, sink.Name()
		}
		return domain.AuditStatusFallback, sink.Name()
	}

	s.logger.Error().
		Str("ref_id", entry.RefID).
		Msg("audit trail lost, all sinks failed")

	return domain.AuditStatusLost, ""
}

// CorrectionGuard is an optional extra validation on a correction.
type CorrectionGuard interface {
	Name() string
	Check(ctx context.Context, before, after *domain.PunchRecord) error
}

// ChronologyGuard rejects corrections whose clock-out lands before the
// clock-in.
type ChronologyGuard struct{}

func (ChronologyGuard) Name() string { return "chronology" }

func (ChronologyGuard) Check(_ context.Context, _, after *domain.PunchRecord) error {
	if after.ClockOut != nil && after.ClockOut.Before(after.ClockIn) {
		return errors.BadRequest("clock out time must be after clock in time")
	}
	return nil
}

// SingleOpenPunchGuard rejects corrections that would leave an employee with
// more than one open punch.
type SingleOpenPunchGuard struct {
	Store PunchStore
}

func (SingleOpenPunchGuard) Name() string { return "single_open_punch" }

func (g SingleOpenPunchGuard) Check(ctx context.Context, before, after *domain.PunchRecord) error {
	if after.ClockOut != nil {
		return nil
	}

	open, err := g.Store.Filter(ctx, domain.PunchFilter{
		EmployeeID: after.EmployeeID,
		OpenOnly:   true,
	}, SortClockInDesc, 0)
	if err != nil {
		return errors.Store(err, "failed to check open punches")
	}

	for _, p := range open {
		if p.ID != after.ID {
			return errors.Conflict("employee already has an open punch")
		}
	}
	return nil
}
