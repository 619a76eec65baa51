package service

import (
	"context"
	"time"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
	"github.com/fixpoint/fixpoint-backend/pkg/config"
	"github.com/fixpoint/fixpoint-backend/pkg/errors"
	"github.com/fixpoint/fixpoint-backend/pkg/logger"
)

// PunchService handles punch querying, the clock lifecycle, aggregation and
// the privileged correction workflow.
type PunchService struct {
	store     PunchStore
	employees EmployeeDirectory
	sinks     []AuditSink
	guards    []CorrectionGuard
	publisher EventPublisher
	cfg       *config.WorkforceConfig
	logger    *logger.Logger
}

// NewPunchService creates a new punch service. Audit sinks are tried in the
// order given; pass the primary sink first and the fallback second.
func NewPunchService(
	store PunchStore,
	employees EmployeeDirectory,
	sinks []AuditSink,
	publisher EventPublisher,
	cfg *config.WorkforceConfig,
	log *logger.Logger,
) *PunchService {
	return &PunchService{
		store:     store,
		employees: employees,
		sinks:     sinks,
		publisher: publisher,
		cfg:       cfg,
		logger:    log.WithComponent("punch_service"),
	}
}

// WithCorrectionGuards enables extra correction validations. Guards are off
// by default to keep corrections as permissive as manual bookkeeping.
func (s *PunchService) WithCorrectionGuards(guards ...CorrectionGuard) *PunchService {
	s.guards = append(s.guards, guards...)
	return s
}

// PunchQuery describes a punch listing request.
type PunchQuery struct {
	EmployeeID string
	// From / To bound clock_in by day: the window covers the whole of both
	// days. Nil means unbounded on that side.
	From *time.Time
	To   *time.Time
	// Open keeps only punches that are still running.
	Open bool
}

// SelectPunches filters punches in memory: clock_in within the inclusive
// day window [startOfDay(from), endOfDay(to)] and, when pred is non-nil,
// pred(p) true. Membership is decided by clock_in alone; a punch that is
// still open or closed after the window stays in. Order is preserved.
func SelectPunches(punches []domain.PunchRecord, from, to *time.Time, pred func(domain.PunchRecord) bool) []domain.PunchRecord {
	var lo, hi time.Time
	if from != nil {
		lo = StartOfDay(*from)
	}
	if to != nil {
		hi = EndOfDay(*to)
	}

	out := make([]domain.PunchRecord, 0, len(punches))
	for _, p := range punches {
		if from != nil && p.ClockIn.Before(lo) {
			continue
		}
		if to != nil && p.ClockIn.After(hi) {
			continue
		}
		if pred != nil && !pred(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// QueryPunches fetches recent punches for the query and applies the time
// window in memory. The store fetch is capped, so a window reaching further
// back than the cap covers may come back truncated.
func (s *PunchService) QueryPunches(ctx context.Context, q PunchQuery) ([]domain.PunchRecord, error) {
	filter := domain.PunchFilter{
		EmployeeID: q.EmployeeID,
		OpenOnly:   q.Open,
	}

	punches, err := s.store.Filter(ctx, filter, SortClockInDesc, s.cfg.QueryFetchLimit)
	if err != nil {
		return nil, errors.Store(err, "failed to load punches")
	}

	return SelectPunches(punches, q.From, q.To, nil), nil
}

// ClockIn opens a new punch for the employee.
func (s *PunchService) ClockIn(ctx context.Context, employeeID, employeeName string) (*domain.PunchRecord, error) {
	if employeeID == "" {
		return nil, errors.BadRequest("employee id is required")
	}

	punch := &domain.PunchRecord{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		ClockIn:      time.Now(),
	}

	if err := s.store.Create(ctx, punch); err != nil {
		return nil, errors.Store(err, "failed to create punch")
	}

	s.logger.Info().
		Str("punch_id", punch.ID).
		Str("employee_id", employeeID).
		Msg("employee clocked in")

	s.publisher.PublishClockIn(ctx, punch)

	return punch, nil
}

// ClockOut closes the employee's most recent open punch.
func (s *PunchService) ClockOut(ctx context.Context, employeeID string) (*domain.PunchRecord, error) {
	open, err := s.store.Filter(ctx, domain.PunchFilter{
		EmployeeID: employeeID,
		OpenOnly:   true,
	}, SortClockInDesc, 1)
	if err != nil {
		return nil, errors.Store(err, "failed to load open punch")
	}
	if len(open) == 0 {
		return nil, errors.BadRequest("not clocked in")
	}

	now := time.Now()
	punch, err := s.store.Update(ctx, open[0].ID, domain.PunchPatch{
		ClockIn:  open[0].ClockIn,
		ClockOut: &now,
	})
	if err != nil {
		return nil, errors.Store(err, "failed to close punch")
	}

	s.logger.Info().
		Str("punch_id", punch.ID).
		Str("employee_id", employeeID).
		Msg("employee clocked out")

	s.publisher.PublishClockOut(ctx, punch)

	return punch, nil
}
