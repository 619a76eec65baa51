package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
	"github.com/fixpoint/fixpoint-backend/pkg/config"
	"github.com/fixpoint/fixpoint-backend/pkg/logger"
)

func testConfig() *config.WorkforceConfig {
	return &config.WorkforceConfig{
		MonitorInterval:   30 * time.Second,
		ActiveWindow:      24 * time.Hour,
		MonitorFetchLimit: 50,
		QueryFetchLimit:   500,
	}
}

func testLogger() *logger.Logger {
	return logger.New("workforce-service-test", "test")
}

func ptr[T any](v T) *T { return &v }

// memStore is an in-memory PunchStore for service tests.
type memStore struct {
	punches   []domain.PunchRecord
	nextID    int
	filterErr error
	getErr    error
	createErr error
	updateErr error
}

func (m *memStore) Filter(_ context.Context, filter domain.PunchFilter, sortOrder string, limit int) ([]domain.PunchRecord, error) {
	if m.filterErr != nil {
		return nil, m.filterErr
	}

	var out []domain.PunchRecord
	for _, p := range m.punches {
		if filter.EmployeeID != "" && p.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.OpenOnly && p.ClockOut != nil {
			continue
		}
		if filter.ClockInFrom != nil && p.ClockIn.Before(*filter.ClockInFrom) {
			continue
		}
		if filter.ClockInTo != nil && !p.ClockIn.Before(*filter.ClockInTo) {
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		if sortOrder == SortClockInAsc {
			return out[i].ClockIn.Before(out[j].ClockIn)
		}
		return out[i].ClockIn.After(out[j].ClockIn)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) GetByID(_ context.Context, id string) (*domain.PunchRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for i := range m.punches {
		if m.punches[i].ID == id {
			p := m.punches[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (m *memStore) Create(_ context.Context, punch *domain.PunchRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	if punch.ID == "" {
		m.nextID++
		punch.ID = fmt.Sprintf("punch-%d", m.nextID)
	}
	punch.CreatedAt = time.Now()
	m.punches = append(m.punches, *punch)
	return nil
}

func (m *memStore) Update(_ context.Context, id string, patch domain.PunchPatch) (*domain.PunchRecord, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	for i := range m.punches {
		if m.punches[i].ID == id {
			m.punches[i].ClockIn = patch.ClockIn
			m.punches[i].ClockOut = patch.ClockOut
			if patch.EditedAt != nil {
				m.punches[i].EditedAt = patch.EditedAt
			}
			p := m.punches[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("punch %s does not exist", id)
}

// memDirectory is an in-memory EmployeeDirectory.
type memDirectory struct {
	employees []domain.EmployeeProfile
	err       error
}

func (m *memDirectory) ListActive(context.Context) ([]domain.EmployeeProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.employees, nil
}

// memSink is an AuditSink that records entries and can be forced to fail.
type memSink struct {
	name    string
	err     error
	entries []*domain.AuditEntry
}

func (s *memSink) Name() string { return s.name }

func (s *memSink) Record(_ context.Context, entry *domain.AuditEntry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

// memLedger is an in-memory PaymentLedger.
type memLedger struct {
	payments []*domain.PaymentRecord
	err      error
}

func (m *memLedger) Create(_ context.Context, payment *domain.PaymentRecord) error {
	if m.err != nil {
		return m.err
	}
	if payment.ID == "" {
		payment.ID = fmt.Sprintf("payment-%d", len(m.payments)+1)
	}
	payment.CreatedAt = time.Now()
	m.payments = append(m.payments, payment)
	return nil
}

// stubPublisher counts published events.
type stubPublisher struct {
	clockIns   int
	clockOuts  int
	corrected  int
	recorded   int
	lastStatus string
}

func (p *stubPublisher) PublishClockIn(context.Context, *domain.PunchRecord) { p.clockIns++ }
func (p *stubPublisher) PublishClockOut(context.Context, *domain.PunchRecord) { p.clockOuts++ }
func (p *stubPublisher) PublishPunchCorrected(_ context.Context, _ *domain.PunchRecord, _, status string) {
	p.corrected++
	p.lastStatus = status
}
func (p *stubPublisher) PublishPaymentRecorded(context.Context, *domain.PaymentRecord) {
	p.recorded++
}

func newTestService(store *memStore, dir *memDirectory, sinks []AuditSink, pub *stubPublisher) *PunchService {
	return NewPunchService(store, dir, sinks, pub, testConfig(), testLogger())
}
