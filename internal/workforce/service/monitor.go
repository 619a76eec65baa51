package service

import (
	"context"
	"sync"
	"time"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
	"github.com/fixpoint/fixpoint-backend/pkg/config"
	"github.com/fixpoint/fixpoint-backend/pkg/logger"
)

// ActiveSessionMonitor keeps a periodically refreshed snapshot of who is
// currently clocked in. It refreshes once on start and then on every tick
// until stopped. A failed refresh keeps the previous snapshot and logs.
type ActiveSessionMonitor struct {
	store    PunchStore
	interval time.Duration
	window   time.Duration
	limit    int
	logger   *logger.Logger
	cancel   context.CancelFunc

	mu       sync.RWMutex
	sessions []domain.PunchRecord
}

// NewActiveSessionMonitor creates a new active-session monitor.
func NewActiveSessionMonitor(store PunchStore, cfg *config.WorkforceConfig, log *logger.Logger) *ActiveSessionMonitor {
	return &ActiveSessionMonitor{
		store:    store,
		interval: cfg.MonitorInterval,
		window:   cfg.ActiveWindow,
		limit:    cfg.MonitorFetchLimit,
		logger:   log.WithComponent("active_session_monitor"),
	}
}

// Start starts the monitor in a background goroutine. It refreshes
// immediately, then on every interval tick.
func (m *ActiveSessionMonitor) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)

	go func() {
		m.logger.Info().Dur("interval", m.interval).Msg("active session monitor started")

		m.Refresh(ctx)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				m.logger.Info().Msg("active session monitor stopped")
				return
			case <-ticker.C:
				m.Refresh(ctx)
			}
		}
	}()
}

// Stop stops the monitor goroutine. No refreshes run after Stop returns,
// beyond one already in flight.
func (m *ActiveSessionMonitor) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Refresh reloads the active sessions once. Open punches older than the
// active window are treated as stale and dropped from the snapshot.
func (m *ActiveSessionMonitor) Refresh(ctx context.Context) {
	open, err := m.store.Filter(ctx, domain.PunchFilter{OpenOnly: true}, SortClockInDesc, m.limit)
	if err != nil {
		m.logger.Error().Err(err).Msg("failed to refresh active sessions")
		return
	}

	cutoff := time.Now().Add(-m.window)
	active := make([]domain.PunchRecord, 0, len(open))
	for _, p := range open {
		if p.ClockIn.After(cutoff) {
			active = append(active, p)
		}
	}

	m.mu.Lock()
	m.sessions = active
	m.mu.Unlock()

	m.logger.Debug().Int("active", len(active)).Msg("active sessions refreshed")
}

// Snapshot returns a copy of the current active sessions.
func (m *ActiveSessionMonitor) Snapshot() []domain.PunchRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.PunchRecord, len(m.sessions))
	copy(out, m.sessions)
	return out
}
