package service

import (
	"context"
	"sort"
	"time"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
	"github.com/fixpoint/fixpoint-backend/pkg/errors"
)

// WeekSummary aggregates the punches of one Sunday-start week. OpenCount
// tracks how many of the week's punches are still running.
type WeekSummary struct {
	WeekStart       time.Time `json:"week_start"`
	WeekEnd         time.Time `json:"week_end"`
	PunchCount      int       `json:"punch_count"`
	OpenCount       int       `json:"open_count"`
	TotalDurationMs int64     `json:"total_duration_ms"`
	TotalHours      float64   `json:"total_hours"`
}

// BuildWeeklySummary buckets punches into Sunday-start weeks keyed by the
// punch's clock-in. Every punch lands in exactly one bucket; open punches are
// measured against now. Summaries come back newest week first.
func BuildWeeklySummary(punches []domain.PunchRecord, now time.Time) []WeekSummary {
	buckets := make(map[time.Time]*WeekSummary)

	for i := range punches {
		p := &punches[i]
		start := WeekStart(p.ClockIn)

		bucket, ok := buckets[start]
		if !ok {
			bucket = &WeekSummary{
				WeekStart: start,
				WeekEnd:   WeekEnd(p.ClockIn),
			}
			buckets[start] = bucket
		}

		d := PunchDuration(p, now)
		bucket.PunchCount++
		if p.IsOpen() {
			bucket.OpenCount++
		}
		bucket.TotalDurationMs += d.Milliseconds()
	}

	summaries := make([]WeekSummary, 0, len(buckets))
	for _, b := range buckets {
		b.TotalHours = float64(b.TotalDurationMs) / float64(time.Hour.Milliseconds())
		summaries = append(summaries, *b)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].WeekStart.After(summaries[j].WeekStart)
	})

	return summaries
}

// WeeklySummary loads punches in the window and buckets them into weekly
// summaries. The window is applied in memory like QueryPunches does.
func (s *PunchService) WeeklySummary(ctx context.Context, employeeID string, from, to *time.Time) ([]WeekSummary, error) {
	punches, err := s.store.Filter(ctx, domain.PunchFilter{
		EmployeeID: employeeID,
	}, SortClockInDesc, s.cfg.QueryFetchLimit)
	if err != nil {
		return nil, errors.Store(err, "failed to load punches")
	}

	return BuildWeeklySummary(SelectPunches(punches, from, to, nil), time.Now()), nil
}
