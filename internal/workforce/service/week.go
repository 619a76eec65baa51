package service

import (
	"time"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
)

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last represented instant of t's day (23:59:59.999).
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// WeekStart returns midnight of the Sunday on or before t. Weeks run
// Sunday through Saturday.
func WeekStart(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// WeekEnd returns the end of the Saturday closing t's week (23:59:59.999).
func WeekEnd(t time.Time) time.Time {
	return EndOfDay(WeekStart(t).AddDate(0, 0, 6))
}

// Today returns the inclusive bounds of t's day.
func Today(t time.Time) (time.Time, time.Time) {
	return StartOfDay(t), EndOfDay(t)
}

// ThisWeek returns the inclusive bounds of t's Sunday-start week.
func ThisWeek(t time.Time) (time.Time, time.Time) {
	return WeekStart(t), WeekEnd(t)
}

// ThisMonth returns the inclusive bounds of t's calendar month.
func ThisMonth(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, EndOfDay(start.AddDate(0, 1, -1))
}

// PunchDuration returns the worked duration of a punch. Open punches are
// measured against now. Inverted intervals clamp to zero instead of going
// negative, so one bad record cannot corrupt an aggregate.
func PunchDuration(p *domain.PunchRecord, now time.Time) time.Duration {
	end := now
	if p.ClockOut != nil {
		end = *p.ClockOut
	}

	d := end.Sub(p.ClockIn)
	if d < 0 {
		return 0
	}
	return d
}
