package service

import (
	"context"
	"sort"
	"time"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
	"github.com/fixpoint/fixpoint-backend/pkg/errors"
)

// PayrollLine is the estimated pay for one employee over the aggregated
// punches. It is an estimate for review, not a payroll statement.
type PayrollLine struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	HourlyRate   float64 `json:"hourly_rate"`
	Hours        float64 `json:"hours"`
	Amount       float64 `json:"amount"`
}

// ComputePayroll estimates pay per employee as worked hours times hourly
// rate. Employees without a profile or with a rate of zero or less are
// skipped. Lines come back highest amount first.
func ComputePayroll(punches []domain.PunchRecord, employees []domain.EmployeeProfile, now time.Time) []PayrollLine {
	profiles := make(map[string]*domain.EmployeeProfile, len(employees))
	for i := range employees {
		profiles[employees[i].ID] = &employees[i]
	}

	totals := make(map[string]time.Duration)
	names := make(map[string]string)
	for i := range punches {
		p := &punches[i]
		profile, ok := profiles[p.EmployeeID]
		if !ok || profile.HourlyRate <= 0 {
			continue
		}
		totals[p.EmployeeID] += PunchDuration(p, now)
		if p.EmployeeName != "" {
			names[p.EmployeeID] = p.EmployeeName
		}
	}

	lines := make([]PayrollLine, 0, len(totals))
	for employeeID, total := range totals {
		profile := profiles[employeeID]
		// The name as punched takes precedence; the directory only
		// supplies the rate and fills in when punches carry no name.
		name := names[employeeID]
		if name == "" {
			name = profile.FullName
		}
		hours := float64(total.Milliseconds()) / float64(time.Hour.Milliseconds())
		lines = append(lines, PayrollLine{
			EmployeeID:   employeeID,
			EmployeeName: name,
			HourlyRate:   profile.HourlyRate,
			Hours:        hours,
			Amount:       hours * profile.HourlyRate,
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Amount != lines[j].Amount {
			return lines[i].Amount > lines[j].Amount
		}
		return lines[i].EmployeeID < lines[j].EmployeeID
	})

	return lines
}

// Payroll loads punches in the window and estimates pay per employee.
func (s *PunchService) Payroll(ctx context.Context, from, to *time.Time) ([]PayrollLine, error) {
	punches, err := s.store.Filter(ctx, domain.PunchFilter{}, SortClockInDesc, s.cfg.QueryFetchLimit)
	if err != nil {
		return nil, errors.Store(err, "failed to load punches")
	}

	employees, err := s.employees.ListActive(ctx)
	if err != nil {
		return nil, errors.Store(err, "failed to load employees")
	}

	return ComputePayroll(SelectPunches(punches, from, to, nil), employees, time.Now()), nil
}
