package service

import (
	"testing"
	"time"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payrollEmployees() []domain.EmployeeProfile {
	return []domain.EmployeeProfile{
		{ID: "e1", FullName: "Marta Reyes", HourlyRate: 15},
		{ID: "e2", FullName: "Jon Ibarra", HourlyRate: 20},
		{ID: "e3", FullName: "Unpaid Intern", HourlyRate: 0},
	}
}

func TestComputePayrollBasicArithmetic(t *testing.T) {
	now := time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)

	punches := []domain.PunchRecord{
		{
			EmployeeID: "e1",
			ClockIn:    time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			ClockOut:   ptr(time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC)),
		},
	}

	lines := ComputePayroll(punches, payrollEmployees(), now)

	require.Len(t, lines, 1)
	assert.Equal(t, "e1", lines[0].EmployeeID)
	assert.InDelta(t, 2.0, lines[0].Hours, 1e-9)
	assert.InDelta(t, 30.0, lines[0].Amount, 1e-9)
}

func TestComputePayrollAccumulatesAndSortsByAmount(t *testing.T) {
	now := time.Date(2024, 1, 12, 20, 0, 0, 0, time.UTC)

	punches := []domain.PunchRecord{
		// e1: 3h + 4h = 7h at 15 -> 105
		{
			EmployeeID: "e1",
			ClockIn:    time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			ClockOut:   ptr(time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)),
		},
		{
			EmployeeID: "e1",
			ClockIn:    time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC),
			ClockOut:   ptr(time.Date(2024, 1, 11, 13, 0, 0, 0, time.UTC)),
		},
		// e2: 8h at 20 -> 160
		{
			EmployeeID: "e2",
			ClockIn:    time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
			ClockOut:   ptr(time.Date(2024, 1, 10, 16, 0, 0, 0, time.UTC)),
		},
	}

	lines := ComputePayroll(punches, payrollEmployees(), now)

	require.Len(t, lines, 2)
	assert.Equal(t, "e2", lines[0].EmployeeID)
	assert.InDelta(t, 160.0, lines[0].Amount, 1e-9)
	assert.Equal(t, "e1", lines[1].EmployeeID)
	assert.InDelta(t, 105.0, lines[1].Amount, 1e-9)
}

func TestComputePayrollReflectsCorrectedPunch(t *testing.T) {
	now := time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)

	punch := domain.PunchRecord{
		EmployeeID: "e2",
		ClockIn:    time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
		ClockOut:   ptr(time.Date(2024, 1, 10, 16, 0, 0, 0, time.UTC)),
	}

	before := ComputePayroll([]domain.PunchRecord{punch}, payrollEmployees(), now)
	require.Len(t, before, 1)
	assert.InDelta(t, 160.0, before[0].Amount, 1e-9)

	// A correction extends the shift by one hour.
	punch.ClockOut = ptr(time.Date(2024, 1, 10, 17, 0, 0, 0, time.UTC))

	after := ComputePayroll([]domain.PunchRecord{punch}, payrollEmployees(), now)
	require.Len(t, after, 1)
	assert.InDelta(t, 180.0, after[0].Amount, 1e-9)
}

func TestComputePayrollSkipsZeroRateAndUnknownEmployees(t *testing.T) {
	now := time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)

	punches := []domain.PunchRecord{
		{
			EmployeeID: "e3", // rate 0
			ClockIn:    time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			ClockOut:   ptr(time.Date(2024, 1, 10, 17, 0, 0, 0, time.UTC)),
		},
		{
			EmployeeID: "ghost", // no profile
			ClockIn:    time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			ClockOut:   ptr(time.Date(2024, 1, 10, 17, 0, 0, 0, time.UTC)),
		},
	}

	lines := ComputePayroll(punches, payrollEmployees(), now)

	assert.Empty(t, lines)
}

func TestComputePayrollPrefersPunchedName(t *testing.T) {
	now := time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)

	punches := []domain.PunchRecord{
		{
			EmployeeID:   "e1",
			EmployeeName: "M. Reyes",
			ClockIn:      time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			ClockOut:     ptr(time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC)),
		},
	}

	lines := ComputePayroll(punches, payrollEmployees(), now)

	require.Len(t, lines, 1)
	assert.Equal(t, "M. Reyes", lines[0].EmployeeName)
}

func TestComputePayrollFallsBackToDirectoryName(t *testing.T) {
	now := time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)

	punches := []domain.PunchRecord{
		{
			EmployeeID: "e1",
			ClockIn:    time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			ClockOut:   ptr(time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC)),
		},
	}

	lines := ComputePayroll(punches, payrollEmployees(), now)

	require.Len(t, lines, 1)
	assert.Equal(t, "Marta Reyes", lines[0].EmployeeName)
}

func TestComputePayrollIncludesOpenPunches(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	punches := []domain.PunchRecord{
		{
			EmployeeID: "e1",
			ClockIn:    time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		},
	}

	lines := ComputePayroll(punches, payrollEmployees(), now)

	require.Len(t, lines, 1)
	assert.InDelta(t, 3.0, lines[0].Hours, 1e-9)
	assert.InDelta(t, 45.0, lines[0].Amount, 1e-9)
}
