package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogRecord(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditLogRepository(db)

	created := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO audit_logs`).
		WithArgs(sqlmock.AnyArg(), domain.AuditScopePunchEdit, "p1", "Marta Reyes", "Carla Mendez", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	entry := &domain.AuditEntry{
		Scope: domain.AuditScopePunchEdit,
		RefID: "p1",
		User:  "Marta Reyes",
		Actor: "Carla Mendez",
		Payload: domain.AuditPayload{
			Note: "adjusted start",
		},
	}
	err := repo.Record(context.Background(), entry)

	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, created, entry.CreatedAt)
	assert.Equal(t, "audit_log", repo.Name())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValueRecordUsesFallbackScope(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewKeyValueRepository(db)

	mock.ExpectExec(`INSERT INTO key_values`).
		WithArgs(sqlmock.AnyArg(), domain.AuditScopePunchEditFallback, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Record(context.Background(), &domain.AuditEntry{
		Scope: domain.AuditScopePunchEdit,
		RefID: "p1",
		Actor: "Carla Mendez",
		Payload: domain.AuditPayload{
			Note: "adjusted start",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "key_value", repo.Name())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	periodStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	created := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO payments`).
		WithArgs(sqlmock.AnyArg(), "e1", "Marta Reyes", sqlmock.AnyArg(),
			domain.PaymentTypeSalary, domain.PaymentMethodTransfer,
			&periodStart, &periodEnd, nil, "u1", "Carla Mendez").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	payment := &domain.PaymentRecord{
		EmployeeID:   "e1",
		EmployeeName: "Marta Reyes",
		Amount:       decimal.NewFromInt(1200),
		PaymentType:  domain.PaymentTypeSalary,
		Method:       domain.PaymentMethodTransfer,
		PeriodStart:  &periodStart,
		PeriodEnd:    &periodEnd,
		PaidBy:       "u1",
		PaidByName:   "Carla Mendez",
	}
	err := repo.Create(context.Background(), payment)

	require.NoError(t, err)
	assert.NotEmpty(t, payment.ID)
	assert.Equal(t, created, payment.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeListActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	created := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "full_name", "role", "hourly_rate", "is_active", "created_at"}).
		AddRow("e1", "Marta Reyes", "technician", 15.0, true, created).
		AddRow("e2", "Jon Ibarra", "technician", 20.0, true, created)

	mock.ExpectQuery(`SELECT .+ FROM employees WHERE is_active = TRUE`).
		WillReturnRows(rows)

	employees, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Marta Reyes", employees[0].FullName)
	assert.Equal(t, 15.0, employees[0].HourlyRate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
