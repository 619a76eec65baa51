package repository

import (
	"context"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
	"github.com/fixpoint/fixpoint-backend/pkg/database"
	"github.com/google/uuid"
)

// PaymentRepository persists settlement payments. Records are insert-only.
type PaymentRepository struct {
	db *database.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *database.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts a new payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.PaymentRecord) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payments (id, employee_id, employee_name, amount, payment_type, method, period_start, period_end, notes, paid_by, paid_by_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	return r.db.QueryRowxContext(ctx, query,
		payment.ID, payment.EmployeeID, payment.EmployeeName, payment.Amount,
		payment.PaymentType, payment.Method, payment.PeriodStart, payment.PeriodEnd,
		payment.Notes, payment.PaidBy, payment.PaidByName,
	).Scan(&payment.CreatedAt)
}
