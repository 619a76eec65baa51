package service

import (
	"context"
	"time"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
	"github.com/fixpoint/fixpoint-backend/pkg/actor"
	"github.com/fixpoint/fixpoint-backend/pkg/errors"
	"github.com/fixpoint/fixpoint-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// PaymentService records settlement payments against the ledger.
type PaymentService struct {
	ledger    PaymentLedger
	publisher EventPublisher
	logger    *logger.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(ledger PaymentLedger, publisher EventPublisher, log *logger.Logger) *PaymentService {
	return &PaymentService{
		ledger:    ledger,
		publisher: publisher,
		logger:    log.WithComponent("payment_service"),
	}
}

// PaymentInput describes a settlement payment to record.
type PaymentInput struct {
	EmployeeID   string
	EmployeeName string
	Amount       decimal.Decimal
	PaymentType  string
	Method       string
	PeriodStart  *time.Time
	PeriodEnd    *time.Time
	Notes        *string
}

// RecordPayment validates and persists an immutable settlement record. The
// paying operator is taken from the request context.
func (s *PaymentService) RecordPayment(ctx context.Context, in PaymentInput) (*domain.PaymentRecord, error) {
	act := actor.FromContext(ctx)
	if act == nil || !act.IsPrivileged() {
		return nil, errors.Forbidden("recording payments requires a manager or admin role")
	}

	if in.EmployeeID == "" {
		return nil, errors.BadRequest("employee id is required")
	}
	if !in.Amount.IsPositive() {
		return nil, errors.BadRequest("amount must be greater than zero")
	}
	if !domain.ValidPaymentType(in.PaymentType) {
		return nil, errors.BadRequest("unknown payment type")
	}

	method := in.Method
	if method == "" {
		method = domain.PaymentMethodTransfer
	}

	payment := &domain.PaymentRecord{
		EmployeeID:   in.EmployeeID,
		EmployeeName: in.EmployeeName,
		Amount:       in.Amount,
		PaymentType:  in.PaymentType,
		Method:       method,
		PeriodStart:  in.PeriodStart,
		PeriodEnd:    in.PeriodEnd,
		Notes:        in.Notes,
		PaidBy:       act.ID,
		PaidByName:   act.Name,
	}

	if err := s.ledger.Create(ctx, payment); err != nil {
		return nil, errors.Store(err, "failed to record payment")
	}

	s.logger.Info().
		Str("payment_id", payment.ID).
		Str("employee_id", payment.EmployeeID).
		Str("payment_type", payment.PaymentType).
		Str("paid_by", payment.PaidBy).
		Msg("payment recorded")

	s.publisher.PublishPaymentRecorded(ctx, payment)

	return payment, nil
}
