package events

import (
	"context"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
	"github.com/fixpoint/fixpoint-backend/pkg/logger"
	"github.com/fixpoint/fixpoint-backend/pkg/messaging"
)

// WorkforceEventPublisher publishes workforce-related events. Publishing is
// best effort; failures are logged and never surfaced to the caller.
type WorkforceEventPublisher struct {
	publisher *messaging.Publisher
	logger    *logger.Logger
}

// NewWorkforceEventPublisher creates a new workforce event publisher
func NewWorkforceEventPublisher(rmq *messaging.RabbitMQ, log *logger.Logger) (*WorkforceEventPublisher, error) {
	publisher, err := messaging.NewPublisher(rmq, messaging.ExchangeWorkforceEvents, "workforce-service", log)
	if err != nil {
		return nil, err
	}

	return &WorkforceEventPublisher{
		publisher: publisher,
		logger:    log,
	}, nil
}

// PublishClockIn publishes a clock in event
func (p *WorkforceEventPublisher) PublishClockIn(ctx context.Context, punch *domain.PunchRecord) {
	data := messaging.PunchClockInEvent{
		PunchID:      punch.ID,
		EmployeeID:   punch.EmployeeID,
		EmployeeName: punch.EmployeeName,
		ClockIn:      punch.ClockIn,
	}

	if err := p.publisher.Publish(ctx, messaging.EventPunchClockIn, data); err != nil {
		p.logger.Error().Err(err).Str("punch_id", punch.ID).Msg("failed to publish clock in event")
	}
}

// PublishClockOut publishes a clock out event
func (p *WorkforceEventPublisher) PublishClockOut(ctx context.Context, punch *domain.PunchRecord) {
	data := messaging.PunchClockOutEvent{
		PunchID:    punch.ID,
		EmployeeID: punch.EmployeeID,
	}
	if punch.ClockOut != nil {
		data.ClockOut = *punch.ClockOut
	}

	if err := p.publisher.Publish(ctx, messaging.EventPunchClockOut, data); err != nil {
		p.logger.Error().Err(err).Str("punch_id", punch.ID).Msg("failed to publish clock out event")
	}
}

// PublishPunchCorrected publishes a punch corrected event
func (p *WorkforceEventPublisher) PublishPunchCorrected(ctx context.Context, punch *domain.PunchRecord, correctedBy, auditStatus string) {
	data := messaging.PunchCorrectedEvent{
		PunchID:     punch.ID,
		EmployeeID:  punch.EmployeeID,
		CorrectedBy: correctedBy,
		AuditStatus: auditStatus,
	}

	if err := p.publisher.Publish(ctx, messaging.EventPunchCorrected, data); err != nil {
		p.logger.Error().Err(err).Str("punch_id", punch.ID).Msg("failed to publish punch corrected event")
	}
}

// PublishPaymentRecorded publishes a payment recorded event
func (p *WorkforceEventPublisher) PublishPaymentRecorded(ctx context.Context, payment *domain.PaymentRecord) {
	data := messaging.PaymentRecordedEvent{
		PaymentID:   payment.ID,
		EmployeeID:  payment.EmployeeID,
		Amount:      payment.Amount.String(),
		PaymentType: payment.PaymentType,
		PaidBy:      payment.PaidBy,
		PaidByName:  payment.PaidByName,
	}

	if err := p.publisher.Publish(ctx, messaging.EventPaymentRecorded, data); err != nil {
		p.logger.Error().Err(err).Str("payment_id", payment.ID).Msg("failed to publish payment recorded event")
	}
}
