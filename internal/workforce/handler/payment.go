package handler

import (
	"net/http"
	"time"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/service"
	"github.com/fixpoint/fixpoint-backend/pkg/errors"
	"github.com/fixpoint/fixpoint-backend/pkg/httputil"
	"github.com/fixpoint/fixpoint-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	service *service.PaymentService
	logger  *logger.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(svc *service.PaymentService, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: svc,
		logger:  log,
	}
}

// CreatePaymentRequest is the body for recording a payment
type CreatePaymentRequest struct {
	EmployeeID   string  `json:"employee_id" validate:"required"`
	EmployeeName string  `json:"employee_name" validate:"required"`
	Amount       string  `json:"amount" validate:"required"`
	PaymentType  string  `json:"payment_type" validate:"required,oneof=salary bonus commission advance other"`
	Method       string  `json:"method"`
	PeriodStart  *string `json:"period_start"`
	PeriodEnd    *string `json:"period_end"`
	Notes        *string `json:"notes"`
}

// Create records a settlement payment.
// POST /payments
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(req); err != nil {
		httputil.Error(w, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		httputil.Error(w, errors.BadRequest("invalid amount"))
		return
	}

	periodStart, err := parseOptionalTime(req.PeriodStart)
	if err != nil {
		httputil.Error(w, errors.BadRequest("invalid period_start format"))
		return
	}
	periodEnd, err := parseOptionalTime(req.PeriodEnd)
	if err != nil {
		httputil.Error(w, errors.BadRequest("invalid period_end format"))
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), service.PaymentInput{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Amount:       amount,
		PaymentType:  req.PaymentType,
		Method:       req.Method,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		Notes:        req.Notes,
	})
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, payment)
}

func parseOptionalTime(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
