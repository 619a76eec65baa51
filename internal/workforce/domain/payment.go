package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment types
const (
	PaymentTypeSalary     = "salary"
	PaymentTypeBonus      = "bonus"
	PaymentTypeCommission = "commission"
	PaymentTypeAdvance    = "advance"
	PaymentTypeOther      = "other"
)

// PaymentMethodTransfer is the default settlement method.
const PaymentMethodTransfer = "transfer"

// ValidPaymentType reports whether t is a known payment type.
func ValidPaymentType(t string) bool {
	switch t {
	case PaymentTypeSalary, PaymentTypeBonus, PaymentTypeCommission, PaymentTypeAdvance, PaymentTypeOther:
		return true
	}
	return false
}

// PaymentRecord is an immutable settlement entry. It documents money actually
// paid out; it is independent of payroll estimation. PaidBy holds the paying
// operator's id, PaidByName their display name at the time of payment.
type PaymentRecord struct {
	ID           string          `db:"id" json:"id"`
	EmployeeID   string          `db:"employee_id" json:"employee_id"`
	EmployeeName string          `db:"employee_name" json:"employee_name"`
	Amount       decimal.Decimal `db:"amount" json:"amount"`
	PaymentType  string          `db:"payment_type" json:"payment_type"`
	Method       string          `db:"method" json:"method"`
	PeriodStart  *time.Time      `db:"period_start" json:"period_start,omitempty"`
	PeriodEnd    *time.Time      `db:"period_end" json:"period_end,omitempty"`
	Notes        *string         `db:"notes" json:"notes,omitempty"`
	PaidBy       string          `db:"paid_by" json:"paid_by"`
	PaidByName   string          `db:"paid_by_name" json:"paid_by_name"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}
