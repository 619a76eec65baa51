package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	// Punch events
	EventPunchClockIn   = "workforce.punch.clock_in"
	EventPunchClockOut  = "workforce.punch.clock_out"
	EventPunchCorrected = "workforce.punch.corrected"

	// Payment events
	EventPaymentRecorded = "workforce.payment.recorded"
)

// Exchange names
const (
	ExchangeWorkforceEvents = "workforce.events"
)

// Event is the base event structure
type Event struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id"`
	Data          json.RawMessage `json:"data"`
}

// NewEvent creates a new event with the given type and data
func NewEvent(eventType, source, correlationID string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:            uuid.New().String(),
		Type:          eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID,
		Data:          dataBytes,
	}, nil
}

// UnmarshalData unmarshals the event data into the provided struct
func (e *Event) UnmarshalData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// PunchClockInEvent is published when an employee clocks in
type PunchClockInEvent struct {
	PunchID      string    `json:"punch_id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	ClockIn      time.Time `json:"clock_in"`
}

// PunchClockOutEvent is published when an employee clocks out
type PunchClockOutEvent struct {
	PunchID    string    `json:"punch_id"`
	EmployeeID string    `json:"employee_id"`
	ClockOut   time.Time `json:"clock_out"`
}

// PunchCorrectedEvent is published when a manager corrects a punch
type PunchCorrectedEvent struct {
	PunchID     string `json:"punch_id"`
	EmployeeID  string `json:"employee_id"`
	CorrectedBy string `json:"corrected_by"`
	AuditStatus string `json:"audit_status"`
}

// PaymentRecordedEvent is published when a settlement payment is recorded
type PaymentRecordedEvent struct {
	PaymentID   string `json:"payment_id"`
	EmployeeID  string `json:"employee_id"`
	Amount      string `json:"amount"`
	PaymentType string `json:"payment_type"`
	PaidBy      string `json:"paid_by"`
	PaidByName  string `json:"paid_by_name"`
}
