package domain

import "time"

// EmployeeProfile is the slice of the employee record the punch engine needs.
// HourlyRate zero or negative means the employee is excluded from payroll
// estimation.
type EmployeeProfile struct {
	ID         string    `db:"id" json:"id"`
	FullName   string    `db:"full_name" json:"full_name"`
	Role       string    `db:"role" json:"role"`
	HourlyRate float64   `db:"hourly_rate" json:"hourly_rate"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
