package domain

import "time"

// PunchRecord represents a single work session. An open session has a nil
// ClockOut and is still accumulating time.
type PunchRecord struct {
	ID           string     `db:"id" json:"id"`
	EmployeeID   string     `db:"employee_id" json:"employee_id"`
	EmployeeName string     `db:"employee_name" json:"employee_name"`
	ClockIn      time.Time  `db:"clock_in" json:"clock_in"`
	ClockOut     *time.Time `db:"clock_out" json:"clock_out,omitempty"`
	EditedAt     *time.Time `db:"edited_at" json:"edited_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// IsOpen reports whether the punch is still running.
func (p *PunchRecord) IsOpen() bool {
	return p.ClockOut == nil
}

// PunchFilter narrows a punch store query. Zero values mean "no constraint".
type PunchFilter struct {
	EmployeeID string
	// OpenOnly keeps only punches with no clock-out.
	OpenOnly bool
	// ClockInFrom / ClockInTo bound clock_in as [from, to).
	ClockInFrom *time.Time
	ClockInTo   *time.Time
}

// PunchPatch is the update applied to an existing punch. ClockOut nil clears
// the clock-out and reopens the session. EditedAt is set only by corrections;
// a regular clock-out leaves it nil.
type PunchPatch struct {
	ClockIn  time.Time
	ClockOut *time.Time
	EditedAt *time.Time
}
