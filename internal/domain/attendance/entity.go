package attendance

import (
	"time"
)

// Record is one employee's attendance for one work day. Records are
// created at end-of-day entry and are read-only for reporting; there is
// at most one record per employee per date.
type Record struct {
	ID                string
	EmployeeID        string
	ProjectID         string
	Date              time.Time
	HoursWorked       float64
	OvertimeHours     float64
	BreakMinutes      int
	LateMinutes       int
	EarlyLeaveMinutes int
	Location          *string
	Notes             *string
	CreatedAt         time.Time
}
