package rate

import (
	"time"
)

// HourlyRate is a wage proposal for one employee. At most one rate per
// employee is active at a time; activating a draft expires its
// predecessor in the same transaction.
type HourlyRate struct {
	ID            string
	EmployeeID    string
	Wage          float64
	EffectiveDate time.Time
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusSuspended Status = "suspended"
)

// OvertimeMultiplier is a named factor applied to the hourly rate for
// overtime hours. Exactly one multiplier is the default at any time.
// Compliant marks values at or above the statutory minimum of 1.5.
type OvertimeMultiplier struct {
	ID        string
	Name      string
	Value     float64
	Compliant bool
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Settings holds company-wide payroll configuration.
type Settings struct {
	StandardMonthlyHours int
	CurrencyCode         string
	UpdatedAt            time.Time
}
