package rate

import (
	"context"
)

// RateRepository defines data access methods for hourly rates,
// overtime multipliers and payroll settings.
type RateRepository interface {
	// CreateRate creates a new hourly rate in draft status
	CreateRate(ctx context.Context, r HourlyRate) (HourlyRate, error)

	// GetRateByID retrieves an hourly rate by ID
	GetRateByID(ctx context.Context, id string) (HourlyRate, error)

	// ListRatesByEmployee retrieves all rates for one employee,
	// newest effective date first
	ListRatesByEmployee(ctx context.Context, employeeID string) ([]HourlyRate, error)

	// ActivateRate marks the rate active and expires the employee's
	// previously active rate inside one transaction
	ActivateRate(ctx context.Context, id string) (HourlyRate, error)

	// ListMultipliers retrieves all overtime multipliers
	ListMultipliers(ctx context.Context) ([]OvertimeMultiplier, error)

	// SetDefaultMultiplier clears the current default and marks the
	// given multiplier as default inside one transaction
	SetDefaultMultiplier(ctx context.Context, id string) (OvertimeMultiplier, error)

	// GetDefaultMultiplier retrieves the current default multiplier
	GetDefaultMultiplier(ctx context.Context) (OvertimeMultiplier, error)

	// GetSettings retrieves the payroll settings row
	GetSettings(ctx context.Context) (Settings, error)

	// UpdateStandardHours replaces the standard monthly hours value
	UpdateStandardHours(ctx context.Context, hours int) (Settings, error)
}
