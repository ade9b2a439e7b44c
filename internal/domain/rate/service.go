package rate

import "context"

// RateService defines the interface for hourly rate management
type RateService interface {
	// CreateRate validates the proposed wage against statutory bounds
	// and stores it as a draft
	CreateRate(ctx context.Context, req CreateRateRequest) (RateResponse, error)

	// ActivateRate promotes a draft rate, expiring the employee's
	// previously active rate
	ActivateRate(ctx context.Context, id string) (RateResponse, error)

	// ListRates lists rates for one employee
	ListRates(ctx context.Context, employeeID string) ([]RateResponse, error)

	// ListMultipliers lists the configured overtime multipliers
	ListMultipliers(ctx context.Context) ([]MultiplierResponse, error)

	// SetDefaultMultiplier changes the default multiplier; the chosen
	// multiplier must satisfy the legal minimum
	SetDefaultMultiplier(ctx context.Context, id string) (MultiplierResponse, error)

	// GetSettings returns the payroll settings
	GetSettings(ctx context.Context) (SettingsResponse, error)

	// UpdateStandardHours replaces the standard monthly hours, blocking
	// the update entirely when the value is out of range
	UpdateStandardHours(ctx context.Context, req UpdateStandardHoursRequest) (SettingsResponse, error)
}
