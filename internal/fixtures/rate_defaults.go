// Package fixtures holds the seed values a fresh installation starts
// with. Tests share them so expectations track the shipped defaults.
package fixtures

import (
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/rate"
)

// DefaultMultipliers returns the overtime multipliers a new tenant
// gets. The 1.0x entry is kept for historical imports but is below the
// statutory minimum, so it can never be the default.
func DefaultMultipliers() []rate.OvertimeMultiplier {
	return []rate.OvertimeMultiplier{
		{ID: "multiplier-regular", Name: "Regular", Value: 1.0, Compliant: false, IsDefault: false},
		{ID: "multiplier-standard-ot", Name: "Standard Overtime", Value: 1.5, Compliant: true, IsDefault: true},
		{ID: "multiplier-holiday-ot", Name: "Holiday Overtime", Value: 2.0, Compliant: true, IsDefault: false},
	}
}

// DefaultSettings returns the payroll settings a new tenant gets.
func DefaultSettings() rate.Settings {
	return rate.Settings{
		StandardMonthlyHours: 176,
		CurrencyCode:         "SAR",
	}
}
