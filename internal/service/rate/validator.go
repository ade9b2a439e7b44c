package rate

// Statutory and configured wage bounds, in the company's currency.
const (
	MinimumHourlyWage = 18.00
	MaximumHourlyWage = 500.00

	MinStandardMonthlyHours = 120
	MaxStandardMonthlyHours = 220

	// LegalMinimumOvertimeMultiplier is the statutory overtime floor.
	LegalMinimumOvertimeMultiplier = 1.5
)

type ViolationKind string

const (
	BelowMinimumWage            ViolationKind = "below_minimum_wage"
	AboveMaximumWage            ViolationKind = "above_maximum_wage"
	StandardHoursOutOfRange     ViolationKind = "standard_hours_out_of_range"
	MultiplierBelowLegalMinimum ViolationKind = "multiplier_below_legal_minimum"
)

// Violation names the broken rule together with the bound it broke, so
// the caller can render an actionable message.
type Violation struct {
	Kind  ViolationKind `json:"kind"`
	Bound float64       `json:"bound"`
}

// Result is a structured validation outcome. Validators never return
// errors; the caller decides whether an invalid result blocks a save or
// merely warns.
type Result struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations,omitempty"`
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(violations ...Violation) Result {
	return Result{Valid: false, Violations: violations}
}

// ValidateWage checks a proposed hourly wage against the statutory
// floor and the configured ceiling. Both bounds are inclusive.
func ValidateWage(wage float64) Result {
	if wage < MinimumHourlyWage {
		return invalid(Violation{Kind: BelowMinimumWage, Bound: MinimumHourlyWage})
	}
	if wage > MaximumHourlyWage {
		return invalid(Violation{Kind: AboveMaximumWage, Bound: MaximumHourlyWage})
	}
	return valid()
}

// ValidateStandardHours checks the standard-hours-per-month setting
// against the inclusive range [120, 220]. A violation must block the
// configuration update entirely.
func ValidateStandardHours(hours int) Result {
	if hours < MinStandardMonthlyHours {
		return invalid(Violation{Kind: StandardHoursOutOfRange, Bound: MinStandardMonthlyHours})
	}
	if hours > MaxStandardMonthlyHours {
		return invalid(Violation{Kind: StandardHoursOutOfRange, Bound: MaxStandardMonthlyHours})
	}
	return valid()
}

// ValidateOvertimeMultiplier checks a multiplier, custom values
// included, against the statutory minimum.
func ValidateOvertimeMultiplier(value float64) Result {
	if value < LegalMinimumOvertimeMultiplier {
		return invalid(Violation{Kind: MultiplierBelowLegalMinimum, Bound: LegalMinimumOvertimeMultiplier})
	}
	return valid()
}
