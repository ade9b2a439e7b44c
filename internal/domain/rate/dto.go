package rate

import (
	"github.com/mawarid-ops/manpower-backend-go/internal/pkg/validator"
)

// ========================================
// HOURLY RATE DTOs
// ========================================

type CreateRateRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Wage          float64 `json:"wage"`
	EffectiveDate string  `json:"effective_date"`
}

func (r *CreateRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_date",
			Message: "effective_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RateResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Wage          float64 `json:"wage"`
	EffectiveDate string  `json:"effective_date"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type MultiplierResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Compliant bool    `json:"compliant"`
	IsDefault bool    `json:"is_default"`
}

type SettingsResponse struct {
	StandardMonthlyHours int    `json:"standard_monthly_hours"`
	CurrencyCode         string `json:"currency_code"`
	UpdatedAt            string `json:"updated_at"`
}

type UpdateStandardHoursRequest struct {
	StandardMonthlyHours int `json:"standard_monthly_hours"`
}
