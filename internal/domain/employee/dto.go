package employee

import (
	"github.com/mawarid-ops/manpower-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	FullName    string  `json:"full_name"`
	Trade       string  `json:"trade"`
	Nationality string  `json:"nationality"`
	CostRate    float64 `json:"cost_rate"`
	BillRate    float64 `json:"bill_rate"`
	ProjectID   *string `json:"project_id"`
	Status      string  `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Trade) {
		errs = append(errs, validator.ValidationError{
			Field:   "trade",
			Message: "trade is required",
		})
	}

	if validator.IsEmpty(r.Nationality) {
		errs = append(errs, validator.ValidationError{
			Field:   "nationality",
			Message: "nationality is required",
		})
	}

	if r.CostRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "cost_rate",
			Message: "cost_rate must not be negative",
		})
	}

	if r.BillRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "bill_rate",
			Message: "bill_rate must not be negative",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, []string{
		string(StatusActive), string(StatusInactive), string(StatusOnLeave),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of active, inactive, on_leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string  `json:"id"`
	FullName    string  `json:"full_name"`
	Trade       string  `json:"trade"`
	Nationality string  `json:"nationality"`
	CostRate    float64 `json:"cost_rate"`
	BillRate    float64 `json:"bill_rate"`
	ProjectID   *string `json:"project_id"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
