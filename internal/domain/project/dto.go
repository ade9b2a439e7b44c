package project

import (
	"github.com/mawarid-ops/manpower-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// PROJECT DTOs
// ========================================

type CreateProjectRequest struct {
	Name         string          `json:"name"`
	Client       string          `json:"client"`
	Status       string          `json:"status"`
	Progress     int             `json:"progress"`
	Budget       decimal.Decimal `json:"budget"`
	MarginTarget float64         `json:"margin_target"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Client) {
		errs = append(errs, validator.ValidationError{
			Field:   "client",
			Message: "client is required",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, []string{
		string(StatusActive), string(StatusHold), string(StatusFinished),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of active, hold, finished",
		})
	}

	if r.Progress < 0 || r.Progress > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "progress",
			Message: "progress must be between 0 and 100",
		})
	}

	if r.Budget.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "budget",
			Message: "budget must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Client       string          `json:"client"`
	Status       string          `json:"status"`
	Progress     int             `json:"progress"`
	Budget       decimal.Decimal `json:"budget"`
	MarginTarget float64         `json:"margin_target"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}
