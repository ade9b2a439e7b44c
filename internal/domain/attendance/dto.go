package attendance

import (
	"github.com/mawarid-ops/manpower-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CreateRecordRequest struct {
	EmployeeID        string  `json:"employee_id"`
	ProjectID         string  `json:"project_id"`
	Date              string  `json:"date"`
	HoursWorked       float64 `json:"hours_worked"`
	OvertimeHours     float64 `json:"overtime_hours"`
	BreakMinutes      int     `json:"break_minutes"`
	LateMinutes       int     `json:"late_minutes"`
	EarlyLeaveMinutes int     `json:"early_leave_minutes"`
	Location          *string `json:"location"`
	Notes             *string `json:"notes"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.HoursWorked < 0 || r.HoursWorked > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_worked",
			Message: "hours_worked must be between 0 and 24",
		})
	}

	if r.OvertimeHours < 0 || r.OvertimeHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_hours",
			Message: "overtime_hours must be between 0 and 24",
		})
	}

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if r.LateMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_minutes",
			Message: "late_minutes must not be negative",
		})
	}

	if r.EarlyLeaveMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "early_leave_minutes",
			Message: "early_leave_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      string  `json:"employee_name,omitempty"`
	ProjectID         string  `json:"project_id"`
	Date              string  `json:"date"`
	HoursWorked       float64 `json:"hours_worked"`
	OvertimeHours     float64 `json:"overtime_hours"`
	BreakMinutes      int     `json:"break_minutes"`
	LateMinutes       int     `json:"late_minutes"`
	EarlyLeaveMinutes int     `json:"early_leave_minutes"`
	Location          *string `json:"location"`
	Notes             *string `json:"notes"`
	CreatedAt         string  `json:"created_at"`
}

type ListRecordsRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	ProjectID string `json:"project_id"`
}

func (r *ListRecordsRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
