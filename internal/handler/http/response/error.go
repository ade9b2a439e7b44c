package response

import (
	"errors"
	"net/http"

	"github.com/mawarid-ops/manpower-backend-go/internal/domain/attendance"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/employee"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/project"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/rate"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/report"
	"github.com/mawarid-ops/manpower-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Invalid employee status", nil)

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrInvalidStatus):
		BadRequest(w, "Invalid project status", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance already recorded for this employee on this date")

	// Rate domain errors
	case errors.Is(err, rate.ErrRateNotFound):
		NotFound(w, "Hourly rate not found")
	case errors.Is(err, rate.ErrRateNotDraft):
		Conflict(w, "Only draft rates can be activated")
	case errors.Is(err, rate.ErrMultiplierNotFound):
		NotFound(w, "Overtime multiplier not found")
	case errors.Is(err, rate.ErrMultiplierNotCompliant):
		BadRequest(w, "Multiplier is below the legal minimum and cannot be the default", nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, report.ErrInvalidKind):
		BadRequest(w, "Unknown report kind", nil)
	case errors.Is(err, report.ErrInvalidGroupBy):
		BadRequest(w, "Unknown grouping dimension", nil)
	case errors.Is(err, report.ErrInvalidFormat):
		BadRequest(w, "Unknown report format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
