package rate

import (
	"context"
	"fmt"
	"time"

	"github.com/mawarid-ops/manpower-backend-go/internal/domain/employee"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/rate"
	"github.com/mawarid-ops/manpower-backend-go/internal/pkg/validator"
)

type RateServiceImpl struct {
	rateRepo     rate.RateRepository
	employeeRepo employee.EmployeeRepository
}

func NewRateService(rateRepo rate.RateRepository, employeeRepo employee.EmployeeRepository) rate.RateService {
	return &RateServiceImpl{
		rateRepo:     rateRepo,
		employeeRepo: employeeRepo,
	}
}

// wageViolationErrors converts validator violations into field errors
// that surface the broken rule and its numeric bound.
func wageViolationErrors(res Result) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, v := range res.Violations {
		var msg string
		switch v.Kind {
		case BelowMinimumWage:
			msg = fmt.Sprintf("wage is below the minimum of %.2f", v.Bound)
		case AboveMaximumWage:
			msg = fmt.Sprintf("wage is above the maximum of %.2f", v.Bound)
		default:
			msg = fmt.Sprintf("wage violates rule %s (bound %.2f)", v.Kind, v.Bound)
		}
		errs = append(errs, validator.ValidationError{Field: "wage", Message: msg})
	}
	return errs
}

// CreateRate implements rate.RateService.
func (s *RateServiceImpl) CreateRate(ctx context.Context, req rate.CreateRateRequest) (rate.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return rate.RateResponse{}, err
	}

	if res := ValidateWage(req.Wage); !res.Valid {
		return rate.RateResponse{}, wageViolationErrors(res)
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return rate.RateResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	effectiveDate, _ := time.Parse("2006-01-02", req.EffectiveDate)

	created, err := s.rateRepo.CreateRate(ctx, rate.HourlyRate{
		EmployeeID:    req.EmployeeID,
		Wage:          req.Wage,
		EffectiveDate: effectiveDate,
		Status:        rate.StatusDraft,
	})
	if err != nil {
		return rate.RateResponse{}, fmt.Errorf("failed to create hourly rate: %w", err)
	}

	return mapRateToResponse(created), nil
}

// ActivateRate implements rate.RateService.
func (s *RateServiceImpl) ActivateRate(ctx context.Context, id string) (rate.RateResponse, error) {
	existing, err := s.rateRepo.GetRateByID(ctx, id)
	if err != nil {
		return rate.RateResponse{}, fmt.Errorf("failed to get hourly rate: %w", err)
	}

	if existing.Status != rate.StatusDraft {
		return rate.RateResponse{}, rate.ErrRateNotDraft
	}

	activated, err := s.rateRepo.ActivateRate(ctx, id)
	if err != nil {
		return rate.RateResponse{}, fmt.Errorf("failed to activate hourly rate: %w", err)
	}

	return mapRateToResponse(activated), nil
}

// ListRates implements rate.RateService.
func (s *RateServiceImpl) ListRates(ctx context.Context, employeeID string) ([]rate.RateResponse, error) {
	rates, err := s.rateRepo.ListRatesByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hourly rates: %w", err)
	}

	responses := make([]rate.RateResponse, 0, len(rates))
	for _, r := range rates {
		responses = append(responses, mapRateToResponse(r))
	}
	return responses, nil
}

// ListMultipliers implements rate.RateService.
func (s *RateServiceImpl) ListMultipliers(ctx context.Context) ([]rate.MultiplierResponse, error) {
	multipliers, err := s.rateRepo.ListMultipliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime multipliers: %w", err)
	}

	responses := make([]rate.MultiplierResponse, 0, len(multipliers))
	for _, m := range multipliers {
		responses = append(responses, mapMultiplierToResponse(m))
	}
	return responses, nil
}

// SetDefaultMultiplier implements rate.RateService. A multiplier below
// the legal minimum can be listed for historical data but never made
// the default.
func (s *RateServiceImpl) SetDefaultMultiplier(ctx context.Context, id string) (rate.MultiplierResponse, error) {
	multipliers, err := s.rateRepo.ListMultipliers(ctx)
	if err != nil {
		return rate.MultiplierResponse{}, fmt.Errorf("failed to list overtime multipliers: %w", err)
	}

	var target *rate.OvertimeMultiplier
	for i := range multipliers {
		if multipliers[i].ID == id {
			target = &multipliers[i]
			break
		}
	}
	if target == nil {
		return rate.MultiplierResponse{}, rate.ErrMultiplierNotFound
	}

	if res := ValidateOvertimeMultiplier(target.Value); !res.Valid {
		return rate.MultiplierResponse{}, rate.ErrMultiplierNotCompliant
	}

	updated, err := s.rateRepo.SetDefaultMultiplier(ctx, id)
	if err != nil {
		return rate.MultiplierResponse{}, fmt.Errorf("failed to set default multiplier: %w", err)
	}

	return mapMultiplierToResponse(updated), nil
}

// GetSettings implements rate.RateService.
func (s *RateServiceImpl) GetSettings(ctx context.Context) (rate.SettingsResponse, error) {
	settings, err := s.rateRepo.GetSettings(ctx)
	if err != nil {
		return rate.SettingsResponse{}, fmt.Errorf("failed to get payroll settings: %w", err)
	}
	return mapSettingsToResponse(settings), nil
}

// UpdateStandardHours implements rate.RateService. An out-of-range
// value blocks the update; nothing is partially applied.
func (s *RateServiceImpl) UpdateStandardHours(ctx context.Context, req rate.UpdateStandardHoursRequest) (rate.SettingsResponse, error) {
	if res := ValidateStandardHours(req.StandardMonthlyHours); !res.Valid {
		return rate.SettingsResponse{}, validator.ValidationErrors{{
			Field: "standard_monthly_hours",
			Message: fmt.Sprintf("standard_monthly_hours must be between %d and %d",
				MinStandardMonthlyHours, MaxStandardMonthlyHours),
		}}
	}

	settings, err := s.rateRepo.UpdateStandardHours(ctx, req.StandardMonthlyHours)
	if err != nil {
		return rate.SettingsResponse{}, fmt.Errorf("failed to update standard hours: %w", err)
	}
	return mapSettingsToResponse(settings), nil
}

func mapRateToResponse(r rate.HourlyRate) rate.RateResponse {
	return rate.RateResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		Wage:          r.Wage,
		EffectiveDate: r.EffectiveDate.Format("2006-01-02"),
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     r.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapMultiplierToResponse(m rate.OvertimeMultiplier) rate.MultiplierResponse {
	return rate.MultiplierResponse{
		ID:        m.ID,
		Name:      m.Name,
		Value:     m.Value,
		Compliant: m.Compliant,
		IsDefault: m.IsDefault,
	}
}

func mapSettingsToResponse(s rate.Settings) rate.SettingsResponse {
	return rate.SettingsResponse{
		StandardMonthlyHours: s.StandardMonthlyHours,
		CurrencyCode:         s.CurrencyCode,
		UpdatedAt:            s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
