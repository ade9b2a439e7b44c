package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/rate"
	"github.com/mawarid-ops/manpower-backend-go/internal/pkg/database"
)

type rateRepository struct {
	db *database.DB
}

func NewRateRepository(db *database.DB) rate.RateRepository {
	return &rateRepository{db: db}
}

const rateColumns = `id, employee_id, wage, effective_date, status, created_at, updated_at`

func scanRate(row pgx.Row) (rate.HourlyRate, error) {
	var r rate.HourlyRate
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.Wage, &r.EffectiveDate, &r.Status,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

const multiplierColumns = `id, name, value, compliant, is_default, created_at, updated_at`

func scanMultiplier(row pgx.Row) (rate.OvertimeMultiplier, error) {
	var m rate.OvertimeMultiplier
	err := row.Scan(
		&m.ID, &m.Name, &m.Value, &m.Compliant, &m.IsDefault,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// CreateRate implements rate.RateRepository.
func (r *rateRepository) CreateRate(ctx context.Context, hr rate.HourlyRate) (rate.HourlyRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO hourly_rates (id, employee_id, wage, effective_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + rateColumns

	created, err := scanRate(q.QueryRow(ctx, query,
		uuid.NewString(),
		hr.EmployeeID,
		hr.Wage,
		hr.EffectiveDate,
		hr.Status,
	))
	if err != nil {
		return rate.HourlyRate{}, fmt.Errorf("failed to create hourly rate: %w", err)
	}
	return created, nil
}

// GetRateByID implements rate.RateRepository.
func (r *rateRepository) GetRateByID(ctx context.Context, id string) (rate.HourlyRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rateColumns + ` FROM hourly_rates WHERE id = $1`

	hr, err := scanRate(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rate.HourlyRate{}, rate.ErrRateNotFound
		}
		return rate.HourlyRate{}, fmt.Errorf("failed to get hourly rate: %w", err)
	}
	return hr, nil
}

// ListRatesByEmployee implements rate.RateRepository.
func (r *rateRepository) ListRatesByEmployee(ctx context.Context, employeeID string) ([]rate.HourlyRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rateColumns + `
		FROM hourly_rates
		WHERE employee_id = $1
		ORDER BY effective_date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query hourly rates: %w", err)
	}
	defer rows.Close()

	var rates []rate.HourlyRate
	for rows.Next() {
		hr, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hourly rate: %w", err)
		}
		rates = append(rates, hr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hourly rates: %w", err)
	}
	return rates, nil
}

// ActivateRate implements rate.RateRepository. Expiring the previously
// active rate and activating the new one happen in one transaction so
// an employee never has two active rates.
func (r *rateRepository) ActivateRate(ctx context.Context, id string) (rate.HourlyRate, error) {
	var activated rate.HourlyRate

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		existing, err := scanRate(tx.QueryRow(ctx,
			`SELECT `+rateColumns+` FROM hourly_rates WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return rate.ErrRateNotFound
			}
			return fmt.Errorf("failed to lock hourly rate: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE hourly_rates SET status = 'expired', updated_at = NOW()
			 WHERE employee_id = $1 AND status = 'active'`, existing.EmployeeID); err != nil {
			return fmt.Errorf("failed to expire previous rate: %w", err)
		}

		activated, err = scanRate(tx.QueryRow(ctx,
			`UPDATE hourly_rates SET status = 'active', updated_at = NOW()
			 WHERE id = $1
			 RETURNING `+rateColumns, id))
		if err != nil {
			return fmt.Errorf("failed to activate hourly rate: %w", err)
		}
		return nil
	})
	if err != nil {
		return rate.HourlyRate{}, err
	}
	return activated, nil
}

// ListMultipliers implements rate.RateRepository.
func (r *rateRepository) ListMultipliers(ctx context.Context) ([]rate.OvertimeMultiplier, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+multiplierColumns+` FROM overtime_multipliers ORDER BY value ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtime multipliers: %w", err)
	}
	defer rows.Close()

	var multipliers []rate.OvertimeMultiplier
	for rows.Next() {
		m, err := scanMultiplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime multiplier: %w", err)
		}
		multipliers = append(multipliers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overtime multipliers: %w", err)
	}
	return multipliers, nil
}

// SetDefaultMultiplier implements rate.RateRepository. Clearing the old
// default and setting the new one happen in one transaction so exactly
// one default exists at any time.
func (r *rateRepository) SetDefaultMultiplier(ctx context.Context, id string) (rate.OvertimeMultiplier, error) {
	var updated rate.OvertimeMultiplier

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE overtime_multipliers SET is_default = FALSE, updated_at = NOW()
			 WHERE is_default = TRUE`); err != nil {
			return fmt.Errorf("failed to clear default multiplier: %w", err)
		}

		var err error
		updated, err = scanMultiplier(tx.QueryRow(ctx,
			`UPDATE overtime_multipliers SET is_default = TRUE, updated_at = NOW()
			 WHERE id = $1
			 RETURNING `+multiplierColumns, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return rate.ErrMultiplierNotFound
			}
			return fmt.Errorf("failed to set default multiplier: %w", err)
		}
		return nil
	})
	if err != nil {
		return rate.OvertimeMultiplier{}, err
	}
	return updated, nil
}

// GetDefaultMultiplier implements rate.RateRepository.
func (r *rateRepository) GetDefaultMultiplier(ctx context.Context) (rate.OvertimeMultiplier, error) {
	q := GetQuerier(ctx, r.db)

	m, err := scanMultiplier(q.QueryRow(ctx,
		`SELECT `+multiplierColumns+` FROM overtime_multipliers WHERE is_default = TRUE LIMIT 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rate.OvertimeMultiplier{}, rate.ErrMultiplierNotFound
		}
		return rate.OvertimeMultiplier{}, fmt.Errorf("failed to get default multiplier: %w", err)
	}
	return m, nil
}

// GetSettings implements rate.RateRepository.
func (r *rateRepository) GetSettings(ctx context.Context) (rate.Settings, error) {
	q := GetQuerier(ctx, r.db)

	var s rate.Settings
	err := q.QueryRow(ctx,
		`SELECT standard_monthly_hours, currency_code, updated_at FROM payroll_settings LIMIT 1`).
		Scan(&s.StandardMonthlyHours, &s.CurrencyCode, &s.UpdatedAt)
	if err != nil {
		return rate.Settings{}, fmt.Errorf("failed to get payroll settings: %w", err)
	}
	return s, nil
}

// UpdateStandardHours implements rate.RateRepository.
func (r *rateRepository) UpdateStandardHours(ctx context.Context, hours int) (rate.Settings, error) {
	q := GetQuerier(ctx, r.db)

	var s rate.Settings
	err := q.QueryRow(ctx,
		`UPDATE payroll_settings SET standard_monthly_hours = $1, updated_at = NOW()
		 RETURNING standard_monthly_hours, currency_code, updated_at`, hours).
		Scan(&s.StandardMonthlyHours, &s.CurrencyCode, &s.UpdatedAt)
	if err != nil {
		return rate.Settings{}, fmt.Errorf("failed to update standard hours: %w", err)
	}
	return s, nil
}
