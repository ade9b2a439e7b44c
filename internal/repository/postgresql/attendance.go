package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/attendance"
	"github.com/mawarid-ops/manpower-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const recordColumns = `id, employee_id, project_id, date, hours_worked, overtime_hours,
	break_minutes, late_minutes, early_leave_minutes, location, notes, created_at`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.ProjectID, &rec.Date,
		&rec.HoursWorked, &rec.OvertimeHours,
		&rec.BreakMinutes, &rec.LateMinutes, &rec.EarlyLeaveMinutes,
		&rec.Location, &rec.Notes, &rec.CreatedAt,
	)
	return rec, err
}

// Create implements attendance.AttendanceRepository. The unique index
// on (employee_id, date) backs the one-record-per-day invariant.
func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, project_id, date, hours_worked, overtime_hours,
			break_minutes, late_minutes, early_leave_minutes, location, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING ` + recordColumns

	created, err := scanRecord(q.QueryRow(ctx, query,
		uuid.NewString(),
		rec.EmployeeID,
		rec.ProjectID,
		rec.Date,
		rec.HoursWorked,
		rec.OvertimeHours,
		rec.BreakMinutes,
		rec.LateMinutes,
		rec.EarlyLeaveMinutes,
		rec.Location,
		rec.Notes,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM attendance_records WHERE id = $1`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return rec, nil
}

// ListByDateRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDateRange(ctx context.Context, start, end time.Time, projectID string) ([]attendance.Record, error) {
	query := `SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE date >= $1 AND date <= $2`
	args := []interface{}{start, end}

	if projectID != "" {
		query += ` AND project_id = $3`
		args = append(args, projectID)
	}
	query += ` ORDER BY date ASC, employee_id ASC`

	return r.list(ctx, query, args...)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	query := `SELECT ` + recordColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY date DESC`
	return r.list(ctx, query, employeeID)
}

func (r *attendanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}
	return records, nil
}
