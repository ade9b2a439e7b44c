package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record. Returns ErrDuplicateRecord
	// when a record already exists for the same employee and date.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByID retrieves an attendance record by ID
	GetByID(ctx context.Context, id string) (Record, error)

	// ListByDateRange retrieves records whose date falls within
	// [start, end] inclusive. projectID narrows to one project when
	// non-empty.
	ListByDateRange(ctx context.Context, start, end time.Time, projectID string) ([]Record, error)

	// ListByEmployee retrieves all records for one employee
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
}
