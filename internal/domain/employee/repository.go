package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// Create creates a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves all employees
	List(ctx context.Context) ([]Employee, error)

	// ListActive retrieves employees with active status
	ListActive(ctx context.Context) ([]Employee, error)

	// UpdateStatus changes an employee's status
	UpdateStatus(ctx context.Context, id string, status Status) error
}
