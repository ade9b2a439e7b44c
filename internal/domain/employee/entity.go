package employee

import (
	"time"
)

type Employee struct {
	ID          string
	FullName    string
	Trade       string
	Nationality string
	// CostRate is the hourly amount paid to the employee, BillRate the
	// hourly amount charged to the client. CostRate > BillRate is a
	// valid (loss-making) state and is never rejected here.
	CostRate  float64
	BillRate  float64
	ProjectID *string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on_leave"
)

// AssignedTo reports whether the employee is assigned to the given project.
func (e Employee) AssignedTo(projectID string) bool {
	return e.ProjectID != nil && *e.ProjectID == projectID
}
