package employee

import (
	"context"
	"fmt"

	"github.com/mawarid-ops/manpower-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	status := employee.Status(req.Status)
	if req.Status == "" {
		status = employee.StatusActive
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FullName:    req.FullName,
		Trade:       req.Trade,
		Nationality: req.Nationality,
		CostRate:    req.CostRate,
		BillRate:    req.BillRate,
		ProjectID:   req.ProjectID,
		Status:      status,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          emp.ID,
		FullName:    emp.FullName,
		Trade:       emp.Trade,
		Nationality: emp.Nationality,
		CostRate:    emp.CostRate,
		BillRate:    emp.BillRate,
		ProjectID:   emp.ProjectID,
		Status:      string(emp.Status),
		CreatedAt:   emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
