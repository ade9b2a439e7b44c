package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/mawarid-ops/manpower-backend-go/internal/domain/attendance"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/employee"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/project"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	projectRepo    project.ProjectRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	projectRepo project.ProjectRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		projectRepo:    projectRepo,
	}
}

// CreateRecord implements attendance.AttendanceService. One record per
// employee per date; the repository rejects duplicates.
func (s *AttendanceServiceImpl) CreateRecord(ctx context.Context, req attendance.CreateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to resolve project: %w", err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.attendanceRepo.Create(ctx, attendance.Record{
		EmployeeID:        req.EmployeeID,
		ProjectID:         req.ProjectID,
		Date:              date,
		HoursWorked:       req.HoursWorked,
		OvertimeHours:     req.OvertimeHours,
		BreakMinutes:      req.BreakMinutes,
		LateMinutes:       req.LateMinutes,
		EarlyLeaveMinutes: req.EarlyLeaveMinutes,
		Location:          req.Location,
		Notes:             req.Notes,
	})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	resp := mapRecordToResponse(created)
	resp.EmployeeName = emp.FullName
	return resp, nil
}

// ListRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, req attendance.ListRecordsRequest) ([]attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	records, err := s.attendanceRepo.ListByDateRange(ctx, start, end, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses, nil
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:                rec.ID,
		EmployeeID:        rec.EmployeeID,
		ProjectID:         rec.ProjectID,
		Date:              rec.Date.Format("2006-01-02"),
		HoursWorked:       rec.HoursWorked,
		OvertimeHours:     rec.OvertimeHours,
		BreakMinutes:      rec.BreakMinutes,
		LateMinutes:       rec.LateMinutes,
		EarlyLeaveMinutes: rec.EarlyLeaveMinutes,
		Location:          rec.Location,
		Notes:             rec.Notes,
		CreatedAt:         rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
