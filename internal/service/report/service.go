package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mawarid-ops/manpower-backend-go/internal/domain/attendance"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/employee"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/project"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/rate"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/report"
	"github.com/mawarid-ops/manpower-backend-go/internal/pkg/money"
	"github.com/mawarid-ops/manpower-backend-go/internal/service/payroll"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	projectRepo    project.ProjectRepository
	rateRepo       rate.RateRepository
	money          money.Formatter
	now            func() time.Time
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	projectRepo project.ProjectRepository,
	rateRepo rate.RateRepository,
	moneyFormatter money.Formatter,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		projectRepo:    projectRepo,
		rateRepo:       rateRepo,
		money:          moneyFormatter,
		now:            time.Now,
	}
}

// GenerateAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, req report.GenerateReportRequest) (report.GenerateReportResult, error) {
	if err := req.Validate(); err != nil {
		return report.GenerateReportResult{}, err
	}

	kind := report.Kind(req.Kind)
	dateRange, err := normalizePeriod(kind, req.StartDate, req.EndDate)
	if err != nil {
		return report.GenerateReportResult{}, err
	}

	projectFilter := req.ProjectFilter
	if projectFilter == "" {
		projectFilter = report.ProjectFilterAll
	}

	snapshot, err := s.fetchSnapshot(ctx, dateRange)
	if err != nil {
		return report.GenerateReportResult{}, err
	}

	agg, err := BuildAggregate(snapshot.records, snapshot.employees, snapshot.projects, AggregateOptions{
		Range:              dateRange,
		ProjectFilter:      projectFilter,
		GroupBy:            report.GroupBy(req.GroupBy),
		OvertimeMultiplier: snapshot.multiplier,
	})
	if err != nil {
		return report.GenerateReportResult{}, err
	}

	generatedAt := s.now()
	doc := CompileReport(agg, CompileOptions{
		Kind:              kind,
		Format:            report.Format(req.Format),
		IncludeCharts:     req.IncludeCharts,
		IncludeSignatures: req.IncludeSignatures,
		GeneratedAt:       generatedAt,
		Money:             s.money,
	})

	return report.GenerateReportResult{
		Filename:    doc.Filename,
		Content:     doc.Content,
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		Aggregate:   *agg,
		Insights:    EvaluateInsights(agg),
	}, nil
}

type snapshot struct {
	records    []attendance.Record
	employees  []employee.Employee
	projects   []project.Project
	multiplier float64
}

// fetchSnapshot loads the immutable inputs of one report request in
// parallel. Each request gets its own snapshot; nothing is cached
// between requests.
func (s *ReportServiceImpl) fetchSnapshot(ctx context.Context, dateRange report.DateRange) (snapshot, error) {
	var snap snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// The project filter is applied against the employee's
		// assignment during aggregation, so the fetch stays unscoped.
		records, err := s.attendanceRepo.ListByDateRange(gctx, dateRange.Start, dateRange.End, "")
		if err != nil {
			return fmt.Errorf("failed to list attendance records: %w", err)
		}
		snap.records = records
		return nil
	})
	g.Go(func() error {
		employees, err := s.employeeRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		snap.employees = employees
		return nil
	})
	g.Go(func() error {
		projects, err := s.projectRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}
		snap.projects = projects
		return nil
	})
	g.Go(func() error {
		multiplier, err := s.rateRepo.GetDefaultMultiplier(gctx)
		if err != nil {
			if errors.Is(err, rate.ErrMultiplierNotFound) {
				snap.multiplier = payroll.DefaultOvertimeMultiplier
				return nil
			}
			return fmt.Errorf("failed to get default overtime multiplier: %w", err)
		}
		snap.multiplier = multiplier.Value
		return nil
	})

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// normalizePeriod derives the inclusive reporting window from the
// report kind: daily covers the start date alone, weekly the seven days
// from the start date, monthly the start date's calendar month, custom
// exactly what was requested.
func normalizePeriod(kind report.Kind, startDate, endDate string) (report.DateRange, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return report.DateRange{}, report.ErrInvalidDateRange
	}

	switch kind {
	case report.KindDaily:
		return report.DateRange{Start: start, End: start}, nil
	case report.KindWeekly:
		return report.DateRange{Start: start, End: start.AddDate(0, 0, 6)}, nil
	case report.KindMonthly:
		first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
		return report.DateRange{Start: first, End: first.AddDate(0, 1, -1)}, nil
	case report.KindCustom:
		end, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return report.DateRange{}, report.ErrInvalidDateRange
		}
		if end.Before(start) {
			return report.DateRange{}, report.ErrInvalidDateRange
		}
		return report.DateRange{Start: start, End: end}, nil
	default:
		return report.DateRange{}, report.ErrInvalidKind
	}
}
