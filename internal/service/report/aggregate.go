package report

import (
	"sort"
	"time"

	"github.com/mawarid-ops/manpower-backend-go/internal/domain/attendance"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/employee"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/project"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/report"
	"github.com/mawarid-ops/manpower-backend-go/internal/service/payroll"
)

// AggregateOptions narrows and shapes one aggregation pass.
type AggregateOptions struct {
	Range         report.DateRange
	ProjectFilter string // report.ProjectFilterAll or a project id
	GroupBy       report.GroupBy
	// OvertimeMultiplier <= 0 falls back to the statutory default.
	OvertimeMultiplier float64
}

// groupAccumulator carries running sums for one group during the single
// linear pass over the records.
type groupAccumulator struct {
	employees      map[string]struct{}
	attendanceDays int
	regularHours   float64
	overtimeHours  float64
	totalCost      float64
	totalRevenue   float64
	profit         float64
}

// BuildAggregate folds the attendance snapshot into grouped and
// whole-report metrics in one pass. Records whose employee cannot be
// resolved are skipped and counted, never fatal. The project filter
// scopes by the employee's assignment, not the project written on the
// record. Presence is counted within the expected set (active, in
// scope), so records left behind by since-terminated employees still
// contribute hours and money but never push the attendance rate above
// 100%. The only error is a malformed period: end before start fails
// fast with report.ErrInvalidDateRange.
func BuildAggregate(
	records []attendance.Record,
	employees []employee.Employee,
	projects []project.Project,
	opts AggregateOptions,
) (*report.Aggregate, error) {
	start := truncateToDay(opts.Range.Start)
	end := truncateToDay(opts.Range.End)
	if end.Before(start) {
		return nil, report.ErrInvalidDateRange
	}

	groupBy := opts.GroupBy
	if groupBy == "" {
		groupBy = report.GroupByEmployee
	}
	projectFilter := opts.ProjectFilter
	if projectFilter == "" {
		projectFilter = report.ProjectFilterAll
	}
	multiplier := opts.OvertimeMultiplier
	if multiplier <= 0 {
		multiplier = payroll.DefaultOvertimeMultiplier
	}

	employeeByID := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		employeeByID[emp.ID] = emp
	}
	projectNameByID := make(map[string]string, len(projects))
	for _, p := range projects {
		projectNameByID[p.ID] = p.Name
	}

	agg := &report.Aggregate{
		Range:         report.DateRange{Start: start, End: end},
		StartDate:     start.Format("2006-01-02"),
		EndDate:       end.Format("2006-01-02"),
		ProjectFilter: projectFilter,
		GroupBy:       groupBy,
		Groups:        []report.GroupMetrics{},
	}
	if projectFilter != report.ProjectFilterAll {
		agg.ProjectName = projectNameByID[projectFilter]
	}

	expected := expectedEmployees(employees, projectFilter)
	expectedSet := make(map[string]struct{}, len(expected))
	for _, emp := range expected {
		expectedSet[emp.ID] = struct{}{}
	}

	groups := make(map[string]*groupAccumulator)
	present := make(map[string]struct{})

	for _, rec := range records {
		date := truncateToDay(rec.Date)
		if date.Before(start) || date.After(end) {
			continue
		}

		emp, ok := employeeByID[rec.EmployeeID]
		if !ok {
			// Bad reference: skip the record, keep the batch.
			agg.SkippedRecords++
			continue
		}
		if projectFilter != report.ProjectFilterAll && !emp.AssignedTo(projectFilter) {
			continue
		}

		fin := payroll.Calculate(rec.HoursWorked, rec.OvertimeHours, emp.CostRate, emp.BillRate, multiplier)

		key := groupKey(groupBy, rec, emp, projectNameByID)
		acc, ok := groups[key]
		if !ok {
			acc = &groupAccumulator{employees: make(map[string]struct{})}
			groups[key] = acc
		}
		acc.employees[emp.ID] = struct{}{}
		acc.attendanceDays++
		acc.regularHours += rec.HoursWorked
		acc.overtimeHours += rec.OvertimeHours
		acc.totalCost += fin.TotalCost
		acc.totalRevenue += fin.TotalRevenue
		acc.profit += fin.Profit

		if _, ok := expectedSet[emp.ID]; ok {
			present[emp.ID] = struct{}{}
		}
		agg.AttendanceDays++
		agg.RegularHours += rec.HoursWorked
		agg.OvertimeHours += rec.OvertimeHours
		agg.TotalCost += fin.TotalCost
		agg.TotalRevenue += fin.TotalRevenue
		agg.Profit += fin.Profit
	}

	// Stable ordering: lexicographic on the group key so identical
	// inputs always produce identical report text.
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		acc := groups[key]
		agg.Groups = append(agg.Groups, report.GroupMetrics{
			Key:            key,
			EmployeeCount:  len(acc.employees),
			AttendanceDays: acc.attendanceDays,
			RegularHours:   acc.regularHours,
			OvertimeHours:  acc.overtimeHours,
			TotalCost:      acc.totalCost,
			TotalRevenue:   acc.totalRevenue,
			Profit:         acc.profit,
		})
	}

	agg.PresentEmployees = len(present)
	agg.ExpectedEmployees = len(expected)
	agg.TotalHours = agg.RegularHours + agg.OvertimeHours

	if agg.ExpectedEmployees > 0 {
		agg.AttendanceRate = float64(agg.PresentEmployees) / float64(agg.ExpectedEmployees) * 100
	}
	if agg.TotalHours > 0 {
		agg.OvertimePercentage = agg.OvertimeHours / agg.TotalHours * 100
		agg.ProductivityIndex = agg.TotalRevenue / agg.TotalHours
	}
	if agg.TotalRevenue != 0 {
		agg.ProfitMargin = agg.Profit / agg.TotalRevenue * 100
	}

	if agg.Range.SingleDay() {
		agg.Absentees = collectAbsentees(expected, present, projectNameByID)
	}

	return agg, nil
}

// groupKey resolves the grouping dimension for one record.
func groupKey(groupBy report.GroupBy, rec attendance.Record, emp employee.Employee, projectNames map[string]string) string {
	switch groupBy {
	case report.GroupByProject:
		if name, ok := projectNames[rec.ProjectID]; ok {
			return name
		}
		return "Unassigned"
	case report.GroupByTrade:
		return emp.Trade
	case report.GroupByNationality:
		return emp.Nationality
	default:
		return emp.FullName
	}
}

// expectedEmployees returns the active employees in scope for the
// project filter, i.e. the denominator of the attendance rate.
func expectedEmployees(employees []employee.Employee, projectFilter string) []employee.Employee {
	var expected []employee.Employee
	for _, emp := range employees {
		if emp.Status != employee.StatusActive {
			continue
		}
		if projectFilter != report.ProjectFilterAll && !emp.AssignedTo(projectFilter) {
			continue
		}
		expected = append(expected, emp)
	}
	return expected
}

// collectAbsentees lists expected employees with no record in the
// window, sorted by name then ID for deterministic output.
func collectAbsentees(expected []employee.Employee, present map[string]struct{}, projectNames map[string]string) []report.Absentee {
	var absentees []report.Absentee
	for _, emp := range expected {
		if _, ok := present[emp.ID]; ok {
			continue
		}
		projectName := ""
		if emp.ProjectID != nil {
			projectName = projectNames[*emp.ProjectID]
		}
		absentees = append(absentees, report.Absentee{
			EmployeeID:  emp.ID,
			FullName:    emp.FullName,
			Trade:       emp.Trade,
			ProjectName: projectName,
		})
	}
	sort.Slice(absentees, func(i, j int) bool {
		if absentees[i].FullName != absentees[j].FullName {
			return absentees[i].FullName < absentees[j].FullName
		}
		return absentees[i].EmployeeID < absentees[j].EmployeeID
	})
	return absentees
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
