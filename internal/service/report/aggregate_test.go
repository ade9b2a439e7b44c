package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mawarid-ops/manpower-backend-go/internal/domain/attendance"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/employee"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/project"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/report"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

func testEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "emp-1", FullName: "Ahmed Hassan", Trade: "Electrician", Nationality: "Egyptian",
			CostRate: 25, BillRate: 40, ProjectID: strPtr("proj-1"), Status: employee.StatusActive},
		{ID: "emp-2", FullName: "Babu Raj", Trade: "Plumber", Nationality: "Indian",
			CostRate: 20, BillRate: 32, ProjectID: strPtr("proj-1"), Status: employee.StatusActive},
		{ID: "emp-3", FullName: "Carlos Reyes", Trade: "Electrician", Nationality: "Filipino",
			CostRate: 22, BillRate: 35, ProjectID: strPtr("proj-2"), Status: employee.StatusActive},
		{ID: "emp-4", FullName: "Dinesh Kumar", Trade: "Mason", Nationality: "Indian",
			CostRate: 18, BillRate: 28, ProjectID: nil, Status: employee.StatusInactive},
	}
}

func testProjects() []project.Project {
	return []project.Project{
		{ID: "proj-1", Name: "Tower Site A"},
		{ID: "proj-2", Name: "Mall Renovation"},
	}
}

func TestBuildAggregate_SingleDayTotals(t *testing.T) {
	records := []attendance.Record{
		{ID: "r1", EmployeeID: "emp-1", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8, OvertimeHours: 2},
		{ID: "r2", EmployeeID: "emp-2", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8, OvertimeHours: 0},
	}

	agg, err := BuildAggregate(records, testEmployees(), testProjects(), AggregateOptions{
		Range: report.DateRange{Start: day("2026-03-02"), End: day("2026-03-02")},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, agg.PresentEmployees)
	assert.Equal(t, 3, agg.ExpectedEmployees) // actives only
	assert.Equal(t, 2, agg.AttendanceDays)
	assert.InDelta(t, 16, agg.RegularHours, 1e-9)
	assert.InDelta(t, 2, agg.OvertimeHours, 1e-9)
	assert.InDelta(t, 18, agg.TotalHours, 1e-9)

	// emp-1: 8*25 + 2*25*1.5 = 275 cost, 8*40 + 2*40*1.5 = 440 revenue
	// emp-2: 8*20 = 160 cost, 8*32 = 256 revenue
	assert.InDelta(t, 435, agg.TotalCost, 1e-9)
	assert.InDelta(t, 696, agg.TotalRevenue, 1e-9)
	assert.InDelta(t, 261, agg.Profit, 1e-9)
	assert.InDelta(t, agg.TotalRevenue-agg.TotalCost, agg.Profit, 1e-9)

	assert.InDelta(t, 2.0/3.0*100, agg.AttendanceRate, 0.01)
	assert.InDelta(t, 2.0/18.0*100, agg.OvertimePercentage, 0.01)
}

func TestBuildAggregate_GroupTotalsMatchOverallTotals(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: "emp-1", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8, OvertimeHours: 1},
		{EmployeeID: "emp-2", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 7, OvertimeHours: 0},
		{EmployeeID: "emp-3", ProjectID: "proj-2", Date: day("2026-03-03"), HoursWorked: 9, OvertimeHours: 3},
		{EmployeeID: "emp-1", ProjectID: "proj-1", Date: day("2026-03-03"), HoursWorked: 8, OvertimeHours: 0},
	}

	for _, groupBy := range []report.GroupBy{
		report.GroupByEmployee, report.GroupByProject, report.GroupByTrade, report.GroupByNationality,
	} {
		agg, err := BuildAggregate(records, testEmployees(), testProjects(), AggregateOptions{
			Range:   report.DateRange{Start: day("2026-03-01"), End: day("2026-03-07")},
			GroupBy: groupBy,
		})
		require.NoError(t, err)

		var cost, revenue, profit, regular, overtime float64
		var days int
		for _, g := range agg.Groups {
			cost += g.TotalCost
			revenue += g.TotalRevenue
			profit += g.Profit
			regular += g.RegularHours
			overtime += g.OvertimeHours
			days += g.AttendanceDays
		}
		assert.InDelta(t, agg.TotalCost, cost, 1e-9, "group by %s", groupBy)
		assert.InDelta(t, agg.TotalRevenue, revenue, 1e-9, "group by %s", groupBy)
		assert.InDelta(t, agg.Profit, profit, 1e-9, "group by %s", groupBy)
		assert.InDelta(t, agg.RegularHours, regular, 1e-9, "group by %s", groupBy)
		assert.InDelta(t, agg.OvertimeHours, overtime, 1e-9, "group by %s", groupBy)
		assert.Equal(t, agg.AttendanceDays, days, "group by %s", groupBy)
	}
}

func TestBuildAggregate_GroupsSortedByKey(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: "emp-3", ProjectID: "proj-2", Date: day("2026-03-02"), HoursWorked: 8},
		{EmployeeID: "emp-1", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8},
		{EmployeeID: "emp-2", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8},
	}

	agg, err := BuildAggregate(records, testEmployees(), testProjects(), AggregateOptions{
		Range: report.DateRange{Start: day("2026-03-02"), End: day("2026-03-02")},
	})
	require.NoError(t, err)

	require.Len(t, agg.Groups, 3)
	assert.Equal(t, "Ahmed Hassan", agg.Groups[0].Key)
	assert.Equal(t, "Babu Raj", agg.Groups[1].Key)
	assert.Equal(t, "Carlos Reyes", agg.Groups[2].Key)
}

func TestBuildAggregate_ProjectFilter(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: "emp-1", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8},
		{EmployeeID: "emp-3", ProjectID: "proj-2", Date: day("2026-03-02"), HoursWorked: 8},
	}

	agg, err := BuildAggregate(records, testEmployees(), testProjects(), AggregateOptions{
		Range:         report.DateRange{Start: day("2026-03-02"), End: day("2026-03-02")},
		ProjectFilter: "proj-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Tower Site A", agg.ProjectName)
	assert.Equal(t, 1, agg.PresentEmployees)
	// emp-1 and emp-2 are assigned to proj-1 and active
	assert.Equal(t, 2, agg.ExpectedEmployees)
	assert.InDelta(t, 8, agg.RegularHours, 1e-9)
}

func TestBuildAggregate_UnresolvedEmployeeSkipped(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: "emp-1", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8},
		{EmployeeID: "ghost", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8},
	}

	agg, err := BuildAggregate(records, testEmployees(), testProjects(), AggregateOptions{
		Range: report.DateRange{Start: day("2026-03-02"), End: day("2026-03-02")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, agg.SkippedRecords)
	assert.Equal(t, 1, agg.PresentEmployees)
	assert.InDelta(t, 8, agg.RegularHours, 1e-9)
}

func TestBuildAggregate_RecordsOutsideRangeIgnored(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: "emp-1", ProjectID: "proj-1", Date: day("2026-03-01"), HoursWorked: 8},
		{EmployeeID: "emp-1", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8},
		{EmployeeID: "emp-1", ProjectID: "proj-1", Date: day("2026-03-09"), HoursWorked: 8},
	}

	agg, err := BuildAggregate(records, testEmployees(), testProjects(), AggregateOptions{
		Range: report.DateRange{Start: day("2026-03-02"), End: day("2026-03-08")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, agg.AttendanceDays)
	assert.Equal(t, 0, agg.SkippedRecords)
}

func TestBuildAggregate_InvalidRange(t *testing.T) {
	_, err := BuildAggregate(nil, nil, nil, AggregateOptions{
		Range: report.DateRange{Start: day("2026-03-05"), End: day("2026-03-01")},
	})
	assert.ErrorIs(t, err, report.ErrInvalidDateRange)
}

func TestBuildAggregate_EmptyInputs(t *testing.T) {
	agg, err := BuildAggregate(nil, nil, nil, AggregateOptions{
		Range: report.DateRange{Start: day("2026-03-01"), End: day("2026-03-31")},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, agg.PresentEmployees)
	assert.Equal(t, 0, agg.ExpectedEmployees)
	assert.Equal(t, 0.0, agg.AttendanceRate)
	assert.Equal(t, 0.0, agg.ProfitMargin)
	assert.Equal(t, 0.0, agg.OvertimePercentage)
	assert.Equal(t, 0.0, agg.ProductivityIndex)
	assert.Empty(t, agg.Groups)
}

func TestBuildAggregate_AbsenteesSingleDayOnly(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: "emp-1", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8},
	}

	single, err := BuildAggregate(records, testEmployees(), testProjects(), AggregateOptions{
		Range: report.DateRange{Start: day("2026-03-02"), End: day("2026-03-02")},
	})
	require.NoError(t, err)

	// emp-2 and emp-3 are active with no record; emp-4 is inactive and
	// therefore neither present nor absent.
	require.Len(t, single.Absentees, 2)
	assert.Equal(t, "Babu Raj", single.Absentees[0].FullName)
	assert.Equal(t, "Tower Site A", single.Absentees[0].ProjectName)
	assert.Equal(t, "Carlos Reyes", single.Absentees[1].FullName)

	// Every active employee is either present or absent, never both.
	assert.Equal(t, single.ExpectedEmployees, single.PresentEmployees+len(single.Absentees))

	multi, err := BuildAggregate(records, testEmployees(), testProjects(), AggregateOptions{
		Range: report.DateRange{Start: day("2026-03-02"), End: day("2026-03-03")},
	})
	require.NoError(t, err)
	assert.Empty(t, multi.Absentees)
}

func TestBuildAggregate_InactiveEmployeeRecordsKeepRateBounded(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", FullName: "Ahmed Hassan", Trade: "Electrician", Nationality: "Egyptian",
			CostRate: 25, BillRate: 40, ProjectID: strPtr("proj-1"), Status: employee.StatusActive},
		{ID: "emp-9", FullName: "Zaid Omar", Trade: "Mason", Nationality: "Jordanian",
			CostRate: 20, BillRate: 30, ProjectID: strPtr("proj-1"), Status: employee.StatusInactive},
	}
	// emp-9 left the company; the records from before termination are
	// immutable and still land in the window.
	records := []attendance.Record{
		{EmployeeID: "emp-1", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8},
		{EmployeeID: "emp-9", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8},
	}

	agg, err := BuildAggregate(records, employees, testProjects(), AggregateOptions{
		Range: report.DateRange{Start: day("2026-03-02"), End: day("2026-03-02")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, agg.ExpectedEmployees)
	assert.Equal(t, 1, agg.PresentEmployees)
	assert.LessOrEqual(t, agg.PresentEmployees, agg.ExpectedEmployees)
	assert.InDelta(t, 100, agg.AttendanceRate, 1e-9)
	assert.Empty(t, agg.Absentees)
	assert.Equal(t, agg.ExpectedEmployees, agg.PresentEmployees+len(agg.Absentees))

	// The terminated employee's hours and money still count.
	assert.InDelta(t, 16, agg.RegularHours, 1e-9)
	assert.InDelta(t, 8*25+8*20, agg.TotalCost, 1e-9)
	assert.Equal(t, 2, agg.AttendanceDays)
}

func TestBuildAggregate_ProjectFilterFollowsEmployeeAssignment(t *testing.T) {
	// emp-1 is assigned to proj-1 but was loaned out for the day; the
	// record carries proj-2. emp-3 is assigned to proj-2 but the record
	// was mislabeled proj-1.
	records := []attendance.Record{
		{EmployeeID: "emp-1", ProjectID: "proj-2", Date: day("2026-03-02"), HoursWorked: 8},
		{EmployeeID: "emp-3", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 9},
	}

	agg, err := BuildAggregate(records, testEmployees(), testProjects(), AggregateOptions{
		Range:         report.DateRange{Start: day("2026-03-02"), End: day("2026-03-02")},
		ProjectFilter: "proj-1",
	})
	require.NoError(t, err)

	// Scope follows the employee's assignment: emp-1 is in, emp-3 out.
	assert.Equal(t, 1, agg.PresentEmployees)
	assert.Equal(t, 2, agg.ExpectedEmployees)
	assert.InDelta(t, 8, agg.RegularHours, 1e-9)
	require.Len(t, agg.Absentees, 1)
	assert.Equal(t, "Babu Raj", agg.Absentees[0].FullName)
	assert.Equal(t, agg.ExpectedEmployees, agg.PresentEmployees+len(agg.Absentees))
}

func TestBuildAggregate_CustomMultiplier(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: "emp-1", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8, OvertimeHours: 2},
	}

	agg, err := BuildAggregate(records, testEmployees(), testProjects(), AggregateOptions{
		Range:              report.DateRange{Start: day("2026-03-02"), End: day("2026-03-02")},
		OvertimeMultiplier: 2.0,
	})
	require.NoError(t, err)

	// 8*25 + 2*25*2.0 = 300
	assert.InDelta(t, 300, agg.TotalCost, 1e-9)
}
