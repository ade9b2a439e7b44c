package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mawarid-ops/manpower-backend-go/internal/domain/attendance"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/report"
	"github.com/mawarid-ops/manpower-backend-go/internal/pkg/money"
)

func testFormatter(t *testing.T) money.Formatter {
	t.Helper()
	m, err := money.NewFormatter("SAR", "en")
	require.NoError(t, err)
	return m
}

func testAggregate(t *testing.T) *report.Aggregate {
	t.Helper()
	records := []attendance.Record{
		{EmployeeID: "emp-1", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8, OvertimeHours: 2},
		{EmployeeID: "emp-2", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8},
		{EmployeeID: "emp-3", ProjectID: "proj-2", Date: day("2026-03-03"), HoursWorked: 9, OvertimeHours: 1},
	}
	agg, err := BuildAggregate(records, testEmployees(), testProjects(), AggregateOptions{
		Range: report.DateRange{Start: day("2026-03-01"), End: day("2026-03-07")},
	})
	require.NoError(t, err)
	return agg
}

func TestCompileReport_DeterministicOutput(t *testing.T) {
	agg := testAggregate(t)
	opts := CompileOptions{
		Kind:        report.KindWeekly,
		Format:      report.FormatDetailed,
		GeneratedAt: time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC),
		Money:       testFormatter(t),
	}

	first := CompileReport(agg, opts)
	second := CompileReport(agg, opts)

	assert.Equal(t, first.Filename, second.Filename)
	assert.Equal(t, first.Content, second.Content)
}

func TestCompileReport_Filename(t *testing.T) {
	agg := testAggregate(t)
	doc := CompileReport(agg, CompileOptions{
		Kind:        report.KindWeekly,
		GeneratedAt: time.Now(),
		Money:       testFormatter(t),
	})

	assert.Equal(t, "weekly_attendance_report_2026-03-01_2026-03-07.txt", doc.Filename)
}

func TestCompileReport_DetailedIncludesGroupTable(t *testing.T) {
	agg := testAggregate(t)
	doc := CompileReport(agg, CompileOptions{
		Kind:        report.KindWeekly,
		Format:      report.FormatDetailed,
		GeneratedAt: time.Now(),
		Money:       testFormatter(t),
	})

	assert.Contains(t, doc.Content, "EXECUTIVE SUMMARY")
	assert.Contains(t, doc.Content, "Period       : 2026-03-01 to 2026-03-07 (7 days)")
	assert.Contains(t, doc.Content, "BREAKDOWN BY EMPLOYEE")
	assert.Contains(t, doc.Content, "Ahmed Hassan")
	assert.Contains(t, doc.Content, "INSIGHTS")
	assert.NotContains(t, doc.Content, "FINANCIAL BREAKDOWN")
}

func TestCompileReport_SummaryOmitsGroupTable(t *testing.T) {
	agg := testAggregate(t)
	doc := CompileReport(agg, CompileOptions{
		Kind:        report.KindWeekly,
		Format:      report.FormatSummary,
		GeneratedAt: time.Now(),
		Money:       testFormatter(t),
	})

	assert.Contains(t, doc.Content, "EXECUTIVE SUMMARY")
	assert.NotContains(t, doc.Content, "BREAKDOWN BY")
	assert.NotContains(t, doc.Content, "Ahmed Hassan")
}

func TestCompileReport_FinancialAddsBreakdown(t *testing.T) {
	agg := testAggregate(t)
	doc := CompileReport(agg, CompileOptions{
		Kind:        report.KindWeekly,
		Format:      report.FormatFinancial,
		GeneratedAt: time.Now(),
		Money:       testFormatter(t),
	})

	assert.Contains(t, doc.Content, "FINANCIAL BREAKDOWN")
	assert.Contains(t, doc.Content, "Return on cost")
	// 666 cost and 1063.50 revenue over three man-days, whole riyals.
	assert.Contains(t, doc.Content, "Avg cost/man-day   : SAR 222")
	assert.Contains(t, doc.Content, "Avg revenue/man-day: SAR 355")
	assert.Contains(t, doc.Content, "BREAKDOWN BY EMPLOYEE")
}

func TestCompileReport_SingleDayListsAbsentees(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: "emp-1", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8},
	}
	agg, err := BuildAggregate(records, testEmployees(), testProjects(), AggregateOptions{
		Range: report.DateRange{Start: day("2026-03-02"), End: day("2026-03-02")},
	})
	require.NoError(t, err)

	doc := CompileReport(agg, CompileOptions{
		Kind:        report.KindDaily,
		GeneratedAt: time.Now(),
		Money:       testFormatter(t),
	})

	assert.Contains(t, doc.Content, "ABSENTEES (2)")
	assert.Contains(t, doc.Content, "Babu Raj")
	assert.Contains(t, doc.Content, "Carlos Reyes")
}

func TestCompileReport_MultiDayOmitsAbsentees(t *testing.T) {
	agg := testAggregate(t)
	doc := CompileReport(agg, CompileOptions{
		Kind:        report.KindWeekly,
		GeneratedAt: time.Now(),
		Money:       testFormatter(t),
	})

	assert.NotContains(t, doc.Content, "ABSENTEES")
}

func TestCompileReport_OptionalSections(t *testing.T) {
	agg := testAggregate(t)

	plain := CompileReport(agg, CompileOptions{
		Kind:        report.KindWeekly,
		GeneratedAt: time.Now(),
		Money:       testFormatter(t),
	})
	assert.NotContains(t, plain.Content, "HOURS DISTRIBUTION")
	assert.NotContains(t, plain.Content, "SIGNATURES")

	full := CompileReport(agg, CompileOptions{
		Kind:              report.KindWeekly,
		IncludeCharts:     true,
		IncludeSignatures: true,
		GeneratedAt:       time.Now(),
		Money:             testFormatter(t),
	})
	assert.Contains(t, full.Content, "HOURS DISTRIBUTION")
	assert.Contains(t, full.Content, "#")
	assert.Contains(t, full.Content, "SIGNATURES")
	assert.Contains(t, full.Content, "Prepared by")
}

func TestCompileReport_EmptyAggregate(t *testing.T) {
	agg, err := BuildAggregate(nil, nil, nil, AggregateOptions{
		Range: report.DateRange{Start: day("2026-03-01"), End: day("2026-03-31")},
	})
	require.NoError(t, err)

	doc := CompileReport(agg, CompileOptions{
		Kind:        report.KindMonthly,
		GeneratedAt: time.Now(),
		Money:       testFormatter(t),
	})

	assert.Contains(t, doc.Content, "No attendance records in this period.")
	assert.Contains(t, doc.Content, "Present employees  : 0 of 0 expected")
	assert.Equal(t, "monthly_attendance_report_2026-03-01_2026-03-31.txt", doc.Filename)
}

func TestCompileReport_SkippedRecordsSurfaced(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: "emp-1", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8},
		{EmployeeID: "ghost", ProjectID: "proj-1", Date: day("2026-03-02"), HoursWorked: 8},
	}
	agg, err := BuildAggregate(records, testEmployees(), testProjects(), AggregateOptions{
		Range: report.DateRange{Start: day("2026-03-01"), End: day("2026-03-07")},
	})
	require.NoError(t, err)

	doc := CompileReport(agg, CompileOptions{
		Kind:        report.KindWeekly,
		GeneratedAt: time.Now(),
		Money:       testFormatter(t),
	})

	assert.Contains(t, doc.Content, "Skipped records    : 1")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := renderTable(
		[]string{"name", "hours"},
		[][]string{
			{"Ahmed", "8.0"},
			{"B", "176.0"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	// Header, separator, then rows, all the same width.
	assert.Equal(t, len(lines[0]), len(lines[2]))
	assert.Equal(t, len(lines[0]), len(lines[3]))
	assert.True(t, strings.HasPrefix(lines[2], "  Ahmed"))
	assert.True(t, strings.HasSuffix(lines[3], "176.0"))
}
