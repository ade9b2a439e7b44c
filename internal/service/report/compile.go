package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mawarid-ops/manpower-backend-go/internal/domain/report"
	"github.com/mawarid-ops/manpower-backend-go/internal/pkg/money"
)

const reportWidth = 72

// CompileOptions shapes one compilation. GeneratedAt is injected by the
// caller so identical inputs always compile to byte-identical text.
type CompileOptions struct {
	Kind              report.Kind
	Format            report.Format
	IncludeCharts     bool
	IncludeSignatures bool
	GeneratedAt       time.Time
	Money             money.Formatter
}

// CompileReport renders the aggregate into a plain-text document plus
// the suggested filename. It never fails: an empty aggregate compiles
// to a valid zero-total report.
func CompileReport(agg *report.Aggregate, opts CompileOptions) report.Document {
	format := opts.Format
	if format == "" {
		format = report.FormatDetailed
	}

	var b strings.Builder
	writeHeader(&b, agg, opts)
	writeSummary(&b, agg, opts.Money)

	if format != report.FormatSummary {
		writeGroupTable(&b, agg)
	}
	if format == report.FormatFinancial {
		writeFinancialBreakdown(&b, agg, opts.Money)
	}
	if agg.Range.SingleDay() {
		writeAbsentees(&b, agg)
	}
	writeInsights(&b, agg)
	if opts.IncludeCharts {
		writeHoursChart(&b, agg)
	}
	if opts.IncludeSignatures {
		writeSignatures(&b)
	}

	b.WriteString(strings.Repeat("=", reportWidth) + "\n")

	return report.Document{
		Filename: reportFilename(opts.Kind, agg),
		Content:  b.String(),
	}
}

// reportFilename builds "<kind>_attendance_report_<start>_<end>.txt".
func reportFilename(kind report.Kind, agg *report.Aggregate) string {
	if kind == "" {
		kind = report.KindCustom
	}
	return fmt.Sprintf("%s_attendance_report_%s_%s.txt", kind, agg.StartDate, agg.EndDate)
}

func writeHeader(b *strings.Builder, agg *report.Aggregate, opts CompileOptions) {
	kind := opts.Kind
	if kind == "" {
		kind = report.KindCustom
	}

	projectLabel := "All projects"
	if agg.ProjectFilter != report.ProjectFilterAll {
		if agg.ProjectName != "" {
			projectLabel = agg.ProjectName
		} else {
			projectLabel = agg.ProjectFilter
		}
	}

	b.WriteString(strings.Repeat("=", reportWidth) + "\n")
	b.WriteString(centerLine("MANPOWER ATTENDANCE & FINANCIAL REPORT") + "\n")
	b.WriteString(strings.Repeat("=", reportWidth) + "\n")
	fmt.Fprintf(b, "Report kind  : %s\n", strings.ToUpper(string(kind)))
	fmt.Fprintf(b, "Period       : %s to %s (%d days)\n", agg.StartDate, agg.EndDate, agg.Range.Days())
	fmt.Fprintf(b, "Project      : %s\n", projectLabel)
	fmt.Fprintf(b, "Grouped by   : %s\n", agg.GroupBy)
	fmt.Fprintf(b, "Generated at : %s\n", opts.GeneratedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	b.WriteString(strings.Repeat("-", reportWidth) + "\n\n")
}

func writeSummary(b *strings.Builder, agg *report.Aggregate, m money.Formatter) {
	b.WriteString("EXECUTIVE SUMMARY\n")
	fmt.Fprintf(b, "  Present employees  : %d of %d expected\n", agg.PresentEmployees, agg.ExpectedEmployees)
	fmt.Fprintf(b, "  Attendance rate    : %.1f%%\n", agg.AttendanceRate)
	fmt.Fprintf(b, "  Attendance days    : %d\n", agg.AttendanceDays)
	fmt.Fprintf(b, "  Regular hours      : %s\n", formatHours(agg.RegularHours))
	fmt.Fprintf(b, "  Overtime hours     : %s (%.1f%% of total)\n", formatHours(agg.OvertimeHours), agg.OvertimePercentage)
	fmt.Fprintf(b, "  Total cost         : %s\n", m.Format(agg.TotalCost))
	fmt.Fprintf(b, "  Total revenue      : %s\n", m.Format(agg.TotalRevenue))
	fmt.Fprintf(b, "  Profit             : %s (margin %.1f%%)\n", m.Format(agg.Profit), agg.ProfitMargin)
	fmt.Fprintf(b, "  Productivity       : %s per hour\n", m.Format(agg.ProductivityIndex))
	if agg.SkippedRecords > 0 {
		fmt.Fprintf(b, "  Skipped records    : %d (unresolved employee references)\n", agg.SkippedRecords)
	}
	b.WriteString("\n")
}

func writeGroupTable(b *strings.Builder, agg *report.Aggregate) {
	fmt.Fprintf(b, "BREAKDOWN BY %s\n", strings.ToUpper(string(agg.GroupBy)))
	if len(agg.Groups) == 0 {
		b.WriteString("  No attendance records in this period.\n\n")
		return
	}

	headers := []string{string(agg.GroupBy), "Emp", "Days", "Reg h", "OT h", "Cost", "Revenue", "Profit"}
	rows := make([][]string, 0, len(agg.Groups))
	for _, g := range agg.Groups {
		rows = append(rows, []string{
			g.Key,
			strconv.Itoa(g.EmployeeCount),
			strconv.Itoa(g.AttendanceDays),
			formatHours(g.RegularHours),
			formatHours(g.OvertimeHours),
			formatAmount(g.TotalCost),
			formatAmount(g.TotalRevenue),
			formatAmount(g.Profit),
		})
	}
	b.WriteString(renderTable(headers, rows))
	b.WriteString("\n")
}

func writeFinancialBreakdown(b *strings.Builder, agg *report.Aggregate, m money.Formatter) {
	b.WriteString("FINANCIAL BREAKDOWN\n")
	fmt.Fprintf(b, "  Labor cost         : %s\n", m.Format(agg.TotalCost))
	fmt.Fprintf(b, "  Client revenue     : %s\n", m.Format(agg.TotalRevenue))
	fmt.Fprintf(b, "  Gross profit       : %s\n", m.Format(agg.Profit))
	roi := 0.0
	if agg.TotalCost != 0 {
		roi = agg.Profit / agg.TotalCost * 100
	}
	fmt.Fprintf(b, "  Return on cost     : %.1f%%\n", roi)
	fmt.Fprintf(b, "  Effective rate     : %s per hour (cost basis)\n", m.Format(safeDivide(agg.TotalCost, agg.TotalHours)))
	// Per-man-day averages are rounded to whole riyals; the cents carry
	// no signal at that granularity.
	if agg.AttendanceDays > 0 {
		days := float64(agg.AttendanceDays)
		fmt.Fprintf(b, "  Avg cost/man-day   : %s\n", m.FormatWhole(agg.TotalCost/days))
		fmt.Fprintf(b, "  Avg revenue/man-day: %s\n", m.FormatWhole(agg.TotalRevenue/days))
	}
	b.WriteString("\n")
}

func writeAbsentees(b *strings.Builder, agg *report.Aggregate) {
	fmt.Fprintf(b, "ABSENTEES (%d)\n", len(agg.Absentees))
	if len(agg.Absentees) == 0 {
		b.WriteString("  None. Full attendance.\n\n")
		return
	}
	for _, a := range agg.Absentees {
		line := fmt.Sprintf("  - %s (%s)", a.FullName, a.Trade)
		if a.ProjectName != "" {
			line += " - " + a.ProjectName
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func writeInsights(b *strings.Builder, agg *report.Aggregate) {
	b.WriteString("INSIGHTS\n")
	for _, ins := range EvaluateInsights(agg) {
		tag := "GOOD   "
		if ins.Level == report.InsightWarning {
			tag = "WARNING"
		}
		fmt.Fprintf(b, "  [%s] %s\n", tag, ins.Text)
	}
	b.WriteString("\n")
}

// writeHoursChart renders a fixed-width ASCII bar per group showing its
// share of total hours.
func writeHoursChart(b *strings.Builder, agg *report.Aggregate) {
	b.WriteString("HOURS DISTRIBUTION\n")
	if agg.TotalHours <= 0 || len(agg.Groups) == 0 {
		b.WriteString("  No hours recorded.\n\n")
		return
	}

	keyWidth := 0
	for _, g := range agg.Groups {
		if len(g.Key) > keyWidth {
			keyWidth = len(g.Key)
		}
	}
	const barWidth = 30
	for _, g := range agg.Groups {
		share := (g.RegularHours + g.OvertimeHours) / agg.TotalHours
		filled := int(share*barWidth + 0.5)
		if filled > barWidth {
			filled = barWidth
		}
		bar := strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled)
		fmt.Fprintf(b, "  %-*s  %s %5.1f%%\n", keyWidth, g.Key, bar, share*100)
	}
	b.WriteString("\n")
}

func writeSignatures(b *strings.Builder) {
	b.WriteString("SIGNATURES\n")
	b.WriteString("  Prepared by : ______________________    Date : ____________\n")
	b.WriteString("  Reviewed by : ______________________    Date : ____________\n")
	b.WriteString("  Approved by : ______________________    Date : ____________\n")
	b.WriteString("\n")
}

// renderTable is the single fixed-width table renderer shared by every
// report kind. The first column is left-aligned, all others right.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i == 0 {
				fmt.Fprintf(&b, "  %-*s", widths[i], cell)
			} else {
				fmt.Fprintf(&b, "  %*s", widths[i], cell)
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers)
	total := 2
	for _, w := range widths {
		total += w + 2
	}
	b.WriteString("  " + strings.Repeat("-", total-2) + "\n")
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

func centerLine(s string) string {
	if len(s) >= reportWidth {
		return s
	}
	pad := (reportWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// formatAmount renders a bare two-decimal number for table cells, where
// repeating the currency code on every cell would drown the figures.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func safeDivide(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
