package report

import (
	"fmt"

	"github.com/mawarid-ops/manpower-backend-go/internal/domain/report"
)

// Insight rule thresholds over the whole-report metrics.
const (
	attendanceExcellent = 95.0
	attendanceGood      = 85.0

	marginExcellent = 25.0
	marginGood      = 15.0

	overtimeHigh     = 20.0
	overtimeModerate = 10.0

	productivityHigh = 80.0
	productivityGood = 50.0
)

// EvaluateInsights runs every rule over the aggregate in a fixed
// sequence (attendance, profit, overtime, productivity) so the report
// text is deterministic. Rules are independent; none short-circuits.
func EvaluateInsights(agg *report.Aggregate) []report.Insight {
	insights := make([]report.Insight, 0, 4)

	switch {
	case agg.AttendanceRate > attendanceExcellent:
		insights = append(insights, report.Insight{
			Level: report.InsightGood,
			Text:  fmt.Sprintf("Attendance rate is excellent at %.1f%%.", agg.AttendanceRate),
		})
	case agg.AttendanceRate >= attendanceGood:
		insights = append(insights, report.Insight{
			Level: report.InsightGood,
			Text:  fmt.Sprintf("Attendance rate is good at %.1f%%.", agg.AttendanceRate),
		})
	default:
		insights = append(insights, report.Insight{
			Level: report.InsightWarning,
			Text:  fmt.Sprintf("Attendance rate is low at %.1f%%; investigate absences.", agg.AttendanceRate),
		})
	}

	switch {
	case agg.ProfitMargin > marginExcellent:
		insights = append(insights, report.Insight{
			Level: report.InsightGood,
			Text:  fmt.Sprintf("Profit margin is excellent at %.1f%%.", agg.ProfitMargin),
		})
	case agg.ProfitMargin >= marginGood:
		insights = append(insights, report.Insight{
			Level: report.InsightGood,
			Text:  fmt.Sprintf("Profit margin is healthy at %.1f%%.", agg.ProfitMargin),
		})
	default:
		insights = append(insights, report.Insight{
			Level: report.InsightWarning,
			Text:  fmt.Sprintf("Profit margin is low at %.1f%%; review rates and utilization.", agg.ProfitMargin),
		})
	}

	switch {
	case agg.OvertimePercentage > overtimeHigh:
		insights = append(insights, report.Insight{
			Level: report.InsightWarning,
			Text:  fmt.Sprintf("Overtime share is high at %.1f%% of total hours; consider additional manpower.", agg.OvertimePercentage),
		})
	case agg.OvertimePercentage >= overtimeModerate:
		insights = append(insights, report.Insight{
			Level: report.InsightGood,
			Text:  fmt.Sprintf("Overtime share is moderate at %.1f%% of total hours.", agg.OvertimePercentage),
		})
	default:
		insights = append(insights, report.Insight{
			Level: report.InsightGood,
			Text:  fmt.Sprintf("Overtime share is under control at %.1f%% of total hours.", agg.OvertimePercentage),
		})
	}

	switch {
	case agg.ProductivityIndex > productivityHigh:
		insights = append(insights, report.Insight{
			Level: report.InsightGood,
			Text:  fmt.Sprintf("Productivity is high at %.2f revenue per hour.", agg.ProductivityIndex),
		})
	case agg.ProductivityIndex >= productivityGood:
		insights = append(insights, report.Insight{
			Level: report.InsightGood,
			Text:  fmt.Sprintf("Productivity is good at %.2f revenue per hour.", agg.ProductivityIndex),
		})
	default:
		insights = append(insights, report.Insight{
			Level: report.InsightWarning,
			Text:  fmt.Sprintf("Productivity is low at %.2f revenue per hour; review billable utilization.", agg.ProductivityIndex),
		})
	}

	return insights
}
