package report

import (
	"time"

	"github.com/mawarid-ops/manpower-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT CONFIGURATION
// ========================================

type Kind string

const (
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
	KindCustom  Kind = "custom"
)

type Format string

const (
	FormatDetailed  Format = "detailed"
	FormatSummary   Format = "summary"
	FormatFinancial Format = "financial"
)

type GroupBy string

const (
	GroupByEmployee    GroupBy = "employee"
	GroupByProject     GroupBy = "project"
	GroupByTrade       GroupBy = "trade"
	GroupByNationality GroupBy = "nationality"
)

// ProjectFilterAll selects every project.
const ProjectFilterAll = "all"

type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days in the inclusive range.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// SingleDay reports whether the range covers exactly one calendar day.
func (r DateRange) SingleDay() bool {
	return r.Start.Equal(r.End)
}

// ========================================
// AGGREGATE (derived per request, never persisted)
// ========================================

// GroupMetrics is one row of the grouped breakdown.
type GroupMetrics struct {
	Key            string  `json:"key"`
	EmployeeCount  int     `json:"employee_count"`
	AttendanceDays int     `json:"attendance_days"`
	RegularHours   float64 `json:"regular_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
	TotalCost      float64 `json:"total_cost"`
	TotalRevenue   float64 `json:"total_revenue"`
	Profit         float64 `json:"profit"`
}

// Absentee is an employee expected in the reporting window for whom no
// attendance record exists. Only produced for single-day windows.
type Absentee struct {
	EmployeeID  string `json:"employee_id"`
	FullName    string `json:"full_name"`
	Trade       string `json:"trade"`
	ProjectName string `json:"project_name"`
}

// Aggregate is the whole-report rollup the compiler and the insight
// rules consume. All derived ratios are defined as 0 when their
// denominator is 0.
type Aggregate struct {
	Range         DateRange `json:"-"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	ProjectFilter string    `json:"project_filter"`
	ProjectName   string    `json:"project_name,omitempty"`
	GroupBy       GroupBy   `json:"group_by"`

	Groups []GroupMetrics `json:"groups"`

	PresentEmployees   int     `json:"present_employees"`
	ExpectedEmployees  int     `json:"expected_employees"`
	AttendanceDays     int     `json:"attendance_days"`
	RegularHours       float64 `json:"regular_hours"`
	OvertimeHours      float64 `json:"overtime_hours"`
	TotalHours         float64 `json:"total_hours"`
	TotalCost          float64 `json:"total_cost"`
	TotalRevenue       float64 `json:"total_revenue"`
	Profit             float64 `json:"profit"`
	ProfitMargin       float64 `json:"profit_margin"`
	AttendanceRate     float64 `json:"attendance_rate"`
	OvertimePercentage float64 `json:"overtime_percentage"`
	ProductivityIndex  float64 `json:"productivity_index"`

	Absentees []Absentee `json:"absentees,omitempty"`

	// SkippedRecords counts records dropped because their employee
	// reference could not be resolved.
	SkippedRecords int `json:"skipped_records"`
}

// ========================================
// INSIGHTS
// ========================================

type InsightLevel string

const (
	InsightGood    InsightLevel = "good"
	InsightWarning InsightLevel = "warning"
)

type Insight struct {
	Level InsightLevel `json:"level"`
	Text  string       `json:"text"`
}

// ========================================
// GENERATE REPORT REQUEST / RESULT
// ========================================

type GenerateReportRequest struct {
	Kind              string `json:"kind"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	ProjectFilter     string `json:"project_filter"`
	GroupBy           string `json:"group_by"`
	Format            string `json:"format"`
	IncludeCharts     bool   `json:"include_charts"`
	IncludeSignatures bool   `json:"include_signatures"`
}

func (r *GenerateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, []string{
		string(KindDaily), string(KindWeekly), string(KindMonthly), string(KindCustom),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of daily, weekly, monthly, custom",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	// Daily, weekly and monthly periods are derived from start_date;
	// only custom requires an explicit end.
	if r.Kind == string(KindCustom) {
		end, endOK := validator.IsValidDate(r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
		if startOK && endOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	} else if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.GroupBy != "" && !validator.IsInSlice(r.GroupBy, []string{
		string(GroupByEmployee), string(GroupByProject), string(GroupByTrade), string(GroupByNationality),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "group_by",
			Message: "group_by must be one of employee, project, trade, nationality",
		})
	}

	if r.Format != "" && !validator.IsInSlice(r.Format, []string{
		string(FormatDetailed), string(FormatSummary), string(FormatFinancial),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be one of detailed, summary, financial",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Document is compiled report text plus the suggested filename the
// caller should use when persisting or downloading it.
type Document struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type GenerateReportResult struct {
	Filename    string    `json:"filename"`
	Content     string    `json:"content"`
	GeneratedAt string    `json:"generated_at"`
	Aggregate   Aggregate `json:"aggregate"`
	Insights    []Insight `json:"insights"`
}
