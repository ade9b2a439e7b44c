package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// GenerateAttendanceReport aggregates the attendance snapshot for
	// the requested period and compiles the plain-text report
	GenerateAttendanceReport(ctx context.Context, req GenerateReportRequest) (GenerateReportResult, error)
}
