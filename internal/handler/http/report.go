package http

import (
	"fmt"
	"net/http"

	"github.com/mawarid-ops/manpower-backend-go/internal/domain/report"
	"github.com/mawarid-ops/manpower-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// GenerateAttendanceReport returns the aggregate, insights and
	// compiled text as JSON
	GenerateAttendanceReport(w http.ResponseWriter, r *http.Request)

	// DownloadAttendanceReport streams the compiled text as a
	// plain-text attachment
	DownloadAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func reportRequestFromQuery(r *http.Request) report.GenerateReportRequest {
	q := r.URL.Query()
	return report.GenerateReportRequest{
		Kind:              q.Get("kind"),
		StartDate:         q.Get("start_date"),
		EndDate:           q.Get("end_date"),
		ProjectFilter:     q.Get("project"),
		GroupBy:           q.Get("group_by"),
		Format:            q.Get("format"),
		IncludeCharts:     q.Get("include_charts") == "true",
		IncludeSignatures: q.Get("include_signatures") == "true",
	}
}

// GenerateAttendanceReport handles GET /reports/attendance
func (h *reportHandlerImpl) GenerateAttendanceReport(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	result, err := h.reportService.GenerateAttendanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DownloadAttendanceReport handles GET /reports/attendance/download
func (h *reportHandlerImpl) DownloadAttendanceReport(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	result, err := h.reportService.GenerateAttendanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(result.Content))
}
