package http

import (
	"net/http"
	"strconv"

	"github.com/cafm-ess/report-backend-go/internal/domain/report"
	"github.com/cafm-ess/report-backend-go/internal/handler/http/response"
	"github.com/cafm-ess/report-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	// Monthly Attendance Report (JSON)
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)

	// Spreadsheet export (xlsx download)
	ExportSpreadsheet(w http.ResponseWriter, r *http.Request)

	// Document export (pdf download)
	ExportDocument(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func parseMonthYear(r *http.Request) (report.MonthlyReportRequest, bool) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")

	if !validator.IsNumeric(monthStr) || !validator.IsNumeric(yearStr) {
		return report.MonthlyReportRequest{}, false
	}

	month, _ := strconv.Atoi(monthStr)
	year, _ := strconv.Atoi(yearStr)
	return report.MonthlyReportRequest{Month: month, Year: year}, true
}

// GetMonthlyReport handles GET /reports/attendance
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := parseMonthYear(r)
	if !ok {
		response.BadRequest(w, "invalid month or year parameter", nil)
		return
	}

	result, err := h.reportService.GenerateMonthlyReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportSpreadsheet handles GET /reports/attendance/export/spreadsheet
func (h *reportHandlerImpl) ExportSpreadsheet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := parseMonthYear(r)
	if !ok {
		response.BadRequest(w, "invalid month or year parameter", nil)
		return
	}

	artifact, err := h.reportService.ExportSpreadsheet(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, artifact)
}

// ExportDocument handles GET /reports/attendance/export/document
func (h *reportHandlerImpl) ExportDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := parseMonthYear(r)
	if !ok {
		response.BadRequest(w, "invalid month or year parameter", nil)
		return
	}

	artifact, err := h.reportService.ExportDocument(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, artifact)
}
