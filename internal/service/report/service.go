package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cafm-ess/report-backend-go/internal/domain/attendance"
	"github.com/cafm-ess/report-backend-go/internal/domain/leave"
	"github.com/cafm-ess/report-backend-go/internal/domain/report"
	calendarService "github.com/cafm-ess/report-backend-go/internal/service/calendar"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type ReportServiceImpl struct {
	source     report.DataSource
	classifier *calendarService.Classifier
	logger     *slog.Logger
	logoPath   string
}

func NewReportService(source report.DataSource, classifier *calendarService.Classifier, logger *slog.Logger, logoPath string) report.ReportService {
	return &ReportServiceImpl{
		source:     source,
		classifier: classifier,
		logger:     logger,
		logoPath:   logoPath,
	}
}

// getEmployeeIDFromContext extracts employee_id from JWT claims
func (s *ReportServiceImpl) getEmployeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", report.ErrMissingEmployeeClaim
	}

	return employeeID, nil
}

// GenerateMonthlyReport returns the normalized month view for the
// authenticated employee.
func (s *ReportServiceImpl) GenerateMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	employeeID, err := s.getEmployeeIDFromContext(ctx)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	records, skipped, err := s.normalizedRecords(ctx, employeeID, req.Month, req.Year)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	summary, err := s.source.MonthlyStats(ctx, employeeID, req.Month, req.Year)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("%w: fetching monthly stats: %v", report.ErrUpstreamUnavailable, err)
	}

	return report.MonthlyReport{
		ReportID:       uuid.NewString(),
		EmployeeID:     employeeID,
		PeriodMonth:    req.Month,
		PeriodYear:     req.Year,
		GeneratedAt:    time.Now().Format(time.RFC3339),
		Summary:        summary,
		Records:        records,
		LeaveHistory:   s.leaveHistoryBestEffort(ctx, employeeID),
		SkippedRecords: skipped,
	}, nil
}

// ExportSpreadsheet produces the flat xlsx artifact, one row per record in
// input order.
func (s *ReportServiceImpl) ExportSpreadsheet(ctx context.Context, req report.MonthlyReportRequest) (report.Artifact, error) {
	if err := req.Validate(); err != nil {
		return report.Artifact{}, err
	}

	employeeID, err := s.getEmployeeIDFromContext(ctx)
	if err != nil {
		return report.Artifact{}, err
	}

	records, _, err := s.normalizedRecords(ctx, employeeID, req.Month, req.Year)
	if err != nil {
		return report.Artifact{}, err
	}

	return buildSpreadsheet(records, req.Month, req.Year)
}

// ExportDocument produces the multi-section pdf artifact. The leave-history
// fetch is best-effort: on failure the document is still produced without
// that section.
func (s *ReportServiceImpl) ExportDocument(ctx context.Context, req report.MonthlyReportRequest) (report.Artifact, error) {
	if err := req.Validate(); err != nil {
		return report.Artifact{}, err
	}

	employeeID, err := s.getEmployeeIDFromContext(ctx)
	if err != nil {
		return report.Artifact{}, err
	}

	records, _, err := s.normalizedRecords(ctx, employeeID, req.Month, req.Year)
	if err != nil {
		return report.Artifact{}, err
	}

	summary, err := s.source.MonthlyStats(ctx, employeeID, req.Month, req.Year)
	if err != nil {
		return report.Artifact{}, fmt.Errorf("%w: fetching monthly stats: %v", report.ErrUpstreamUnavailable, err)
	}

	history := s.leaveHistoryBestEffort(ctx, employeeID)

	layout := buildDocumentLayout(records, summary, history, req.Month, req.Year, employeeID)
	return renderDocument(layout, req.Month, req.Year, s.logoPath)
}

// normalizedRecords fetches and normalizes the month's attendance records.
// Malformed records are skipped and logged, not allowed to crash the batch.
func (s *ReportServiceImpl) normalizedRecords(ctx context.Context, employeeID string, month, year int) ([]attendance.NormalizedRecord, int, error) {
	raw, err := s.source.MonthlyAttendance(ctx, employeeID, month, year)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: fetching attendance records: %v", report.ErrUpstreamUnavailable, err)
	}

	normalized, errs := s.classifier.NormalizeAll(raw)
	for _, normErr := range errs {
		s.logger.Warn("skipping malformed attendance record",
			slog.String("employee_id", employeeID),
			slog.String("error", normErr.Error()),
		)
	}
	return normalized, len(errs), nil
}

// leaveHistoryBestEffort returns nil on failure; the caller omits the
// section and generation continues.
func (s *ReportServiceImpl) leaveHistoryBestEffort(ctx context.Context, employeeID string) []leave.HistoryEntry {
	history, err := s.source.LeaveHistory(ctx, employeeID)
	if err != nil {
		s.logger.Warn("leave history unavailable, omitting section",
			slog.String("employee_id", employeeID),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return history
}
