package report

import "context"

type ReportService interface {
	// GenerateMonthlyReport returns the normalized records plus summary and
	// leave data for the authenticated employee's selected month.
	GenerateMonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// ExportSpreadsheet produces the flat xlsx artifact.
	ExportSpreadsheet(ctx context.Context, req MonthlyReportRequest) (Artifact, error)

	// ExportDocument produces the multi-section pdf artifact.
	ExportDocument(ctx context.Context, req MonthlyReportRequest) (Artifact, error)
}
