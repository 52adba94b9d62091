package report

import (
	"context"

	"github.com/cafm-ess/report-backend-go/internal/domain/attendance"
	"github.com/cafm-ess/report-backend-go/internal/domain/leave"
)

// DataSource is the upstream collaborator supplying raw report inputs.
type DataSource interface {
	MonthlyAttendance(ctx context.Context, employeeID string, month, year int) ([]attendance.Record, error)
	MonthlyStats(ctx context.Context, employeeID string, month, year int) (MonthlySummary, error)
	LeaveHistory(ctx context.Context, employeeID string) ([]leave.HistoryEntry, error)
}
