package report

import (
	"fmt"
	"time"

	"github.com/cafm-ess/report-backend-go/internal/domain/attendance"
	"github.com/cafm-ess/report-backend-go/internal/domain/leave"
	"github.com/cafm-ess/report-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY ATTENDANCE REPORT
// ========================================

type MonthlyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlySummary is the monthly-stats object supplied by the upstream API.
// presentDays + absentDays <= workingDays is expected but not enforced here,
// upstream data is trusted.
type MonthlySummary struct {
	WorkingDays   int            `json:"working_days"`
	PresentDays   int            `json:"present_days"`
	AbsentDays    int            `json:"absent_days"`
	LeaveBalances leave.Balances `json:"leave_balances"`
}

type MonthlyReport struct {
	ReportID    string `json:"report_id"`
	EmployeeID  string `json:"employee_id"`
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	GeneratedAt string `json:"generated_at"`

	Summary        MonthlySummary                `json:"summary"`
	Records        []attendance.NormalizedRecord `json:"records"`
	LeaveHistory   []leave.HistoryEntry          `json:"leave_history,omitempty"`
	SkippedRecords int                           `json:"skipped_records,omitempty"`
}

// ========================================
// EXPORT ARTIFACTS
// ========================================

// Artifact is an opaque generated document handed to the caller for download.
type Artifact struct {
	FileName    string
	ContentType string
	Content     []byte
}
