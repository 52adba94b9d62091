package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/cafm-ess/report-backend-go/internal/domain/attendance"
	"github.com/cafm-ess/report-backend-go/internal/domain/leave"
	"github.com/cafm-ess/report-backend-go/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
)

const pdfContentType = "application/pdf"

// Two-color document theme.
const (
	themeR = 41
	themeG = 128
	themeB = 185
)

const reasonMaxLen = 30

// documentLayout is the assembled content of the paginated report, built
// before any rendering so section ordering and filtering stay testable.
type documentLayout struct {
	Title        string
	EmployeeID   string
	Attendance   []attendanceRow
	Summary      summarySection
	Balances     []balanceRow
	LeaveHistory []leaveRow // empty means the section is omitted
}

type attendanceRow struct {
	Date     string
	Project  string
	CheckIn  string
	CheckOut string
	DayLabel string
}

type summarySection struct {
	WorkingDays    int
	PresentDays    int
	AbsentDays     int
	AttendanceRate string
}

type balanceRow struct {
	Label string
	Value string
}

type leaveRow struct {
	Date      string
	LeaveType string
	Days      string
	Status    string
	Reason    string
}

// buildDocumentLayout assembles the document sections in their fixed order:
// header, attendance table, monthly summary, leave balances, leave history.
func buildDocumentLayout(records []attendance.NormalizedRecord, summary report.MonthlySummary, history []leave.HistoryEntry, month, year int, employeeID string) documentLayout {
	layout := documentLayout{
		Title:      fmt.Sprintf("Attendance Report - %s %d", time.Month(month), year),
		EmployeeID: employeeID,
	}

	for _, rec := range records {
		day, err := time.Parse("2006-01-02", rec.Date)
		if err != nil || int(day.Month()) != month || day.Year() != year {
			continue
		}
		layout.Attendance = append(layout.Attendance, attendanceRow{
			Date:     rec.DisplayDate,
			Project:  rec.ProjectName,
			CheckIn:  punchOrNA(rec.PunchInTime),
			CheckOut: punchOrNA(rec.PunchOutTime),
			DayLabel: rec.DayLabel,
		})
	}

	layout.Summary = summarySection{
		WorkingDays:    summary.WorkingDays,
		PresentDays:    summary.PresentDays,
		AbsentDays:     summary.AbsentDays,
		AttendanceRate: attendanceRate(summary.PresentDays, summary.WorkingDays),
	}

	layout.Balances = []balanceRow{
		{Label: "Earned Leave", Value: balanceOrZero(summary.LeaveBalances.EarnedLeave)},
		{Label: "Casual Leave", Value: balanceOrZero(summary.LeaveBalances.CasualLeave)},
		{Label: "Sick Leave", Value: balanceOrZero(summary.LeaveBalances.SickLeave)},
		{Label: "Comp Off", Value: balanceOrZero(summary.LeaveBalances.CompOff)},
	}

	for _, entry := range history {
		if entry.IsHalfDay {
			continue
		}
		layout.LeaveHistory = append(layout.LeaveHistory, leaveRow{
			Date:      entry.StartDate,
			LeaveType: entry.LeaveType,
			Days:      strconv.FormatFloat(entry.NumberOfDays, 'f', -1, 64),
			Status:    entry.Status,
			Reason:    truncate(entry.Reason, reasonMaxLen),
		})
	}

	return layout
}

// attendanceRate guards the zero-working-days division instead of throwing.
func attendanceRate(presentDays, workingDays int) string {
	if workingDays == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(presentDays)/float64(workingDays)*100)
}

func balanceOrZero(balance *float64) string {
	if balance == nil {
		return "0"
	}
	return strconv.FormatFloat(*balance, 'f', -1, 64)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// renderDocument renders the layout and packages the bytes as an artifact.
func renderDocument(layout documentLayout, month, year int, logoPath string) (report.Artifact, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	composeDocument(pdf, layout, logoPath)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return report.Artifact{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	return report.Artifact{
		FileName:    fmt.Sprintf("attendance_report_%d_%d.pdf", month, year),
		ContentType: pdfContentType,
		Content:     buf.Bytes(),
	}, nil
}

// composeDocument writes the layout into pdf with gofpdf's flowing cursor;
// each table stacks under the previous one, no fixed offsets. The monthly
// summary always starts on a fresh page after the attendance table.
func composeDocument(pdf *gofpdf.Fpdf, layout documentLayout, logoPath string) {
	pdf.AddPage()

	if logoPath != "" {
		pdf.ImageOptions(logoPath, 10, 8, 16, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		pdf.SetX(30)
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, layout.Title)
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Employee ID: %s", layout.EmployeeID))
	pdf.Ln(12)

	attendanceWidths := []float64{48, 38, 24, 24, 56}
	writeTableHeader(pdf, []string{"Date", "Project", "Check-In", "Check-Out", "Day"}, attendanceWidths)
	for _, row := range layout.Attendance {
		writeTableRow(pdf, []string{row.Date, row.Project, row.CheckIn, row.CheckOut, row.DayLabel}, attendanceWidths)
	}

	pdf.AddPage()

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, "Monthly Summary")
	pdf.Ln(12)
	summaryWidths := []float64{95, 95}
	writeTableHeader(pdf, []string{"Metric", "Value"}, summaryWidths)
	summaryRows := [][]string{
		{"Working Days", strconv.Itoa(layout.Summary.WorkingDays)},
		{"Present Days", strconv.Itoa(layout.Summary.PresentDays)},
		{"Absent Days", strconv.Itoa(layout.Summary.AbsentDays)},
		{"Attendance Rate", layout.Summary.AttendanceRate},
	}
	for _, row := range summaryRows {
		writeTableRow(pdf, row, summaryWidths)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, "Leave Balances")
	pdf.Ln(12)
	writeTableHeader(pdf, []string{"Leave Type", "Balance"}, summaryWidths)
	for _, row := range layout.Balances {
		writeTableRow(pdf, []string{row.Label, row.Value}, summaryWidths)
	}

	if len(layout.LeaveHistory) > 0 {
		pdf.Ln(10)
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 10, "Leave History")
		pdf.Ln(12)
		leaveWidths := []float64{34, 34, 18, 28, 76}
		writeTableHeader(pdf, []string{"Date", "Leave Type", "Days", "Status", "Reason"}, leaveWidths)
		for _, row := range layout.LeaveHistory {
			writeTableRow(pdf, []string{row.Date, row.LeaveType, row.Days, row.Status, row.Reason}, leaveWidths)
		}
	}
}

func writeTableHeader(pdf *gofpdf.Fpdf, headers []string, widths []float64) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(themeR, themeG, themeB)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
}

func writeTableRow(pdf *gofpdf.Fpdf, cells []string, widths []float64) {
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}
