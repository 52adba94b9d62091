package report

import (
	"fmt"

	"github.com/cafm-ess/report-backend-go/internal/domain/attendance"
	"github.com/cafm-ess/report-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const spreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var spreadsheetHeaders = []string{"Date", "Project Name", "Designation", "Check-In", "Check-Out"}

// buildSpreadsheet writes one row per record, preserving input order. No
// aggregation rows.
func buildSpreadsheet(records []attendance.NormalizedRecord, month, year int) (report.Artifact, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return report.Artifact{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2980B9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return report.Artifact{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	for i, header := range spreadsheetHeaders {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	row := 2
	for _, rec := range records {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), rec.DisplayDate)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), rec.ProjectName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), rec.Designation)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), punchOrNA(rec.PunchInTime))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), punchOrNA(rec.PunchOutTime))
		row++
	}

	f.SetColWidth(sheet, "A", "A", 24)
	f.SetColWidth(sheet, "B", "C", 20)
	f.SetColWidth(sheet, "D", "E", 12)

	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return report.Artifact{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	return report.Artifact{
		FileName:    fmt.Sprintf("attendance_report_%d_%d.xlsx", month, year),
		ContentType: spreadsheetContentType,
		Content:     buf.Bytes(),
	}, nil
}

func punchOrNA(formatted *string) string {
	if formatted == nil {
		return "N/A"
	}
	return *formatted
}
