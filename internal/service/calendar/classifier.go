package calendar

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/cafm-ess/report-backend-go/internal/domain/attendance"
	"github.com/cafm-ess/report-backend-go/internal/domain/calendar"
	"github.com/cafm-ess/report-backend-go/internal/pkg/validator"
)

// genericHolidayName labels calendar dates that are marked as holidays
// without a mapped name.
const genericHolidayName = "Government Holiday"

// lateArrivalCutoffMinutes marks a punch-in as late when its wall-clock time
// is past 09:30.
const lateArrivalCutoffMinutes = 9*60 + 30

// govtHolidays is the built-in government holiday calendar, keyed by
// YYYY-MM-DD. Deployments extend it through NewClassifier.
var govtHolidays = map[string]string{
	"2024-01-26": "Republic Day",
	"2024-03-25": "Holi",
	"2024-04-17": "Ram Navami",
	"2024-05-01": "Labor Day",
	"2024-08-15": "Independence Day",
	"2024-10-02": "Gandhi Jayanti",
	"2024-10-31": "Diwali",
	"2024-12-25": "Christmas",
	"2025-01-26": "Republic Day",
	"2025-03-14": "Holi",
	"2025-04-06": "Ram Navami",
	"2025-05-01": "Labor Day",
	"2025-08-15": "Independence Day",
	"2025-10-02": "Gandhi Jayanti",
	"2025-10-20": "Diwali",
	"2025-12-25": "Christmas",
	"2026-01-26": "Republic Day",
	"2026-03-04": "Holi",
	"2026-03-26": "Ram Navami",
	"2026-05-01": "Labor Day",
	"2026-08-15": "Independence Day",
	"2026-10-02": "Gandhi Jayanti",
	"2026-11-08": "Diwali",
	"2026-12-25": "Christmas",
}

// Classifier decides whether a calendar date counts as a non-working day and
// folds that decision plus punch data into display-ready records. The holiday
// map is written once at construction and read-only afterwards, so a single
// Classifier is safe for concurrent use.
type Classifier struct {
	holidays map[string]string
}

// NewClassifier merges extra per-deployment holidays over the built-in
// calendar. Entries with an empty name get the generic label.
func NewClassifier(extra map[string]string) *Classifier {
	holidays := make(map[string]string, len(govtHolidays)+len(extra))
	for date, name := range govtHolidays {
		holidays[date] = name
	}
	for date, name := range extra {
		if name == "" {
			name = genericHolidayName
		}
		holidays[date] = name
	}
	return &Classifier{holidays: holidays}
}

// LoadHolidayFile reads a JSON object mapping YYYY-MM-DD dates to holiday
// names. An empty path returns no extra holidays.
func LoadHolidayFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read holiday calendar: %w", err)
	}
	var holidays map[string]string
	if err := json.Unmarshal(data, &holidays); err != nil {
		return nil, fmt.Errorf("failed to parse holiday calendar: %w", err)
	}
	return holidays, nil
}

// parseDateOnly extracts the calendar day from an ISO date or date-time
// string. The day-of-week is taken from the date's own clock fields, no
// locale adjustment.
func parseDateOnly(dateStr string) (time.Time, error) {
	if len(dateStr) < 10 {
		return time.Time{}, fmt.Errorf("%w: %q", calendar.ErrInvalidDate, dateStr)
	}
	day, ok := validator.IsValidDate(dateStr[:10])
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", calendar.ErrInvalidDate, dateStr)
	}
	return day, nil
}

// ClassifyDate determines whether a date is a holiday and why. Precedence:
// Sunday, then 2nd/4th Saturday, then the government holiday calendar.
func (c *Classifier) ClassifyDate(dateStr string) (calendar.Classification, error) {
	day, err := parseDateOnly(dateStr)
	if err != nil {
		return calendar.Classification{}, err
	}

	switch day.Weekday() {
	case time.Sunday:
		return calendar.Classification{
			IsHoliday: true,
			DayType:   calendar.DaySunday,
			Label:     "Sunday",
		}, nil
	case time.Saturday:
		weekOfMonth := (day.Day() + 6) / 7
		if weekOfMonth == 2 {
			return calendar.Classification{
				IsHoliday: true,
				DayType:   calendar.DaySecondSaturday,
				Label:     "2nd Saturday",
			}, nil
		}
		if weekOfMonth == 4 {
			return calendar.Classification{
				IsHoliday: true,
				DayType:   calendar.DayFourthSaturday,
				Label:     "4th Saturday",
			}, nil
		}
	}

	if name, ok := c.holidays[day.Format("2006-01-02")]; ok {
		if name == "" {
			name = genericHolidayName
		}
		return calendar.Classification{
			IsHoliday:   true,
			DayType:     calendar.DayGovtHoliday,
			HolidayName: name,
			Label:       name,
		}, nil
	}

	return calendar.Classification{
		DayType: calendar.DayWorking,
		Label:   "Working Day",
	}, nil
}

// ClassifyStatus resolves the human-facing attendance status. A holiday
// classification overrides any upstream status unconditionally.
func (c *Classifier) ClassifyStatus(rec *attendance.Record, cls calendar.Classification) string {
	if cls.IsHoliday {
		return attendance.StatusHoliday
	}
	if rec == nil {
		return attendance.StatusAbsent
	}
	if rec.Status != "" {
		return rec.Status
	}
	if rec.PunchInTime != nil && rec.PunchOutTime != nil {
		return attendance.StatusPresent
	}
	if rec.PunchInTime != nil {
		return attendance.StatusHalfDay
	}
	return attendance.StatusAbsent
}

// StatusCode collapses a status into the compact code used by calendar and
// PDF cells. Half Day intentionally maps to "P" in that view; the code must
// not be used for aggregation.
func StatusCode(status string) string {
	switch status {
	case attendance.StatusPresent, attendance.StatusHalfDay:
		return "P"
	case attendance.StatusHoliday:
		return "H"
	default:
		return "A"
	}
}

// FormatClockTime renders a UTC instant as "HH:MM AM/PM". The UTC hour and
// minute are treated as the display wall-clock time without timezone
// conversion, matching how punches are recorded upstream. Nil input yields
// nil output.
func (c *Classifier) FormatClockTime(ts *string) (*string, error) {
	if ts == nil {
		return nil, nil
	}
	t, ok := validator.IsValidDateTime(*ts)
	if !ok {
		return nil, fmt.Errorf("%w: %q", calendar.ErrInvalidDate, *ts)
	}

	hour, minute := t.UTC().Hour(), t.UTC().Minute()
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	formatted := fmt.Sprintf("%02d:%02d %s", hour12, minute, suffix)
	return &formatted, nil
}

// HoursWorked returns the punch-in to punch-out duration in hours with two
// decimals. A punch-out chronologically before the punch-in gets 24 hours
// added (overnight shift). Missing endpoints or a negative result yield "0".
func (c *Classifier) HoursWorked(punchIn, punchOut *string) (string, error) {
	if punchIn == nil || punchOut == nil {
		return "0", nil
	}
	in, ok := validator.IsValidDateTime(*punchIn)
	if !ok {
		return "", fmt.Errorf("%w: %q", calendar.ErrInvalidDate, *punchIn)
	}
	out, ok := validator.IsValidDateTime(*punchOut)
	if !ok {
		return "", fmt.Errorf("%w: %q", calendar.ErrInvalidDate, *punchOut)
	}

	diff := out.Sub(in)
	if diff < 0 {
		diff += 24 * time.Hour
	}
	if diff < 0 {
		return "0", nil
	}
	return fmt.Sprintf("%.2f", diff.Hours()), nil
}

// isLate reports whether a punch-in's wall-clock time is past the cutoff.
// The caller has already validated the timestamp.
func isLate(punchIn *string) bool {
	if punchIn == nil {
		return false
	}
	t, ok := validator.IsValidDateTime(*punchIn)
	if !ok {
		return false
	}
	minutes := t.UTC().Hour()*60 + t.UTC().Minute()
	return minutes > lateArrivalCutoffMinutes
}

// Normalize folds day classification, status resolution, punch formatting and
// worked-hours computation into a single display-ready record. Pure and
// deterministic given identical input.
func (c *Classifier) Normalize(rec attendance.Record) (attendance.NormalizedRecord, error) {
	day, err := parseDateOnly(rec.Date)
	if err != nil {
		return attendance.NormalizedRecord{}, err
	}
	cls, err := c.ClassifyDate(rec.Date)
	if err != nil {
		return attendance.NormalizedRecord{}, err
	}

	punchIn, err := c.FormatClockTime(rec.PunchInTime)
	if err != nil {
		return attendance.NormalizedRecord{}, err
	}
	punchOut, err := c.FormatClockTime(rec.PunchOutTime)
	if err != nil {
		return attendance.NormalizedRecord{}, err
	}
	hours, err := c.HoursWorked(rec.PunchInTime, rec.PunchOutTime)
	if err != nil {
		return attendance.NormalizedRecord{}, err
	}

	status := c.ClassifyStatus(&rec, cls)
	late := !cls.IsHoliday && isLate(rec.PunchInTime)

	remarks := ""
	if cls.IsHoliday {
		remarks = cls.Label
	} else if late {
		remarks = "Late arrival"
	}

	return attendance.NormalizedRecord{
		EmployeeID:       rec.EmployeeID,
		ProjectName:      rec.ProjectName,
		Designation:      rec.Designation,
		Date:             day.Format("2006-01-02"),
		DisplayDate:      day.Format("Monday, Jan 2, 2006"),
		Status:           status,
		StatusCode:       StatusCode(status),
		DayLabel:         cls.Label,
		PunchInTime:      punchIn,
		PunchOutTime:     punchOut,
		TotalHoursWorked: hours,
		IsLate:           late,
		Remarks:          remarks,
	}, nil
}

// NormalizeAll normalizes a batch. A malformed record is skipped and reported
// through the returned error slice instead of aborting the batch.
func (c *Classifier) NormalizeAll(recs []attendance.Record) ([]attendance.NormalizedRecord, []error) {
	normalized := make([]attendance.NormalizedRecord, 0, len(recs))
	var errs []error
	for i, rec := range recs {
		n, err := c.Normalize(rec)
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d (%s): %w", i, rec.Date, err))
			continue
		}
		normalized = append(normalized, n)
	}
	return normalized, errs
}
