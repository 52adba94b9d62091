package calendar

import (
	"errors"
	"testing"

	"github.com/cafm-ess/report-backend-go/internal/domain/attendance"
	"github.com/cafm-ess/report-backend-go/internal/domain/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestClassifyDate_Sundays(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(nil)

	sundays := []string{"2024-03-03", "2024-06-02", "2025-01-05", "2024-03-31"}
	for _, date := range sundays {
		cls, err := classifier.ClassifyDate(date)
		require.NoError(t, err, date)
		assert.True(t, cls.IsHoliday, date)
		assert.Equal(t, calendar.DaySunday, cls.DayType, date)
		assert.Equal(t, "Sunday", cls.Label, date)
	}
}

func TestClassifyDate_Saturdays(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(nil)

	// March 2024 Saturdays fall on the 2nd, 9th, 16th, 23rd and 30th.
	cases := []struct {
		date      string
		isHoliday bool
		dayType   calendar.DayType
	}{
		{"2024-03-02", false, calendar.DayWorking},
		{"2024-03-09", true, calendar.DaySecondSaturday},
		{"2024-03-16", false, calendar.DayWorking},
		{"2024-03-23", true, calendar.DayFourthSaturday},
		{"2024-03-30", false, calendar.DayWorking},
	}
	for _, c := range cases {
		cls, err := classifier.ClassifyDate(c.date)
		require.NoError(t, err, c.date)
		assert.Equal(t, c.isHoliday, cls.IsHoliday, c.date)
		assert.Equal(t, c.dayType, cls.DayType, c.date)
	}

	second, err := classifier.ClassifyDate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2nd Saturday", second.Label)

	fourth, err := classifier.ClassifyDate("2024-03-23")
	require.NoError(t, err)
	assert.Equal(t, "4th Saturday", fourth.Label)
}

func TestClassifyDate_GovernmentHolidays(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(nil)

	cls, err := classifier.ClassifyDate("2024-01-26")
	require.NoError(t, err)
	assert.True(t, cls.IsHoliday)
	assert.Equal(t, calendar.DayGovtHoliday, cls.DayType)
	assert.Equal(t, "Republic Day", cls.HolidayName)
	assert.Equal(t, "Republic Day", cls.Label)

	christmas, err := classifier.ClassifyDate("2024-12-25")
	require.NoError(t, err)
	assert.True(t, christmas.IsHoliday)
	assert.Equal(t, "Christmas", christmas.HolidayName)
}

func TestClassifyDate_SundayPrecedesGovtHoliday(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(nil)

	// Republic Day 2025 falls on a Sunday; the weekday rule wins.
	cls, err := classifier.ClassifyDate("2025-01-26")
	require.NoError(t, err)
	assert.True(t, cls.IsHoliday)
	assert.Equal(t, calendar.DaySunday, cls.DayType)
	assert.Equal(t, "Sunday", cls.Label)
}

func TestClassifyDate_WorkingDay(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(nil)

	cls, err := classifier.ClassifyDate("2024-03-04")
	require.NoError(t, err)
	assert.False(t, cls.IsHoliday)
	assert.Equal(t, calendar.DayWorking, cls.DayType)
	assert.Equal(t, "Working Day", cls.Label)
}

func TestClassifyDate_AcceptsDateTimeStrings(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(nil)

	cls, err := classifier.ClassifyDate("2024-01-26T09:30:00Z")
	require.NoError(t, err)
	assert.True(t, cls.IsHoliday)
	assert.Equal(t, "Republic Day", cls.HolidayName)
}

func TestClassifyDate_InvalidDate(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(nil)

	for _, date := range []string{"", "not-a-date", "2024-13-40", "26/01/2024"} {
		_, err := classifier.ClassifyDate(date)
		require.Error(t, err, date)
		assert.True(t, errors.Is(err, calendar.ErrInvalidDate), date)
	}
}

func TestNewClassifier_ExtraHolidays(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(map[string]string{
		"2024-03-08": "Maha Shivratri",
		"2024-03-29": "",
	})

	named, err := classifier.ClassifyDate("2024-03-08")
	require.NoError(t, err)
	assert.Equal(t, "Maha Shivratri", named.HolidayName)

	generic, err := classifier.ClassifyDate("2024-03-29")
	require.NoError(t, err)
	assert.True(t, generic.IsHoliday)
	assert.Equal(t, "Government Holiday", generic.HolidayName)
}

func TestClassifyStatus(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(nil)

	holiday := calendar.Classification{IsHoliday: true, DayType: calendar.DayGovtHoliday, Label: "Republic Day"}
	working := calendar.Classification{DayType: calendar.DayWorking, Label: "Working Day"}

	bothPunches := &attendance.Record{
		Date:         "2024-01-26",
		PunchInTime:  strPtr("2024-01-26T09:00:00Z"),
		PunchOutTime: strPtr("2024-01-26T18:00:00Z"),
	}

	// Holiday overrides punch data unconditionally.
	assert.Equal(t, attendance.StatusHoliday, classifier.ClassifyStatus(bothPunches, holiday))

	// No record for the date.
	assert.Equal(t, attendance.StatusAbsent, classifier.ClassifyStatus(nil, working))

	// Explicit upstream status is used verbatim.
	explicit := &attendance.Record{Date: "2024-03-04", Status: "On Duty"}
	assert.Equal(t, "On Duty", classifier.ClassifyStatus(explicit, working))

	// Both punches present.
	present := &attendance.Record{
		Date:         "2024-03-04",
		PunchInTime:  strPtr("2024-03-04T09:00:00Z"),
		PunchOutTime: strPtr("2024-03-04T18:00:00Z"),
	}
	assert.Equal(t, attendance.StatusPresent, classifier.ClassifyStatus(present, working))

	// Punch-in only.
	halfDay := &attendance.Record{
		Date:        "2024-03-04",
		PunchInTime: strPtr("2024-03-04T09:00:00Z"),
	}
	assert.Equal(t, attendance.StatusHalfDay, classifier.ClassifyStatus(halfDay, working))

	// No punches at all.
	assert.Equal(t, attendance.StatusAbsent, classifier.ClassifyStatus(&attendance.Record{Date: "2024-03-04"}, working))
}

func TestStatusCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status string
		want   string
	}{
		{attendance.StatusPresent, "P"},
		{attendance.StatusHalfDay, "P"}, // intentional collapse for compact cells
		{attendance.StatusHoliday, "H"},
		{attendance.StatusAbsent, "A"},
		{"", "A"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StatusCode(c.status), c.status)
	}
}

func TestFormatClockTime(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(nil)

	cases := []struct {
		input string
		want  string
	}{
		{"2024-06-01T00:15:00Z", "12:15 AM"},
		{"2024-06-01T13:05:00Z", "01:05 PM"},
		{"2024-06-01T12:00:00Z", "12:00 PM"},
		{"2024-06-01T11:59:00Z", "11:59 AM"},
		{"2024-06-01T23:05:00Z", "11:05 PM"},
		{"2024-06-01T09:07:00Z", "09:07 AM"},
	}
	for _, c := range cases {
		got, err := classifier.FormatClockTime(strPtr(c.input))
		require.NoError(t, err, c.input)
		require.NotNil(t, got, c.input)
		assert.Equal(t, c.want, *got, c.input)
	}

	nilResult, err := classifier.FormatClockTime(nil)
	require.NoError(t, err)
	assert.Nil(t, nilResult)

	_, err = classifier.FormatClockTime(strPtr("garbage"))
	assert.True(t, errors.Is(err, calendar.ErrInvalidDate))
}

func TestHoursWorked(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(nil)

	// Overnight shift: punch-out instant is already the next day.
	overnight, err := classifier.HoursWorked(strPtr("2024-06-01T22:00:00Z"), strPtr("2024-06-02T06:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, "8.00", overnight)

	// Missing endpoints.
	missing, err := classifier.HoursWorked(nil, strPtr("2024-06-02T06:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, "0", missing)

	missing, err = classifier.HoursWorked(strPtr("2024-06-01T22:00:00Z"), nil)
	require.NoError(t, err)
	assert.Equal(t, "0", missing)

	// Regular shift.
	regular, err := classifier.HoursWorked(strPtr("2024-03-04T09:00:00Z"), strPtr("2024-03-04T18:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, "9.00", regular)

	// Punch-out recorded before punch-in on the same day gets 24h added.
	wrapped, err := classifier.HoursWorked(strPtr("2024-06-01T22:00:00Z"), strPtr("2024-06-01T06:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, "8.00", wrapped)

	// Still negative after the adjustment.
	negative, err := classifier.HoursWorked(strPtr("2024-06-05T10:00:00Z"), strPtr("2024-06-01T08:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, "0", negative)

	_, err = classifier.HoursWorked(strPtr("garbage"), strPtr("2024-06-02T06:00:00Z"))
	assert.True(t, errors.Is(err, calendar.ErrInvalidDate))
}

func TestNormalize_WorkingDay(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(nil)

	rec := attendance.Record{
		EmployeeID:   "EMP-100",
		ProjectName:  "Facility Ops",
		Designation:  "Technician",
		Date:         "2024-03-05T00:00:00Z",
		PunchInTime:  strPtr("2024-03-05T09:00:00Z"),
		PunchOutTime: strPtr("2024-03-05T18:00:00Z"),
	}

	normalized, err := classifier.Normalize(rec)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-05", normalized.Date)
	assert.Equal(t, "Tuesday, Mar 5, 2024", normalized.DisplayDate)
	assert.Equal(t, attendance.StatusPresent, normalized.Status)
	assert.Equal(t, "P", normalized.StatusCode)
	assert.Equal(t, "Working Day", normalized.DayLabel)
	require.NotNil(t, normalized.PunchInTime)
	assert.Equal(t, "09:00 AM", *normalized.PunchInTime)
	require.NotNil(t, normalized.PunchOutTime)
	assert.Equal(t, "06:00 PM", *normalized.PunchOutTime)
	assert.Equal(t, "9.00", normalized.TotalHoursWorked)
	assert.False(t, normalized.IsLate)
	assert.Empty(t, normalized.Remarks)
}

func TestNormalize_HolidayOverride(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(nil)

	rec := attendance.Record{
		EmployeeID:   "EMP-100",
		Date:         "2024-01-26",
		PunchInTime:  strPtr("2024-01-26T09:00:00Z"),
		PunchOutTime: strPtr("2024-01-26T18:00:00Z"),
	}

	normalized, err := classifier.Normalize(rec)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusHoliday, normalized.Status)
	assert.Equal(t, "H", normalized.StatusCode)
	assert.Equal(t, "Republic Day", normalized.DayLabel)
	assert.Equal(t, "Republic Day", normalized.Remarks)
	assert.False(t, normalized.IsLate)
}

func TestNormalize_LateArrival(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(nil)

	rec := attendance.Record{
		EmployeeID:   "EMP-100",
		Date:         "2024-03-05",
		PunchInTime:  strPtr("2024-03-05T10:00:00Z"),
		PunchOutTime: strPtr("2024-03-05T18:00:00Z"),
	}

	normalized, err := classifier.Normalize(rec)
	require.NoError(t, err)
	assert.True(t, normalized.IsLate)
	assert.Equal(t, "Late arrival", normalized.Remarks)

	onTime := rec
	onTime.PunchInTime = strPtr("2024-03-05T09:00:00Z")
	normalized, err = classifier.Normalize(onTime)
	require.NoError(t, err)
	assert.False(t, normalized.IsLate)
	assert.Empty(t, normalized.Remarks)
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(nil)

	rec := attendance.Record{
		EmployeeID:   "EMP-100",
		ProjectName:  "Facility Ops",
		Date:         "2024-03-05T00:00:00Z",
		PunchInTime:  strPtr("2024-03-05T09:00:00Z"),
		PunchOutTime: strPtr("2024-03-05T18:00:00Z"),
	}

	first, err := classifier.Normalize(rec)
	require.NoError(t, err)
	second, err := classifier.Normalize(rec)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeAll_SkipsMalformedRecords(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier(nil)

	recs := []attendance.Record{
		{EmployeeID: "EMP-100", Date: "2024-03-04", PunchInTime: strPtr("2024-03-04T09:00:00Z"), PunchOutTime: strPtr("2024-03-04T18:00:00Z")},
		{EmployeeID: "EMP-100", Date: "garbage"},
		{EmployeeID: "EMP-100", Date: "2024-03-05"},
	}

	normalized, errs := classifier.NormalizeAll(recs)
	assert.Len(t, normalized, 2)
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], calendar.ErrInvalidDate))
}
