package calendar

// DayType identifies why a calendar date is (or is not) a working day.
type DayType string

const (
	DaySunday         DayType = "sunday"
	DaySecondSaturday DayType = "second_saturday"
	DayFourthSaturday DayType = "fourth_saturday"
	DayGovtHoliday    DayType = "govt_holiday"
	DayWorking        DayType = "working_day"
)

// Classification is the derived holiday decision for a single calendar date.
// It is a value, never stored.
type Classification struct {
	IsHoliday   bool
	DayType     DayType
	HolidayName string // set only for government holidays
	Label       string // human label: "Sunday", "2nd Saturday", a holiday name, "Working Day"
}
