package attendance

// Attendance statuses as shown to the employee.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusHalfDay = "Half Day"
	StatusHoliday = "Holiday"
)

// Record is a raw attendance record as returned by the upstream API.
// Date is always present; punch times are nullable UTC instants and may
// describe an overnight shift (punch-out earlier in clock time than punch-in).
type Record struct {
	EmployeeID   string
	ProjectName  string
	Designation  string
	Date         string  // ISO date-time, the date portion is authoritative
	PunchInTime  *string // ISO date-time in UTC
	PunchOutTime *string // ISO date-time in UTC
	Status       string  // optional upstream status, used verbatim when set
}

// NormalizedRecord is a display-ready record after holiday/status/time
// reconciliation. Created once per raw record and never mutated afterwards.
type NormalizedRecord struct {
	EmployeeID       string  `json:"employee_id"`
	ProjectName      string  `json:"project_name"`
	Designation      string  `json:"designation"`
	Date             string  `json:"date"` // YYYY-MM-DD
	DisplayDate      string  `json:"display_date"`
	Status           string  `json:"status"`
	StatusCode       string  `json:"status_code"` // compact code for calendar/PDF cells, presentation only
	DayLabel         string  `json:"day_label"`
	PunchInTime      *string `json:"punch_in_time"`  // HH:MM AM/PM
	PunchOutTime     *string `json:"punch_out_time"` // HH:MM AM/PM
	TotalHoursWorked string  `json:"total_hours_worked"`
	IsLate           bool    `json:"is_late"`
	Remarks          string  `json:"remarks,omitempty"`
}
