package leave

// HistoryEntry is a single leave request as returned by the upstream API.
type HistoryEntry struct {
	StartDate    string  `json:"start_date"`
	LeaveType    string  `json:"leave_type"`
	NumberOfDays float64 `json:"number_of_days"`
	Status       string  `json:"status"`
	Reason       string  `json:"reason"`
	IsHalfDay    bool    `json:"is_half_day"`
}

// Balances holds the remaining quota per leave type. Nil means the upstream
// stats call did not report that type; exports render it as "0".
type Balances struct {
	EarnedLeave *float64 `json:"earned_leave"`
	CasualLeave *float64 `json:"casual_leave"`
	SickLeave   *float64 `json:"sick_leave"`
	CompOff     *float64 `json:"comp_off"`
}
