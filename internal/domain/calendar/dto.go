package calendar

type ClassificationResponse struct {
	Date        string `json:"date"`
	IsHoliday   bool   `json:"is_holiday"`
	DayType     string `json:"day_type"`
	HolidayName string `json:"holiday_name,omitempty"`
	Label       string `json:"label"`
}

func NewClassificationResponse(date string, c Classification) ClassificationResponse {
	return ClassificationResponse{
		Date:        date,
		IsHoliday:   c.IsHoliday,
		DayType:     string(c.DayType),
		HolidayName: c.HolidayName,
		Label:       c.Label,
	}
}
