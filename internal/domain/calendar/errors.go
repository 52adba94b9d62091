package calendar

import "errors"

// Calendar domain errors
var (
	// ErrInvalidDate means a date string could not be parsed. Classification
	// fails explicitly instead of silently treating the date as a working day.
	ErrInvalidDate = errors.New("date string cannot be parsed")
)
