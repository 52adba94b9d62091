package report

import "errors"

// Report domain errors
var (
	// ErrUpstreamUnavailable covers failed attendance or monthly-stats calls.
	// A failed leave-history call is not fatal and never surfaces as an error.
	ErrUpstreamUnavailable = errors.New("attendance data source is unavailable")

	// ErrExportFailed means the document or spreadsheet library failed;
	// no partial file is offered for download.
	ErrExportFailed = errors.New("report export failed")

	ErrMissingEmployeeClaim = errors.New("employee_id claim is missing or invalid")
)
