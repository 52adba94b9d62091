package response

import (
	"errors"
	"net/http"

	"github.com/cafm-ess/report-backend-go/internal/domain/calendar"
	"github.com/cafm-ess/report-backend-go/internal/domain/report"
	"github.com/cafm-ess/report-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Calendar domain errors
	case errors.Is(err, calendar.ErrInvalidDate):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrMissingEmployeeClaim):
		Unauthorized(w, "Employee identity missing from token")
	case errors.Is(err, report.ErrUpstreamUnavailable):
		BadGateway(w, "Attendance data source is unavailable")
	case errors.Is(err, report.ErrExportFailed):
		InternalServerError(w, "Report export failed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
