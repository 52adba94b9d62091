package http

import (
	"net/http"

	"github.com/cafm-ess/report-backend-go/internal/domain/calendar"
	"github.com/cafm-ess/report-backend-go/internal/handler/http/response"
	"github.com/cafm-ess/report-backend-go/internal/pkg/validator"
	calendarService "github.com/cafm-ess/report-backend-go/internal/service/calendar"
)

type CalendarHandler interface {
	// Day classification lookup
	GetDayType(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	classifier *calendarService.Classifier
}

func NewCalendarHandler(classifier *calendarService.Classifier) CalendarHandler {
	return &calendarHandlerImpl{
		classifier: classifier,
	}
}

// GetDayType handles GET /calendar/day-type?date=YYYY-MM-DD
func (h *calendarHandlerImpl) GetDayType(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if validator.IsEmpty(date) {
		response.BadRequest(w, "date parameter is required", nil)
		return
	}

	cls, err := h.classifier.ClassifyDate(date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calendar.NewClassificationResponse(date[:10], cls))
}
