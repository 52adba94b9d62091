package http

import (
	"log/slog"

	"github.com/cafm-ess/report-backend-go/internal/handler/http/middleware"
	"github.com/cafm-ess/report-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(logger *slog.Logger, JWTService jwt.Service, reportHandler ReportHandler, calendarHandler CalendarHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/reports/attendance", func(r chi.Router) {
				r.Get("/", reportHandler.GetMonthlyReport)
				r.Route("/export", func(r chi.Router) {
					r.Get("/spreadsheet", reportHandler.ExportSpreadsheet)
					r.Get("/document", reportHandler.ExportDocument)
				})
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/day-type", calendarHandler.GetDayType)
			})
		})
	})
	return r
}
