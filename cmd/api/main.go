package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/cafm-ess/report-backend-go/internal/config"
	appHTTP "github.com/cafm-ess/report-backend-go/internal/handler/http"
	"github.com/cafm-ess/report-backend-go/internal/pkg/cafm"
	"github.com/cafm-ess/report-backend-go/internal/pkg/jwt"
	calendarService "github.com/cafm-ess/report-backend-go/internal/service/calendar"
	reportService "github.com/cafm-ess/report-backend-go/internal/service/report"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "cafm-ess-report"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	extraHolidays, err := calendarService.LoadHolidayFile(cfg.Report.HolidayCalendarPath)
	if err != nil {
		log.Fatal("Failed to load holiday calendar: ", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	cafmClient := cafm.NewClient(cfg.CAFM)
	classifier := calendarService.NewClassifier(extraHolidays)
	reportSvc := reportService.NewReportService(cafmClient, classifier, logger, cfg.Report.LogoPath)

	reportHandler := appHTTP.NewReportHandler(reportSvc)
	calendarHandler := appHTTP.NewCalendarHandler(classifier)

	router := appHTTP.NewRouter(logger, JWTService, reportHandler, calendarHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
