package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	JWT    JWTConfig
	CAFM   CAFMConfig
	Report ReportConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// CAFMConfig holds the upstream employee self-service API configuration
type CAFMConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// ReportConfig holds export configuration
type ReportConfig struct {
	LogoPath            string // optional header logo embedded in PDF reports
	HolidayCalendarPath string // optional JSON file extending the built-in holiday list
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Upstream API configuration
	cafmTimeout, err := time.ParseDuration(getEnv("CAFM_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CAFM_TIMEOUT: %w", err)
	}

	config.CAFM = CAFMConfig{
		BaseURL: getEnv("CAFM_BASE_URL", "https://cafm.zenapi.co.in"),
		APIKey:  getEnv("CAFM_API_KEY", ""),
		Timeout: cafmTimeout,
	}

	// Report configuration
	config.Report = ReportConfig{
		LogoPath:            getEnv("REPORT_LOGO_PATH", ""),
		HolidayCalendarPath: getEnv("HOLIDAY_CALENDAR_PATH", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.CAFM.BaseURL == "" {
		return fmt.Errorf("CAFM_BASE_URL is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
