package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the planner service.
type Config struct {
	DatabaseURL      string
	GenerateInterval time.Duration
	DaysAhead        int
	LogLevel         string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		GenerateInterval: parseInterval(strings.TrimSpace(os.Getenv("GENERATE_INTERVAL_HOURS"))),
		LogLevel:         strings.TrimSpace(os.Getenv("LOG_LEVEL")),
	}

	daysAhead, err := parseDaysAhead(strings.TrimSpace(os.Getenv("GENERATE_DAYS_AHEAD")))
	if err != nil {
		return cfg, err
	}
	cfg.DaysAhead = daysAhead

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "project_planner.db"
	}

	if cfg.GenerateInterval == 0 {
		cfg.GenerateInterval = 6 * time.Hour
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}

func parseDaysAhead(raw string) (int, error) {
	if raw == "" {
		return 7, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("GENERATE_DAYS_AHEAD must be a positive integer, got %q", raw)
	}
	return n, nil
}
