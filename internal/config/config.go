package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the task manager.
type Config struct {
	DatabaseURL      string
	ReminderInterval time.Duration
}

// Load reads configuration from a .env file (if present) and the
// environment, with sane defaults. Reminders are off unless an interval
// is configured.
func Load() (Config, error) {
	// A missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ReminderInterval: parseInterval(strings.TrimSpace(os.Getenv("REMINDER_INTERVAL_HOURS"))),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "taskmanager.db"
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
