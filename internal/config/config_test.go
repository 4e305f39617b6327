package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REMINDER_INTERVAL_HOURS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseURL != "taskmanager.db" {
		t.Errorf("database url: got %q", cfg.DatabaseURL)
	}
	if cfg.ReminderInterval != 0 {
		t.Errorf("reminders should default to off, got %v", cfg.ReminderInterval)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "/tmp/tasks.db")
	t.Setenv("REMINDER_INTERVAL_HOURS", "6")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseURL != "/tmp/tasks.db" {
		t.Errorf("database url: got %q", cfg.DatabaseURL)
	}
	if cfg.ReminderInterval != 6*time.Hour {
		t.Errorf("interval: got %v", cfg.ReminderInterval)
	}
}

func TestParseIntervalGarbage(t *testing.T) {
	for _, raw := range []string{"abc", "-2", "0"} {
		if got := parseInterval(raw); got != 0 {
			t.Errorf("parseInterval(%q) = %v, want 0", raw, got)
		}
	}
}
