package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Schedule.WakeTime != "07:30" {
		t.Errorf("expected wake_time 07:30, got %s", cfg.Schedule.WakeTime)
	}
	if cfg.Schedule.SleepTime != "23:00" {
		t.Errorf("expected sleep_time 23:00, got %s", cfg.Schedule.SleepTime)
	}
	if len(cfg.Schedule.Slots) != len(DefaultSlots) {
		t.Errorf("expected %d slots, got %d", len(DefaultSlots), len(cfg.Schedule.Slots))
	}
	if cfg.WakeHour() != 7.5 || cfg.SleepHour() != 23 {
		t.Errorf("hours = %v/%v, want 7.5/23", cfg.WakeHour(), cfg.SleepHour())
	}
	if cfg.Tick() != time.Second {
		t.Errorf("expected 1s tick, got %s", cfg.Tick())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Schedule.WakeTime != "07:30" {
		t.Errorf("expected default wake_time, got %s", cfg.Schedule.WakeTime)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[schedule]
wake_time = "06:00"
sleep_time = "22:30"
slots = ["09:00", "06:00", "12:30"]
tick_interval = "500ms"

[storage]
db_path = "/tmp/test.db"

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.WakeHour() != 6 {
		t.Errorf("expected wake hour 6, got %v", cfg.WakeHour())
	}
	if cfg.SleepHour() != 22.5 {
		t.Errorf("expected sleep hour 22.5, got %v", cfg.SleepHour())
	}
	slots := cfg.SlotTimes()
	if len(slots) != 3 || slots[0] != 6 || slots[2] != 12.5 {
		t.Errorf("expected sorted slots [6 9 12.5], got %v", slots)
	}
	if cfg.Tick() != 500*time.Millisecond {
		t.Errorf("expected 500ms tick, got %s", cfg.Tick())
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[schedule\nwake_time ="), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[schedule]
wake_time = "06:00"
sleep_time = "22:00"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("LIFEGRID_WAKE_TIME", "08:00")
	t.Setenv("LIFEGRID_SLOTS", "08:00,10:00")
	t.Setenv("LIFEGRID_DEBUG", "true")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Schedule.WakeTime != "08:00" {
		t.Errorf("expected wake_time 08:00 from env, got %s", cfg.Schedule.WakeTime)
	}
	if cfg.Schedule.SleepTime != "22:00" {
		t.Errorf("expected sleep_time 22:00 from file, got %s", cfg.Schedule.SleepTime)
	}
	if len(cfg.Schedule.Slots) != 2 {
		t.Errorf("expected 2 slots from env, got %v", cfg.Schedule.Slots)
	}
	if !cfg.Log.Debug {
		t.Error("expected debug from env")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "wake missing leading zero", mutate: func(c *Config) { c.Schedule.WakeTime = "7:30" }},
		{name: "sleep out of range", mutate: func(c *Config) { c.Schedule.SleepTime = "24:00" }},
		{name: "wake after sleep", mutate: func(c *Config) { c.Schedule.WakeTime = "23:30" }},
		{name: "wake equals sleep", mutate: func(c *Config) { c.Schedule.WakeTime = "23:00" }},
		{name: "no slots", mutate: func(c *Config) { c.Schedule.Slots = nil }},
		{name: "bad slot", mutate: func(c *Config) { c.Schedule.Slots = []string{"noon"} }},
		{name: "duplicate slot", mutate: func(c *Config) { c.Schedule.Slots = []string{"09:00", "09:00"} }},
		{name: "bad tick", mutate: func(c *Config) { c.Schedule.TickInterval = "often" }},
		{name: "tick too fast", mutate: func(c *Config) { c.Schedule.TickInterval = "1ms" }},
		{name: "empty db path", mutate: func(c *Config) { c.Storage.DBPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Schedule.WakeTime = "06:15"
	cfg.UI.Theme = "mocha"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if loaded.Schedule.WakeTime != "06:15" || loaded.UI.Theme != "mocha" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/x.db"); got != filepath.Join(home, "x.db") {
		t.Errorf("expandPath(~/x.db) = %q", got)
	}
	if got := expandPath("/abs/x.db"); got != "/abs/x.db" {
		t.Errorf("expandPath(/abs/x.db) = %q", got)
	}
}
