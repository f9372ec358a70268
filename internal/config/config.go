// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/lifegrid/internal/schedule"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// ScheduleConfig holds the awake window and the default grid rows.
type ScheduleConfig struct {
	WakeTime     string   `toml:"wake_time"`     // e.g., "07:30"
	SleepTime    string   `toml:"sleep_time"`    // e.g., "23:00"
	Slots        []string `toml:"slots"`         // default rows, "HH:MM"
	TickInterval string   `toml:"tick_interval"` // e.g., "1s"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// LogConfig holds log file settings.
type LogConfig struct {
	Dir   string `toml:"dir"`
	Debug bool   `toml:"debug"`
}

// DefaultSlots are the rows of a fresh grid.
var DefaultSlots = []string{
	"07:30", "08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00", "19:00", "20:00", "21:00", "22:00", "23:00",
}

// Default returns the default configuration.
func Default() *Config {
	slots := make([]string, len(DefaultSlots))
	copy(slots, DefaultSlots)
	return &Config{
		Schedule: ScheduleConfig{
			WakeTime:     "07:30",
			SleepTime:    "23:00",
			Slots:        slots,
			TickInterval: "1s",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "frappe",
		},
		Log: LogConfig{
			Dir: defaultLogDir(),
		},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lifegrid.db"
	}
	return filepath.Join(home, ".local", "share", "lifegrid", "lifegrid.db")
}

func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "logs"
	}
	return filepath.Join(home, ".local", "state", "lifegrid")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "lifegrid", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Log.Dir = expandPath(cfg.Log.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFEGRID_WAKE_TIME"); v != "" {
		cfg.Schedule.WakeTime = v
	}
	if v := os.Getenv("LIFEGRID_SLEEP_TIME"); v != "" {
		cfg.Schedule.SleepTime = v
	}
	if v := os.Getenv("LIFEGRID_SLOTS"); v != "" {
		cfg.Schedule.Slots = strings.Split(v, ",")
	}
	if v := os.Getenv("LIFEGRID_TICK_INTERVAL"); v != "" {
		cfg.Schedule.TickInterval = v
	}
	if v := os.Getenv("LIFEGRID_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("LIFEGRID_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("LIFEGRID_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv("LIFEGRID_DEBUG"); v == "1" || strings.EqualFold(v, "true") {
		cfg.Log.Debug = true
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validateTime(c.Schedule.WakeTime, "wake_time"); err != nil {
		return err
	}
	if err := validateTime(c.Schedule.SleepTime, "sleep_time"); err != nil {
		return err
	}
	if c.Schedule.WakeTime >= c.Schedule.SleepTime {
		return errors.New("wake_time must be before sleep_time")
	}

	if len(c.Schedule.Slots) == 0 {
		return errors.New("at least one slot must be configured")
	}
	seen := make(map[string]bool, len(c.Schedule.Slots))
	for i, s := range c.Schedule.Slots {
		s = strings.TrimSpace(s)
		if err := validateTime(s, fmt.Sprintf("slots[%d]", i)); err != nil {
			return err
		}
		if seen[s] {
			return fmt.Errorf("duplicate slot %s", s)
		}
		seen[s] = true
	}

	d, err := time.ParseDuration(c.Schedule.TickInterval)
	if err != nil {
		return fmt.Errorf("tick_interval: %w", err)
	}
	if d < 100*time.Millisecond || d > time.Minute {
		return fmt.Errorf("tick_interval must be between 100ms and 1m, got %s", d)
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// validateTime checks if a time string is in HH:MM format.
func validateTime(t, field string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	hour := t[0:2]
	min := t[3:5]
	if !isDigits(hour) || !isDigits(min) {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	if hour > "23" || min > "59" {
		return fmt.Errorf("%s is out of range, got %q", field, t)
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// WakeHour returns wake_time as a fractional hour.
func (c *Config) WakeHour() float64 {
	return hourOf(c.Schedule.WakeTime)
}

// SleepHour returns sleep_time as a fractional hour.
func (c *Config) SleepHour() float64 {
	return hourOf(c.Schedule.SleepTime)
}

// SlotTimes returns the configured default rows, sorted.
func (c *Config) SlotTimes() []schedule.TimeSlot {
	out := make([]schedule.TimeSlot, 0, len(c.Schedule.Slots))
	for _, s := range c.Schedule.Slots {
		out = append(out, schedule.TimeSlot(hourOf(strings.TrimSpace(s))))
	}
	schedule.SortSlots(out)
	return out
}

// Tick returns the tracker tick interval, one second if unset or invalid.
func (c *Config) Tick() time.Duration {
	d, err := time.ParseDuration(c.Schedule.TickInterval)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

// hourOf converts an already validated "HH:MM" string.
func hourOf(t string) float64 {
	if len(t) < 5 {
		return 0
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return float64(hours) + float64(mins)/60
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
