// Package config loads logspan settings from TOML, with LOGSPAN_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/logspan/internal/dateutil"
	"github.com/javiermolinar/logspan/internal/timeval"
	"github.com/javiermolinar/logspan/internal/tui/theme"
	"github.com/javiermolinar/logspan/internal/window"
)

// Config is the full logspan configuration.
type Config struct {
	Picker  PickerConfig  `toml:"picker"`
	Output  OutputConfig  `toml:"output"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// PickerConfig holds the initial state and rules of the range picker.
type PickerConfig struct {
	Timezone  string `toml:"timezone"`   // IANA name or "Local"
	SameDay   string `toml:"same_day"`   // "date" or "day_month"
	StartDay  string `toml:"start_day"`  // e.g., "today", "yesterday", "-2d", "2025-01-15"
	EndDay    string `toml:"end_day"`    // same syntax as start_day
	StartTime string `toml:"start_time"` // e.g., "00:00:00"
	EndTime   string `toml:"end_time"`   // e.g., "23:59:59"
}

// OutputConfig holds how the selected window is printed.
type OutputConfig struct {
	Format string `toml:"format"` // "rfc3339", "unix", "unix_ms", "unix_micro"
}

// StorageConfig holds history database settings.
type StorageConfig struct {
	DBPath  string `toml:"db_path"`
	History bool   `toml:"history"`
}

// UIConfig holds picker appearance settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// Default returns a configuration that picks the whole of today in local time.
func Default() *Config {
	return &Config{
		Picker: PickerConfig{
			Timezone:  "Local",
			SameDay:   dateutil.MatchDate,
			StartDay:  "today",
			EndDay:    "today",
			StartTime: "00:00:00",
			EndTime:   "23:59:59",
		},
		Output: OutputConfig{
			Format: window.FormatRFC3339,
		},
		Storage: StorageConfig{
			DBPath:  defaultDBPath(),
			History: true,
		},
		UI: UIConfig{
			Theme: theme.DefaultName,
		},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "logspan.db"
	}
	return filepath.Join(home, ".local", "share", "logspan", "history.db")
}

// DefaultConfigPath returns ~/.config/logspan/config.toml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "logspan", "config.toml")
}

// Load reads DefaultConfigPath.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom builds a validated Config: defaults, then the file at path if it
// exists, then environment overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile decodes path into cfg. A missing file is not an error.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies LOGSPAN_* environment variables, which take
// precedence over the file. Empty variables are ignored.
func applyEnvOverrides(cfg *Config) {
	vars := []struct {
		key string
		dst *string
	}{
		{"LOGSPAN_TIMEZONE", &cfg.Picker.Timezone},
		{"LOGSPAN_SAME_DAY", &cfg.Picker.SameDay},
		{"LOGSPAN_START_DAY", &cfg.Picker.StartDay},
		{"LOGSPAN_END_DAY", &cfg.Picker.EndDay},
		{"LOGSPAN_START_TIME", &cfg.Picker.StartTime},
		{"LOGSPAN_END_TIME", &cfg.Picker.EndTime},
		{"LOGSPAN_FORMAT", &cfg.Output.Format},
		{"LOGSPAN_DB_PATH", &cfg.Storage.DBPath},
		{"LOGSPAN_UI_THEME", &cfg.UI.Theme},
	}
	for _, v := range vars {
		if s := os.Getenv(v.key); s != "" {
			*v.dst = s
		}
	}

	if s := os.Getenv("LOGSPAN_HISTORY"); s != "" {
		enabled, err := strconv.ParseBool(s)
		cfg.Storage.History = err == nil && enabled
	}
}

// expandPath resolves a leading ~/ against the home directory.
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

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := dateutil.MatcherFor(c.Picker.SameDay); err != nil {
		return err
	}
	if _, err := dateutil.ParseDay(c.Picker.StartDay, time.Now()); err != nil {
		return fmt.Errorf("start_day: %w", err)
	}
	if _, err := dateutil.ParseDay(c.Picker.EndDay, time.Now()); err != nil {
		return fmt.Errorf("end_day: %w", err)
	}
	if _, err := timeval.Parse(c.Picker.StartTime); err != nil {
		return fmt.Errorf("start_time: %w", err)
	}
	if _, err := timeval.Parse(c.Picker.EndTime); err != nil {
		return fmt.Errorf("end_time: %w", err)
	}
	if !window.IsFormat(c.Output.Format) {
		return fmt.Errorf("invalid output format %q (expected one of %s)",
			c.Output.Format, strings.Join(window.Formats(), ", "))
	}
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (expected one of %s)",
			c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	if c.Storage.History && c.Storage.DBPath == "" {
		return errors.New("db_path must be set when history is enabled")
	}
	return nil
}

// Location returns the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Picker.Timezone {
	case "", "Local", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Picker.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Picker.Timezone, err)
	}
	return loc, nil
}

// DayMatcher returns the same-day rule used by the reconciler.
func (c *Config) DayMatcher() dateutil.DayMatcher {
	match, err := dateutil.MatcherFor(c.Picker.SameDay)
	if err != nil {
		return dateutil.SameDay
	}
	return match
}

// Save writes c to DefaultConfigPath.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes c to path, creating its directory.
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
