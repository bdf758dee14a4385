// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/datepick/internal/calendar"
	"github.com/javiermolinar/datepick/internal/dateutil"
	"github.com/javiermolinar/datepick/internal/locale"
	"github.com/javiermolinar/datepick/internal/picker"
)

// envPrefix prefixes every environment override.
const envPrefix = "DATEPICK_"

// Config holds the application configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	Picker   PickerConfig   `toml:"picker"`
	UI       UIConfig       `toml:"ui"`
}

// CalendarConfig holds range computation and layout settings.
type CalendarConfig struct {
	WeekStartsOn   string `toml:"week_starts_on"` // weekday name or 0..6 (0 = sunday)
	ShowWeekNumber bool   `toml:"show_week_number"`
	DayStartHour   int    `toml:"day_start_hour"` // 0..23
	ShiftWeeks     bool   `toml:"shift_weeks"`
	ShiftMonths    bool   `toml:"shift_months"`
	MonthColumns   int    `toml:"month_columns"` // 3 or 4
	DisplayWidth   int    `toml:"display_width"`
	Locale         string `toml:"locale"` // BCP 47, e.g. "en-US"
}

// PickerConfig holds selection behavior settings.
type PickerConfig struct {
	Granularity      string `toml:"granularity"` // "day", "week", "month"
	Notify           string `toml:"notify"`      // "immediate", "close"
	NotifyOnNavigate bool   `toml:"notify_on_navigate"`
	Static           bool   `toml:"static"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// Default returns the default configuration.
func Default() *Config {
	opts := calendar.DefaultOptions()
	return &Config{
		Calendar: CalendarConfig{
			WeekStartsOn:   strings.ToLower(opts.WeekStartsOn.String()),
			ShowWeekNumber: opts.ShowWeekNumber,
			DayStartHour:   opts.DayStartHour,
			ShiftWeeks:     opts.ShiftWeeks,
			ShiftMonths:    opts.ShiftMonths,
			MonthColumns:   opts.MonthColumns,
			DisplayWidth:   opts.DisplayWidth,
			Locale:         opts.Locale,
		},
		Picker: PickerConfig{
			Granularity: calendar.Day.String(),
			Notify:      picker.NotifyImmediate.String(),
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "datepick", "config.toml")
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

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
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
func applyEnvOverrides(cfg *Config) error {
	// Calendar overrides
	if v := getenv("WEEK_STARTS_ON"); v != "" {
		cfg.Calendar.WeekStartsOn = v
	}
	if err := envBool("SHOW_WEEK_NUMBER", &cfg.Calendar.ShowWeekNumber); err != nil {
		return err
	}
	if err := envInt("DAY_START_HOUR", &cfg.Calendar.DayStartHour); err != nil {
		return err
	}
	if err := envBool("SHIFT_WEEKS", &cfg.Calendar.ShiftWeeks); err != nil {
		return err
	}
	if err := envBool("SHIFT_MONTHS", &cfg.Calendar.ShiftMonths); err != nil {
		return err
	}
	if err := envInt("MONTH_COLUMNS", &cfg.Calendar.MonthColumns); err != nil {
		return err
	}
	if err := envInt("DISPLAY_WIDTH", &cfg.Calendar.DisplayWidth); err != nil {
		return err
	}
	if v := getenv("LOCALE"); v != "" {
		cfg.Calendar.Locale = v
	}

	// Picker overrides
	if v := getenv("GRANULARITY"); v != "" {
		cfg.Picker.Granularity = v
	}
	if v := getenv("NOTIFY"); v != "" {
		cfg.Picker.Notify = v
	}
	if err := envBool("NOTIFY_ON_NAVIGATE", &cfg.Picker.NotifyOnNavigate); err != nil {
		return err
	}
	if err := envBool("STATIC", &cfg.Picker.Static); err != nil {
		return err
	}

	// UI overrides
	if v := getenv("UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

func getenv(name string) string {
	return strings.TrimSpace(os.Getenv(envPrefix + name))
}

func envInt(name string, dst *int) error {
	v := getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s%s must be an integer, got %q", calendar.ErrInvalidConfiguration, envPrefix, name, v)
	}
	*dst = n
	return nil
}

func envBool(name string, dst *bool) error {
	v := getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s%s must be true or false, got %q", calendar.ErrInvalidConfiguration, envPrefix, name, v)
	}
	*dst = b
	return nil
}

// Validate checks if the configuration is valid. Out-of-range values are
// rejected, never clamped.
func (c *Config) Validate() error {
	opts, err := c.CalendarOptions()
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if _, err := locale.New(opts.Locale); err != nil {
		return fmt.Errorf("%w: %w", calendar.ErrInvalidConfiguration, err)
	}
	if _, err := calendar.ParseGranularity(c.Picker.Granularity); err != nil {
		return err
	}
	mode, err := picker.ParseNotifyMode(c.Picker.Notify)
	if err != nil {
		return err
	}
	if c.Picker.Static && mode == picker.NotifyOnClose {
		return fmt.Errorf("%w: static pickers cannot use notify = %q", calendar.ErrInvalidConfiguration, c.Picker.Notify)
	}
	return nil
}

// CalendarOptions converts the [calendar] section to calendar.Options.
func (c *Config) CalendarOptions() (calendar.Options, error) {
	wd, err := parseWeekStart(c.Calendar.WeekStartsOn)
	if err != nil {
		return calendar.Options{}, err
	}
	return calendar.Options{
		WeekStartsOn:   wd,
		ShowWeekNumber: c.Calendar.ShowWeekNumber,
		DayStartHour:   c.Calendar.DayStartHour,
		ShiftWeeks:     c.Calendar.ShiftWeeks,
		ShiftMonths:    c.Calendar.ShiftMonths,
		MonthColumns:   c.Calendar.MonthColumns,
		DisplayWidth:   c.Calendar.DisplayWidth,
		Locale:         c.Calendar.Locale,
	}, nil
}

// PickerOptions converts the [picker] section to picker options.
func (c *Config) PickerOptions() ([]picker.Option, error) {
	g, err := calendar.ParseGranularity(c.Picker.Granularity)
	if err != nil {
		return nil, err
	}
	mode, err := picker.ParseNotifyMode(c.Picker.Notify)
	if err != nil {
		return nil, err
	}
	return []picker.Option{
		picker.WithGranularity(g),
		picker.WithNotifyMode(mode),
		picker.WithNotifyOnNavigate(c.Picker.NotifyOnNavigate),
		picker.WithStatic(c.Picker.Static),
	}, nil
}

// parseWeekStart accepts a weekday name or its number, 0 being sunday.
func parseWeekStart(s string) (time.Weekday, error) {
	if wd, ok := dateutil.ParseWeekday(s); ok {
		return wd, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: week_starts_on must be a weekday name or 0..6, got %q", calendar.ErrInvalidConfiguration, s)
	}
	if n < int(time.Sunday) || n > int(time.Saturday) {
		return 0, fmt.Errorf("%w: week_starts_on must be in 0..6, got %d", calendar.ErrInvalidConfiguration, n)
	}
	return time.Weekday(n), nil
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
