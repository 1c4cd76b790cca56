// Package config handles configuration loading from files, defaults, and environment variables.
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

	"github.com/javiermolinar/statusbox/internal/tui/indicator"
	"github.com/javiermolinar/statusbox/internal/tui/theme"
)

// Indicator period limits.
const (
	MinIndicatorPeriod = 50 * time.Millisecond
	MaxIndicatorPeriod = 5 * time.Second
)

// Config holds the application configuration.
type Config struct {
	UI        UIConfig        `toml:"ui"`
	Indicator IndicatorConfig `toml:"indicator"`
	Layout    LayoutConfig    `toml:"layout"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "default", "mocha", "frappe", "latte"
}

// IndicatorConfig holds loading indicator settings.
type IndicatorConfig struct {
	Animation        string `toml:"animation"`          // "scale" or "rotate"
	Period           string `toml:"period"`             // e.g., "300ms"
	HidesWhenStopped bool   `toml:"hides_when_stopped"` // Hide the dots when not loading
}

// LayoutConfig holds overlay placement settings.
type LayoutConfig struct {
	ReadableWidth int `toml:"readable_width"` // Max overlay width in cells, 0 for no cap
	Margin        int `toml:"margin"`         // Horizontal inset in cells
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: theme.DefaultName,
		},
		Indicator: IndicatorConfig{
			Animation:        indicator.AnimationScale,
			Period:           indicator.DefaultPeriod.String(),
			HidesWhenStopped: true,
		},
		Layout: LayoutConfig{
			ReadableWidth: 72,
			Margin:        2,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "statusbox", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
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
	if v := os.Getenv("STATUSBOX_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("STATUSBOX_INDICATOR_ANIMATION"); v != "" {
		cfg.Indicator.Animation = v
	}
	if v := os.Getenv("STATUSBOX_INDICATOR_PERIOD"); v != "" {
		cfg.Indicator.Period = v
	}
	if v := os.Getenv("STATUSBOX_READABLE_WIDTH"); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("STATUSBOX_READABLE_WIDTH must be an integer, got %q", v)
		}
		cfg.Layout.ReadableWidth = w
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	if _, err := indicator.ParseAnimation(c.Indicator.Animation); err != nil {
		return err
	}
	if _, err := c.IndicatorPeriod(); err != nil {
		return err
	}
	if c.Layout.ReadableWidth < 0 {
		return errors.New("readable_width must not be negative")
	}
	if c.Layout.Margin < 0 {
		return errors.New("margin must not be negative")
	}
	return nil
}

// IndicatorPeriod parses and bounds-checks the indicator period.
func (c *Config) IndicatorPeriod() (time.Duration, error) {
	d, err := time.ParseDuration(c.Indicator.Period)
	if err != nil {
		return 0, fmt.Errorf("period must be a duration like 300ms, got %q", c.Indicator.Period)
	}
	if d < MinIndicatorPeriod || d > MaxIndicatorPeriod {
		return 0, fmt.Errorf("period must be between %s and %s, got %s", MinIndicatorPeriod, MaxIndicatorPeriod, d)
	}
	return d, nil
}

// Animation returns the configured indicator animation.
func (c *Config) Animation() indicator.Animation {
	a, err := indicator.ParseAnimation(c.Indicator.Animation)
	if err != nil {
		return indicator.ScaleEmphasis{}
	}
	return a
}

// Theme loads the configured theme.
func (c *Config) Theme() (theme.Theme, error) {
	return theme.Load(c.UI.Theme)
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
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
