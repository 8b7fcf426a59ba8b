// Package config provides configuration management for termclock.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/xvierd/termclock/internal/domain"
)

// EnvPrefix prefixes environment overrides, e.g. TERMCLOCK_CLOCK_SCALE.
const EnvPrefix = "TERMCLOCK"

// Config holds all configuration for termclock.
type Config struct {
	Color          string      `mapstructure:"color"`
	ColorDelimiter string      `mapstructure:"color_delimiter"`
	Clock          ClockConfig `mapstructure:"clock"`
}

// ClockConfig holds the defaults for the clock command flags.
type ClockConfig struct {
	RainbowMode bool   `mapstructure:"rainbow_mode"`
	Scale       int    `mapstructure:"scale"` // 0 means auto
	HideSeconds bool   `mapstructure:"hide_seconds"`
	OnePosition string `mapstructure:"one_position"`
	WithDate    bool   `mapstructure:"with_date"`
	DateFormat  string `mapstructure:"date_format"`
	Screensaver bool   `mapstructure:"screensaver"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Color:          domain.ColorGreen.String(),
		ColorDelimiter: domain.ColorGreen.String(),
		Clock: ClockConfig{
			OnePosition: domain.DefaultOnePosition.String(),
			DateFormat:  domain.DefaultDateFormat,
		},
	}
}

// Load reads the configuration from path, or from GetConfigPath when path
// is empty. A missing file yields the defaults. Environment variables
// override file values.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	v := newViper(path)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes cfg to path, or to GetConfigPath when path is empty.
func Save(path string, cfg *Config) error {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.Set("color", cfg.Color)
	v.Set("color_delimiter", cfg.ColorDelimiter)
	v.Set("clock.rainbow_mode", cfg.Clock.RainbowMode)
	v.Set("clock.scale", cfg.Clock.Scale)
	v.Set("clock.hide_seconds", cfg.Clock.HideSeconds)
	v.Set("clock.one_position", cfg.Clock.OnePosition)
	v.Set("clock.with_date", cfg.Clock.WithDate)
	v.Set("clock.date_format", cfg.Clock.DateFormat)
	v.Set("clock.screensaver", cfg.Clock.Screensaver)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to get home directory: %w", herr)
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "termclock", "config.toml"), nil
}

// Validate checks that every value parses into its domain type.
func (c *Config) Validate() error {
	if _, err := domain.ParseColor(c.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	if _, err := domain.ParseColor(c.ColorDelimiter); err != nil {
		return fmt.Errorf("color_delimiter: %w", err)
	}
	if _, err := domain.ParseOnePosition(c.Clock.OnePosition); err != nil {
		return fmt.Errorf("clock.one_position: %w", err)
	}
	if c.Clock.Scale < 0 || c.Clock.Scale > domain.MaxScale {
		return fmt.Errorf("clock.scale: %w", domain.ErrInvalidScale)
	}
	if strings.TrimSpace(c.Clock.DateFormat) == "" {
		return errors.New("clock.date_format must not be empty")
	}
	return nil
}

// ColorConfig converts the color settings to the domain type.
func (c *Config) ColorConfig() (domain.ColorConfig, error) {
	number, err := domain.ParseColor(c.Color)
	if err != nil {
		return domain.ColorConfig{}, fmt.Errorf("color: %w", err)
	}
	delimiter, err := domain.ParseColor(c.ColorDelimiter)
	if err != nil {
		return domain.ColorConfig{}, fmt.Errorf("color_delimiter: %w", err)
	}
	return domain.ColorConfig{
		Number:    number,
		Delimiter: delimiter,
		Rainbow:   c.Clock.RainbowMode,
	}, nil
}

// OnePosition converts the one_position setting to the domain type.
func (c *Config) OnePosition() domain.OnePosition {
	pos, err := domain.ParseOnePosition(c.Clock.OnePosition)
	if err != nil {
		return domain.DefaultOnePosition
	}
	return pos
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("color", defaults.Color)
	v.SetDefault("color_delimiter", defaults.ColorDelimiter)
	v.SetDefault("clock.rainbow_mode", defaults.Clock.RainbowMode)
	v.SetDefault("clock.scale", defaults.Clock.Scale)
	v.SetDefault("clock.hide_seconds", defaults.Clock.HideSeconds)
	v.SetDefault("clock.one_position", defaults.Clock.OnePosition)
	v.SetDefault("clock.with_date", defaults.Clock.WithDate)
	v.SetDefault("clock.date_format", defaults.Clock.DateFormat)
	v.SetDefault("clock.screensaver", defaults.Clock.Screensaver)
}
