// Package config loads the CLI-level defaults for codemonkey: the handful
// of settings that apply before a script's own front matter is read (and
// that front matter always overrides, for a given run).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ThemeConfig allows customization of TUI colors.
// Colors can be ANSI color numbers (0-255) or hex codes (#RRGGBB).
type ThemeConfig struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Success   string `mapstructure:"success"`
	Error     string `mapstructure:"error"`
	Warning   string `mapstructure:"warning"`
	Muted     string `mapstructure:"muted"`
	Text      string `mapstructure:"text"`
	Spinner   string `mapstructure:"spinner"`
}

// Config holds CLI-level defaults, loaded from ~/.config/codemonkey/config.yaml.
type Config struct {
	// AgentPort is the port the agent command binds when --port is not
	// given. The script's front-matter agent_port is not consulted, and
	// present does not use this value (its --agent flag carries the port).
	AgentPort int `mapstructure:"agent_port"`

	// TypingSpeedMs and TypingVarianceMs are loaded but not read by any
	// command: the Controller sends the script's front-matter values
	// (which default to 40 and 15 when the keys are absent).
	TypingSpeedMs    int `mapstructure:"typing_speed_ms"`
	TypingVarianceMs int `mapstructure:"typing_variance_ms"`

	// AckTimeoutSeconds bounds how long the Controller waits for an Ack.
	AckTimeoutSeconds int `mapstructure:"ack_timeout_seconds"`

	// ThemeName selects a built-in preset (see internal/ui.PresetThemes)
	// before any per-color keys in Theme are applied on top of it.
	ThemeName string      `mapstructure:"theme_name"`
	Theme     ThemeConfig `mapstructure:"theme"`

	// LogRuns enables the optional sqlite run history by default.
	LogRuns bool `mapstructure:"log_runs"`
}

// Defaults returns the built-in values used when no config file, no flag,
// and no front-matter key supplies a given setting.
func Defaults() Config {
	return Config{
		AgentPort:         9876,
		TypingSpeedMs:     40,
		TypingVarianceMs:  15,
		AckTimeoutSeconds: 30,
	}
}

// GetConfigDir returns the XDG config directory for codemonkey.
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "codemonkey"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "codemonkey"), nil
}

// GetConfigPath returns the path where the config file should live.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads ~/.config/codemonkey/config.yaml (if present) layered over
// Defaults(). A missing file is not an error.
func Load() (*Config, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("get config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	d := Defaults()
	v.SetDefault("agent_port", d.AgentPort)
	v.SetDefault("typing_speed_ms", d.TypingSpeedMs)
	v.SetDefault("typing_variance_ms", d.TypingVarianceMs)
	v.SetDefault("ack_timeout_seconds", d.AckTimeoutSeconds)
	v.SetDefault("log_runs", d.LogRuns)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
