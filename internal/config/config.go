// Package config holds runtime settings for the calculator binaries.
package config

import "calcterm/internal/calculator"

const (
	ModeTUI     = "tui"
	ModeConsole = "console"
)

// Config contains configurable parameters for a calculator session.
// Use Default() to get sensible defaults, then override as needed.
type Config struct {
	// Session
	Theme        calculator.Theme // Initial theme (default: Light)
	HistoryLimit int              // Entries shown in the history panel (default: 10)
	Mode         string           // "tui" or "console" (default: "tui")

	// Logging
	LogFile  string // JSON log destination; empty disables logging
	LogLevel string // zap level name (default: "info")

	// Metrics
	MetricsEnabled bool // Export OTel metrics over OTLP/HTTP (default: false)

	// MCP server identity
	ServerName    string // default: "calcterm"
	ServerVersion string // default: "1.0.0"
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Theme:        calculator.ThemeLight,
		HistoryLimit: calculator.DefaultHistoryLimit,
		Mode:         ModeTUI,

		LogLevel: "info",

		ServerName:    "calcterm",
		ServerVersion: "1.0.0",
	}
}

// WithTheme returns a copy of the config with a different initial theme.
func (c Config) WithTheme(t calculator.Theme) Config {
	c.Theme = t
	return c
}

// WithHistoryLimit returns a copy of the config with a different history cap.
func (c Config) WithHistoryLimit(n int) Config {
	c.HistoryLimit = n
	return c
}

// WithMode returns a copy of the config with a different run mode.
func (c Config) WithMode(mode string) Config {
	c.Mode = mode
	return c
}

// WithLogFile returns a copy of the config logging to path.
func (c Config) WithLogFile(path string) Config {
	c.LogFile = path
	return c
}

// WithMetrics returns a copy of the config with metric export enabled/disabled.
func (c Config) WithMetrics(enabled bool) Config {
	c.MetricsEnabled = enabled
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if c.HistoryLimit <= 0 {
		return &ConfigError{Field: "HistoryLimit", Message: "must be positive"}
	}
	if c.Mode != ModeTUI && c.Mode != ModeConsole {
		return &ConfigError{Field: "Mode", Message: "must be \"tui\" or \"console\""}
	}
	if c.LogLevel == "" {
		return &ConfigError{Field: "LogLevel", Message: "must not be empty"}
	}
	if c.ServerName == "" {
		return &ConfigError{Field: "ServerName", Message: "must not be empty"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
