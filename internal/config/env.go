package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"calcterm/internal/calculator"

	"github.com/joho/godotenv"
)

// Environment keys read by Load.
const (
	EnvTheme         = "CALC_THEME"
	EnvHistoryLimit  = "CALC_HISTORY_LIMIT"
	EnvMode          = "CALC_MODE"
	EnvLogFile       = "CALC_LOG_FILE"
	EnvLogLevel      = "CALC_LOG_LEVEL"
	EnvMetrics       = "CALC_METRICS"
	EnvServerName    = "CALC_MCP_NAME"
	EnvServerVersion = "CALC_MCP_VERSION"
)

// LoadDotEnv loads variables from the given .env files when present.
// Existing process environment variables are not overridden.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		err := godotenv.Load(f)
		if err == nil || errors.Is(err, os.ErrNotExist) {
			continue
		}
		return fmt.Errorf("load %s: %w", f, err)
	}
	return nil
}

// FromEnv overlays environment settings on Default() and validates the result.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv(EnvTheme); v != "" {
		t, err := calculator.ParseTheme(v)
		if err != nil {
			return cfg, &ConfigError{Field: "Theme", Message: err.Error()}
		}
		cfg.Theme = t
	}

	if v := getenv(EnvHistoryLimit); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, &ConfigError{Field: "HistoryLimit", Message: "must be an integer"}
		}
		cfg.HistoryLimit = n
	}

	if v := getenv(EnvMode); v != "" {
		cfg.Mode = strings.ToLower(strings.TrimSpace(v))
	}
	if v := getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if v := getenv(EnvMetrics); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, &ConfigError{Field: "MetricsEnabled", Message: "must be a boolean"}
		}
		cfg.MetricsEnabled = b
	}

	if v := getenv(EnvServerName); v != "" {
		cfg.ServerName = v
	}
	if v := getenv(EnvServerVersion); v != "" {
		cfg.ServerVersion = v
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load reads .env (if any) and then the process environment.
func Load() (Config, error) {
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}
	return FromEnv(os.Getenv)
}
