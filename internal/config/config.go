package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Logging
	LogLevel  string
	LogFormat string

	// PDF
	ReportProgress bool
}

func Load() Config {
	cfg := Config{
		LogLevel:  strings.ToLower(envOr("PAGESNIP_LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(envOr("PAGESNIP_LOG_FORMAT", "json")),

		ReportProgress: envBool("PAGESNIP_PROGRESS", true),
	}
	return cfg
}

func (c Config) Validate() error {
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("PAGESNIP_LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("PAGESNIP_LOG_LEVEL: %w", err)
	}
	return nil
}

// Level returns the configured slog level, or info if it does not parse.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
