// Package config loads process-level settings for the oasmerge CLI and MCP
// server from OASMERGE_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v9"
	"github.com/erraggy/oasmerge/parser"
)

// Config holds all configuration for the application.
type Config struct {
	Log   LogConfig
	Merge MergeConfig
	MCP   MCPConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `env:"OASMERGE_LOG_LEVEL" envDefault:"warn"`
}

// MergeConfig holds defaults for merge runs.
type MergeConfig struct {
	MaxSpecs       int    `env:"OASMERGE_MAX_SPECS" envDefault:"50"`
	MaxSchemaDepth int    `env:"OASMERGE_MAX_SCHEMA_DEPTH" envDefault:"0"`
	DefaultFormat  string `env:"OASMERGE_DEFAULT_FORMAT"`
	MergedTitle    string `env:"OASMERGE_MERGED_TITLE"`
	MergedVersion  string `env:"OASMERGE_MERGED_VERSION"`
}

// MCPConfig holds MCP server limits.
type MCPConfig struct {
	MaxInlineSize int64 `env:"OASMERGE_MAX_INLINE_SIZE" envDefault:"10485760"` // 10 MiB
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(&cfg.Log); err != nil {
		return nil, fmt.Errorf("parsing log config: %w", err)
	}
	if err := env.Parse(&cfg.Merge); err != nil {
		return nil, fmt.Errorf("parsing merge config: %w", err)
	}
	if err := env.Parse(&cfg.MCP); err != nil {
		return nil, fmt.Errorf("parsing mcp config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no OASMERGE_* variables are set.
func Default() *Config {
	cfg := &Config{}
	opts := env.Options{Environment: map[string]string{}}
	// Defaults are constant tags, so parsing an empty environment cannot fail.
	_ = env.ParseWithOptions(&cfg.Log, opts)
	_ = env.ParseWithOptions(&cfg.Merge, opts)
	_ = env.ParseWithOptions(&cfg.MCP, opts)
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if c.Merge.MaxSpecs <= 0 {
		return fmt.Errorf("OASMERGE_MAX_SPECS must be positive, got %d", c.Merge.MaxSpecs)
	}
	if c.Merge.MaxSchemaDepth < 0 {
		return fmt.Errorf("OASMERGE_MAX_SCHEMA_DEPTH must not be negative, got %d", c.Merge.MaxSchemaDepth)
	}
	if c.Merge.DefaultFormat != "" {
		if _, err := parser.ParseFormat(c.Merge.DefaultFormat); err != nil {
			return fmt.Errorf("OASMERGE_DEFAULT_FORMAT: %w", err)
		}
	}
	if c.MCP.MaxInlineSize <= 0 {
		return fmt.Errorf("OASMERGE_MAX_INLINE_SIZE must be positive, got %d", c.MCP.MaxInlineSize)
	}
	return nil
}

// SlogLevel returns the configured level as a slog.Level.
func (c *LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("OASMERGE_LOG_LEVEL must be one of debug, info, warn, error; got %q", c.Level)
	}
}

// Format returns the default output format, or parser.SourceFormatUnknown
// when the format of the first input should be used.
func (c *MergeConfig) Format() parser.SourceFormat {
	f, err := parser.ParseFormat(c.DefaultFormat)
	if err != nil {
		return parser.SourceFormatUnknown
	}
	return f
}
