package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/erraggy/oasmerge/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"OASMERGE_LOG_LEVEL", "OASMERGE_MAX_SPECS", "OASMERGE_MAX_SCHEMA_DEPTH",
		"OASMERGE_DEFAULT_FORMAT", "OASMERGE_MERGED_TITLE", "OASMERGE_MERGED_VERSION",
		"OASMERGE_MAX_INLINE_SIZE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 50, cfg.Merge.MaxSpecs)
	assert.Zero(t, cfg.Merge.MaxSchemaDepth)
	assert.Empty(t, cfg.Merge.DefaultFormat)
	assert.Equal(t, parser.SourceFormatUnknown, cfg.Merge.Format())
	assert.Equal(t, int64(10<<20), cfg.MCP.MaxInlineSize)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("OASMERGE_LOG_LEVEL", "debug")
	t.Setenv("OASMERGE_MAX_SPECS", "3")
	t.Setenv("OASMERGE_DEFAULT_FORMAT", "json")
	t.Setenv("OASMERGE_MERGED_TITLE", "Platform API")
	t.Setenv("OASMERGE_MERGED_VERSION", "2.0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Merge.MaxSpecs)
	assert.Equal(t, parser.SourceFormatJSON, cfg.Merge.Format())
	assert.Equal(t, "Platform API", cfg.Merge.MergedTitle)
	assert.Equal(t, "2.0", cfg.Merge.MergedVersion)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unparsable int", "OASMERGE_MAX_SPECS", "many"},
		{"zero max specs", "OASMERGE_MAX_SPECS", "0"},
		{"negative depth", "OASMERGE_MAX_SCHEMA_DEPTH", "-1"},
		{"unknown format", "OASMERGE_DEFAULT_FORMAT", "toml"},
		{"unknown level", "OASMERGE_LOG_LEVEL", "loud"},
		{"zero inline size", "OASMERGE_MAX_INLINE_SIZE", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			c := LogConfig{Level: tt.level}
			got, err := c.SlogLevel()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault(t *testing.T) {
	t.Setenv("OASMERGE_MAX_SPECS", "7")

	cfg := Default()
	assert.Equal(t, 50, cfg.Merge.MaxSpecs, "Default ignores the environment")
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}
