package mcpserver

import (
	"log/slog"

	"github.com/erraggy/oasmerge/internal/config"
)

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASMERGE_* environment variables.
// An invalid environment logs a warning and falls back to the defaults.
func loadConfig() *config.Config {
	c, err := config.Load()
	if err != nil {
		slog.Warn("invalid OASMERGE_* configuration, using defaults", "error", err)
		return config.Default()
	}
	return c
}
