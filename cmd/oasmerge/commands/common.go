// Package commands provides CLI command handlers for oasmerge.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/oasmerge/internal/config"
	"github.com/erraggy/oasmerge/parser"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
// The empty string means the format of the first input.
func ValidateOutputFormat(format string) error {
	if format != "" && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatYAML, FormatJSON)
	}
	return nil
}

// ValidateOutputPath rejects an output path that would overwrite one of the inputs.
func ValidateOutputPath(output string, inputs []string) error {
	outAbs, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}
	for _, in := range inputs {
		inAbs, err := filepath.Abs(in)
		if err != nil {
			continue
		}
		if inAbs == outAbs {
			return fmt.Errorf("output file %s would overwrite input file %s", output, in)
		}
	}
	return nil
}

// contextRootFlag collects "source=/root" mappings. It may be given several
// times; the source is matched against an input's path or base name.
type contextRootFlag map[string]string

// String returns the string representation of the flag value
func (c contextRootFlag) String() string {
	if c == nil {
		return ""
	}
	pairs := make([]string, 0, len(c))
	for k, v := range c {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

// Set parses a "source=/root" value and adds it to the map
func (c contextRootFlag) Set(value string) error {
	source, root, ok := strings.Cut(value, "=")
	source = strings.TrimSpace(source)
	root = strings.TrimSpace(root)
	if !ok || source == "" || root == "" {
		return fmt.Errorf("invalid context root format: %q (expected source=/root)", value)
	}
	c[source] = root
	return nil
}

// lookup returns the context root configured for path.
func (c contextRootFlag) lookup(path string) string {
	if root, ok := c[path]; ok {
		return root
	}
	return c[filepath.Base(path)]
}

// newLogger builds the diagnostic logger from the OASMERGE_LOG_LEVEL setting.
func newLogger(cfg *config.Config) parser.Logger {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		level = slog.LevelWarn
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return parser.NewSlogAdapter(slog.New(handler))
}
