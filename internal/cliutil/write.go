// Package cliutil provides output helpers for the oasmerge commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Reporter writes a command's diagnostic lines. A quiet reporter writes nothing,
// so output can be piped into another tool.
type Reporter struct {
	w     io.Writer
	quiet bool
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer, quiet bool) *Reporter {
	return &Reporter{w: w, quiet: quiet}
}

// Warnf writes one line prefixed with "Warning: ".
func (r *Reporter) Warnf(format string, args ...any) {
	r.linef("Warning: ", format, args...)
}

// Infof writes one line.
func (r *Reporter) Infof(format string, args ...any) {
	r.linef("", format, args...)
}

func (r *Reporter) linef(prefix, format string, args ...any) {
	if r == nil || r.quiet {
		return
	}
	Writef(r.w, prefix+format+"\n", args...)
}
