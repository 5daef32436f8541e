// Package logging provides verbose build-trace output for the
// compile pipeline (normalize -> parse -> subset-construct -> freeze).
package logging

import (
	"fmt"
	"io"
	"os"
)

// Logger prints trace output for compilation stages when enabled.
type Logger struct {
	enabled bool
	out     io.Writer
}

// New creates a logger. When enabled is false, every method is a
// no-op, so callers never pay formatting cost on the hot compile path.
func New(enabled bool) *Logger {
	return &Logger{enabled: enabled, out: os.Stderr}
}

// SetOutput redirects trace output, mainly for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted trace line if enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.out, "[rxdfa] "+format+"\n", args...)
	}
}

// Stage prints a pipeline stage header if enabled.
func (l *Logger) Stage(name string) {
	if l.enabled {
		fmt.Fprintf(l.out, "\n[rxdfa] === %s ===\n", name)
	}
}

// Enabled reports whether trace output is active.
func (l *Logger) Enabled() bool {
	return l.enabled
}
