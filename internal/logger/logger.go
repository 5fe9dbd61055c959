// Package logger configures structured logging for themec.
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// New returns a logger writing to w at the given level (debug, info, warn,
// error). An empty level means DefaultLevel. Timestamps are omitted.
func New(w io.Writer, level string) (*log.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	l := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: false,
	})
	return l, nil
}

// WithPrefix returns a child logger tagged with a component name.
func WithPrefix(l *log.Logger, component string) *log.Logger {
	return l.WithPrefix(component)
}
