// Package logging builds the charmbracelet logger. The TUI owns the
// terminal, so logs only ever go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New opens path for appending and returns a logger at level writing to it.
// An empty path returns a logger that discards everything. The caller
// closes the returned Closer on exit.
func New(path, level string) (*charmlog.Logger, io.Closer, error) {
	lvl := charmlog.InfoLevel
	if level != "" {
		var err error
		lvl, err = charmlog.ParseLevel(level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
	}

	if path == "" {
		return newLogger(io.Discard, lvl), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, lvl), f, nil
}

func newLogger(w io.Writer, lvl charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		Prefix:          "portanav",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmlog.LogfmtFormatter,
	})
}
