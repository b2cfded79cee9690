// Package logging configures the structured logger shared by the game and its
// commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLevel overrides the configured level when the flag is not set.
const EnvLevel = "BULLCOW_LOG_LEVEL"

// Options selects the level and destination of a logger.
type Options struct {
	Level  string // Flag value; highest precedence.
	Config string // Level from the config file.
	File   string // Destination file; empty writes to Fallback.
	Prefix string

	Fallback io.Writer // Used when File is empty (os.Stderr when nil).
}

// ResolveLevel picks the level with precedence flag > env var > config > info.
func ResolveLevel(flag, config string) log.Level {
	for _, s := range []string{flag, os.Getenv(EnvLevel), config} {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if lvl, err := log.ParseLevel(s); err == nil {
			return lvl
		}
	}
	return log.InfoLevel
}

// New creates a logger. The returned close function releases the log file and
// is safe to call when no file was opened.
func New(opts Options) (*log.Logger, func() error, error) {
	var out io.Writer = os.Stderr
	if opts.Fallback != nil {
		out = opts.Fallback
	}
	closeFn := func() error { return nil }

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
			return nil, nil, fmt.Errorf("logging: create log dir: %w", err)
		}

		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path comes from configuration
		if err != nil {
			return nil, nil, fmt.Errorf("logging: open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           ResolveLevel(opts.Level, opts.Config),
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.File != "",
	})

	return logger, closeFn, nil
}
