// Package logging builds the structured loggers used across lvroute.
//
// Libraries in this module never log through a global: they accept an
// injected *slog.Logger and discard output when none is given. The binary
// builds exactly one logger here and threads it through.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrInvalidConfig reports an unknown level or format.
var ErrInvalidConfig = errors.New("logging: invalid config")

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects level, encoding and destination.
type Config struct {
	Level  string    // debug | info | warn | error; empty means info
	Format string    // text | json; empty means text
	Output io.Writer // nil means os.Stderr
}

// ParseLevel maps a level name (case-insensitive) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: level %q", ErrInvalidConfig, s)
	}
}

// New returns a logger for cfg. Errors only on an unknown level or format.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		h = slog.NewTextHandler(out, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(out, opts)
	default:
		return nil, fmt.Errorf("%w: format %q", ErrInvalidConfig, cfg.Format)
	}
	return slog.New(h).With(slog.String("service", "lvroute")), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger { return slog.New(slog.DiscardHandler) }
