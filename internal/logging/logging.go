package logging

import (
	"log/slog"
	"os"
	"strings"
)

const (
	JSONFormat = "json"
	TextFormat = "text"
)

// New builds a logger from level and format strings. Components receive the
// result explicitly; nothing in this module installs a global default.
func New(level, format string) *slog.Logger {
	return slog.New(NewHandler(level, format))
}

// NewHandler creates a [slog.Handler] writing to stderr.
func NewHandler(level, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: Level(level)}

	switch strings.ToLower(format) {
	case JSONFormat:
		return slog.NewJSONHandler(os.Stderr, opts)
	case TextFormat:
		return slog.NewTextHandler(os.Stderr, opts)
	default:
		return slog.NewTextHandler(os.Stderr, opts)
	}
}

// Level parses a level string, defaulting to info.
func Level(level string) slog.Level {
	switch strings.ToLower(level) {
	case "panic", "fatal", "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "debug", "trace":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
