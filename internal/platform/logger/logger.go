package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Supported output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

// LoggerConfig selects the level and output format of the application logger.
type LoggerConfig struct {
	Level  string // debug, info, warn, error; anything else falls back to info
	Format string // json (default) or text
}

// ParseLevel converts a level name to a slog.Level (case-insensitive).
// The second result is false when the name is not recognized.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New builds a logger writing to w according to cfg.
func New(w io.Writer, cfg LoggerConfig) (*slog.Logger, error) {
	level, ok := ParseLevel(cfg.Level)

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case FormatJSON, "":
		handler = slog.NewJSONHandler(w, opts)
	case FormatText:
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	logger := slog.New(handler)
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}
	return logger, nil
}

// Setup initializes the application's logging system: it builds a logger on
// stdout from cfg and sets it as the slog default, so package-level slog
// calls use the same handler.
func Setup(cfg LoggerConfig) (*slog.Logger, error) {
	logger, err := New(os.Stdout, cfg)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)
	return logger, nil
}
