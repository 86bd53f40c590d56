package configs

import (
	"log/slog"
	"strings"
)

// Logger configures the service's slog logger. Level sets the minimum
// level emitted ("debug", "info", "warn", "error"); Format picks the
// handler encoding, "text" (default) or "json". Unknown values of
// either fall back to the default.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// SlogLevel maps the configured level onto a slog.Level, defaulting to
// slog.LevelInfo for anything it does not recognise.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat normalises the requested format to either "text" or "json",
// returning "text" for anything else.
func (c Logger) SlogFormat() string {
	switch strings.ToLower(c.Format) {
	case "json":
		return "json"
	default:
		return "text"
	}
}
