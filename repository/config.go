package repository

import (
	"log/slog"
	"os"
)

// Config holds optional repository settings.
type Config struct {
	// Logger receives query logs. Defaults to a text handler on stderr.
	Logger *slog.Logger
	// LogLevel applies to the default logger. Defaults to Info.
	LogLevel *slog.Level
	// MaxPageSize rejects larger windows. 0 means no limit.
	MaxPageSize int
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	level := slog.LevelInfo
	if c.LogLevel != nil {
		level = *c.LogLevel
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
