// Package config reads server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Supported DATABASE_DIALECT values.
const (
	DialectSQLite    = "sqlite"
	DialectPostgres  = "postgres"
	DialectMySQL     = "mysql"
	DialectSQLServer = "sqlserver"
	DialectDuckDB    = "duckdb"
)

// Config holds server settings.
type Config struct {
	DatabaseURL string
	Dialect     string
	Port        int
	LogLevel    slog.Level
	MaxPageSize int
	// Migrate creates the tables on startup.
	Migrate bool
}

// Load reads the environment, applying defaults for unset variables.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		DatabaseURL: "file:filterql.db?_time_format=sqlite",
		Dialect:     DialectSQLite,
		Port:        8080,
		LogLevel:    slog.LevelInfo,
		MaxPageSize: 500,
	}

	if v := getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}

	if v := getenv("DATABASE_DIALECT"); v != "" {
		switch d := strings.ToLower(v); d {
		case DialectSQLite, DialectPostgres, DialectMySQL, DialectSQLServer, DialectDuckDB:
			cfg.Dialect = d
		default:
			return Config{}, fmt.Errorf("DATABASE_DIALECT: unsupported dialect %q", v)
		}
	}

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("PORT: invalid port %q", v)
		}
		cfg.Port = port
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	if v := getenv("MAX_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("MAX_PAGE_SIZE: invalid size %q", v)
		}
		cfg.MaxPageSize = n
	}

	if v := getenv("MIGRATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("MIGRATE: %w", err)
		}
		cfg.Migrate = b
	}

	return cfg, nil
}
