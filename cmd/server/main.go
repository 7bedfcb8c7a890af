package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/microsoft/go-mssqldb"
	_ "modernc.org/sqlite"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/duckdb"
	"github.com/zoobzio/filterql/entities"
	"github.com/zoobzio/filterql/executor/pgxexec"
	"github.com/zoobzio/filterql/executor/sqlexec"
	"github.com/zoobzio/filterql/internal/config"
	"github.com/zoobzio/filterql/internal/httpapi"
	"github.com/zoobzio/filterql/mssql"
	"github.com/zoobzio/filterql/mysql"
	"github.com/zoobzio/filterql/postgres"
	"github.com/zoobzio/filterql/repository"
	"github.com/zoobzio/filterql/sqlite"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	renderer, exec, closeDB, err := open(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	catalog, err := entities.NewCatalog(renderer, exec, repository.Config{
		Logger:      logger,
		MaxPageSize: cfg.MaxPageSize,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           httpapi.NewHandler(catalog, logger).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdown(server, logger, 10*time.Second)
	}()

	logger.Info("starting server", "addr", server.Addr, "dialect", cfg.Dialect, "entities", len(catalog.Names()))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// shutdown stops server, waiting up to timeout for open connections.
func shutdown(server *http.Server, logger *slog.Logger, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutting down server", "error", err)
	}
}

// open connects to the configured database and returns the matching renderer.
func open(ctx context.Context, cfg config.Config) (filterql.Renderer, repository.Executor, func(), error) {
	if cfg.Dialect == config.DialectPostgres {
		exec, err := pgxexec.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if cfg.Migrate {
			if err := migrate(ctx, "postgres", exec.Exec); err != nil {
				exec.Close()
				return nil, nil, nil, err
			}
		}
		return postgres.New(), exec, exec.Close, nil
	}

	var (
		driver   string
		renderer filterql.Renderer
		ddl      string
	)
	switch cfg.Dialect {
	case config.DialectSQLite:
		driver, renderer, ddl = "sqlite", sqlite.New(), "sqlite"
	case config.DialectMySQL:
		driver, renderer, ddl = "mysql", mysql.New(), "mysql"
	case config.DialectSQLServer:
		driver, renderer, ddl = "sqlserver", mssql.New(), "mssql"
	case config.DialectDuckDB:
		driver, renderer, ddl = "duckdb", duckdb.New(), "duckdb"
	default:
		return nil, nil, nil, fmt.Errorf("unsupported dialect %q", cfg.Dialect)
	}

	db, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("ping: %w", err)
	}
	if cfg.Migrate {
		exec := func(ctx context.Context, stmt string) error {
			_, err := db.ExecContext(ctx, stmt)
			return err
		}
		if err := migrate(ctx, ddl, exec); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			slog.Error("closing database", "error", err)
		}
	}
	return renderer, sqlexec.New(db, renderer.Capabilities()), closeDB, nil
}

func migrate(ctx context.Context, dialect string, exec func(context.Context, string) error) error {
	stmts, err := entities.DDL(dialect)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if err := exec(ctx, stmt); err != nil {
			return fmt.Errorf("running schema migration: %w", err)
		}
	}
	slog.Info("database migrated", "tables", len(stmts))
	return nil
}
