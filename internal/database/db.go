package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	_ "modernc.org/sqlite"

	"resource-directory/internal/config"
	"resource-directory/internal/models"
)

// New connects to the database named by cfg.DatabaseURL and returns a Bun DB handle.
func New(cfg *config.Config) (*bun.DB, error) {
	if cfg.IsSQLite() {
		return NewSQLite(cfg.SQLiteDSN(), cfg.BunDebug)
	}
	return NewPostgres(cfg.DatabaseURL, cfg.BunDebug)
}

// NewPostgres connects to Postgres through pgdriver.
func NewPostgres(dsn string, debug bool) (*bun.DB, error) {
	connector := pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(30*time.Second),
		pgdriver.WithDialTimeout(10*time.Second),
		pgdriver.WithReadTimeout(30*time.Second),
		pgdriver.WithWriteTimeout(10*time.Second),
	)

	sqldb := sql.OpenDB(connector)
	db := bun.NewDB(sqldb, pgdialect.New())

	// Configure connection pool
	sqldb.SetMaxOpenConns(25)
	sqldb.SetMaxIdleConns(10)
	sqldb.SetConnMaxLifetime(5 * time.Minute)
	sqldb.SetConnMaxIdleTime(10 * time.Minute)

	prepare(db, debug)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Directory reads are short; anything slower is a stuck query.
	_, err := db.ExecContext(ctx, `
		SET statement_timeout = '15s';
		SET idle_in_transaction_session_timeout = '60s';
	`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set database configuration: %w", err)
	}

	return db, nil
}

// NewSQLite opens a SQLite database through the pure-Go modernc driver. A
// single connection is kept open so in-memory databases survive between queries.
func NewSQLite(dsn string, debug bool) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %q: %w", dsn, err)
	}
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	prepare(db, debug)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("verify sqlite connection to %q: %w", dsn, err)
	}

	return db, nil
}

func prepare(db *bun.DB, debug bool) {
	// m2m join models must be known before any relation query runs
	db.RegisterModel((*models.ResourceCategory)(nil))

	if debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
}
