// Package database opens the PostgreSQL-backed ent client, applies the
// embedded migrations, and reports pool health. Connection settings live
// in pkg/config with the rest of the process configuration.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver for database/sql

	"github.com/waflow/waflow/ent"
	"github.com/waflow/waflow/pkg/config"
)

//go:embed migrations
var migrationsFS embed.FS

// pingTimeout bounds the connectivity probe inside Open.
const pingTimeout = 5 * time.Second

// pgUndefinedTable is the SQLSTATE a query against a missing table
// raises. Components treating "table absent" as a self-disable signal
// key off it.
const pgUndefinedTable = "42P01"

// Client is the ent client plus the handles the rest of the process
// needs from the same pool: raw *sql.DB for NOTIFY and health, and the
// DSN for dedicated LISTEN connections.
type Client struct {
	*ent.Client
	db  *stdsql.DB
	dsn string
}

// Open connects, tunes the pool, migrates, and returns the client.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := cfg.DSN()
	db, err := stdsql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres pool: %w", err)
	}
	db.SetMaxOpenConns(cfg.PoolMaxOpen)
	db.SetMaxIdleConns(cfg.PoolMaxIdle)
	db.SetConnMaxLifetime(cfg.PoolMaxLifetime)
	db.SetConnMaxIdleTime(cfg.PoolMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres unreachable: %w", err)
	}

	if err := migrateUp(db, cfg.Name); err != nil {
		_ = db.Close()
		return nil, err
	}

	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	return &Client{Client: entClient, db: db, dsn: dsn}, nil
}

// DB returns the underlying pool.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// DSN returns the connection string the pool was opened with.
func (c *Client) DSN() string {
	return c.dsn
}

// migrateUp applies every pending migration from the embedded FS. The
// SQL files are generated from ent schema diffs, reviewed, and committed
// under pkg/database/migrations.
func migrateUp(db *stdsql.DB, dbName string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("loading embedded migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("preparing migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dbName, driver)
	if err != nil {
		return fmt.Errorf("building migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}

	// Close the source only. m.Close() would also close the shared
	// *sql.DB the ent client is about to use.
	return src.Close()
}

// PoolStats is a snapshot of the connection pool.
type PoolStats struct {
	Open     int   `json:"open"`
	InUse    int   `json:"in_use"`
	Idle     int   `json:"idle"`
	MaxOpen  int   `json:"max_open"`
	WaitedOn int64 `json:"waited_on"`
}

// HealthReport is what the health endpoint exposes for the database.
type HealthReport struct {
	Healthy   bool      `json:"healthy"`
	LatencyMs int64     `json:"latency_ms"`
	Pool      PoolStats `json:"pool"`
	Error     string    `json:"error,omitempty"`
}

// Health pings the pool and snapshots its stats. Never returns an
// error; unreachability is part of the report.
func (c *Client) Health(ctx context.Context) HealthReport {
	start := time.Now()
	err := c.db.PingContext(ctx)

	stats := c.db.Stats()
	report := HealthReport{
		Healthy:   err == nil,
		LatencyMs: time.Since(start).Milliseconds(),
		Pool: PoolStats{
			Open:     stats.OpenConnections,
			InUse:    stats.InUse,
			Idle:     stats.Idle,
			MaxOpen:  stats.MaxOpenConnections,
			WaitedOn: stats.WaitCount,
		},
	}
	if err != nil {
		report.Error = err.Error()
	}
	return report
}

// IsMissingTable reports whether the error chain contains a PostgreSQL
// undefined-table failure. The trace sink and other best-effort writers
// use it to self-disable instead of failing requests.
func IsMissingTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUndefinedTable
	}
	return err != nil && strings.Contains(err.Error(), "SQLSTATE "+pgUndefinedTable)
}
