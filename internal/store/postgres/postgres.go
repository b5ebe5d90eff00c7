package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx" // register instrumented DB driver
	"go.nhat.io/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
)

//go:embed migrations/*.sql
var fs embed.FS

const (
	pgDriverName   = "nrpgx"
	instanceName   = "backoffice"
	documentsTable = "documents"
)

var (
	registerOnce sync.Once
	driverName   string
	errRegister  error
)

// Client wraps sqlx for the document store.
type Client struct {
	db *sqlx.DB
}

func (c *Client) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return c.db.ExecContext(ctx, query, args...)
}

func (c *Client) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return c.db.GetContext(ctx, dest, query, args...)
}

func (c *Client) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return c.db.SelectContext(ctx, dest, query, args...)
}

func (c *Client) RunWithinTx(ctx context.Context, f func(tx *sqlx.Tx) error) error {
	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	if err := f(tx); err != nil {
		if txErr := tx.Rollback(); txErr != nil {
			return fmt.Errorf("rollback transaction error: %v (original error: %w)", txErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Migrate applies every pending migration and returns the resulting version.
func (c *Client) Migrate() (ver uint, err error) {
	m, err := c.initMigration()
	if err != nil {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	if ver, _, err = m.Version(); err != nil {
		return ver, err
	}
	return ver, nil
}

// MigrateDown rolls back a single migration step.
func (c *Client) MigrateDown() (ver uint, err error) {
	m, err := c.initMigration()
	if err != nil {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	ver, _, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	return ver, err
}

// ExecQueries is used for executing list of db query
func (c *Client) ExecQueries(ctx context.Context, queries []string) error {
	for _, query := range queries {
		if _, err := c.db.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

// NewClient initializes database connection
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	name, err := registerDriver()
	if err != nil {
		return nil, fmt.Errorf("new postgres client: %w", err)
	}

	db, err := sql.Open(name, cfg.ConnectionURL().String())
	if err != nil {
		return nil, fmt.Errorf("error creating DB: %w", err)
	}
	if db == nil {
		return nil, errNilDBClient
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error connecting DB: %w", err)
	}

	if err := otelsql.RecordStats(
		db,
		otelsql.WithSystem(semconv.DBSystemPostgreSQL),
		otelsql.WithInstanceName(instanceName),
	); err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns != 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns != 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return NewClientWithDB(db), nil
}

// NewClientWithDB wraps an already opened database handle.
func NewClientWithDB(db *sql.DB) *Client {
	return &Client{db: sqlx.NewDb(db, "pgx")}
}

func registerDriver() (string, error) {
	registerOnce.Do(func() {
		driverName, errRegister = otelsql.Register(
			pgDriverName,
			otelsql.TraceQueryWithoutArgs(),
			otelsql.TraceRowsClose(),
			otelsql.TraceRowsAffected(),
			otelsql.WithSystem(semconv.DBSystemPostgreSQL),
			otelsql.WithInstanceName(instanceName),
		)
	})
	return driverName, errRegister
}

func (c *Client) initMigration() (*migrate.Migrate, error) {
	src, err := iofs.New(fs, "migrations")
	if err != nil {
		return nil, err
	}
	drv, err := migratepg.WithInstance(c.db.DB, &migratepg.Config{})
	if err != nil {
		return nil, err
	}
	return migrate.NewWithInstance("iofs", src, "postgres", drv)
}
