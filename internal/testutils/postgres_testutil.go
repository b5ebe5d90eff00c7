package testutils

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/goto/backoffice/internal/store/memory"
	"github.com/goto/backoffice/internal/store/postgres"
	"github.com/goto/salt/log"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	pgImage      = "postgres"
	pgTag        = "13"
	pgUser       = "backoffice_test"
	pgPassword   = "backoffice_test"
	pgDatabase   = "backoffice_test"
	pgExpiry     = 120
	pgMaxWait    = 60 * time.Second
	documentsSQL = "TRUNCATE TABLE documents RESTART IDENTITY"
)

// DocumentDB is a disposable postgres holding the migrated document schema.
type DocumentDB struct {
	Config postgres.Config
	Client *postgres.Client
	Store  *postgres.Store
}

// NewDocumentDB starts postgres in docker, connects through the same config
// the service uses, applies every migration and builds a document store on
// top. The container and client are released when t finishes.
func NewDocumentDB(t *testing.T, logger log.Logger) (*DocumentDB, error) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("document db: create dockertest pool: %w", err)
	}

	container, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: pgImage,
		Tag:        pgTag,
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("document db: start postgres: %w", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(container); err != nil {
			t.Errorf("document db: purge postgres: %v", err)
		}
	})

	if err := container.Expire(pgExpiry); err != nil {
		return nil, fmt.Errorf("document db: expire postgres: %w", err)
	}

	port, err := strconv.Atoi(container.GetPort("5432/tcp"))
	if err != nil {
		return nil, fmt.Errorf("document db: parse postgres port: %w", err)
	}
	cfg := postgres.Config{
		Host:     "localhost",
		Port:     port,
		Name:     pgDatabase,
		User:     pgUser,
		Password: pgPassword,
		SSLMode:  "disable",
	}

	if logger.Level() == "debug" {
		streamLogs(t, pool, container, logger)
	}

	var client *postgres.Client
	pool.MaxWait = pgMaxWait
	if err := pool.Retry(func() error {
		c, err := postgres.NewClient(context.Background(), cfg)
		if err != nil {
			return err
		}
		client = c
		return nil
	}); err != nil {
		return nil, fmt.Errorf("document db: connect: %w", err)
	}
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Errorf("document db: close client: %v", err)
		}
	})

	ver, err := client.Migrate()
	if err != nil {
		return nil, fmt.Errorf("document db: %w", err)
	}
	logger.Debug("document db migrated", "version", ver, "port", port)

	store, err := postgres.NewStore(client, logger)
	if err != nil {
		return nil, fmt.Errorf("document db: %w", err)
	}

	return &DocumentDB{Config: cfg, Client: client, Store: store}, nil
}

// Reset empties the documents table and loads ds in seed order.
func (db *DocumentDB) Reset(ctx context.Context, ds memory.Dataset) error {
	if err := db.Client.ExecQueries(ctx, []string{documentsSQL}); err != nil {
		return fmt.Errorf("document db: truncate: %w", err)
	}
	if err := db.Store.Seed(ctx, ds); err != nil {
		return fmt.Errorf("document db: seed: %w", err)
	}
	return nil
}

func streamLogs(t *testing.T, pool *dockertest.Pool, container *dockertest.Resource, logger log.Logger) {
	t.Helper()

	waiter, err := pool.Client.AttachToContainerNonBlocking(docker.AttachToContainerOptions{
		Container:    container.Container.ID,
		OutputStream: logger.Writer(),
		ErrorStream:  logger.Writer(),
		Stdout:       true,
		Stderr:       true,
		Stream:       true,
	})
	if err != nil {
		logger.Warn("document db: attach to postgres logs", "err", err)
		return
	}
	t.Cleanup(func() {
		if err := waiter.Close(); err != nil {
			logger.Warn("document db: close postgres logs", "err", err)
		}
	})
}
