package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/backoffice/internal/backoffice"
	"github.com/goto/backoffice/internal/server"
	"github.com/goto/backoffice/internal/store/memory"
	"github.com/goto/backoffice/internal/store/postgres"
	"github.com/goto/backoffice/pkg/statsd"
	"github.com/goto/backoffice/pkg/telemetry"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"
)

func serverCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "server <command>",
		Aliases: []string{"s"},
		Short:   "Run backoffice server",
		Long:    "Server management commands.",
		Example: heredoc.Doc(`
			$ backoffice server start
			$ backoffice server start --mock
			$ backoffice server start -c ./config.yaml
			$ backoffice server migrate --seed
			$ backoffice server migrate --down
		`),
	}

	cmd.AddCommand(
		serverStartCommand(cfg),
		serverMigrateCommand(cfg),
	)

	return cmd
}

func serverStartCommand(cfg *Config) *cobra.Command {
	var mock bool

	c := &cobra.Command{
		Use:     "start",
		Short:   "Start server on default port 3001",
		Example: "backoffice server start",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runServer(cmd.Context(), cfg, mock); err != nil {
				return fmt.Errorf("run server: %w", err)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&mock, "mock", false, "serve seeded in-memory data instead of postgres")

	return c
}

func serverMigrateCommand(cfg *Config) *cobra.Command {
	var seed, down bool

	c := &cobra.Command{
		Use:   "migrate",
		Short: "Run storage migration",
		Example: heredoc.Doc(`
			$ backoffice server migrate
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), cfg, seed, down)
		},
	}

	c.Flags().BoolVar(&seed, "seed", false, "load the generated demo dataset after migrating")
	c.Flags().BoolVar(&down, "down", false, "roll back one migration step instead")

	return c
}

func runServer(ctx context.Context, cfg *Config, mock bool) error {
	logger := initLogger(cfg.LogLevel)
	logger.Info("backoffice starting", "version", Version)

	cfg.Telemetry.AppVersion = Version
	cfg.Telemetry.DataSource = "postgres"
	if mock {
		cfg.Telemetry.DataSource = "memory"
	}
	nrApp, cleanUpTelemetry, err := telemetry.Init(ctx, cfg.Telemetry, logger)
	if err != nil {
		return err
	}
	defer cleanUpTelemetry()

	statsdReporter, err := statsd.Init(logger, cfg.StatsD)
	if err != nil {
		return err
	}
	defer func() {
		if err := statsdReporter.Close(); err != nil {
			logger.Warn("error closing statsd reporter", "err", err)
		}
	}()

	var svcs *backoffice.Services
	if mock {
		logger.Info("serving mock data")
		svcs = backoffice.NewMock(memory.Seed(), logger)
	} else {
		pgClient, err := initPostgres(ctx, logger, cfg)
		if err != nil {
			return err
		}
		defer func() {
			logger.Warn("closing db...")
			if err := pgClient.Close(); err != nil {
				logger.Error("error when closing db", "err", err)
			}
		}()

		st, err := postgres.NewStore(pgClient, logger)
		if err != nil {
			return fmt.Errorf("create document store: %w", err)
		}
		svcs = backoffice.NewPostgres(st, logger)
	}

	router := server.NewRouter(svcs.Server(), logger,
		server.RequestID(),
		server.NewRelic(nrApp),
		server.OpenTelemetry(),
		server.StatsD(statsdReporter),
		server.Logging(logger),
	)

	return server.Serve(ctx, cfg.Service, logger, router)
}

func runMigrations(ctx context.Context, cfg *Config, seed, down bool) error {
	fmt.Println("Preparing migration...")

	logger := initLogger(cfg.LogLevel)
	logger.Info("backoffice is migrating", "version", Version)

	pgClient, err := initPostgres(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer pgClient.Close()

	if down {
		ver, err := pgClient.MigrateDown()
		if err != nil {
			return fmt.Errorf("problem with migration: %w", err)
		}
		logger.Info("migration rolled back", "version", ver)
		return nil
	}

	ver, err := pgClient.Migrate()
	if err != nil {
		return fmt.Errorf("problem with migration: %w", err)
	}
	logger.Info("migration postgres done", "version", ver)

	if !seed {
		return nil
	}

	st, err := postgres.NewStore(pgClient, logger)
	if err != nil {
		return err
	}
	if err := st.Seed(ctx, memory.Seed()); err != nil {
		return fmt.Errorf("seed postgres: %w", err)
	}
	logger.Info("demo dataset loaded")
	return nil
}

func initLogger(logLevel string) *log.Logrus {
	return log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stdout),
	)
}

func initPostgres(ctx context.Context, logger log.Logger, cfg *Config) (*postgres.Client, error) {
	pgClient, err := postgres.NewClient(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("error creating postgres client: %w", err)
	}
	logger.Info("connected to postgres server", "host", cfg.DB.Host, "port", cfg.DB.Port)

	return pgClient, nil
}
