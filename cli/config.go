package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/backoffice/internal/backoffice"
	"github.com/goto/backoffice/internal/server"
	"github.com/goto/backoffice/internal/store/postgres"
	"github.com/goto/backoffice/pkg/statsd"
	"github.com/goto/backoffice/pkg/telemetry"
	"github.com/goto/salt/cmdx"
	"github.com/goto/salt/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const (
	appName    = "backoffice"
	configFlag = "config"
)

type Config struct {
	// Log
	LogLevel string `yaml:"log_level" mapstructure:"log_level" default:"info"`

	// Backoffice selects the data source of the client commands.
	Backoffice backoffice.Config `yaml:"backoffice" mapstructure:"backoffice"`

	// StatsD
	StatsD statsd.Config `yaml:"statsd" mapstructure:"statsd"`

	// Telemetry
	Telemetry telemetry.Config `yaml:"telemetry" mapstructure:"telemetry"`

	// Database
	DB postgres.Config `yaml:"db" mapstructure:"db"`

	// Service
	Service server.Config `yaml:"service" mapstructure:"service"`
}

func configCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage server and client configurations",
		Example: heredoc.Doc(`
			$ backoffice config init
			$ backoffice config list`),
	}

	cmd.AddCommand(configInitCommand())
	cmd.AddCommand(configListCommand(cfg))

	return cmd
}

func configInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new server and client configuration",
		Example: heredoc.Doc(`
			$ backoffice config init
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cmdx.SetConfig(appName)

			if err := cfg.Init(&Config{}); err != nil {
				return err
			}

			fmt.Printf("config created: %v\n", cfg.File())
			return nil
		},
	}
}

func configListCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List server and client configuration settings",
		Example: heredoc.Doc(`
			$ backoffice config list
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return yaml.NewEncoder(os.Stdout).Encode(*cfg)
		},
	}
}

// LoadConfig reads the user config file, then ./backoffice.yaml. Environment
// variables prefixed with BACKOFFICE_ override both.
func LoadConfig() (*Config, error) {
	var cfg Config
	err := cmdx.SetConfig(appName).Load(&cfg)
	if err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return LoadFromCurrentDir()
		}
		return &cfg, err
	}
	return &cfg, nil
}

func LoadFromCurrentDir() (*Config, error) {
	var cfg Config
	var opts []config.LoaderOption

	opts = append(opts,
		config.WithPath("./"),
		config.WithName("backoffice.yaml"),
		config.WithEnvKeyReplacer(".", "_"),
		config.WithEnvPrefix("BACKOFFICE"),
	)

	if err := config.NewLoader(opts...).Load(&cfg); err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return &cfg, ErrConfigNotFound
		}
		return &cfg, err
	}
	return &cfg, nil
}

func LoadConfigFromFlag(cfgFile string, cfg *Config) error {
	return config.NewLoader(config.WithFile(cfgFile)).Load(cfg)
}
