package telemetry

import (
	"fmt"

	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type NewRelicConfig struct {
	Enabled    bool   `yaml:"enabled" mapstructure:"enabled" default:"false"`
	LicenseKey string `yaml:"licensekey" mapstructure:"licensekey" default:""`
}

// initNewRelic returns a nil application when New Relic is disabled. The
// agent's methods accept a nil receiver so callers need not check.
func initNewRelic(cfg Config, logger log.Logger) (*newrelic.Application, error) {
	if !cfg.NewRelic.Enabled {
		logger.Info("new relic monitoring is disabled")
		return nil, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		func(c *newrelic.Config) {
			c.Labels = map[string]string{
				"environment": cfg.Environment,
				"dataSource":  cfg.DataSource,
			}
		},
	)
	if err != nil {
		return nil, fmt.Errorf("init new relic monitor: %w", err)
	}

	logger.Info("new relic monitoring is enabled", "app", cfg.AppName, "environment", cfg.Environment)
	return app, nil
}
