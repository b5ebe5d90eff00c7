package telemetry

import (
	"context"
	"time"

	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.opentelemetry.io/otel/attribute"
)

const (
	gracePeriod      = 5 * time.Second
	serviceNamespace = "backoffice"
)

// DataSourceKey tags telemetry with the store the services read: memory,
// remote or postgres.
const DataSourceKey = attribute.Key("backoffice.data_source")

type Config struct {
	AppVersion string `yaml:"-" mapstructure:"-"`
	DataSource string `yaml:"-" mapstructure:"-"`

	AppName       string              `yaml:"app_name" mapstructure:"app_name" default:"backoffice"`
	Environment   string              `yaml:"environment" mapstructure:"environment" default:"development"`
	NewRelic      NewRelicConfig      `yaml:"newrelic" mapstructure:"newrelic"`
	OpenTelemetry OpenTelemetryConfig `yaml:"open_telemetry" mapstructure:"open_telemetry"`
}

// Init starts the OTLP exporters and the New Relic agent. cleanUp flushes and
// stops both and is safe to call when either is disabled.
func Init(ctx context.Context, cfg Config, logger log.Logger) (nrApp *newrelic.Application, cleanUp func(), err error) {
	shutdown, err := initOTLP(ctx, cfg, logger)
	if err != nil {
		return nil, noOp, err
	}

	nrApp, err = initNewRelic(cfg, logger)
	if err != nil {
		shutdown()
		return nil, noOp, err
	}

	return nrApp, func() {
		nrApp.Shutdown(gracePeriod)
		shutdown()
	}, nil
}
