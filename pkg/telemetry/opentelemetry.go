package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/goto/salt/log"
	"go.opentelemetry.io/contrib/instrumentation/host"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/contrib/samplers/probability/consistent"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/aggregation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
	"google.golang.org/grpc/encoding/gzip"
)

type OpenTelemetryConfig struct {
	Enabled                bool          `yaml:"enabled" mapstructure:"enabled" default:"false"`
	CollectorAddr          string        `yaml:"collector_addr" mapstructure:"collector_addr" default:"localhost:4317"`
	PeriodicReadInterval   time.Duration `yaml:"periodic_read_interval" mapstructure:"periodic_read_interval" default:"1s"`
	TraceSampleProbability float64       `yaml:"trace_sample_probability" mapstructure:"trace_sample_probability" default:"1"`
}

// RequestDurationInstrument is the server latency histogram. Its buckets are
// tuned for list queries over the seeded collections.
const RequestDurationInstrument = "backoffice.http.request.duration"

var requestDurationBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500}

func initOTLP(ctx context.Context, cfg Config, logger log.Logger) (func(), error) {
	if !cfg.OpenTelemetry.Enabled {
		logger.Info("opentelemetry monitoring is disabled")
		return noOp, nil
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	shutdownMetric, err := initGlobalMetrics(ctx, res, cfg.OpenTelemetry, logger)
	if err != nil {
		return nil, err
	}

	shutdownTracer, err := initGlobalTracer(ctx, res, cfg.OpenTelemetry, logger)
	if err != nil {
		shutdownMetric()
		return nil, err
	}

	shutdownProviders := func() {
		shutdownTracer()
		shutdownMetric()
	}

	if err := host.Start(); err != nil {
		shutdownProviders()
		return nil, err
	}

	if err := runtime.Start(); err != nil {
		shutdownProviders()
		return nil, err
	}

	logger.Info("opentelemetry monitoring is enabled", "collector", cfg.OpenTelemetry.CollectorAddr)
	return shutdownProviders, nil
}

func initGlobalMetrics(ctx context.Context, res *resource.Resource, cfg OpenTelemetryConfig, logger log.Logger) (func(), error) {
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.CollectorAddr),
		otlpmetricgrpc.WithCompressor(gzip.Name),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create metric exporter: %w", err)
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.PeriodicReadInterval))
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
		sdkmetric.WithView(requestDurationView()),
	)
	otel.SetMeterProvider(provider)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracePeriod)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Error("otlp metric-provider failed to shutdown", "err", err)
		}
	}, nil
}

func initGlobalTracer(ctx context.Context, res *resource.Resource, cfg OpenTelemetryConfig, logger log.Logger) (func(), error) {
	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(
		otlptracegrpc.WithEndpoint(cfg.CollectorAddr),
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithCompressor(gzip.Name),
	))
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(consistent.ProbabilityBased(cfg.TraceSampleProbability)),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(sdktrace.NewBatchSpanProcessor(exporter)),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracePeriod)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			logger.Error("otlp trace-provider failed to shutdown", "err", err)
		}
	}, nil
}

// newResource describes this back-office instance: which deployment it runs
// in and which data source its services read.
func newResource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.AppName),
			semconv.ServiceVersion(cfg.AppVersion),
			semconv.ServiceNamespace(serviceNamespace),
			semconv.DeploymentEnvironment(cfg.Environment),
			DataSourceKey.String(cfg.DataSource),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return res, nil
}

func requestDurationView() sdkmetric.View {
	return sdkmetric.NewView(
		sdkmetric.Instrument{Name: RequestDurationInstrument},
		sdkmetric.Stream{
			Unit:        "ms",
			Aggregation: aggregation.ExplicitBucketHistogram{Boundaries: requestDurationBuckets},
		},
	)
}

func noOp() {}
