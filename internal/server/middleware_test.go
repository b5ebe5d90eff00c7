package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goto/backoffice/internal/backoffice"
	"github.com/goto/backoffice/internal/server"
	"github.com/goto/backoffice/internal/store/memory"
	"github.com/goto/backoffice/pkg/telemetry"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
)

func TestOpenTelemetryRecordsRequestDuration(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { otel.SetMeterProvider(prev) })

	logger := log.NewNoop()
	router := server.NewRouter(backoffice.NewMock(memory.Seed(), logger).Server(), logger, server.OpenTelemetry())
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	resp, _ := do(t, ts, http.MethodGet, "/api/members/MEM-000001", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var hist *metricdata.Histogram[float64]
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != telemetry.RequestDurationInstrument {
				continue
			}
			h, ok := m.Data.(metricdata.Histogram[float64])
			require.True(t, ok, "got %T", m.Data)
			hist = &h
		}
	}
	require.NotNil(t, hist)
	require.Len(t, hist.DataPoints, 1)

	dp := hist.DataPoints[0]
	assert.EqualValues(t, 1, dp.Count)
	route, ok := dp.Attributes.Value(semconv.HTTPRouteKey)
	require.True(t, ok)
	assert.Equal(t, "/api/members/{id}", route.AsString())
	status, ok := dp.Attributes.Value(semconv.HTTPStatusCodeKey)
	require.True(t, ok)
	assert.EqualValues(t, http.StatusOK, status.AsInt64())
}
