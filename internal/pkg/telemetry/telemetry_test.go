package telemetry

import (
	"context"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/csvshipper/csv-shipper/internal/pkg/config"
)

func TestInit_Disabled(t *testing.T) {
	p, err := Init(context.Background(), config.TelemetryConfig{}, "test", prom.NewRegistry())
	require.NoError(t, err)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestShutdown_NilProviders(t *testing.T) {
	var p *Providers
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestInit_MetricsBridge(t *testing.T) {
	reg := prom.NewRegistry()
	p, err := Init(context.Background(), config.TelemetryConfig{
		MetricsEnabled: true,
		ServiceName:    "csv-shipper",
	}, "test", reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	counter, err := otel.Meter("telemetry_test").Int64Counter("probe_total")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() == "probe_total" {
			found = true
		}
	}
	assert.True(t, found, "otel counter should be exported to the prometheus registry")
}
