package emitter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/yairfalse/onevision/internal/inventory"
	"github.com/yairfalse/onevision/pkg/metric"
	"github.com/yairfalse/onevision/pkg/resource"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestGaugeEmitter_NothingBeforeEmit(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	e, err := NewGaugeEmitter(provider.Meter("onevision.emitter"))
	require.NoError(t, err)
	defer e.Close()

	assert.NotContains(t, collect(t, reader), "onevision.inventory.resources")
}

func TestGaugeEmitter_ObservesSnapshot(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	e, err := NewGaugeEmitter(provider.Meter("onevision.emitter"))
	require.NoError(t, err)
	defer e.Close()

	snap := Snapshot{
		Summary: inventory.Summary{
			Total:     3,
			ByKind:    map[resource.Kind]int{resource.KindEC2Instance: 2, resource.KindS3Bucket: 1},
			ByRegion:  map[string]int{"us-east-1": 3},
			ByAccount: map[string]int{"111111111111": 3},
			Partial:   true,
		},
		Metrics: []metric.Metric{{
			Kind:      metric.KindGlobalSummary,
			AccountID: "111111111111",
			Region:    "us-east-1",
			Values:    map[string]float64{"totalResources": 3},
		}},
	}
	require.NoError(t, e.Emit(context.Background(), snap))

	got := collect(t, reader)

	kinds, ok := got["onevision.inventory.resources"].Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, kinds.DataPoints, 2)
	counts := map[string]int64{}
	for _, dp := range kinds.DataPoints {
		kind, _ := dp.Attributes.Value("resource.type")
		counts[kind.AsString()] = dp.Value
	}
	assert.Equal(t, int64(2), counts["EC2Instance"])
	assert.Equal(t, int64(1), counts["S3Bucket"])

	partial, ok := got["onevision.inventory.partial"].Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, partial.DataPoints, 1)
	assert.Equal(t, int64(1), partial.DataPoints[0].Value)

	dash, ok := got["onevision.dashboard.value"].Data.(metricdata.Gauge[float64])
	require.True(t, ok)
	require.Len(t, dash.DataPoints, 1)
	assert.InDelta(t, 3.0, dash.DataPoints[0].Value, 0.001)
	name, _ := dash.DataPoints[0].Attributes.Value("metric.name")
	assert.Equal(t, "totalResources", name.AsString())
}
