//go:build unit

package ptrarray

import (
	"context"
	"testing"

	"github.com/LerianStudio/lib-ptrarray/ptrarray/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// collectSum drains the reader and returns the total recorded under name,
// or 0 when the metric was never recorded.
func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics

	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64

	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name != name {
				continue
			}

			sum, ok := sm.Metrics[i].Data.(metricdata.Sum[int64])
			require.True(t, ok)

			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}

	return total
}

func TestWithTelemetry_RecordsLifecycle(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	recorder, err := telemetry.NewRecorder(mp.Meter("lib-ptrarray-test"))
	require.NoError(t, err)

	arr := New(WithTelemetry[testObject](recorder))

	arr.Emplace(testObject{Name: "Object 1", Value: 10})
	arr.Emplace(testObject{Name: "Object 2", Value: 20})
	require.NoError(t, arr.Add(&testObject{Name: "Object 3", Value: 30}))
	arr.Clear()

	assert.EqualValues(t, 2, collectSum(t, reader, telemetry.MetricElementsEmplaced))
	assert.EqualValues(t, 1, collectSum(t, reader, telemetry.MetricElementsAdded))
	assert.EqualValues(t, 3, collectSum(t, reader, telemetry.MetricElementsReleased))
	assert.EqualValues(t, 0, collectSum(t, reader, telemetry.MetricElementsLive))
}

func TestWithoutTelemetry_IsSafe(t *testing.T) {
	t.Parallel()

	// Telemetry defaults to disabled; every operation must work without it.
	arr := New[testObject]()

	arr.Emplace(testObject{Name: "Object 1", Value: 10})
	require.NoError(t, arr.Add(&testObject{Name: "Object 2", Value: 20}))
	arr.Clear()

	assert.True(t, arr.IsEmpty())
}
