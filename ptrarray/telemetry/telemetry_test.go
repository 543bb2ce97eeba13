//go:build unit

package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// newTestRecorder wires a Recorder to an in-memory ManualReader so tests can
// collect and inspect metric data without any exporter.
func newTestRecorder(t *testing.T, attrs ...attribute.KeyValue) (*Recorder, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	recorder, err := NewRecorder(mp.Meter("lib-ptrarray-test"), attrs...)
	require.NoError(t, err)

	return recorder, reader
}

// sumValue extracts the total int64 sum recorded under the named metric.
func sumValue(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics

	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name != name {
				continue
			}

			sum, ok := sm.Metrics[i].Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)

			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}

			return total
		}
	}

	t.Fatalf("metric %s not collected", name)

	return 0
}

type nilMeter struct {
	metric.Meter
}

func TestNewRecorder_NilMeter(t *testing.T) {
	t.Parallel()

	_, err := NewRecorder(nil)
	require.ErrorIs(t, err, ErrNilMeter)

	// A typed-nil interface must be rejected the same way.
	var typedNil *nilMeter

	_, err = NewRecorder(typedNil)
	require.ErrorIs(t, err, ErrNilMeter)
}

func TestRecorder_Counters(t *testing.T) {
	t.Parallel()

	recorder, reader := newTestRecorder(t)

	recorder.ElementEmplaced()
	recorder.ElementEmplaced()
	recorder.ElementAdded()
	recorder.ElementsReleased(3)

	assert.EqualValues(t, 2, sumValue(t, reader, MetricElementsEmplaced))
	assert.EqualValues(t, 1, sumValue(t, reader, MetricElementsAdded))
	assert.EqualValues(t, 3, sumValue(t, reader, MetricElementsReleased))
	assert.EqualValues(t, 0, sumValue(t, reader, MetricElementsLive))
}

func TestRecorder_LiveBalance(t *testing.T) {
	t.Parallel()

	recorder, reader := newTestRecorder(t)

	recorder.ElementEmplaced()
	recorder.ElementAdded()
	recorder.ElementsReleased(1)

	assert.EqualValues(t, 1, sumValue(t, reader, MetricElementsLive))
}

func TestRecorder_ReleasedIgnoresNonPositive(t *testing.T) {
	t.Parallel()

	recorder, reader := newTestRecorder(t)

	recorder.ElementEmplaced()
	recorder.ElementsReleased(0)
	recorder.ElementsReleased(-2)

	assert.EqualValues(t, 1, sumValue(t, reader, MetricElementsLive))
}

func TestNilRecorder_IsSafe(t *testing.T) {
	t.Parallel()

	var recorder *Recorder

	recorder.ElementEmplaced()
	recorder.ElementAdded()
	recorder.ElementsReleased(5)
}

func TestNewNopRecorder(t *testing.T) {
	t.Parallel()

	recorder := NewNopRecorder()
	require.NotNil(t, recorder)

	recorder.ElementEmplaced()
	recorder.ElementsReleased(1)
}
