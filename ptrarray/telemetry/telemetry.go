package telemetry

import (
	"context"
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-ptrarray/ptrarray/internal/nilcheck"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// ErrNilMeter indicates that a nil OTel meter was provided.
var ErrNilMeter = errors.New("metric meter cannot be nil")

// Instrument names emitted by Recorder.
const (
	MetricElementsEmplaced = "elements_emplaced"
	MetricElementsAdded    = "elements_added"
	MetricElementsReleased = "elements_released"
	MetricElementsLive     = "elements_live"
)

// Recorder records owning-array lifecycle metrics.
//
// Array operations carry no context, so measurements are recorded against
// context.Background(). Attributes passed to NewRecorder are attached to
// every measurement.
type Recorder struct {
	emplaced metric.Int64Counter
	added    metric.Int64Counter
	released metric.Int64Counter
	live     metric.Int64UpDownCounter
	attrs    metric.MeasurementOption
}

// NewRecorder creates a Recorder with instruments registered on meter.
// The attrs are attached to every measurement the Recorder emits.
func NewRecorder(meter metric.Meter, attrs ...attribute.KeyValue) (*Recorder, error) {
	if nilcheck.IsNil(meter) {
		return nil, ErrNilMeter
	}

	r := &Recorder{attrs: metric.WithAttributes(attrs...)}

	var err error

	if r.emplaced, err = meter.Int64Counter(MetricElementsEmplaced,
		metric.WithUnit("1"),
		metric.WithDescription("Measures the number of elements constructed in place by owning arrays."),
	); err != nil {
		return nil, fmt.Errorf("create %s counter: %w", MetricElementsEmplaced, err)
	}

	if r.added, err = meter.Int64Counter(MetricElementsAdded,
		metric.WithUnit("1"),
		metric.WithDescription("Measures the number of pre-allocated elements transferred into owning arrays."),
	); err != nil {
		return nil, fmt.Errorf("create %s counter: %w", MetricElementsAdded, err)
	}

	if r.released, err = meter.Int64Counter(MetricElementsReleased,
		metric.WithUnit("1"),
		metric.WithDescription("Measures the number of owned elements released by owning arrays."),
	); err != nil {
		return nil, fmt.Errorf("create %s counter: %w", MetricElementsReleased, err)
	}

	if r.live, err = meter.Int64UpDownCounter(MetricElementsLive,
		metric.WithUnit("1"),
		metric.WithDescription("Tracks the number of elements currently owned by arrays."),
	); err != nil {
		return nil, fmt.Errorf("create %s counter: %w", MetricElementsLive, err)
	}

	return r, nil
}

// NewNopRecorder returns a Recorder backed by OpenTelemetry's no-op meter.
// It is safe for use as a fallback when a real meter is unavailable.
func NewNopRecorder() *Recorder {
	r, _ := NewRecorder(noop.NewMeterProvider().Meter("nop"))

	return r
}

// ElementEmplaced records one in-place construction.
func (r *Recorder) ElementEmplaced() {
	if r == nil {
		return
	}

	ctx := context.Background()
	r.emplaced.Add(ctx, 1, r.attrs)
	r.live.Add(ctx, 1, r.attrs)
}

// ElementAdded records one ownership transfer into an array.
func (r *Recorder) ElementAdded() {
	if r == nil {
		return
	}

	ctx := context.Background()
	r.added.Add(ctx, 1, r.attrs)
	r.live.Add(ctx, 1, r.attrs)
}

// ElementsReleased records n elements released in one clear.
func (r *Recorder) ElementsReleased(n int) {
	if r == nil || n <= 0 {
		return
	}

	ctx := context.Background()
	r.released.Add(ctx, int64(n), r.attrs)
	r.live.Add(ctx, -int64(n), r.attrs)
}
