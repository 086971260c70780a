package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records event dispatch metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordFiring records one firing of an event, with the age of the
	// firing at observation time and whether it was cancelled.
	RecordFiring(ctx context.Context, eventName string, age time.Duration, cancelled bool)

	// RecordRelay records one compound re-fire triggered by a bound source.
	RecordRelay(ctx context.Context, compound, source string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	firings       metric.Int64Counter
	cancellations metric.Int64Counter
	relays        metric.Int64Counter
	firingAge     metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("evts")

	firings, err := meter.Int64Counter("evts.firings",
		metric.WithDescription("Number of event firings"),
	)
	if err != nil {
		return nil, err
	}

	cancellations, err := meter.Int64Counter("evts.cancellations",
		metric.WithDescription("Number of cancelled firings"),
	)
	if err != nil {
		return nil, err
	}

	relays, err := meter.Int64Counter("evts.relays",
		metric.WithDescription("Number of compound re-fires from bound sources"),
	)
	if err != nil {
		return nil, err
	}

	firingAge, err := meter.Float64Histogram("evts.firing.age_ms",
		metric.WithDescription("Age of firings when observed, in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		firings:       firings,
		cancellations: cancellations,
		relays:        relays,
		firingAge:     firingAge,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordFiring records one firing.
func (m *otelMetrics) RecordFiring(ctx context.Context, eventName string, age time.Duration, cancelled bool) {
	attrs := []attribute.KeyValue{
		attribute.String("event", eventName),
	}

	m.firings.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.firingAge.Record(ctx, float64(age.Microseconds())/1000.0, metric.WithAttributes(attrs...))

	if cancelled {
		m.cancellations.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordRelay records one compound re-fire.
func (m *otelMetrics) RecordRelay(ctx context.Context, compound, source string) {
	m.relays.Add(ctx, 1, metric.WithAttributes(
		attribute.String("compound", compound),
		attribute.String("source", source),
	))
}
