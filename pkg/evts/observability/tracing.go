package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the evts tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("evts")

// SpanManager handles trace span lifecycle around event dispatch.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartFireSpan starts a span covering one Fire call.
	// Returns the context with span and the span itself.
	StartFireSpan(ctx context.Context, eventName string) (context.Context, trace.Span)

	// EndFireSpan completes a fire span, marking cancelled dispatches.
	EndFireSpan(span trace.Span, cancelled bool)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartFireSpan starts a span covering one Fire call.
func (m *otelSpanManager) StartFireSpan(ctx context.Context, eventName string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "evts.fire",
		trace.WithAttributes(
			attribute.String("event", eventName),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndFireSpan completes a fire span.
func (m *otelSpanManager) EndFireSpan(span trace.Span, cancelled bool) {
	if span == nil {
		return
	}
	if cancelled {
		span.SetStatus(codes.Error, "dispatch cancelled")
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.SetAttributes(attribute.Bool("cancelled", cancelled))
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
