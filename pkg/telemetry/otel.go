package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for reflow instrumentation.
const defaultTracerName = "reflow"

// TracingConfig configures the OpenTelemetry instrument.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "reflow").
	TracerName string

	// Provider is the tracer provider. Defaults to the global provider,
	// so hosts that configure otel.SetTracerProvider get spans for free.
	Provider trace.TracerProvider
}

// TracingOption configures the OpenTelemetry instrument.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets an explicit tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *TracingConfig) {
		c.Provider = tp
	}
}

// Tracing is a reflow.Instrument that emits one span per notification wave
// and per accepted rebuild. Waves are synchronous, so the span is recorded
// retroactively when the wave completes, backdated to its start.
type Tracing struct {
	tracer trace.Tracer
}

// NewTracing creates the tracing instrument.
func NewTracing(opts ...TracingOption) *Tracing {
	config := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	if config.Provider == nil {
		config.Provider = otel.GetTracerProvider()
	}

	return &Tracing{tracer: config.Provider.Tracer(config.TracerName)}
}

// WriteAccepted implements reflow.Instrument. Only completed waves are
// traced, so this is a no-op.
func (t *Tracing) WriteAccepted(listeners int) {}

// WriteSuppressed implements reflow.Instrument.
func (t *Tracing) WriteSuppressed() {}

// WaveDone implements reflow.Instrument.
func (t *Tracing) WaveDone(listeners int, elapsed time.Duration) {
	end := time.Now()
	_, span := t.tracer.Start(context.Background(), "reflow.wave",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithTimestamp(end.Add(-elapsed)),
		trace.WithAttributes(attribute.Int("reflow.listeners", listeners)),
	)
	span.End(trace.WithTimestamp(end))
}

// Rebuild implements reflow.Instrument.
func (t *Tracing) Rebuild() {
	_, span := t.tracer.Start(context.Background(), "reflow.rebuild",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	span.End()
}
