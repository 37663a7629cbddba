package renderer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/seuros/cypher-ast/src/cypher"
)

const (
	// Instrumentation library name
	instrumentationName    = "github.com/seuros/cypher-ast/src/renderer"
	instrumentationVersion = "0.1.0"
)

// ObservabilityConfig controls telemetry collection
type ObservabilityConfig struct {
	// EnableTracing enables OpenTelemetry distributed tracing
	EnableTracing bool

	// EnableMetrics enables OpenTelemetry metrics collection
	EnableMetrics bool

	// TracingAttributes are additional attributes to add to all spans
	TracingAttributes []attribute.KeyValue

	// MetricAttributes are additional attributes to add to all metrics
	MetricAttributes []attribute.KeyValue
}

// DefaultObservabilityConfig returns default observability configuration
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		EnableTracing: true,
		EnableMetrics: true,
		TracingAttributes: []attribute.KeyValue{
			attribute.String("db.system", "neo4j"),
			attribute.String("cypher.renderer", "cypher-ast"),
			attribute.String("cypher.renderer.version", instrumentationVersion),
		},
		MetricAttributes: []attribute.KeyValue{
			attribute.String("db.system", "neo4j"),
			attribute.String("cypher.renderer", "cypher-ast"),
		},
	}
}

// observabilityInstruments holds OpenTelemetry instruments
type observabilityInstruments struct {
	tracer trace.Tracer
	meter  metric.Meter

	// Metrics
	renderDuration metric.Float64Histogram
	renderCount    metric.Int64Counter
	cacheHits      metric.Int64Counter
	cacheMisses    metric.Int64Counter
}

// initObservability initializes OpenTelemetry instruments
func initObservability() *observabilityInstruments {
	tracer := otel.Tracer(instrumentationName, trace.WithInstrumentationVersion(instrumentationVersion))
	meter := otel.Meter(instrumentationName, metric.WithInstrumentationVersion(instrumentationVersion))

	instruments := &observabilityInstruments{
		tracer: tracer,
		meter:  meter,
	}

	var err error

	instruments.renderDuration, err = meter.Float64Histogram(
		"cypher.render.duration",
		metric.WithDescription("Duration of statement rendering"),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}

	instruments.renderCount, err = meter.Int64Counter(
		"cypher.render.count",
		metric.WithDescription("Number of statements rendered"),
	)
	if err != nil {
		otel.Handle(err)
	}

	instruments.cacheHits, err = meter.Int64Counter(
		"cypher.render.cache.hits",
		metric.WithDescription("Number of render cache hits"),
	)
	if err != nil {
		otel.Handle(err)
	}

	instruments.cacheMisses, err = meter.Int64Counter(
		"cypher.render.cache.misses",
		metric.WithDescription("Number of render cache misses"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return instruments
}

// Instrumentation wraps rendering with OpenTelemetry tracing and metrics.
type Instrumentation struct {
	config      *ObservabilityConfig
	instruments *observabilityInstruments
}

// NewInstrumentation creates instrumentation with the given config. A
// nil config uses DefaultObservabilityConfig.
func NewInstrumentation(config *ObservabilityConfig) *Instrumentation {
	if config == nil {
		config = DefaultObservabilityConfig()
	}
	return &Instrumentation{config: config, instruments: initObservability()}
}

// Render renders the statement inside a span and records metrics.
func (in *Instrumentation) Render(ctx context.Context, statement *cypher.Statement) string {
	var span trace.Span
	if in.config.EnableTracing {
		attrs := make([]attribute.KeyValue, 0, len(in.config.TracingAttributes))
		attrs = append(attrs, in.config.TracingAttributes...)
		ctx, span = in.instruments.tracer.Start(ctx, "cypher.render",
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(attrs...),
		)
		defer span.End()
	}

	start := time.Now()
	text := Render(statement)
	elapsed := time.Since(start)

	if span != nil {
		span.SetAttributes(
			attribute.String("db.statement", text),
			attribute.Int("cypher.statement.length", len(text)),
		)
	}

	if in.config.EnableMetrics {
		opt := metric.WithAttributes(in.config.MetricAttributes...)
		in.instruments.renderDuration.Record(ctx, elapsed.Seconds(), opt)
		in.instruments.renderCount.Add(ctx, 1, opt)
	}

	return text
}

func (in *Instrumentation) recordCacheHit(ctx context.Context) {
	if in.config.EnableMetrics {
		in.instruments.cacheHits.Add(ctx, 1, metric.WithAttributes(in.config.MetricAttributes...))
	}
}

func (in *Instrumentation) recordCacheMiss(ctx context.Context) {
	if in.config.EnableMetrics {
		in.instruments.cacheMisses.Add(ctx, 1, metric.WithAttributes(in.config.MetricAttributes...))
	}
}
