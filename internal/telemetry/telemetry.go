// Package telemetry provides OpenTelemetry instrumentation for onevision.
package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/yairfalse/onevision/internal/config"
)

// Recorder receives fetch and cache events. Provider implements it; Nop
// discards everything.
type Recorder interface {
	RecordPage(ctx context.Context, table string, records int, d time.Duration)
	RecordFetchError(ctx context.Context, table string)
	RecordCacheHit(ctx context.Context, key string)
	RecordCacheMiss(ctx context.Context, key string)
}

// Nop is a Recorder that records nothing.
type Nop struct{}

func (Nop) RecordPage(context.Context, string, int, time.Duration) {}
func (Nop) RecordFetchError(context.Context, string) {}
func (Nop) RecordCacheHit(context.Context, string) {}
func (Nop) RecordCacheMiss(context.Context, string) {}

// Provider wraps OTEL tracer and meter providers.
type Provider struct {
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
	tracer         trace.Tracer
	meter          metric.Meter
	registry       *promclient.Registry

	// Metrics
	pagesFetched   metric.Int64Counter
	recordsFetched metric.Int64Counter
	fetchErrors    metric.Int64Counter
	fetchDuration  metric.Float64Histogram
	cacheHits      metric.Int64Counter
	cacheMisses    metric.Int64Counter
}

var _ Recorder = (*Provider)(nil)

// NewProvider creates a new telemetry provider. Metrics are always
// readable through Handler; OTLP export is added when configured.
func NewProvider(ctx context.Context, cfg config.OTELConfig) (*Provider, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	p := &Provider{}

	if err := p.setupTracing(ctx, cfg, res); err != nil {
		return nil, err
	}

	if err := p.setupMetrics(ctx, cfg, res); err != nil {
		if p.tracerProvider != nil {
			_ = p.tracerProvider.Shutdown(ctx)
		}
		return nil, err
	}

	if err := p.initMetrics(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Provider) setupTracing(ctx context.Context, cfg config.OTELConfig, res *resource.Resource) error {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
	}

	if cfg.Traces.Enabled && cfg.Endpoint != "" {
		exp, err := createTraceExporter(ctx, cfg)
		if err != nil {
			return fmt.Errorf("create trace exporter: %w", err)
		}
		sampler := sdktrace.TraceIDRatioBased(cfg.Traces.SampleRate)
		opts = append(opts, sdktrace.WithBatcher(exp), sdktrace.WithSampler(sampler))
	}

	p.tracerProvider = sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(p.tracerProvider)
	p.tracer = p.tracerProvider.Tracer("onevision")

	return nil
}

func (p *Provider) setupMetrics(ctx context.Context, cfg config.OTELConfig, res *resource.Resource) error {
	p.registry = promclient.NewRegistry()
	promExporter, err := prometheus.New(prometheus.WithRegisterer(p.registry))
	if err != nil {
		return fmt.Errorf("create prometheus exporter: %w", err)
	}

	opts := []sdkmetric.Option{
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(promExporter),
	}

	if cfg.Metrics.Enabled && cfg.Endpoint != "" {
		exp, err := createMetricExporter(ctx, cfg)
		if err != nil {
			return fmt.Errorf("create metric exporter: %w", err)
		}
		opts = append(opts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)))
	}

	p.meterProvider = sdkmetric.NewMeterProvider(opts...)
	otel.SetMeterProvider(p.meterProvider)
	p.meter = p.meterProvider.Meter("onevision")

	return nil
}

func createTraceExporter(ctx context.Context, cfg config.OTELConfig) (sdktrace.SpanExporter, error) {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	return otlptracegrpc.New(ctx, opts...)
}

func createMetricExporter(ctx context.Context, cfg config.OTELConfig) (sdkmetric.Exporter, error) {
	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	return otlpmetricgrpc.New(ctx, opts...)
}

func (p *Provider) initMetrics() error {
	var err error

	p.pagesFetched, err = p.meter.Int64Counter(
		"onevision_pages_fetched_total",
		metric.WithDescription("Total store pages fetched"),
	)
	if err != nil {
		return fmt.Errorf("create pages_fetched: %w", err)
	}

	p.recordsFetched, err = p.meter.Int64Counter(
		"onevision_records_fetched_total",
		metric.WithDescription("Total raw records fetched"),
	)
	if err != nil {
		return fmt.Errorf("create records_fetched: %w", err)
	}

	p.fetchErrors, err = p.meter.Int64Counter(
		"onevision_fetch_errors_total",
		metric.WithDescription("Total failed page fetches"),
	)
	if err != nil {
		return fmt.Errorf("create fetch_errors: %w", err)
	}

	p.fetchDuration, err = p.meter.Float64Histogram(
		"onevision_fetch_duration_seconds",
		metric.WithDescription("Duration of single page fetches"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("create fetch_duration: %w", err)
	}

	p.cacheHits, err = p.meter.Int64Counter(
		"onevision_cache_hits_total",
		metric.WithDescription("Total result cache hits"),
	)
	if err != nil {
		return fmt.Errorf("create cache_hits: %w", err)
	}

	p.cacheMisses, err = p.meter.Int64Counter(
		"onevision_cache_misses_total",
		metric.WithDescription("Total result cache misses"),
	)
	if err != nil {
		return fmt.Errorf("create cache_misses: %w", err)
	}

	return nil
}

// Tracer returns the tracer.
func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

// Meter returns the meter.
func (p *Provider) Meter() metric.Meter {
	return p.meter
}

// Handler serves the provider's metrics in Prometheus text format.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// StartSpan starts a new span.
func (p *Provider) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return p.tracer.Start(ctx, name)
}

// RecordPage records one fetched page.
func (p *Provider) RecordPage(ctx context.Context, table string, records int, d time.Duration) {
	attrs := metric.WithAttributes(attribute.String("table", table))
	p.pagesFetched.Add(ctx, 1, attrs)
	p.recordsFetched.Add(ctx, int64(records), attrs)
	p.fetchDuration.Record(ctx, d.Seconds(), attrs)
}

// RecordFetchError records a failed page fetch.
func (p *Provider) RecordFetchError(ctx context.Context, table string) {
	p.fetchErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("table", table),
	))
}

// RecordCacheHit records a cache hit.
func (p *Provider) RecordCacheHit(ctx context.Context, key string) {
	p.cacheHits.Add(ctx, 1, metric.WithAttributes(
		attribute.String("key", key),
	))
}

// RecordCacheMiss records a cache miss.
func (p *Provider) RecordCacheMiss(ctx context.Context, key string) {
	p.cacheMisses.Add(ctx, 1, metric.WithAttributes(
		attribute.String("key", key),
	))
}

// Shutdown flushes and shuts down the providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.tracerProvider != nil {
		if err := p.tracerProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown tracer: %w", err)
		}
	}
	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown meter: %w", err)
		}
	}
	return nil
}
