// Package telemetry sets up OpenTelemetry tracing and metrics for the item
// loader and owns the instruments shared by the HTTP server and the items
// API client.
//
//	providers, err := telemetry.Setup(ctx, &cfg.Telemetry)
//	if err != nil { ... }
//	defer providers.Shutdown(ctx)
//	di.Register(injector, cfg, logger, providers.Metrics())
//
// A disabled config yields empty Providers whose Metrics is nil; every
// consumer of *Metrics treats nil as "record nothing".
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/go-item-loader/internal/platform/config"
)

// Supported exporters.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Attribute keys used on spans and metric points.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrScreen      = attribute.Key("screen")
)

// Option configures Setup.
type Option func(*setupOptions)

type setupOptions struct {
	writer io.Writer
}

// WithWriter sends stdout exporter output to w. The CLI uses it to keep
// telemetry off the command's own output stream.
func WithWriter(w io.Writer) Option {
	return func(o *setupOptions) {
		o.writer = w
	}
}

// Providers owns the tracer and meter providers installed by Setup.
type Providers struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *Metrics
}

// Setup builds both providers from cfg and installs them, together with a
// TraceContext+Baggage propagator, as the otel globals. Nothing is
// installed when cfg.Enabled is false.
func Setup(ctx context.Context, cfg *config.TelemetryConfig, opts ...Option) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}

	o := &setupOptions{writer: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, cfg.Exporter, cfg.Endpoint, o.writer)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, cfg.Exporter, cfg.Endpoint, o.writer)
	if err != nil {
		_ = spanExporter.Shutdown(ctx)
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	p := &Providers{
		tracer: sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(spanExporter),
			sdktrace.WithResource(res),
		),
		meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
			sdkmetric.WithResource(res),
		),
	}

	p.metrics, err = NewMetrics(p.meter)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	otel.SetTracerProvider(p.tracer)
	otel.SetMeterProvider(p.meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return p, nil
}

// Metrics returns the registered instruments, or nil when telemetry is
// disabled.
func (p *Providers) Metrics() *Metrics {
	return p.metrics
}

// Shutdown flushes and stops both providers. Safe on disabled Providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.tracer != nil {
		if err := p.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.meter != nil {
		if err := p.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}
