package telemetry

import (
	"errors"

	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/jsamuelsen11/go-item-loader"

// Metrics holds the HTTP instruments. Item load metrics are owned by the
// listing service, which registers them on the global meter.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
}

// NewMetrics registers every instrument on mp. All registration errors are
// reported together.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	r := registrar{meter: mp.Meter(instrumentationName)}

	m := &Metrics{
		ServerRequestDuration: r.histogram("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    r.counter("http.server.request.total", "Total number of incoming HTTP requests"),
		ClientRequestDuration: r.histogram("http.client.request.duration", "Duration of requests to the items API"),
		ClientRequestTotal:    r.counter("http.client.request.total", "Total number of requests to the items API"),
	}
	if err := errors.Join(r.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

type registrar struct {
	meter metric.Meter
	errs  []error
}

func (r *registrar) histogram(name, desc string) metric.Float64Histogram {
	h, err := r.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		r.errs = append(r.errs, err)
	}
	return h
}

func (r *registrar) counter(name, desc string) metric.Int64Counter {
	c, err := r.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit("{request}"))
	if err != nil {
		r.errs = append(r.errs, err)
	}
	return c
}
