// Package observability bundles Prometheus metrics for the routed HTTP
// surface and provides a ready-to-use /metrics handler.
package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SolverCollector bundles Prometheus metrics for the solve endpoint.
type SolverCollector struct {
	gatherer prometheus.Gatherer

	Requests  *prometheus.CounterVec
	Durations prometheus.Histogram
	InFlight  prometheus.Gauge
}

// NewSolverCollector registers the routed Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when
// nil. Registering twice against the same registry reuses the existing
// collectors.
func NewSolverCollector(reg prometheus.Registerer) (*SolverCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routed_requests_total",
		Help: "Total number of handled solve requests, labeled by HTTP status code.",
	}, []string{"code"})
	requests, err := registerCounterVec(reg, requests, "routed_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "routed_request_duration_seconds",
		Help:    "Solve request latency in seconds, including queueing for a solver slot.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}), "routed_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	inFlight, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "routed_solves_in_flight",
		Help: "Number of solver runs currently executing.",
	}), "routed_solves_in_flight")
	if err != nil {
		return nil, err
	}

	return &SolverCollector{
		gatherer:  gatherer,
		Requests:  requests,
		Durations: durations,
		InFlight:  inFlight,
	}, nil
}

// ObserveRequest records one finished request: its HTTP status code and
// total wall-clock duration.
func (c *SolverCollector) ObserveRequest(code int, d time.Duration) {
	if c == nil {
		return
	}
	if c.Requests != nil {
		c.Requests.WithLabelValues(strconv.Itoa(code)).Inc()
	}
	if c.Durations != nil {
		c.Durations.Observe(d.Seconds())
	}
}

// SolveStarted marks a solver run as in flight; the returned func marks
// it finished.
func (c *SolverCollector) SolveStarted() func() {
	if c == nil || c.InFlight == nil {
		return func() {}
	}
	c.InFlight.Inc()
	return c.InFlight.Dec
}

// Handler exposes a ready-to-use /metrics handler.
func (c *SolverCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
