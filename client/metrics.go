package client

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kshah/go-globalweather/soap"
	"github.com/kshah/go-globalweather/soap/transport"
)

// Call outcomes recorded by Metrics.
const (
	OutcomeSuccess      = "success"
	OutcomeFault        = "fault"
	OutcomeHTTPError    = "http_error"
	OutcomeUnauthorized = "unauthorized"
	OutcomeTimeout      = "timeout"
	OutcomeError        = "error"
)

// Metrics contains Prometheus metrics for SOAP calls.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewMetrics registers the client collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		calls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "globalweather_client_calls_total",
				Help: "Total number of SOAP calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),

		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "globalweather_client_call_duration_seconds",
				Help:    "Duration of SOAP calls in seconds",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
			},
			[]string{"operation"},
		),

		inFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "globalweather_client_calls_in_flight",
				Help: "Current number of SOAP calls awaiting a reply",
			},
		),
	}
}

// begin marks a call as started. A nil receiver records nothing.
func (m *Metrics) begin() time.Time {
	if m != nil {
		m.inFlight.Inc()
	}
	return time.Now()
}

// done records the outcome and duration of a call started at start.
func (m *Metrics) done(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.inFlight.Dec()
	m.calls.WithLabelValues(operation, outcomeOf(err)).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func outcomeOf(err error) string {
	var httpErr *transport.HTTPError
	switch {
	case err == nil:
		return OutcomeSuccess
	case soap.IsFault(err):
		return OutcomeFault
	case errors.Is(err, transport.ErrUnauthorized):
		return OutcomeUnauthorized
	case errors.As(err, &httpErr):
		return OutcomeHTTPError
	case errors.Is(err, context.DeadlineExceeded):
		return OutcomeTimeout
	default:
		return OutcomeError
	}
}
