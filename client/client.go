package client

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kshah/go-globalweather/schema"
	"github.com/kshah/go-globalweather/soap"
)

// Client invokes GlobalWeather operations through a soap.Template.
type Client struct {
	tmpl    *soap.Template
	logger  *slog.Logger
	metrics *Metrics
	events  *eventLogger

	closeOnce sync.Once
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records call counts and latencies in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New returns a client bound to tmpl. The template must carry a default URI,
// a marshaller, an unmarshaller and at least one message sender; the first
// missing part is reported as a *ConstructionError.
func New(tmpl *soap.Template, opts ...Option) (*Client, error) {
	switch {
	case tmpl == nil:
		return nil, &ConstructionError{Reason: "transport is nil"}
	case tmpl.DefaultURI() == "":
		return nil, &ConstructionError{Reason: "default URI is not set"}
	case tmpl.Marshaller() == nil:
		return nil, &ConstructionError{Reason: "marshaller is not set"}
	case tmpl.Unmarshaller() == nil:
		return nil, &ConstructionError{Reason: "unmarshaller is not set"}
	case len(tmpl.MessageSenders()) == 0:
		return nil, &ConstructionError{Reason: "no message senders configured"}
	}

	c := &Client{
		tmpl:   tmpl,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.events = newEventLogger(c.logger, tmpl.DefaultURI())
	c.events.lifecycle(SubtypeCreated)

	return c, nil
}

// Endpoint returns the URI requests are sent to.
func (c *Client) Endpoint() string {
	return c.tmpl.DefaultURI()
}

// GetCitiesByCountry asks the service for the cities of country. The name is
// sent as given, including an empty string; interpreting it is up to the
// service.
func (c *Client) GetCitiesByCountry(ctx context.Context, country string) (*schema.GetCitiesByCountryResponse, error) {
	const op = schema.ActionGetCitiesByCountry

	requestID := uuid.NewString()
	logger := c.logger.With("operation", op, "request_id", requestID)

	logger.Info("Sending GetCitiesByCountry request...", "country", country, "endpoint", c.Endpoint())
	c.events.invocation(ctx, SubtypeSend, op, requestID, OutcomeAttempt, map[string]any{"country": country})

	var resp schema.GetCitiesByCountryResponse
	start := c.metrics.begin()
	err := c.tmpl.MarshalSendAndReceive(ctx, op, &schema.GetCitiesByCountry{CountryName: country}, &resp)
	c.metrics.done(op, start, err)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error("GetCitiesByCountry request failed", "error", err, "duration", elapsed)
		c.events.invocation(ctx, SubtypeFailed, op, requestID, outcomeOf(err), map[string]any{"error": err.Error()})
		return nil, &InvocationError{Operation: op, RequestID: requestID, Err: err}
	}

	logger.Debug("GetCitiesByCountry response received",
		"duration", elapsed, "result_bytes", len(resp.GetCitiesByCountryResult))
	c.events.invocation(ctx, SubtypeComplete, op, requestID, OutcomeSuccess, nil)
	return &resp, nil
}

// Cities calls GetCitiesByCountry and parses the returned city table.
func (c *Client) Cities(ctx context.Context, country string) ([]schema.City, error) {
	resp, err := c.GetCitiesByCountry(ctx, country)
	if err != nil {
		return nil, err
	}

	cities, err := resp.Cities()
	if err != nil {
		return nil, &InvocationError{Operation: schema.ActionGetCitiesByCountry, Err: err}
	}
	return cities, nil
}

// Close releases idle connections held by the transport. The client remains
// usable; later calls open new connections.
func (c *Client) Close() error {
	c.tmpl.CloseIdleConnections()
	c.closeOnce.Do(func() {
		c.events.lifecycle(SubtypeClosed)
	})
	return nil
}
