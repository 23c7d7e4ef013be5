package soap

import (
	"context"
	"errors"
	"fmt"

	"github.com/kshah/go-globalweather/soap/transport"
)

// MessageSender delivers a serialized SOAP message and returns the reply.
// *transport.HTTPSender is the standard implementation.
type MessageSender interface {
	Supports(uri string) bool
	Send(ctx context.Context, uri, soapAction string, body []byte) ([]byte, error)
}

// Template couples an endpoint, a marshaller pair and message senders.
// It is immutable after construction and safe for concurrent use.
type Template struct {
	defaultURI   string
	marshaller   Marshaller
	unmarshaller Unmarshaller
	senders      []MessageSender
}

// Option configures a Template.
type Option func(*Template)

// WithMarshaller sets the marshaller.
func WithMarshaller(m Marshaller) Option {
	return func(t *Template) {
		t.marshaller = m
	}
}

// WithUnmarshaller sets the unmarshaller.
func WithUnmarshaller(u Unmarshaller) Option {
	return func(t *Template) {
		t.unmarshaller = u
	}
}

// WithMessageSender appends a message sender.
func WithMessageSender(s MessageSender) Option {
	return func(t *Template) {
		if s != nil {
			t.senders = append(t.senders, s)
		}
	}
}

// NewTemplate assembles a Template from its parts without validating them.
// Use Build for a complete, validated Template.
func NewTemplate(defaultURI string, opts ...Option) *Template {
	t := &Template{defaultURI: defaultURI}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Build validates cfg, builds an HTTP sender for it and returns a Template
// using XMLMarshaller in both directions. Configuration and TLS problems are
// returned as *transport.ConfigurationError and *transport.TLSSetupError.
func Build(cfg transport.Config, senderOpts ...transport.HTTPSenderOption) (*Template, error) {
	sender, err := transport.NewHTTPSender(cfg, senderOpts...)
	if err != nil {
		return nil, err
	}

	return NewTemplate(cfg.EndpointURL,
		WithMarshaller(XMLMarshaller{}),
		WithUnmarshaller(XMLMarshaller{}),
		WithMessageSender(sender),
	), nil
}

// DefaultURI returns the endpoint messages are sent to.
func (t *Template) DefaultURI() string {
	return t.defaultURI
}

// Marshaller returns the configured marshaller, or nil.
func (t *Template) Marshaller() Marshaller {
	return t.marshaller
}

// Unmarshaller returns the configured unmarshaller, or nil.
func (t *Template) Unmarshaller() Unmarshaller {
	return t.unmarshaller
}

// MessageSenders returns a copy of the configured senders.
func (t *Template) MessageSenders() []MessageSender {
	out := make([]MessageSender, len(t.senders))
	copy(out, t.senders)
	return out
}

// MarshalSendAndReceive marshals request, sends it to the default URI with
// soapAction and unmarshals the reply into response.
//
// A SOAP fault, whether in a 2xx body or in an HTTP error body, is returned
// as a *Fault.
func (t *Template) MarshalSendAndReceive(ctx context.Context, soapAction string, request, response interface{}) error {
	if t.marshaller == nil || t.unmarshaller == nil {
		return errors.New("soap: template has no marshaller or unmarshaller")
	}

	sender, err := t.senderFor(t.defaultURI)
	if err != nil {
		return err
	}

	body, err := t.marshaller.Marshal(request)
	if err != nil {
		return err
	}

	respBody, err := sender.Send(ctx, t.defaultURI, soapAction, body)
	if err != nil {
		var httpErr *transport.HTTPError
		if errors.As(err, &httpErr) {
			if fault, ferr := ParseFault(httpErr.Body); ferr == nil && fault != nil {
				return fmt.Errorf("%s: %w", soapAction, fault)
			}
		}
		return err
	}

	return t.unmarshaller.Unmarshal(respBody, response)
}

// CloseIdleConnections releases pooled connections of every sender that
// holds any.
func (t *Template) CloseIdleConnections() {
	for _, s := range t.senders {
		if c, ok := s.(interface{ CloseIdleConnections() }); ok {
			c.CloseIdleConnections()
		}
	}
}

func (t *Template) senderFor(uri string) (MessageSender, error) {
	for _, s := range t.senders {
		if s.Supports(uri) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("soap: no message sender supports %q", uri)
}
