package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const (
	// ContentTypeSOAP is the content type for SOAP 1.1 messages.
	ContentTypeSOAP = "text/xml; charset=utf-8"

	// HeaderSOAPAction names the SOAP 1.1 action header.
	HeaderSOAPAction = "SOAPAction"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second

	// defaultBufferSize is the initial size for pooled buffers.
	defaultBufferSize = 32 * 1024 // 32KB
)

// bufferPool is a pool of reusable bytes.Buffer to reduce allocations.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, defaultBufferSize))
	},
}

// readAllPooled reads from r using a pooled buffer and returns a copy of the data.
func readAllPooled(r io.Reader) ([]byte, error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// Authenticator wraps a RoundTripper with HTTP authentication.
// Implementations live in the soap/auth package.
type Authenticator interface {
	Transport(base http.RoundTripper) http.RoundTripper
}

// HTTPSender posts SOAP messages over HTTP or HTTPS.
// It is immutable after construction and safe for concurrent use.
type HTTPSender struct {
	client  *http.Client
	base    *http.Transport
	headers http.Header
	tls     bool
}

// HTTPSenderOption configures an HTTPSender.
type HTTPSenderOption func(*senderOptions)

type senderOptions struct {
	timeout time.Duration
	headers http.Header
	auth    Authenticator
	logger  *slog.Logger
}

// WithTimeout overrides the HTTP client timeout from the config.
func WithTimeout(d time.Duration) HTTPSenderOption {
	return func(o *senderOptions) {
		o.timeout = d
	}
}

// WithHeader adds a static header sent with every request.
func WithHeader(key, value string) HTTPSenderOption {
	return func(o *senderOptions) {
		o.headers.Add(key, value)
	}
}

// WithAuthenticator wraps the transport with HTTP authentication.
func WithAuthenticator(a Authenticator) HTTPSenderOption {
	return func(o *senderOptions) {
		o.auth = a
	}
}

// WithLogger sets the logger used during construction.
func WithLogger(l *slog.Logger) HTTPSenderOption {
	return func(o *senderOptions) {
		o.logger = l
	}
}

// NewHTTPSender validates cfg, loads TLS material when enabled and returns a
// ready sender. Configuration problems are reported as *ConfigurationError,
// certificate problems as *TLSSetupError.
func NewHTTPSender(cfg Config, opts ...HTTPSenderOption) (*HTTPSender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := senderOptions{
		timeout: cfg.timeout(),
		headers: make(http.Header),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	base := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:    20,
		IdleConnTimeout: 90 * time.Second,
	}

	if cfg.TLSEnabled {
		tlsCfg, err := NewTLSConfig(cfg)
		if err != nil {
			return nil, err
		}
		base.TLSClientConfig = tlsCfg

		if !cfg.VerifyHostname {
			o.logger.Warn("TLS hostname verification disabled; only use this in trusted environments",
				"endpoint", cfg.EndpointURL)
		}
	}

	var rt http.RoundTripper = base
	if o.auth != nil {
		rt = o.auth.Transport(rt)
	}
	rt = &stripContentLength{next: rt}

	return &HTTPSender{
		client: &http.Client{
			Timeout:   o.timeout,
			Transport: rt,
		},
		base:    base,
		headers: o.headers,
		tls:     cfg.TLSEnabled,
	}, nil
}

// Supports reports whether the sender can deliver to uri.
func (s *HTTPSender) Supports(uri string) bool {
	u, err := url.Parse(uri)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// TLSEnabled reports whether the sender was built with client certificates.
func (s *HTTPSender) TLSEnabled() bool {
	return s.tls
}

// Send posts body to uri with the given SOAP action and returns the response body.
func (s *HTTPSender) Send(ctx context.Context, uri, soapAction string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("transport: failed to create request: %w", err)
	}

	for k, vs := range s.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", ContentTypeSOAP)
	// SOAP 1.1 requires the action as a quoted string.
	req.Header.Set(HeaderSOAPAction, `"`+soapAction+`"`)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transport: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := readAllPooled(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("transport: failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: respBody}
	}

	return respBody, nil
}

// CloseIdleConnections closes any idle connections in the transport.
// The base transport is closed directly since the wrapping RoundTrippers do
// not forward the call.
func (s *HTTPSender) CloseIdleConnections() {
	s.base.CloseIdleConnections()
}
