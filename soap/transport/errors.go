package transport

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the server responds with 401 Unauthorized.
// Use errors.Is(err, ErrUnauthorized) to check for authentication failures.
var ErrUnauthorized = errors.New("transport: authentication failed (401 Unauthorized)")

// ConfigurationError reports a missing or invalid setting found before any
// connection is attempted.
type ConfigurationError struct {
	// Key is the configuration key at fault (e.g. "ssl.key-alias").
	Key string

	// Reason describes the violation.
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("transport: invalid configuration %q: %s", e.Key, e.Reason)
}

// TLSSetupError reports a failure loading certificate material or building
// the TLS client configuration.
type TLSSetupError struct {
	// Op is the step that failed (e.g. "load keystore").
	Op string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *TLSSetupError) Error() string {
	return fmt.Sprintf("transport: tls setup: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TLSSetupError) Unwrap() error {
	return e.Err
}

// HTTPError is returned when the server answers with a status code >= 400.
type HTTPError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Body is the raw response body. SOAP faults travel here.
	Body []byte
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	preview := string(e.Body)
	if len(preview) > 3000 {
		preview = preview[:3000] + "..."
	}
	return fmt.Sprintf("transport: HTTP %d: %s", e.StatusCode, preview)
}
