package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Scheme names accepted by New.
const (
	SchemeNone  = "none"
	SchemeBasic = "basic"
	SchemeNTLM  = "ntlm"
)

// Authenticator defines the interface for authentication handlers.
type Authenticator interface {
	// Transport wraps an http.RoundTripper with authentication.
	Transport(base http.RoundTripper) http.RoundTripper

	// Name returns the authentication scheme name.
	Name() string
}

// Credentials holds authentication credentials.
type Credentials struct {
	// Username is the user name for authentication.
	Username string

	// Password is the password for authentication.
	Password string

	// Domain is the optional domain for NTLM authentication.
	Domain string
}

// Validate checks that required credential fields are populated.
func (c *Credentials) Validate() error {
	if c.Username == "" {
		return errors.New("username is required")
	}
	if c.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// New returns the authenticator for scheme. The "none" scheme and an empty
// scheme return a nil Authenticator and no error.
func New(scheme string, creds Credentials) (Authenticator, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", SchemeNone:
		return nil, nil
	case SchemeBasic:
		if err := creds.Validate(); err != nil {
			return nil, fmt.Errorf("auth: basic: %w", err)
		}
		return NewBasicAuth(creds), nil
	case SchemeNTLM:
		if err := creds.Validate(); err != nil {
			return nil, fmt.Errorf("auth: ntlm: %w", err)
		}
		return NewNTLMAuth(creds), nil
	default:
		return nil, fmt.Errorf("auth: unsupported scheme %q", scheme)
	}
}
