package auth

import (
	"net/http"

	"github.com/Azure/go-ntlmssp"
)

// NTLMAuth implements NTLM authentication.
type NTLMAuth struct {
	creds Credentials
}

// NewNTLMAuth creates a new NTLM authentication handler.
func NewNTLMAuth(creds Credentials) *NTLMAuth {
	return &NTLMAuth{creds: creds}
}

// Name returns the authentication scheme name.
func (a *NTLMAuth) Name() string {
	return "NTLM"
}

// Transport wraps an http.RoundTripper with NTLM authentication.
// The negotiator reads the user from Basic credentials on the request, so
// they are attached before it runs.
func (a *NTLMAuth) Transport(base http.RoundTripper) http.RoundTripper {
	return &credentialsTransport{
		next:  ntlmssp.Negotiator{RoundTripper: base},
		creds: a.creds,
	}
}

// userName returns the account in DOMAIN\user form when a domain is set.
func (c Credentials) userName() string {
	if c.Domain == "" {
		return c.Username
	}
	return c.Domain + `\` + c.Username
}

type credentialsTransport struct {
	next  http.RoundTripper
	creds Credentials
}

// RoundTrip implements http.RoundTripper.
func (t *credentialsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqCopy := req.Clone(req.Context())
	reqCopy.SetBasicAuth(t.creds.userName(), t.creds.Password)
	return t.next.RoundTrip(reqCopy)
}
