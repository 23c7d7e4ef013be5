// Package auth provides HTTP authentication for the SOAP transport.
//
// # Supported Authentication Methods
//
//   - None: rely on the client certificate alone
//   - Basic: HTTP Basic authentication (use only over TLS)
//   - NTLM: NT LAN Manager authentication (via github.com/Azure/go-ntlmssp)
//
// # Usage
//
//	a, err := auth.New(auth.SchemeNTLM, auth.Credentials{
//	    Username: "svc-weather",
//	    Password: "password",
//	    Domain:   "CORP",
//	})
//	if err != nil {
//	    return err
//	}
//	tmpl, err := soap.Build(cfg, transport.WithAuthenticator(a))
//
// Every authenticator clones the request before adding headers, so callers
// can reuse requests across retries.
package auth
