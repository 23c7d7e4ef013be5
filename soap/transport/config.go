package transport

import (
	"time"
)

// KeystoreTypeJKS is the only keystore format accepted for TLS material.
const KeystoreTypeJKS = "JKS"

// Config holds everything needed to build an HTTPSender.
type Config struct {
	// EndpointURL is the SOAP service endpoint. Required.
	EndpointURL string

	// TLSEnabled enables mutual TLS with the keystore and truststore below.
	// When false none of the TLS fields are inspected.
	TLSEnabled bool

	// KeystorePath is the JKS file holding the client private key and chain.
	KeystorePath string

	// KeystorePassword protects the integrity of the keystore file.
	KeystorePassword string

	// KeystoreType must be "JKS".
	KeystoreType string

	// KeyAlias selects the private key entry presented to the server.
	KeyAlias string

	// KeyPassword decrypts the private key entry.
	KeyPassword string

	// TruststorePath is the JKS file holding trusted issuer certificates.
	TruststorePath string

	// TruststorePassword protects the integrity of the truststore file.
	TruststorePassword string

	// VerifyHostname checks the server certificate against the endpoint host.
	// WARNING: disabling it permits man-in-the-middle attacks. Only use in
	// trusted internal environments.
	VerifyHostname bool

	// Timeout is the HTTP client timeout. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultConfig returns a Config with TLS and hostname verification enabled.
func DefaultConfig() Config {
	return Config{
		TLSEnabled:     true,
		KeystoreType:   KeystoreTypeJKS,
		VerifyHostname: true,
		Timeout:        DefaultTimeout,
	}
}

// Validate checks the configuration and returns the first violation as a
// *ConfigurationError. TLS settings are checked in a fixed order and only
// when TLS is enabled.
func (c *Config) Validate() error {
	if c.EndpointURL == "" {
		return &ConfigurationError{Key: "url", Reason: "missing endpoint"}
	}
	if !c.TLSEnabled {
		return nil
	}

	checks := []struct {
		key   string
		value string
	}{
		{"ssl.keystore", c.KeystorePath},
		{"ssl.keystore-password", c.KeystorePassword},
		{"ssl.keystore-type", c.KeystoreType},
		{"ssl.key-alias", c.KeyAlias},
		{"ssl.key-password", c.KeyPassword},
		{"ssl.truststore", c.TruststorePath},
		{"ssl.truststore-password", c.TruststorePassword},
	}
	for _, chk := range checks {
		if chk.value == "" {
			return &ConfigurationError{Key: chk.key, Reason: "must be set when ssl.enabled is true"}
		}
		if chk.key == "ssl.keystore-type" && chk.value != KeystoreTypeJKS {
			return &ConfigurationError{Key: chk.key, Reason: "must be " + KeystoreTypeJKS + ", got " + chk.value}
		}
	}
	return nil
}

func (c *Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}
