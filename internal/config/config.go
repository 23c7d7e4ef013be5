// Package config loads the globalweather YAML configuration.
//
// The file layout is:
//
//	clients:
//	  global-weather:
//	    url: https://weather.example/globalweather.asmx
//	    timeout: 60s
//	    ssl:
//	      enabled: true
//	      keystore: /etc/globalweather/client.jks
//	      keystore-password: ${GW_KEYSTORE_PASSWORD}
//	      keystore-type: JKS
//	      key-alias: client
//	      key-password: ${GW_KEY_PASSWORD}
//	      truststore: /etc/globalweather/trust.jks
//	      truststore-password: ${GW_TRUSTSTORE_PASSWORD}
//	      verifyHostName: true
//	    auth:
//	      type: none
//	logging:
//	  level: info
//	  format: text
//
// Environment references are expanded before parsing.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kshah/go-globalweather/internal/log"
	"github.com/kshah/go-globalweather/soap/auth"
	"github.com/kshah/go-globalweather/soap/transport"
)

// Config is the root of the configuration file.
type Config struct {
	Clients ClientsConfig `yaml:"clients"`
	Logging LoggingConfig `yaml:"logging"`
}

// ClientsConfig groups the configured service clients.
type ClientsConfig struct {
	GlobalWeather ClientConfig `yaml:"global-weather"`
}

// ClientConfig configures the GlobalWeather endpoint.
type ClientConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
	SSL     SSLConfig     `yaml:"ssl"`
	Auth    AuthConfig    `yaml:"auth"`
}

// SSLConfig configures mutual TLS. Enabled and VerifyHostName default to
// true when absent or null.
type SSLConfig struct {
	Enabled            *bool  `yaml:"enabled"`
	Keystore           string `yaml:"keystore"`
	KeystorePassword   string `yaml:"keystore-password"`
	KeystoreType       string `yaml:"keystore-type"`
	KeyAlias           string `yaml:"key-alias"`
	KeyPassword        string `yaml:"key-password"`
	Truststore         string `yaml:"truststore"`
	TruststorePassword string `yaml:"truststore-password"`
	VerifyHostName     *bool  `yaml:"verifyHostName"`
}

// AuthConfig configures HTTP authentication on top of TLS.
type AuthConfig struct {
	Type     string `yaml:"type"` // none, basic or ntlm
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Domain   string `yaml:"domain"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`

	// File, when set, receives log output instead of stderr.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max-size-mb"`
	MaxBackups int    `yaml:"max-backups"`
}

// Load reads, expands and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse expands environment references in data and decodes it.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	gw := &c.Clients.GlobalWeather
	if gw.Timeout == 0 {
		gw.Timeout = transport.DefaultTimeout
	}
	if gw.SSL.Enabled == nil {
		gw.SSL.Enabled = boolPtr(true)
	}
	if gw.SSL.VerifyHostName == nil {
		gw.SSL.VerifyHostName = boolPtr(true)
	}
	if gw.Auth.Type == "" {
		gw.Auth.Type = auth.SchemeNone
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = log.FormatText
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 10
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = 3
	}
}

func (c *Config) validate() error {
	gw := c.Clients.GlobalWeather
	if gw.URL == "" {
		return fmt.Errorf("clients.global-weather.url is required")
	}
	if gw.Timeout < 0 {
		return fmt.Errorf("clients.global-weather.timeout must be positive, got %s", gw.Timeout)
	}

	switch strings.ToLower(gw.Auth.Type) {
	case auth.SchemeNone, auth.SchemeBasic, auth.SchemeNTLM:
	default:
		return fmt.Errorf("clients.global-weather.auth.type must be 'none', 'basic', or 'ntlm', got '%s'", gw.Auth.Type)
	}

	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case log.FormatText, log.FormatJSON:
	default:
		return fmt.Errorf("logging.format must be 'text' or 'json', got '%s'", c.Logging.Format)
	}
	if c.Logging.MaxSizeMB < 0 {
		return fmt.Errorf("logging.max-size-mb must be positive, got %d", c.Logging.MaxSizeMB)
	}

	return nil
}

// TransportConfig converts the client settings into a transport.Config.
// TLS fields are checked later, when the transport is built.
func (c *ClientConfig) TransportConfig() transport.Config {
	return transport.Config{
		EndpointURL:        c.URL,
		TLSEnabled:         boolValue(c.SSL.Enabled, true),
		KeystorePath:       c.SSL.Keystore,
		KeystorePassword:   c.SSL.KeystorePassword,
		KeystoreType:       c.SSL.KeystoreType,
		KeyAlias:           c.SSL.KeyAlias,
		KeyPassword:        c.SSL.KeyPassword,
		TruststorePath:     c.SSL.Truststore,
		TruststorePassword: c.SSL.TruststorePassword,
		VerifyHostname:     boolValue(c.SSL.VerifyHostName, true),
		Timeout:            c.Timeout,
	}
}

// Credentials returns the HTTP authentication credentials.
func (c *ClientConfig) Credentials() auth.Credentials {
	return auth.Credentials{
		Username: c.Auth.Username,
		Password: c.Auth.Password,
		Domain:   c.Auth.Domain,
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func boolValue(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
