// Package globalweather is a client for the GlobalWeather SOAP service with
// mutual TLS transport support.
//
// The library is organized into layers:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  client/          GlobalWeather operations               │
//	├─────────────────────────────────────────────────────────┤
//	│  schema/          Request/response payloads              │
//	├─────────────────────────────────────────────────────────┤
//	│  soap/            Envelopes, faults, marshalling         │
//	├─────────────────────────────────────────────────────────┤
//	│  soap/transport/  HTTP(S) sender, JKS-based mutual TLS   │
//	│  soap/auth/       Basic and NTLM authentication          │
//	└─────────────────────────────────────────────────────────┘
//
// # Quick Start
//
//	cfg := transport.DefaultConfig()
//	cfg.EndpointURL = "https://weather.example.com/globalweather.asmx"
//	cfg.KeystorePath = "/etc/globalweather/client.jks"
//	cfg.KeystorePassword = "changeit"
//	cfg.KeyAlias = "client"
//	cfg.KeyPassword = "changeit"
//	cfg.TruststorePath = "/etc/globalweather/trust.jks"
//	cfg.TruststorePassword = "changeit"
//
//	tmpl, err := soap.Build(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c, err := client.New(tmpl)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	cities, err := c.Cities(ctx, "Canada")
package globalweather
