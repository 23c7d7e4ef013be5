// Package soap implements the SOAP 1.1 message exchange used by the
// GlobalWeather client.
//
// It provides envelope construction, fault parsing and a Template that ties
// an endpoint, a marshaller pair and one or more message senders together.
//
// # Subpackages
//
//   - auth: Authentication handlers (Basic, NTLM)
//   - transport: HTTP/TLS message sender
//
// # Building a Template
//
//	cfg := transport.DefaultConfig()
//	cfg.EndpointURL = "https://weather.example.com/globalweather.asmx"
//	cfg.KeystorePath = "/etc/gw/client.jks"
//	// ...remaining keystore and truststore settings
//
//	tmpl, err := soap.Build(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var resp schema.GetCitiesByCountryResponse
//	err = tmpl.MarshalSendAndReceive(ctx, "GetCitiesByCountry",
//	    &schema.GetCitiesByCountry{CountryName: "Canada"}, &resp)
package soap
