// Package client provides the GlobalWeather SOAP client.
//
// A Client is built from a *soap.Template, which carries the endpoint, the
// XML marshaller pair and the HTTP(S) message sender:
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
//	resp, err := c.GetCitiesByCountry(ctx, "Canada")
//
// Every call failure is returned as a *InvocationError. The client stays
// usable after a failed call and is safe for concurrent use.
package client
