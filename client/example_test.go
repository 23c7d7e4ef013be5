package client_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/kshah/go-globalweather/client"
	"github.com/kshah/go-globalweather/soap"
	"github.com/kshah/go-globalweather/soap/transport"
)

func ExampleNew() {
	// 1. Describe the endpoint and the client certificate material
	cfg := transport.DefaultConfig()
	cfg.EndpointURL = "https://weather.example.com/globalweather.asmx"
	cfg.KeystorePath = "/etc/globalweather/client.jks"
	cfg.KeystorePassword = "changeit"
	cfg.KeyAlias = "client"
	cfg.KeyPassword = "changeit"
	cfg.TruststorePath = "/etc/globalweather/trust.jks"
	cfg.TruststorePassword = "changeit"

	// 2. Build the transport
	tmpl, err := soap.Build(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// 3. Create the client
	c, err := client.New(tmpl)
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cities, err := c.Cities(ctx, "Canada")
	if err != nil {
		log.Fatal(err)
	}
	for _, city := range cities {
		fmt.Println(city.Name)
	}
}

func ExampleInvocationError() {
	var c *client.Client // from client.New

	_, err := c.GetCitiesByCountry(context.Background(), "Canada")

	var fault *soap.Fault
	var invErr *client.InvocationError
	switch {
	case errors.As(err, &fault):
		fmt.Printf("service rejected the request: %s\n", fault.Reason)
	case errors.Is(err, transport.ErrUnauthorized):
		fmt.Println("credentials rejected")
	case errors.As(err, &invErr):
		fmt.Printf("request %s failed: %v\n", invErr.RequestID, invErr.Err)
	}
}
