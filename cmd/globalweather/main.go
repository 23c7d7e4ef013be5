// Command globalweather lists the cities the GlobalWeather service knows for
// a country.
//
// Usage:
//
//	globalweather -config globalweather.yaml -country Canada
//
// Passwords left empty in the configuration are prompted for when stdin is
// a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"

	"github.com/kshah/go-globalweather/client"
	"github.com/kshah/go-globalweather/internal/config"
	gwlog "github.com/kshah/go-globalweather/internal/log"
	"github.com/kshah/go-globalweather/soap"
	"github.com/kshah/go-globalweather/soap/auth"
	"github.com/kshah/go-globalweather/soap/transport"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("globalweather", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "globalweather.yaml", "Path to the YAML configuration file")
	country := fs.String("country", "Canada", "Country to list cities for")
	logLevel := fs.String("loglevel", "", "Log level: debug, info, warn, error (overrides logging.level)")
	logFormat := fs.String("logformat", "", "Log format: text, json (overrides logging.format)")
	metricsFile := fs.String("metrics-file", "", "Write Prometheus metrics to this file on exit (textfile collector format)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Logging.Format = *logFormat
	}

	logger, closeLog, err := newLogger(cfg.Logging, stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	gw := &cfg.Clients.GlobalWeather
	tc := gw.TransportConfig()
	creds := gw.Credentials()
	if tc.TLSEnabled {
		promptMissing(stderr, "ssl.keystore-password", &tc.KeystorePassword)
		promptMissing(stderr, "ssl.key-password", &tc.KeyPassword)
		promptMissing(stderr, "ssl.truststore-password", &tc.TruststorePassword)
	}
	if !strings.EqualFold(gw.Auth.Type, auth.SchemeNone) && creds.Username != "" {
		promptMissing(stderr, "auth.password", &creds.Password)
	}

	authenticator, err := auth.New(gw.Auth.Type, creds)
	if err != nil {
		return err
	}

	logger.Debug("building transport",
		"endpoint", tc.EndpointURL,
		"tls", tc.TLSEnabled,
		"verify_hostname", tc.VerifyHostname,
		"auth", gw.Auth.Type)

	tmpl, err := soap.Build(tc,
		transport.WithAuthenticator(authenticator),
		transport.WithLogger(logger))
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	c, err := client.New(tmpl,
		client.WithLogger(logger),
		client.WithMetrics(client.NewMetrics(reg)))
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cities, callErr := c.Cities(ctx, *country)

	if *metricsFile != "" {
		if err := prometheus.WriteToTextfile(*metricsFile, reg); err != nil {
			logger.Warn("failed to write metrics file", "path", *metricsFile, "error", err)
		}
	}

	if callErr != nil {
		return callErr
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COUNTRY\tCITY")
	for _, city := range cities {
		fmt.Fprintf(tw, "%s\t%s\n", city.Country, city.Name)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	logger.Info("GetCitiesByCountry completed", "country", *country, "cities", len(cities))
	return nil
}

// newLogger builds the process logger. Output goes to stderr unless
// logging.file is set.
func newLogger(cfg config.LoggingConfig, stderr io.Writer) (*slog.Logger, func(), error) {
	level, err := gwlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	out := stderr
	closeFn := func() {}
	if cfg.File != "" {
		rf, err := gwlog.NewRotatingFile(cfg.File, int64(cfg.MaxSizeMB)<<20, cfg.MaxBackups)
		if err != nil {
			return nil, nil, err
		}
		out = rf
		closeFn = func() { _ = rf.Close() }
	}

	logger, err := gwlog.New(out, level, cfg.Format)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}

// promptMissing asks for an empty secret when stdin is a terminal.
func promptMissing(stderr io.Writer, key string, value *string) {
	if *value != "" {
		return
	}

	// Use os.Stdin.Fd() cast to int for cross-platform compatibility
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}

	fmt.Fprintf(stderr, "Enter %s: ", key)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(stderr)
	if err != nil {
		return
	}
	*value = string(secret)
}
