package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshah/go-globalweather/soap"
	"github.com/kshah/go-globalweather/soap/transport"
)

func TestMetrics_RecordsOutcomes(t *testing.T) {
	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, faultReply)
			return
		}
		_, _ = io.WriteString(w, citiesReply("Canada", "Toronto"))
	}))
	defer server.Close()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	c := newTestClient(t, server.URL, WithMetrics(m))

	_, err := c.GetCitiesByCountry(context.Background(), "Canada")
	require.NoError(t, err)
	_, err = c.GetCitiesByCountry(context.Background(), "Canada")
	require.NoError(t, err)

	fail.Store(true)
	_, err = c.GetCitiesByCountry(context.Background(), "Canada")
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calls.WithLabelValues("GetCitiesByCountry", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues("GetCitiesByCountry", OutcomeFault)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	start := m.begin()
	m.done("GetCitiesByCountry", start, nil)
}

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, OutcomeSuccess},
		{"fault", fmt.Errorf("op: %w", &soap.Fault{Code: "soap:Server"}), OutcomeFault},
		{"unauthorized", transport.ErrUnauthorized, OutcomeUnauthorized},
		{"http", &transport.HTTPError{StatusCode: 502}, OutcomeHTTPError},
		{"timeout", fmt.Errorf("send: %w", context.DeadlineExceeded), OutcomeTimeout},
		{"other", errors.New("dial tcp: refused"), OutcomeError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outcomeOf(tt.err))
		})
	}
}
