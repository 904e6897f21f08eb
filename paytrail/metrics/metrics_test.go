package metrics

import (
	"context"
	"net/http"
	"testing"

	"github.com/alapierre/go-paytrail-client/paytrail/api"
	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute(t *testing.T) {
	tests := map[string]string{
		"/merchants/payment-providers":           "/merchants/payment-providers",
		"/payments/4b300af6-9a22/refund":         "/payments/{id}/refund",
		"/payments/tx-1/token/commit":            "/payments/{id}/token/commit",
		"/tokenization/tok-1":                    "/tokenization/{id}",
		"/settlements/st-1/payments/report":      "/settlements/{id}/payments/report",
		"/settlements?startDate=2023-01-01":      "/settlements",
		"/payments/token/cit/authorization-hold": "/payments/token/cit/authorization-hold",
		"/payments/tx-9/activate-invoice":        "/payments/{id}/activate-invoice",
	}
	for in, want := range tests {
		assert.Equal(t, want, Route(in), in)
	}
}

func TestMetrics_Wrap(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("test", reg)

	ok := m.Wrap(api.TransportFunc(func(context.Context, *api.Request) (*api.Response, error) {
		return &api.Response{StatusCode: http.StatusOK}, nil
	}))
	failing := m.Wrap(api.TransportFunc(func(context.Context, *api.Request) (*api.Response, error) {
		return nil, errors.New("connection refused")
	}))

	_, err := ok.Do(context.Background(), &api.Request{Method: http.MethodGet, URI: "/payments/tx-1"})
	require.NoError(t, err)
	_, err = ok.Do(context.Background(), &api.Request{Method: http.MethodGet, URI: "/payments/tx-2"})
	require.NoError(t, err)
	_, err = failing.Do(context.Background(), &api.Request{Method: http.MethodPost, URI: "/payments"})
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, "/payments/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodPost, "/payments", "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Duration))
}

func TestNew_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := New("test", reg)
	b := New("test", reg)
	assert.Same(t, a.Requests, b.Requests)
}
