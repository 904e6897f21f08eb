// Package metrics instruments an api.Transport with Prometheus collectors.
package metrics

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/alapierre/go-paytrail-client/paytrail/api"
	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors shared by every instrumented transport.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

// New registers the collectors on reg, or on the default registerer when
// reg is nil. Registering twice reuses the existing collectors.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "paytrail",
			Name:      "requests_total",
			Help:      "Requests sent to the Paytrail API by route and status.",
		}, []string{"method", "route", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "paytrail",
			Name:      "request_duration_seconds",
			Help:      "Paytrail API round trip latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "paytrail",
			Name:      "in_flight_requests",
			Help:      "Paytrail API requests currently in flight.",
		}),
	}

	m.Requests = register(reg, m.Requests)
	m.Duration = register(reg, m.Duration)
	m.InFlight = register(reg, m.InFlight)
	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(errors.Wrap(err, "register collector"))
	}
	return c
}

// Wrap returns a transport that records every exchange made through next.
func (m *Metrics) Wrap(next api.Transport) api.Transport {
	return &transport{next: next, m: m}
}

type transport struct {
	next api.Transport
	m    *Metrics
}

func (t *transport) Do(ctx context.Context, req *api.Request) (*api.Response, error) {
	route := Route(req.URI)

	t.m.InFlight.Inc()
	start := time.Now()
	resp, err := t.next.Do(ctx, req)
	t.m.InFlight.Dec()
	t.m.Duration.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.m.Requests.WithLabelValues(req.Method, route, status).Inc()

	return resp, err
}

var staticSegments = map[string]bool{
	"merchants":                 true,
	"payment-providers":         true,
	"grouped-payment-providers": true,
	"payments":                  true,
	"tokenization":              true,
	"pay-and-add-card":          true,
	"addcard-form":              true,
	"token":                     true,
	"cit":                       true,
	"mit":                       true,
	"charge":                    true,
	"authorization-hold":        true,
	"commit":                    true,
	"revert":                    true,
	"refund":                    true,
	"email":                     true,
	"settlements":               true,
	"report":                    true,
	"activate-invoice":          true,
}

// Route replaces identifiers in uri with {id} so label cardinality stays
// bounded.
func Route(uri string) string {
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		uri = uri[:i]
	}
	parts := strings.Split(uri, "/")
	for i, p := range parts {
		if p != "" && !staticSegments[p] {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}
