package api

import (
	"context"
	"net/http"
	"time"

	"github.com/alapierre/go-paytrail-client/paytrail/util"
	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "paytrail.api")

// RestyTransport sends requests through a resty client. Redirects are never
// followed so the add-card form can report the Location it received.
type RestyTransport struct {
	rest    *resty.Client
	baseURL string
}

type RestyOption func(*RestyTransport)

// WithHTTPClient replaces the underlying http.Client. Its CheckRedirect is
// overridden.
func WithHTTPClient(hc *http.Client) RestyOption {
	return func(t *RestyTransport) {
		t.rest = resty.NewWithClient(hc)
	}
}

func WithTimeout(d time.Duration) RestyOption {
	return func(t *RestyTransport) {
		t.rest.SetTimeout(d)
	}
}

func WithRoundTripper(rt http.RoundTripper) RestyOption {
	return func(t *RestyTransport) {
		t.rest.SetTransport(rt)
	}
}

func NewRestyTransport(baseURL string, opts ...RestyOption) (*RestyTransport, error) {
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}

	t := &RestyTransport{rest: resty.New(), baseURL: baseURL}
	for _, o := range opts {
		o(t)
	}

	t.rest.
		SetBaseURL(baseURL).
		SetLogger(logger).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return t, nil
}

func (t *RestyTransport) BaseURL() string {
	return t.baseURL
}

func (t *RestyTransport) Do(ctx context.Context, req *Request) (*Response, error) {

	r := t.rest.R().SetContext(ctx)
	if util.DebugEnabled() {
		r.EnableTrace()
	}

	r.SetHeaders(req.Headers)
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URI)
	if err != nil {
		return nil, &RequestError{Method: req.Method, URI: req.URI, Err: err}
	}

	printTraceInfo(req, resp)

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

func printTraceInfo(req *Request, resp *resty.Response) {

	if !util.DebugEnabled() {
		return
	}

	entry := logger.WithFields(logrus.Fields{
		"method": req.Method,
		"uri":    req.URI,
		"status": resp.StatusCode(),
		"time":   resp.Time(),
	})

	if util.HttpTraceEnabled() {
		ti := resp.Request.TraceInfo()
		entry = entry.WithFields(logrus.Fields{
			"dns":         ti.DNSLookup,
			"conn":        ti.ConnTime,
			"tls":         ti.TLSHandshake,
			"server":      ti.ServerTime,
			"total":       ti.TotalTime,
			"conn_reused": ti.IsConnReused,
		})
		entry.Debugf("response body: %s", resp.Body())
		return
	}

	entry.Debug("response received")
}
