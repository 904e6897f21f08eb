package paytrail

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alapierre/go-paytrail-client/paytrail/api"
	"github.com/alapierre/go-paytrail-client/paytrail/signature"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// TimestampLayout renders checkout-timestamp with microsecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

const contentType = "application/json; charset=utf-8"

// Client talks to the Paytrail API on behalf of one merchant. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	merchantID   int
	secretKey    string
	platformName string

	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	middleware []func(api.Transport) api.Transport

	transport api.Transport
	clock     clockwork.Clock
	nonce     func() string
}

type Option func(*Client)

// WithTransport replaces the HTTP transport entirely. Base URL, HTTP client
// and timeout options are then ignored.
func WithTransport(t api.Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithTransportMiddleware decorates the transport, e.g. with metrics.
func WithTransportMiddleware(m func(api.Transport) api.Transport) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, m)
	}
}

// WithClock sets the time source used for checkout-timestamp.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

// WithNonceSource sets the checkout-nonce generator. It must never repeat a
// value, also across goroutines.
func WithNonceSource(f func() string) Option {
	return func(c *Client) {
		c.nonce = f
	}
}

func NewClient(merchantID int, secretKey, platformName string, opts ...Option) (*Client, error) {

	if merchantID <= 0 {
		return nil, errors.Errorf("invalid merchant id: %d", merchantID)
	}
	if secretKey == "" {
		return nil, errors.New("secret key is required")
	}
	if platformName == "" {
		platformName = DefaultPlatformName
	}

	c := &Client{
		merchantID:   merchantID,
		secretKey:    secretKey,
		platformName: platformName,
		baseURL:      DefaultBaseURL,
		clock:        clockwork.NewRealClock(),
		nonce:        uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}

	if c.transport == nil {
		var ro []api.RestyOption
		if c.httpClient != nil {
			ro = append(ro, api.WithHTTPClient(c.httpClient))
		}
		if c.timeout > 0 {
			ro = append(ro, api.WithTimeout(c.timeout))
		}
		t, err := api.NewRestyTransport(c.baseURL, ro...)
		if err != nil {
			return nil, errors.Wrap(err, "create transport")
		}
		c.transport = t
	}
	for _, m := range c.middleware {
		c.transport = m(c.transport)
	}

	return c, nil
}

func (c *Client) MerchantID() int {
	return c.merchantID
}

func (c *Client) PlatformName() string {
	return c.platformName
}

func (c *Client) timestamp() string {
	return c.clock.Now().UTC().Format(TimestampLayout)
}

// headers builds the unsigned request headers. transactionID and
// tokenizationID are added only when non-empty.
func (c *Client) headers(method, transactionID, tokenizationID string) map[string]string {
	h := map[string]string{
		"checkout-account":   strconv.Itoa(c.merchantID),
		"checkout-algorithm": signature.Algorithm,
		"checkout-method":    strings.ToUpper(method),
		"checkout-nonce":     c.nonce(),
		"checkout-timestamp": c.timestamp(),
		"platform-name":      c.platformName,
		"content-type":       contentType,
	}
	if transactionID != "" {
		h["checkout-transaction-id"] = transactionID
	}
	if tokenizationID != "" {
		h["checkout-tokenization-id"] = tokenizationID
	}
	return h
}

// ValidateHmac checks a signature produced by Paytrail over the given
// checkout- parameters and body.
func (c *Client) ValidateHmac(params map[string]string, body, claimed string) error {
	return signature.Validate(params, body, claimed, c.secretKey)
}

// Sign computes the signature this client would attach for params and body.
func (c *Client) Sign(params map[string]string, body string) string {
	return signature.Calculate(params, body, c.secretKey)
}
