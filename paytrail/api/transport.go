// Package api is the HTTP transport layer of the Paytrail client.
package api

import (
	"context"
	"net/http"
	"net/url"
)

// Request is a fully signed HTTP exchange ready to be sent.
type Request struct {
	Method  string
	URI     string
	Query   url.Values
	Headers map[string]string
	Body    []byte
}

// Response is what the provider answered, before verification.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport sends a request and returns the raw response. Implementations
// must not follow redirects and must be safe for concurrent use. Non-2xx
// answers are returned as responses, not errors.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

func (f TransportFunc) Do(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
