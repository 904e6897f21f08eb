package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// RequestError is a transport-level failure: no response was received.
type RequestError struct {
	Method string
	URI    string
	Err    error
}

func (r *RequestError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", r.Method, r.URI, r.Err)
}

func (r *RequestError) Unwrap() error {
	return r.Err
}

// ClientError is an HTTP 4xx/5xx answer from the provider.
type ClientError struct {
	StatusCode   int
	Body         string
	Header       http.Header
	ErrorDetails map[string]any
}

func (c *ClientError) Error() string {
	if msg, ok := c.ErrorDetails["message"].(string); ok && msg != "" {
		return fmt.Sprintf("paytrail returns http status %d: %s", c.StatusCode, msg)
	}
	return fmt.Sprintf("paytrail returns http status %d: %s", c.StatusCode, c.Body)
}

// NewClientError builds a ClientError, decoding JSON error details when the
// body carries them.
func NewClientError(resp *Response) *ClientError {
	body := string(resp.Body)
	var details map[string]any
	if body != "" {
		_ = json.Unmarshal(resp.Body, &details)
	}
	return &ClientError{
		StatusCode:   resp.StatusCode,
		Body:         body,
		Header:       resp.Header,
		ErrorDetails: details,
	}
}
