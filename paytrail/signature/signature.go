// Package signature computes and verifies the HMAC used by Paytrail to sign
// requests, responses and redirect parameters.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"sort"
	"strings"
)

const (
	// HeaderPrefix marks the headers that take part in the signed message.
	HeaderPrefix = "checkout-"
	// Header carries the signature itself and is never signed.
	Header    = "signature"
	Algorithm = "sha256"
)

// HmacError is returned when a signature does not match the signed content.
type HmacError struct {
	Message string
}

func (e *HmacError) Error() string {
	return e.Message
}

const invalidMessage = "HMAC signature is invalid."

// Message builds the exact byte sequence that is signed: sorted
// "name:value" lines of checkout- headers followed by the body as the last line.
func Message(params map[string]string, body string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if strings.HasPrefix(k, HeaderPrefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		lines = append(lines, k+":"+params[k])
	}
	lines = append(lines, body)

	return strings.Join(lines, "\n")
}

// Calculate returns the lowercase hex HMAC-SHA256 of the canonical message.
func Calculate(params map[string]string, body, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(Message(params, body)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Validate recomputes the signature and compares it in constant time.
func Validate(params map[string]string, body, claimed, secret string) error {
	expected := Calculate(params, body, secret)
	if !hmac.Equal([]byte(expected), []byte(claimed)) {
		return &HmacError{Message: invalidMessage}
	}
	return nil
}

// ReduceHeaders keeps the first value of every header and lowercases names,
// so canonicalized Go header keys match the names the provider signed.
func ReduceHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) == 0 {
			continue
		}
		out[strings.ToLower(k)] = v[0]
	}
	return out
}
