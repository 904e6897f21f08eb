// Package png renders payment links as QR codes so a payer can continue on
// a phone.
package png

import (
	"net/url"

	"github.com/go-faster/errors"
	"github.com/skip2/go-qrcode"
)

const DefaultSize = 300

func Qr(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, DefaultSize)
}

// PaymentLink renders the href returned for a created payment. Only
// absolute https links are accepted.
func PaymentLink(href string, size int) ([]byte, error) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, errors.Wrap(err, "parse payment link")
	}
	if u.Scheme != "https" || u.Host == "" {
		return nil, errors.Errorf("not a https payment link: %q", href)
	}
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(href, qrcode.Medium, size)
}
