package paytrail

import (
	"net/url"

	"github.com/alapierre/go-paytrail-client/paytrail/signature"
)

// VerifyCallback checks the query of a redirect or callback URL. Paytrail
// signs its checkout- parameters with an empty body and passes the result
// in the signature parameter.
func (c *Client) VerifyCallback(params url.Values) error {
	claimed := params.Get(signature.Header)
	if claimed == "" {
		return ErrMissingSignature
	}

	fields := make(map[string]string, len(params))
	for k, v := range params {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	return signature.Validate(fields, "", claimed, c.secretKey)
}
