package paytrail

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/alapierre/go-paytrail-client/paytrail/model"
	"github.com/alapierre/go-paytrail-client/paytrail/request"
	"github.com/alapierre/go-paytrail-client/paytrail/response"
)

// PaymentProviders lists the providers enabled for the merchant. amount,
// in minor units, narrows the list to providers that accept it.
func (c *Client) PaymentProviders(ctx context.Context, amount *int) ([]model.Provider, error) {

	q := url.Values{}
	if amount != nil {
		q.Set("amount", strconv.Itoa(*amount))
	}

	var out response.Providers
	err := c.do(ctx, call{
		operation: "PaymentProviders",
		method:    http.MethodGet,
		uri:       "/merchants/payment-providers",
		query:     q,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GroupedPaymentProviders lists providers grouped by payment method
// together with the localized terms link. language defaults to FI.
func (c *Client) GroupedPaymentProviders(ctx context.Context, amount *int, language string, groups []string) (*response.GroupedProviders, error) {

	if language == "" {
		language = request.LanguageFI
	}

	q := url.Values{"language": {language}}
	if amount != nil {
		q.Set("amount", strconv.Itoa(*amount))
	}
	if len(groups) > 0 {
		q.Set("groups", strings.Join(groups, ","))
	}

	out := &response.GroupedProviders{}
	err := c.do(ctx, call{
		operation: "GroupedPaymentProviders",
		method:    http.MethodGet,
		uri:       "/merchants/grouped-payment-providers",
		query:     q,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
