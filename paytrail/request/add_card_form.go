package request

import (
	"strconv"

	"github.com/alapierre/go-paytrail-client/paytrail/validation"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

var supportedFormMethods = []string{"GET", "POST"}

// AddCardFormRequest opens the hosted card tokenization form. Unlike other
// requests it is signed over its own dashed checkout- fields and the
// signature travels in the body.
type AddCardFormRequest struct {
	CheckoutAccount            int
	CheckoutAlgorithm          string
	CheckoutMethod             string
	CheckoutNonce              string
	CheckoutTimestamp          string
	CheckoutRedirectSuccessUrl string
	CheckoutRedirectCancelUrl  string
	CheckoutCallbackSuccessUrl *string
	CheckoutCallbackCancelUrl  *string
	Language                   string
	Signature                  string
}

func (r *AddCardFormRequest) Validate() error {
	return validation.Run(
		validation.Check(r.CheckoutAccount != 0, "checkout-account", "checkout-account is empty"),
		validation.NotEmpty(r.CheckoutAlgorithm, "checkout-algorithm", "checkout-algorithm is empty"),
		validation.OneOf(r.CheckoutMethod, supportedFormMethods, "checkout-method", "Unsupported method chosen"),
		validation.NotEmpty(r.CheckoutTimestamp, "checkout-timestamp", "checkout-timestamp is empty"),
		validation.NotEmpty(r.CheckoutRedirectSuccessUrl, "checkout-redirect-success-url", "checkout-redirect success url is empty"),
		validation.NotEmpty(r.CheckoutRedirectCancelUrl, "checkout-redirect-cancel-url", "checkout-redirect cancel url is empty"),
		validation.OneOf(r.Language, supportedLanguages, "language", "Unsupported language chosen"),
	)
}

// WireObject encodes the form with dashed keys; Signature is omitted
// until it is set.
func (r *AddCardFormRequest) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	o := wire.NewObject(wire.Dashed).
		Int("checkoutAccount", r.CheckoutAccount).
		Str("checkoutAlgorithm", r.CheckoutAlgorithm).
		Str("checkoutMethod", r.CheckoutMethod).
		Str("checkoutNonce", r.CheckoutNonce).
		Str("checkoutTimestamp", r.CheckoutTimestamp).
		Str("checkoutRedirectSuccessUrl", r.CheckoutRedirectSuccessUrl).
		Str("checkoutRedirectCancelUrl", r.CheckoutRedirectCancelUrl).
		OptStr("checkoutCallbackSuccessUrl", r.CheckoutCallbackSuccessUrl).
		OptStr("checkoutCallbackCancelUrl", r.CheckoutCallbackCancelUrl).
		Str("language", r.Language)
	if r.Signature != "" {
		o.Str("signature", r.Signature)
	}
	return o
}

// SignedFields returns the fields that take part in the form signature.
func (r *AddCardFormRequest) SignedFields() map[string]string {
	fields := r.WireObject().StringMap()
	delete(fields, "signature")
	return fields
}

func (r *AddCardFormRequest) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "checkoutaccount":
			var s string
			if s, err = wire.Str(d); err == nil && s != "" {
				r.CheckoutAccount, err = strconv.Atoi(s)
			}
		case "checkoutalgorithm":
			r.CheckoutAlgorithm, err = wire.Str(d)
		case "checkoutmethod":
			r.CheckoutMethod, err = wire.Str(d)
		case "checkoutnonce":
			r.CheckoutNonce, err = wire.Str(d)
		case "checkouttimestamp":
			r.CheckoutTimestamp, err = wire.Str(d)
		case "checkoutredirectsuccessurl":
			r.CheckoutRedirectSuccessUrl, err = wire.Str(d)
		case "checkoutredirectcancelurl":
			r.CheckoutRedirectCancelUrl, err = wire.Str(d)
		case "checkoutcallbacksuccessurl":
			r.CheckoutCallbackSuccessUrl, err = wire.OptStr(d)
		case "checkoutcallbackcancelurl":
			r.CheckoutCallbackCancelUrl, err = wire.OptStr(d)
		case "language":
			r.Language, err = wire.Str(d)
		case "signature":
			r.Signature, err = wire.Str(d)
		default:
			err = d.Skip()
		}
		return err
	})
}
