package response

import (
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

type RefundResponse struct {
	Provider      string
	Status        string
	TransactionID string
}

func (r *RefundResponse) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	return wire.NewObject(wire.Camel).
		Str("provider", r.Provider).
		Str("status", r.Status).
		Str("transactionId", r.TransactionID)
}

func (r *RefundResponse) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "provider":
			r.Provider, err = wire.Str(d)
		case "status":
			r.Status, err = wire.Str(d)
		case "transactionid":
			r.TransactionID, err = wire.Str(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

// CitPaymentResponse carries ThreeDSecureURL when the payer must complete
// 3-D Secure; the API signals that with HTTP 403.
type CitPaymentResponse struct {
	TransactionID   string
	ThreeDSecureURL *string
}

// RequiresThreeDSecure reports whether the payer must be redirected.
func (r *CitPaymentResponse) RequiresThreeDSecure() bool {
	return r.ThreeDSecureURL != nil && *r.ThreeDSecureURL != ""
}

func (r *CitPaymentResponse) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	return wire.NewObject(wire.Camel).
		Str("transactionId", r.TransactionID).
		OptStr("threeDSecureUrl", r.ThreeDSecureURL)
}

func (r *CitPaymentResponse) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "transactionid":
			r.TransactionID, err = wire.Str(d)
		case "threedsecureurl":
			r.ThreeDSecureURL, err = wire.OptStr(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

type MitPaymentResponse struct {
	TransactionID string
}

func (r *MitPaymentResponse) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	return wire.NewObject(wire.Camel).Str("transactionId", r.TransactionID)
}

func (r *MitPaymentResponse) Decode(d *jx.Decoder) error {
	return decodeTransactionID(d, &r.TransactionID)
}

type RevertPaymentAuthHoldResponse struct {
	TransactionID string
}

func (r *RevertPaymentAuthHoldResponse) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	return wire.NewObject(wire.Camel).Str("transactionId", r.TransactionID)
}

func (r *RevertPaymentAuthHoldResponse) Decode(d *jx.Decoder) error {
	return decodeTransactionID(d, &r.TransactionID)
}

func decodeTransactionID(d *jx.Decoder, dst *string) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		if key != "transactionid" {
			return d.Skip()
		}
		var err error
		*dst, err = wire.Str(d)
		return err
	})
}

type InvoiceActivationResponse struct {
	Status string
}

func (r *InvoiceActivationResponse) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	return wire.NewObject(wire.Camel).Str("status", r.Status)
}

func (r *InvoiceActivationResponse) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		if key != "status" {
			return d.Skip()
		}
		var err error
		r.Status, err = wire.Str(d)
		return err
	})
}

type ReportRequestResponse struct {
	RequestID string
}

func (r *ReportRequestResponse) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	return wire.NewObject(wire.Camel).Str("requestId", r.RequestID)
}

func (r *ReportRequestResponse) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		if key != "requestid" {
			return d.Skip()
		}
		var err error
		r.RequestID, err = wire.Str(d)
		return err
	})
}

// AddCardFormResponse is the raw outcome of opening the add-card form. The
// API answers with a redirect to the hosted form.
type AddCardFormResponse struct {
	StatusCode  int
	RedirectURL string
	Body        []byte
}
