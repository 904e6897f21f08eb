// Package response contains typed projections of Paytrail replies.
// Absent or null fields decode to their zero value.
package response

import (
	"github.com/alapierre/go-paytrail-client/paytrail/model"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

type PaymentResponse struct {
	TransactionID   string
	Href            string
	Terms           string
	Reference       string
	Groups          []model.PaymentMethodGroup
	Providers       []model.Provider
	CustomProviders []byte
}

func (r *PaymentResponse) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	o := wire.NewObject(wire.Camel).
		Str("transactionId", r.TransactionID).
		Str("href", r.Href).
		Str("terms", r.Terms).
		Str("reference", r.Reference)
	wire.Arr(o, "groups", r.Groups)
	wire.Arr(o, "providers", r.Providers)
	return o.Raw("customProviders", r.CustomProviders)
}

func (r *PaymentResponse) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "transactionid":
			r.TransactionID, err = wire.Str(d)
		case "href":
			r.Href, err = wire.Str(d)
		case "terms":
			r.Terms, err = wire.Str(d)
		case "reference":
			r.Reference, err = wire.Str(d)
		case "groups":
			r.Groups, err = decodeGroups(d)
		case "providers":
			r.Providers, err = model.DecodeProviders(d)
		case "customproviders":
			r.CustomProviders, err = wire.RawValue(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

func decodeGroups(d *jx.Decoder) ([]model.PaymentMethodGroup, error) {
	out := []model.PaymentMethodGroup{}
	err := wire.Items(d, func(d *jx.Decoder) error {
		var g model.PaymentMethodGroup
		if err := g.Decode(d); err != nil {
			return err
		}
		out = append(out, g)
		return nil
	})
	return out, err
}

// AddCardPaymentResponse is returned by pay-and-add-card.
type AddCardPaymentResponse struct {
	TransactionID string
	RedirectURL   string
}

func (r *AddCardPaymentResponse) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	return wire.NewObject(wire.Camel).
		Str("transactionId", r.TransactionID).
		Str("redirectUrl", r.RedirectURL)
}

func (r *AddCardPaymentResponse) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "transactionid":
			r.TransactionID, err = wire.Str(d)
		case "redirecturl":
			r.RedirectURL, err = wire.Str(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

// PaymentStatusResponse describes a payment's current state.
type PaymentStatusResponse struct {
	TransactionID string
	Status        string
	Amount        *int
	Currency      string
	Stamp         string
	Reference     string
	CreatedAt     string
	Href          string
	Provider      *string
	FilingCode    *string
	PaidAt        *string
}

func (r *PaymentStatusResponse) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	return wire.NewObject(wire.Camel).
		Str("transactionId", r.TransactionID).
		Str("status", r.Status).
		OptInt("amount", r.Amount).
		Str("currency", r.Currency).
		Str("stamp", r.Stamp).
		Str("reference", r.Reference).
		Str("createdAt", r.CreatedAt).
		Str("href", r.Href).
		OptStr("provider", r.Provider).
		OptStr("filingCode", r.FilingCode).
		OptStr("paidAt", r.PaidAt)
}

func (r *PaymentStatusResponse) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "transactionid":
			r.TransactionID, err = wire.Str(d)
		case "status":
			r.Status, err = wire.Str(d)
		case "amount":
			r.Amount, err = wire.OptInt(d)
		case "currency":
			r.Currency, err = wire.Str(d)
		case "stamp":
			r.Stamp, err = wire.Str(d)
		case "reference":
			r.Reference, err = wire.Str(d)
		case "createdat":
			r.CreatedAt, err = wire.Str(d)
		case "href":
			r.Href, err = wire.Str(d)
		case "provider":
			r.Provider, err = wire.OptStr(d)
		case "filingcode":
			r.FilingCode, err = wire.OptStr(d)
		case "paidat":
			r.PaidAt, err = wire.OptStr(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

// GroupedProviders is the payment page model: providers grouped by kind,
// plus the terms text to show the payer.
type GroupedProviders struct {
	Terms     string
	Groups    []model.PaymentMethodGroup
	Providers []model.Provider
}

func (r *GroupedProviders) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	o := wire.NewObject(wire.Camel).Str("terms", r.Terms)
	wire.Arr(o, "groups", r.Groups)
	return wire.Arr(o, "providers", r.Providers)
}

func (r *GroupedProviders) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "terms":
			r.Terms, err = wire.Str(d)
		case "groups":
			r.Groups, err = decodeGroups(d)
		case "providers":
			r.Providers, err = model.DecodeProviders(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

// Providers is a flat provider list.
type Providers []model.Provider

func (p *Providers) Decode(d *jx.Decoder) error {
	v, err := model.DecodeProviders(d)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
