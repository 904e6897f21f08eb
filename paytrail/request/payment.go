// Package request contains the request models sent to the Paytrail API.
// Every model validates itself before it is transmitted.
package request

import (
	"github.com/alapierre/go-paytrail-client/paytrail/model"
	"github.com/alapierre/go-paytrail-client/paytrail/validation"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

const (
	CurrencyEUR = "EUR"

	LanguageFI = "FI"
	LanguageSV = "SV"
	LanguageEN = "EN"
)

var (
	supportedCurrencies = []string{CurrencyEUR}
	supportedLanguages  = []string{LanguageFI, LanguageSV, LanguageEN}
)

// PaymentRequest creates a new payment. Amount and item prices are in
// minor units.
type PaymentRequest struct {
	Stamp            string
	Reference        string
	Amount           int
	Currency         string
	Language         string
	Items            []model.Item
	Customer         *model.Customer
	DeliveryAddress  *model.Address
	InvoicingAddress *model.Address
	RedirectUrls     *model.CallbackUrl
	CallbackUrls     *model.CallbackUrl
	CallbackDelay    *int
	Groups           []string
}

func (r *PaymentRequest) Validate() error {
	return validation.Run(r.rules()...)
}

func (r *PaymentRequest) rules() []validation.Rule {
	return []validation.Rule{
		validation.Check(r.Amount > 0, "amount", "Amount is empty"),
		validation.When(len(r.Items) > 0 && itemsPriced(r.Items),
			validation.Lazy(func() validation.Rule {
				total, ok := model.ItemsTotal(r.Items)
				return validation.Check(ok && r.Amount == total, "amount", "Amount doesnt match ItemsTotal")
			})),
		validation.NotEmpty(r.Stamp, "stamp", "Stamp is empty"),
		validation.NotEmpty(r.Reference, "reference", "Reference is empty"),
		validation.NotEmpty(r.Currency, "currency", "Currency is empty"),
		validation.OneOf(r.Currency, supportedCurrencies, "currency", "Unsupported currency chosen"),
		validation.OneOf(r.Language, supportedLanguages, "language", "Unsupported language chosen"),
		validation.Check(r.Customer != nil, "customer", "Customer is empty"),
		validation.Check(r.RedirectUrls != nil, "redirectUrls", "RedirectUrls is empty"),
		validation.Each(r.Items),
		validation.Nested(r.Customer),
		validation.When(r.DeliveryAddress != nil, validation.Nested(r.DeliveryAddress)),
		validation.When(r.InvoicingAddress != nil, validation.Nested(r.InvoicingAddress)),
		validation.Nested(r.RedirectUrls),
		validation.When(r.CallbackUrls != nil, validation.Nested(r.CallbackUrls)),
	}
}

// itemsPriced reports whether every item carries the fields the total
// depends on. Items missing them are reported by their own validation.
func itemsPriced(items []model.Item) bool {
	for _, it := range items {
		if it.UnitPrice == nil || it.Units == nil {
			return false
		}
	}
	return true
}

func (r *PaymentRequest) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	o := wire.NewObject(wire.Camel).
		Str("stamp", r.Stamp).
		Str("reference", r.Reference).
		Int("amount", r.Amount).
		Str("currency", r.Currency).
		Str("language", r.Language)
	wire.Arr(o, "items", r.Items)
	return o.
		Obj("customer", r.Customer).
		Obj("deliveryAddress", r.DeliveryAddress).
		Obj("invoicingAddress", r.InvoicingAddress).
		Obj("redirectUrls", r.RedirectUrls).
		Obj("callbackUrls", r.CallbackUrls).
		OptInt("callbackDelay", r.CallbackDelay).
		Strings("groups", r.Groups)
}

func (r *PaymentRequest) Decode(d *jx.Decoder) error {
	return wire.Fields(d, r.decodeField)
}

func (r *PaymentRequest) decodeField(d *jx.Decoder, key string) error {
	var err error
	switch key {
	case "stamp":
		r.Stamp, err = wire.Str(d)
	case "reference":
		r.Reference, err = wire.Str(d)
	case "amount":
		var v *int
		if v, err = wire.OptInt(d); v != nil {
			r.Amount = *v
		}
	case "currency":
		r.Currency, err = wire.Str(d)
	case "language":
		r.Language, err = wire.Str(d)
	case "items":
		r.Items = []model.Item{}
		err = wire.Items(d, func(d *jx.Decoder) error {
			var it model.Item
			if err := it.Decode(d); err != nil {
				return err
			}
			r.Items = append(r.Items, it)
			return nil
		})
	case "customer":
		r.Customer, err = decodeOpt(d, func() *model.Customer { return &model.Customer{} })
	case "deliveryaddress":
		r.DeliveryAddress, err = decodeOpt(d, func() *model.Address { return &model.Address{} })
	case "invoicingaddress":
		r.InvoicingAddress, err = decodeOpt(d, func() *model.Address { return &model.Address{} })
	case "redirecturls":
		r.RedirectUrls, err = decodeOpt(d, func() *model.CallbackUrl { return &model.CallbackUrl{} })
	case "callbackurls":
		r.CallbackUrls, err = decodeOpt(d, func() *model.CallbackUrl { return &model.CallbackUrl{} })
	case "callbackdelay":
		r.CallbackDelay, err = wire.OptInt(d)
	case "groups":
		r.Groups, err = wire.Strings(d)
	default:
		err = d.Skip()
	}
	return err
}

func decodeOpt[T wire.Decoder](d *jx.Decoder, alloc func() T) (T, error) {
	var zero T
	if d.Next() == jx.Null {
		return zero, d.Null()
	}
	v := alloc()
	if err := v.Decode(d); err != nil {
		return zero, err
	}
	return v, nil
}

// ShopInShopPaymentRequest is a payment aggregated over several
// sub-merchants; every item names its merchant.
type ShopInShopPaymentRequest struct {
	PaymentRequest
}

func (r *ShopInShopPaymentRequest) Validate() error {
	return validation.Run(append(r.PaymentRequest.rules(), shopInShopItems(r.Items))...)
}

func shopInShopItems(items []model.Item) validation.Rule {
	return func() error {
		for _, it := range items {
			if err := it.ValidateShopInShop(); err != nil {
				return err
			}
		}
		return nil
	}
}

// CitPaymentRequest charges or holds a card token with the customer present.
type CitPaymentRequest struct {
	PaymentRequest
	Token string
}

func (r *CitPaymentRequest) Validate() error {
	return validation.Run(append([]validation.Rule{tokenRule(r.Token)}, r.PaymentRequest.rules()...)...)
}

func (r *CitPaymentRequest) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	return r.PaymentRequest.WireObject().Str("token", r.Token)
}

func (r *CitPaymentRequest) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		if key == "token" {
			var err error
			r.Token, err = wire.Str(d)
			return err
		}
		return r.decodeField(d, key)
	})
}

// MitPaymentRequest charges or holds a card token without the customer
// present.
type MitPaymentRequest struct {
	PaymentRequest
	Token string
}

func (r *MitPaymentRequest) Validate() error {
	return validation.Run(append([]validation.Rule{tokenRule(r.Token)}, r.PaymentRequest.rules()...)...)
}

func (r *MitPaymentRequest) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	return r.PaymentRequest.WireObject().Str("token", r.Token)
}

func (r *MitPaymentRequest) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		if key == "token" {
			var err error
			r.Token, err = wire.Str(d)
			return err
		}
		return r.decodeField(d, key)
	})
}

func tokenRule(token string) validation.Rule {
	return validation.NotEmpty(token, "token", "Token is empty")
}
