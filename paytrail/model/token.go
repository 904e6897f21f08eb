package model

import (
	"github.com/alapierre/go-paytrail-client/paytrail/validation"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

var (
	cvcRequiredOptions = []string{"yes", "no", "not_tested"}
	fundingOptions     = []string{"credit", "debit", "unknown"}
	categoryOptions    = []string{"business", "prepaid", "unknown"}
)

// Card describes a tokenized card. Its wire keys are snake_case.
type Card struct {
	Type            string
	Bin             string
	PartialPan      string
	ExpireYear      string
	ExpireMonth     string
	CvcRequired     string
	Funding         string
	Category        string
	CountryCode     string
	PanFingerprint  string
	CardFingerprint string
}

func (c *Card) Validate() error {
	return validation.Run(
		validation.NotEmpty(c.Type, "type", "Type is empty"),
		validation.NotEmpty(c.Bin, "bin", "Bin is empty"),
		validation.NotEmpty(c.PartialPan, "partial_pan", "Partial pan is empty"),
		validation.NotEmpty(c.ExpireYear, "expire_year", "Expire year is empty"),
		validation.NotEmpty(c.ExpireMonth, "expire_month", "Expire month is empty"),
		validation.OneOf(c.CvcRequired, cvcRequiredOptions, "cvc_required", "Unsupported CVC required option given"),
		validation.OneOf(c.Funding, fundingOptions, "funding", "Unsupported funding option given"),
		validation.OneOf(c.Category, categoryOptions, "category", "Unsupported category option given"),
		validation.NotEmpty(c.CountryCode, "country_code", "Country code is empty"),
		validation.NotEmpty(c.PanFingerprint, "pan_fingerprint", "Pan fingerprint is empty"),
		validation.NotEmpty(c.CardFingerprint, "card_fingerprint", "Card fingerprint is empty"),
	)
}

func (c *Card) WireObject() *wire.Object {
	if c == nil {
		return nil
	}
	return wire.NewObject(wire.Snake).
		Str("type", c.Type).
		Str("bin", c.Bin).
		Str("partialPan", c.PartialPan).
		Str("expireYear", c.ExpireYear).
		Str("expireMonth", c.ExpireMonth).
		Str("cvcRequired", c.CvcRequired).
		Str("funding", c.Funding).
		Str("category", c.Category).
		Str("countryCode", c.CountryCode).
		Str("panFingerprint", c.PanFingerprint).
		Str("cardFingerprint", c.CardFingerprint)
}

func (c *Card) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "type":
			c.Type, err = wire.Str(d)
		case "bin":
			c.Bin, err = wire.Str(d)
		case "partialpan":
			c.PartialPan, err = wire.Str(d)
		case "expireyear":
			c.ExpireYear, err = wire.Str(d)
		case "expiremonth":
			c.ExpireMonth, err = wire.Str(d)
		case "cvcrequired":
			c.CvcRequired, err = wire.Str(d)
		case "funding":
			c.Funding, err = wire.Str(d)
		case "category":
			c.Category, err = wire.Str(d)
		case "countrycode":
			c.CountryCode, err = wire.Str(d)
		case "panfingerprint":
			c.PanFingerprint, err = wire.Str(d)
		case "cardfingerprint":
			c.CardFingerprint, err = wire.Str(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

// TokenCustomer is the payer information attached to a card token.
type TokenCustomer struct {
	NetworkAddress string
	CountryCode    string
}

func (c *TokenCustomer) Validate() error {
	return validation.Run(
		validation.NotEmpty(c.NetworkAddress, "network_address", "Network address is empty"),
		validation.NotEmpty(c.CountryCode, "country_code", "Country code is empty"),
	)
}

func (c *TokenCustomer) WireObject() *wire.Object {
	if c == nil {
		return nil
	}
	return wire.NewObject(wire.Snake).
		Str("networkAddress", c.NetworkAddress).
		Str("countryCode", c.CountryCode)
}

func (c *TokenCustomer) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "networkaddress":
			c.NetworkAddress, err = wire.Str(d)
		case "countrycode":
			c.CountryCode, err = wire.Str(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

// NetworkToken is the scheme token (Visa/Mastercard) behind a card token.
type NetworkToken struct {
	Type                    string
	PartialPan              string
	ExpireYear              string
	ExpireMonth             string
	ImageURL                *string
	PaymentAccountReference *string
}

func (n *NetworkToken) Validate() error {
	return validation.Run(
		validation.NotEmpty(n.Type, "type", "Type is empty"),
		validation.NotEmpty(n.PartialPan, "partial_pan", "Partial pan is empty"),
		validation.NotEmpty(n.ExpireYear, "expire_year", "Expire year is empty"),
		validation.NotEmpty(n.ExpireMonth, "expire_month", "Expire month is empty"),
	)
}

func (n *NetworkToken) WireObject() *wire.Object {
	if n == nil {
		return nil
	}
	return wire.NewObject(wire.Snake).
		Str("type", n.Type).
		Str("partialPan", n.PartialPan).
		Str("expireYear", n.ExpireYear).
		Str("expireMonth", n.ExpireMonth).
		OptStr("imageUrl", n.ImageURL).
		OptStr("paymentAccountReference", n.PaymentAccountReference)
}

func (n *NetworkToken) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "type":
			n.Type, err = wire.Str(d)
		case "partialpan":
			n.PartialPan, err = wire.Str(d)
		case "expireyear":
			n.ExpireYear, err = wire.Str(d)
		case "expiremonth":
			n.ExpireMonth, err = wire.Str(d)
		case "imageurl":
			n.ImageURL, err = wire.OptStr(d)
		case "paymentaccountreference":
			n.PaymentAccountReference, err = wire.OptStr(d)
		default:
			err = d.Skip()
		}
		return err
	})
}
