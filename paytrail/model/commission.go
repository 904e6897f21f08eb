package model

import (
	"github.com/alapierre/go-paytrail-client/paytrail/validation"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

// Commission moves part of a shop-in-shop item to another merchant.
type Commission struct {
	Merchant string
	Amount   *int
}

func (c *Commission) Validate() error {
	return validation.Run(
		validation.NotEmpty(c.Merchant, "merchant", "Merchant is empty"),
		validation.Check(c.Amount != nil, "amount", "Amount is not an integer"),
	)
}

func (c *Commission) WireObject() *wire.Object {
	if c == nil {
		return nil
	}
	return wire.NewObject(wire.Camel).
		Str("merchant", c.Merchant).
		OptInt("amount", c.Amount)
}

func (c *Commission) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "merchant":
			c.Merchant, err = wire.Str(d)
		case "amount":
			c.Amount, err = wire.OptInt(d)
		default:
			err = d.Skip()
		}
		return err
	})
}
