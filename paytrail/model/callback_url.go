package model

import (
	"github.com/alapierre/go-paytrail-client/paytrail/validation"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

// CallbackUrl is a success/cancel URL pair used for redirects and
// server-to-server callbacks.
type CallbackUrl struct {
	Success string
	Cancel  string
}

func (c *CallbackUrl) Validate() error {
	return validation.Run(
		validation.NotEmpty(c.Success, "success", "Success is empty"),
		validation.NotEmpty(c.Cancel, "cancel", "Cancel is empty"),
		validation.URL(c.Success, "success", "Success is not a valid URL"),
		validation.URL(c.Cancel, "cancel", "Cancel is not a valid URL"),
	)
}

func (c *CallbackUrl) WireObject() *wire.Object {
	if c == nil {
		return nil
	}
	return wire.NewObject(wire.Camel).
		Str("success", c.Success).
		Str("cancel", c.Cancel)
}

func (c *CallbackUrl) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "success":
			c.Success, err = wire.Str(d)
		case "cancel":
			c.Cancel, err = wire.Str(d)
		default:
			err = d.Skip()
		}
		return err
	})
}
