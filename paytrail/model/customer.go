package model

import (
	"github.com/alapierre/go-paytrail-client/paytrail/validation"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

type Customer struct {
	Email       string
	FirstName   *string
	LastName    *string
	Phone       *string
	VatID       *string
	CompanyName *string
}

func (c *Customer) Validate() error {
	return validation.Run(
		validation.NotEmpty(c.Email, "email", "Email is empty"),
		validation.Email(c.Email, "email", "Email is not a valid email address"),
	)
}

func (c *Customer) WireObject() *wire.Object {
	if c == nil {
		return nil
	}
	return wire.NewObject(wire.Camel).
		Str("email", c.Email).
		OptStr("firstName", c.FirstName).
		OptStr("lastName", c.LastName).
		OptStr("phone", c.Phone).
		OptStr("vatId", c.VatID).
		OptStr("companyName", c.CompanyName)
}

func (c *Customer) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "email":
			c.Email, err = wire.Str(d)
		case "firstname":
			c.FirstName, err = wire.OptStr(d)
		case "lastname":
			c.LastName, err = wire.OptStr(d)
		case "phone":
			c.Phone, err = wire.OptStr(d)
		case "vatid":
			c.VatID, err = wire.OptStr(d)
		case "companyname":
			c.CompanyName, err = wire.OptStr(d)
		default:
			err = d.Skip()
		}
		return err
	})
}
