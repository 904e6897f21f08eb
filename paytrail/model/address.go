package model

import (
	"github.com/alapierre/go-paytrail-client/paytrail/validation"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

// Address is used for delivery and invoicing.
type Address struct {
	StreetAddress string
	PostalCode    string
	City          string
	County        *string
	Country       string
}

func (a *Address) Validate() error {
	return validation.Run(
		validation.NotEmpty(a.StreetAddress, "streetAddress", "streetAddress is empty"),
		validation.NotEmpty(a.PostalCode, "postalCode", "postalCode is empty"),
		validation.NotEmpty(a.City, "city", "city is empty"),
		validation.NotEmpty(a.Country, "country", "country is empty"),
	)
}

func (a *Address) WireObject() *wire.Object {
	if a == nil {
		return nil
	}
	return wire.NewObject(wire.Camel).
		Str("streetAddress", a.StreetAddress).
		Str("postalCode", a.PostalCode).
		Str("city", a.City).
		OptStr("county", a.County).
		Str("country", a.Country)
}

func (a *Address) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "streetaddress":
			a.StreetAddress, err = wire.Str(d)
		case "postalcode":
			a.PostalCode, err = wire.Str(d)
		case "city":
			a.City, err = wire.Str(d)
		case "county":
			a.County, err = wire.OptStr(d)
		case "country":
			a.Country, err = wire.Str(d)
		default:
			err = d.Skip()
		}
		return err
	})
}
