package model

import (
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

// Provider is a payment method the payer can be sent to, with the form
// parameters that must be posted to its URL.
type Provider struct {
	URL        string
	Icon       string
	Svg        string
	Name       string
	Group      string
	ID         string
	Parameters []ProviderParameter
}

type ProviderParameter struct {
	Name  string
	Value string
}

func (p ProviderParameter) WireObject() *wire.Object {
	return wire.NewObject(wire.Camel).Str("name", p.Name).Str("value", p.Value)
}

func (p *ProviderParameter) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			p.Name, err = wire.Str(d)
		case "value":
			p.Value, err = wire.Str(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

func (p Provider) WireObject() *wire.Object {
	o := wire.NewObject(wire.Camel).
		Str("url", p.URL).
		Str("icon", p.Icon).
		Str("svg", p.Svg).
		Str("name", p.Name).
		Str("group", p.Group).
		Str("id", p.ID)
	return wire.Arr(o, "parameters", p.Parameters)
}

func (p *Provider) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "url":
			p.URL, err = wire.Str(d)
		case "icon":
			p.Icon, err = wire.Str(d)
		case "svg":
			p.Svg, err = wire.Str(d)
		case "name":
			p.Name, err = wire.Str(d)
		case "group":
			p.Group, err = wire.Str(d)
		case "id":
			p.ID, err = wire.Str(d)
		case "parameters":
			p.Parameters = []ProviderParameter{}
			err = wire.Items(d, func(d *jx.Decoder) error {
				var pp ProviderParameter
				if err := pp.Decode(d); err != nil {
					return err
				}
				p.Parameters = append(p.Parameters, pp)
				return nil
			})
		default:
			err = d.Skip()
		}
		return err
	})
}

// DecodeProviders reads a JSON array of providers.
func DecodeProviders(d *jx.Decoder) ([]Provider, error) {
	out := []Provider{}
	err := wire.Items(d, func(d *jx.Decoder) error {
		var p Provider
		if err := p.Decode(d); err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	return out, err
}

// PaymentMethodGroup groups providers (bank, mobile, creditcard, ...) for
// rendering a payment page.
type PaymentMethodGroup struct {
	ID        string
	Name      string
	Icon      string
	Svg       string
	Providers []Provider
}

func (g PaymentMethodGroup) WireObject() *wire.Object {
	o := wire.NewObject(wire.Camel).
		Str("id", g.ID).
		Str("name", g.Name).
		Str("icon", g.Icon).
		Str("svg", g.Svg)
	return wire.Arr(o, "providers", g.Providers)
}

func (g *PaymentMethodGroup) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			g.ID, err = wire.Str(d)
		case "name":
			g.Name, err = wire.Str(d)
		case "icon":
			g.Icon, err = wire.Str(d)
		case "svg":
			g.Svg, err = wire.Str(d)
		case "providers":
			g.Providers, err = DecodeProviders(d)
		default:
			err = d.Skip()
		}
		return err
	})
}
