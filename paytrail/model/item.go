package model

import (
	"math"

	"github.com/alapierre/go-paytrail-client/paytrail/validation"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

const maxUnitPrice = 99999999

// Item is one line of a payment. Prices are in minor units.
type Item struct {
	UnitPrice     *int
	Units         *int
	VatPercentage *float64
	ProductCode   string
	DeliveryDate  *string
	Description   *string
	Category      *string
	Stamp         *string
	Reference     *string
	// Merchant and Commission are used by shop-in-shop payments only.
	Merchant   *string
	Commission *Commission
}

// Total is unitPrice * units, treating unset values as zero. ok is false
// when the product does not fit in an int.
func (i Item) Total() (int, bool) {
	if i.UnitPrice == nil || i.Units == nil {
		return 0, true
	}
	return mulInt(*i.UnitPrice, *i.Units)
}

func (i Item) Validate() error {
	return validation.Run(i.rules()...)
}

func (i Item) rules() []validation.Rule {
	return []validation.Rule{
		validation.Check(i.UnitPrice != nil, "unitPrice", "Item unitPrice is empty"),
		validation.Lazy(func() validation.Rule {
			return validation.Max(int64(*i.UnitPrice), maxUnitPrice, "unitPrice", "Items unitPrice can't be over 99999999")
		}),
		validation.Lazy(func() validation.Rule {
			return validation.Min(int64(*i.UnitPrice), 0, "unitPrice", "Items unitPrice can't be a negative number")
		}),
		validation.Check(i.Units != nil, "units", "Item units is empty"),
		validation.Lazy(func() validation.Rule {
			return validation.Min(int64(*i.Units), 0, "units", "Items units can't be a negative number")
		}),
		validation.Check(i.VatPercentage != nil, "vatPercentage", "Item vatPercentage is empty"),
		validation.Lazy(func() validation.Rule {
			return validation.MinFloat(*i.VatPercentage, 0, "vatPercentage", "Items vatPercentage can't be a negative number")
		}),
		validation.NotEmpty(i.ProductCode, "productCode", "productCode is empty"),
		validation.When(i.Description != nil, validation.Lazy(func() validation.Rule {
			return validation.MaxLength(*i.Description, 1000, "description", "description does not meet maximum length of 1000")
		})),
		validation.When(i.Commission != nil, validation.Lazy(func() validation.Rule {
			return validation.Nested(i.Commission)
		})),
	}
}

// ValidateShopInShop adds the rules for items of aggregated marketplace
// payments. Validate must pass first.
func (i Item) ValidateShopInShop() error {
	return validation.Run(
		validation.Check(i.Merchant != nil && *i.Merchant != "", "merchant", "merchant is empty"),
		validation.Check(i.UnitPrice == nil || *i.UnitPrice >= 0, "unitPrice", "Shop-in-shop item unitPrice can't be a negative number"),
	)
}

func (i Item) WireObject() *wire.Object {
	return wire.NewObject(wire.Camel).
		OptInt("unitPrice", i.UnitPrice).
		OptInt("units", i.Units).
		OptFloat("vatPercentage", i.VatPercentage).
		Str("productCode", i.ProductCode).
		OptStr("deliveryDate", i.DeliveryDate).
		OptStr("description", i.Description).
		OptStr("category", i.Category).
		OptStr("stamp", i.Stamp).
		OptStr("reference", i.Reference).
		OptStr("merchant", i.Merchant).
		Obj("commission", i.Commission)
}

func (i *Item) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "unitprice":
			i.UnitPrice, err = wire.OptInt(d)
		case "units":
			i.Units, err = wire.OptInt(d)
		case "vatpercentage":
			i.VatPercentage, err = wire.OptFloat(d)
		case "productcode":
			i.ProductCode, err = wire.Str(d)
		case "deliverydate":
			i.DeliveryDate, err = wire.OptStr(d)
		case "description":
			i.Description, err = wire.OptStr(d)
		case "category":
			i.Category, err = wire.OptStr(d)
		case "stamp":
			i.Stamp, err = wire.OptStr(d)
		case "reference":
			i.Reference, err = wire.OptStr(d)
		case "merchant":
			i.Merchant, err = wire.OptStr(d)
		case "commission":
			if d.Next() == jx.Null {
				return d.Null()
			}
			i.Commission = &Commission{}
			err = i.Commission.Decode(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

// ItemsTotal sums unitPrice * units over all items. ok is false when any
// product or the sum overflows.
func ItemsTotal(items []Item) (total int, ok bool) {
	for _, it := range items {
		var t int
		if t, ok = it.Total(); !ok {
			return 0, false
		}
		if total, ok = addInt(total, t); !ok {
			return 0, false
		}
	}
	return total, true
}

func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	return p, true
}

func addInt(a, b int) (int, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}
