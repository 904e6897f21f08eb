package model

import (
	"github.com/alapierre/go-paytrail-client/paytrail/validation"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

// RefundItem refunds part of an item identified by its stamp.
type RefundItem struct {
	Amount int
	Stamp  string
}

func (r RefundItem) Validate() error {
	return validation.Run(
		validation.Check(r.Amount > 0, "amount", "Amount is empty"),
		validation.NotEmpty(r.Stamp, "stamp", "Stamp can not be empty"),
	)
}

func (r RefundItem) WireObject() *wire.Object {
	return wire.NewObject(wire.Camel).
		Int("amount", r.Amount).
		Str("stamp", r.Stamp)
}

func (r *RefundItem) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "amount":
			var v *int
			v, err = wire.OptInt(d)
			if v != nil {
				r.Amount = *v
			}
		case "stamp":
			r.Stamp, err = wire.Str(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

// RefundItemsTotal sums item amounts. ok is false when the sum overflows.
func RefundItemsTotal(items []RefundItem) (total int, ok bool) {
	for _, it := range items {
		if total, ok = addInt(total, it.Amount); !ok {
			return 0, false
		}
	}
	return total, true
}
