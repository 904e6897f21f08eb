package response

import (
	"github.com/alapierre/go-paytrail-client/paytrail/model"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

// GetTokenResponse holds a reusable card token with card details. Nested
// objects use snake_case keys on the wire.
type GetTokenResponse struct {
	Token        string
	Card         *model.Card
	Customer     *model.TokenCustomer
	NetworkToken *model.NetworkToken
}

func (r *GetTokenResponse) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	return wire.NewObject(wire.Snake).
		Str("token", r.Token).
		Obj("card", r.Card).
		Obj("customer", r.Customer).
		Obj("networkToken", r.NetworkToken)
}

func (r *GetTokenResponse) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "token":
			r.Token, err = wire.Str(d)
		case "card":
			if d.Next() == jx.Null {
				return d.Null()
			}
			r.Card = &model.Card{}
			err = r.Card.Decode(d)
		case "customer":
			if d.Next() == jx.Null {
				return d.Null()
			}
			r.Customer = &model.TokenCustomer{}
			err = r.Customer.Decode(d)
		case "networktoken":
			if d.Next() == jx.Null {
				return d.Null()
			}
			r.NetworkToken = &model.NetworkToken{}
			err = r.NetworkToken.Decode(d)
		default:
			err = d.Skip()
		}
		return err
	})
}
