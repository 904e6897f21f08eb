package request

import (
	"github.com/alapierre/go-paytrail-client/paytrail/model"
	"github.com/alapierre/go-paytrail-client/paytrail/validation"
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

// RefundRequest refunds a payment fully or by items.
type RefundRequest struct {
	Amount          int
	Items           []model.RefundItem
	CallbackUrls    *model.CallbackUrl
	Email           *string
	RefundStamp     *string
	RefundReference *string
}

func (r *RefundRequest) Validate() error {
	return validation.Run(r.rules()...)
}

func (r *RefundRequest) rules() []validation.Rule {
	hasItems := len(r.Items) > 0
	return []validation.Rule{
		validation.When(hasItems, validation.Each(r.Items)),
		validation.Check(r.Amount > 0, "amount", "Amount can not be empty"),
		validation.When(hasItems, validation.Lazy(func() validation.Rule {
			total, ok := model.RefundItemsTotal(r.Items)
			return validation.Check(ok && total == r.Amount, "items", "ItemsTotal does not match Amount")
		})),
		validation.Check(r.CallbackUrls != nil, "callbackUrls", "CallbackUrls are not set"),
		validation.Nested(r.CallbackUrls),
	}
}

func (r *RefundRequest) WireObject() *wire.Object {
	if r == nil {
		return nil
	}
	o := wire.NewObject(wire.Camel).Int("amount", r.Amount)
	wire.Arr(o, "items", r.Items)
	return o.
		Obj("callbackUrls", r.CallbackUrls).
		OptStr("email", r.Email).
		OptStr("refundStamp", r.RefundStamp).
		OptStr("refundReference", r.RefundReference)
}

func (r *RefundRequest) Decode(d *jx.Decoder) error {
	return wire.Fields(d, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "amount":
			var v *int
			if v, err = wire.OptInt(d); v != nil {
				r.Amount = *v
			}
		case "items":
			r.Items = []model.RefundItem{}
			err = wire.Items(d, func(d *jx.Decoder) error {
				var it model.RefundItem
				if err := it.Decode(d); err != nil {
					return err
				}
				r.Items = append(r.Items, it)
				return nil
			})
		case "callbackurls":
			r.CallbackUrls, err = decodeOpt(d, func() *model.CallbackUrl { return &model.CallbackUrl{} })
		case "email":
			r.Email, err = wire.OptStr(d)
		case "refundstamp":
			r.RefundStamp, err = wire.OptStr(d)
		case "refundreference":
			r.RefundReference, err = wire.OptStr(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

// EmailRefundRequest refunds a payment method that cannot be refunded
// directly; the payer receives an email to claim the refund.
type EmailRefundRequest struct {
	RefundRequest
}

func (r *EmailRefundRequest) Validate() error {
	email := ""
	if r.Email != nil {
		email = *r.Email
	}
	return validation.Run(append(r.RefundRequest.rules(),
		validation.NotEmpty(email, "email", "email can not be empty"),
		validation.Email(email, "email", "email is not a valid email address"),
	)...)
}
