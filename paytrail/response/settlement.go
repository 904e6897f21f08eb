package response

import (
	"github.com/alapierre/go-paytrail-client/paytrail/wire"
	"github.com/go-faster/jx"
)

// Settlement is one bank settlement. Fields the client does not model are
// kept in Extra as raw JSON.
type Settlement struct {
	ID        string
	SettledAt string
	Reference string
	Amount    *int
	Extra     map[string][]byte
}

func (s Settlement) WireObject() *wire.Object {
	o := wire.NewObject(wire.Camel).
		Str("id", s.ID).
		Str("settledAt", s.SettledAt).
		Str("reference", s.Reference).
		OptInt("amount", s.Amount)
	for k, v := range s.Extra {
		o.Raw(k, v)
	}
	return o
}

func (s *Settlement) Decode(d *jx.Decoder) error {
	if d.Next() == jx.Null {
		return d.Null()
	}
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch wire.NormalizeKey(key) {
		case "id":
			s.ID, err = wire.Str(d)
		case "settledat":
			s.SettledAt, err = wire.Str(d)
		case "reference":
			s.Reference, err = wire.Str(d)
		case "amount":
			s.Amount, err = wire.OptInt(d)
		default:
			var raw []byte
			if raw, err = wire.RawValue(d); err == nil && raw != nil {
				if s.Extra == nil {
					s.Extra = map[string][]byte{}
				}
				s.Extra[key] = raw
			}
		}
		return err
	})
}

// SettlementResponse is the settlement listing; the API returns a bare array.
type SettlementResponse struct {
	Settlements []Settlement
}

func (r *SettlementResponse) Decode(d *jx.Decoder) error {
	r.Settlements = []Settlement{}
	return wire.Items(d, func(d *jx.Decoder) error {
		var s Settlement
		if err := s.Decode(d); err != nil {
			return err
		}
		r.Settlements = append(r.Settlements, s)
		return nil
	})
}

// Bytes encodes the listing back into its array form.
func (r *SettlementResponse) Bytes() []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ArrStart()
	for _, s := range r.Settlements {
		s.WireObject().Encode(e)
	}
	e.ArrEnd()

	out := make([]byte, len(e.Bytes()))
	copy(out, e.Bytes())
	return out
}
