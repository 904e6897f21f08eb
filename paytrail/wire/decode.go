package wire

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Decoder is implemented by every response model.
type Decoder interface {
	Decode(d *jx.Decoder) error
}

// Unmarshal decodes data into v. An empty payload leaves v untouched.
func Unmarshal(data []byte, v Decoder) error {
	if len(data) == 0 {
		return nil
	}
	d := jx.DecodeBytes(data)
	if err := v.Decode(d); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

// Fields walks an object, passing normalized keys to f. A null value is
// treated as an empty object.
func Fields(d *jx.Decoder, f func(d *jx.Decoder, key string) error) error {
	if d.Next() == jx.Null {
		return d.Null()
	}
	return d.Obj(func(d *jx.Decoder, key string) error {
		return f(d, NormalizeKey(key))
	})
}

// Items walks an array; null is treated as an empty array.
func Items(d *jx.Decoder, f func(d *jx.Decoder) error) error {
	if d.Next() == jx.Null {
		return d.Null()
	}
	return d.Arr(f)
}

// OptStr reads a string, tolerating null and numbers.
func OptStr(d *jx.Decoder) (*string, error) {
	switch d.Next() {
	case jx.Null:
		return nil, d.Null()
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return nil, err
		}
		s := n.String()
		return &s, nil
	default:
		s, err := d.Str()
		if err != nil {
			return nil, err
		}
		return &s, nil
	}
}

// Str reads a string, returning "" for null.
func Str(d *jx.Decoder) (string, error) {
	v, err := OptStr(d)
	if err != nil || v == nil {
		return "", err
	}
	return *v, nil
}

// OptInt reads an integer, tolerating null and numeric strings.
func OptInt(d *jx.Decoder) (*int, error) {
	switch d.Next() {
	case jx.Null:
		return nil, d.Null()
	case jx.String:
		n, err := d.Num()
		if err != nil {
			return nil, err
		}
		v, err := n.Int64()
		if err != nil {
			return nil, err
		}
		i := int(v)
		return &i, nil
	default:
		v, err := d.Int()
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

func OptFloat(d *jx.Decoder) (*float64, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}
	v, err := d.Float64()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func OptBool(d *jx.Decoder) (*bool, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}
	v, err := d.Bool()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Strings reads an array of strings; null yields nil.
func Strings(d *jx.Decoder) ([]string, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}
	out := []string{}
	err := d.Arr(func(d *jx.Decoder) error {
		s, err := Str(d)
		if err != nil {
			return err
		}
		out = append(out, s)
		return nil
	})
	return out, err
}

// RawValue captures the next value verbatim; null yields nil.
func RawValue(d *jx.Decoder) ([]byte, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}
	raw, err := d.Raw()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}
