// Package wire encodes request models into JSON objects with null fields
// omitted and keys mapped to the casing a given endpoint expects, and decodes
// provider replies tolerantly.
package wire

import (
	"strconv"

	"github.com/go-faster/jx"
)

// Encoder is implemented by every model that is sent over the wire.
// A nil receiver must return a nil *Object.
type Encoder interface {
	WireObject() *Object
}

type kind int

const (
	kindStr kind = iota
	kindInt
	kindFloat
	kindBool
	kindObj
	kindArr
	kindStrings
	kindRaw
)

type field struct {
	key  string
	kind kind

	s      string
	i      int64
	f      float64
	b      bool
	obj    *Object
	arr    []*Object
	strs   []string
	rawVal []byte
}

// Object is an ordered set of non-null fields.
type Object struct {
	keys   KeyMapper
	fields []field
}

func NewObject(keys KeyMapper) *Object {
	if keys == nil {
		keys = Camel
	}
	return &Object{keys: keys}
}

func (o *Object) add(name string, f field) *Object {
	f.key = o.keys(name)
	o.fields = append(o.fields, f)
	return o
}

func (o *Object) Str(name, v string) *Object {
	return o.add(name, field{kind: kindStr, s: v})
}

// OptStr adds the field only when v is set.
func (o *Object) OptStr(name string, v *string) *Object {
	if v == nil {
		return o
	}
	return o.Str(name, *v)
}

func (o *Object) Int(name string, v int) *Object {
	return o.add(name, field{kind: kindInt, i: int64(v)})
}

func (o *Object) OptInt(name string, v *int) *Object {
	if v == nil {
		return o
	}
	return o.Int(name, *v)
}

func (o *Object) Float(name string, v float64) *Object {
	return o.add(name, field{kind: kindFloat, f: v})
}

func (o *Object) OptFloat(name string, v *float64) *Object {
	if v == nil {
		return o
	}
	return o.Float(name, *v)
}

func (o *Object) OptBool(name string, v *bool) *Object {
	if v == nil {
		return o
	}
	return o.add(name, field{kind: kindBool, b: *v})
}

// Obj adds a nested object unless the encoder yields nil.
func (o *Object) Obj(name string, v Encoder) *Object {
	if v == nil {
		return o
	}
	nested := v.WireObject()
	if nested == nil {
		return o
	}
	return o.add(name, field{kind: kindObj, obj: nested})
}

// Arr adds a list of nested objects; a nil slice is omitted, an empty one
// is kept.
func Arr[T Encoder](o *Object, name string, vs []T) *Object {
	if vs == nil {
		return o
	}
	arr := make([]*Object, 0, len(vs))
	for _, v := range vs {
		if obj := v.WireObject(); obj != nil {
			arr = append(arr, obj)
		}
	}
	return o.add(name, field{kind: kindArr, arr: arr})
}

func (o *Object) Strings(name string, vs []string) *Object {
	if vs == nil {
		return o
	}
	return o.add(name, field{kind: kindStrings, strs: vs})
}

// Raw adds an already encoded JSON value.
func (o *Object) Raw(name string, v []byte) *Object {
	if len(v) == 0 {
		return o
	}
	return o.add(name, field{kind: kindRaw, rawVal: v})
}

// Len returns the number of encoded fields.
func (o *Object) Len() int {
	return len(o.fields)
}

// Keys lists wire keys in insertion order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.fields))
	for i, f := range o.fields {
		out[i] = f.key
	}
	return out
}

// StringMap renders scalar fields as strings. It is used where an object's
// own fields take part in a signature.
func (o *Object) StringMap() map[string]string {
	out := make(map[string]string, len(o.fields))
	for _, f := range o.fields {
		switch f.kind {
		case kindStr:
			out[f.key] = f.s
		case kindInt:
			out[f.key] = strconv.FormatInt(f.i, 10)
		case kindFloat:
			out[f.key] = strconv.FormatFloat(f.f, 'f', -1, 64)
		case kindBool:
			out[f.key] = strconv.FormatBool(f.b)
		}
	}
	return out
}

func (o *Object) Encode(e *jx.Encoder) {
	e.ObjStart()
	for _, f := range o.fields {
		e.FieldStart(f.key)
		switch f.kind {
		case kindStr:
			e.Str(f.s)
		case kindInt:
			e.Int64(f.i)
		case kindFloat:
			e.Float64(f.f)
		case kindBool:
			e.Bool(f.b)
		case kindObj:
			f.obj.Encode(e)
		case kindArr:
			e.ArrStart()
			for _, item := range f.arr {
				item.Encode(e)
			}
			e.ArrEnd()
		case kindStrings:
			e.ArrStart()
			for _, s := range f.strs {
				e.Str(s)
			}
			e.ArrEnd()
		case kindRaw:
			e.Raw(f.rawVal)
		}
	}
	e.ObjEnd()
}

func (o *Object) Bytes() []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	o.Encode(e)
	out := make([]byte, len(e.Bytes()))
	copy(out, e.Bytes())
	return out
}

// Marshal encodes v; a nil model encodes as an empty object.
func Marshal(v Encoder) []byte {
	if v == nil {
		return []byte("{}")
	}
	obj := v.WireObject()
	if obj == nil {
		return []byte("{}")
	}
	return obj.Bytes()
}
