package gomap

import (
	"maps"
	"math"
	"reflect"
	"slices"

	"github.com/signadot/plist/convert"
	"github.com/signadot/plist/debug"
	"github.com/signadot/plist/ir"
)

// Unmarshaler is implemented by types that decode themselves.
type Unmarshaler interface {
	FromPlist(*ir.Node) error
}

var (
	unmarshalerType = reflect.TypeFor[Unmarshaler]()
	nodeType        = reflect.TypeFor[*ir.Node]()
)

func hasUnmarshaler(t reflect.Type) bool {
	return reflect.PointerTo(t).Implements(unmarshalerType)
}

// FromIR decodes node into v, which must be a non-nil pointer.
func FromIR(node *ir.Node, v any) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	if node == nil {
		return &UnmarshalError{Message: "node cannot be nil"}
	}
	return decodeValue(node, val.Elem())
}

// Decode decodes node as a T.
func Decode[T any](node *ir.Node) (T, error) {
	var v T
	err := FromIR(node, &v)
	return v, err
}

// decodeValue sets v, which must be settable, from n.
func decodeValue(n *ir.Node, v reflect.Value) error {
	t := v.Type()
	if c, ok := convert.Lookup(t); ok {
		x, err := c.Decode(n)
		if err != nil {
			return err
		}
		v.Set(x)
		return nil
	}
	if t == nodeType {
		v.Set(reflect.ValueOf(n))
		return nil
	}
	if hasUnmarshaler(t) {
		p := reflect.New(t)
		if err := p.Interface().(Unmarshaler).FromPlist(n); err != nil {
			return err
		}
		v.Set(p.Elem())
		return nil
	}

	switch t.Kind() {
	case reflect.Bool:
		b, err := convert.Bool(n)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int64:
		i, err := convert.Int64(n)
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Int8, reflect.Int16, reflect.Int32:
		bits := t.Bits()
		i, err := convert.Bounded(kindName(t), n, -1<<(bits-1), 1<<(bits-1)-1)
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		hi := int64(math.MaxInt64)
		if t.Bits() < 64 {
			hi = 1<<t.Bits() - 1
		}
		i, err := convert.Bounded(kindName(t), n, 0, hi)
		if err != nil {
			return err
		}
		v.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		f, err := convert.Float64(n)
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.String:
		s, err := convert.String(n)
		if err != nil {
			return err
		}
		v.SetString(s)
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return &convert.UnsupportedTypeError{Type: t}
		}
		m, err := convert.Dict(kindName(t), n)
		if err != nil {
			return err
		}
		res := reflect.MakeMapWithSize(t, len(m))
		for _, k := range slices.Sorted(maps.Keys(m)) {
			x := reflect.New(t.Elem()).Elem()
			if err := decodeValue(m[k], x); err != nil {
				return &convert.KeyError{Key: k, Err: err}
			}
			res.SetMapIndex(reflect.ValueOf(k).Convert(t.Key()), x)
		}
		v.Set(res)
	case reflect.Slice:
		vs, err := convert.Array(kindName(t), n)
		if err != nil {
			return err
		}
		res := reflect.MakeSlice(t, len(vs), len(vs))
		for i, x := range vs {
			if err := decodeValue(x, res.Index(i)); err != nil {
				return &convert.IndexError{Index: i, Err: err}
			}
		}
		v.Set(res)
	case reflect.Pointer:
		p := reflect.New(t.Elem())
		if err := decodeValue(n, p.Elem()); err != nil {
			return err
		}
		v.Set(p)
	case reflect.Struct:
		s, err := SchemaOf(t)
		if err != nil {
			return err
		}
		return decodeRecord(n, v, s)
	default:
		return &convert.UnsupportedTypeError{Type: t}
	}
	return nil
}

func decodeRecord(n *ir.Node, v reflect.Value, s *Schema) error {
	// an owned copy; fields remove their keys from it
	m, err := convert.Dict(s.Name, n)
	if err != nil {
		return err
	}
	for _, fd := range s.Fields {
		fv := v.FieldByIndex(fd.index)
		x, ok := m[fd.Key]
		if !ok {
			if fd.Requiredness == Required {
				return &convert.MissingFieldError{Record: s.Name, Field: fd.Key}
			}
			def, err := fd.DefaultValue()
			if err != nil {
				return &convert.FieldError{Record: s.Name, Field: fd.Key, Err: err}
			}
			fv.Set(def)
			continue
		}
		delete(m, fd.Key)
		if err := decodeValue(x, fv); err != nil {
			return &convert.FieldError{Record: s.Name, Field: fd.Key, Err: err}
		}
	}
	if s.Rest != nil {
		rv := v.FieldByIndex(s.Rest.index)
		if len(m) == 0 {
			rv.Set(reflect.Zero(restType))
		} else {
			rv.Set(reflect.ValueOf(m))
		}
	} else if len(m) != 0 {
		return &convert.UnrecognisedFieldsError{Record: s.Name, Keys: slices.Sorted(maps.Keys(m))}
	}
	if debug.Decode() {
		debug.Logf("decode %s: %d fields, %d rest\n", s.Name, len(s.Fields), len(m))
	}
	return nil
}

// kindName names a Go type the way conversion errors do.
func kindName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int8:
		return "i8"
	case reflect.Int16:
		return "i16"
	case reflect.Int32:
		return "i32"
	case reflect.Uint8:
		return "u8"
	case reflect.Uint16:
		return "u16"
	case reflect.Uint32:
		return "u32"
	case reflect.Uint, reflect.Uint64:
		return "u64"
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
