package gomap

import (
	"fmt"
	"maps"
	"math"
	"reflect"

	"github.com/signadot/plist/convert"
	"github.com/signadot/plist/debug"
	"github.com/signadot/plist/ir"
)

// Marshaler is implemented by types that encode themselves.
type Marshaler interface {
	ToPlist() (*ir.Node, error)
}

var marshalerType = reflect.TypeFor[Marshaler]()

// ToIR encodes v.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return nil, &MarshalError{Message: "cannot encode nil"}
	}
	val := reflect.ValueOf(v)
	p := reflect.New(val.Type())
	p.Elem().Set(val)
	return encodeTop(p.Elem())
}

// Encode encodes v.
func Encode[T any](v T) (*ir.Node, error) {
	return encodeTop(reflect.ValueOf(&v).Elem())
}

func encodeTop(v reflect.Value) (*ir.Node, error) {
	n, err := encodeValue(v)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, &MarshalError{Message: fmt.Sprintf("nil %s", v.Type())}
	}
	return n, nil
}

// encodeValue returns nil for nil pointers and nodes, which encode to
// nothing.
func encodeValue(v reflect.Value) (*ir.Node, error) {
	t := v.Type()
	if c, ok := convert.Lookup(t); ok {
		return c.Encode(v)
	}
	if t == nodeType {
		return v.Interface().(*ir.Node), nil
	}
	if t.Implements(marshalerType) {
		if t.Kind() == reflect.Pointer && v.IsNil() {
			return nil, nil
		}
		return v.Interface().(Marshaler).ToPlist()
	}
	if reflect.PointerTo(t).Implements(marshalerType) {
		var p reflect.Value
		if v.CanAddr() {
			p = v.Addr()
		} else {
			p = reflect.New(t)
			p.Elem().Set(v)
		}
		return p.Interface().(Marshaler).ToPlist()
	}

	switch t.Kind() {
	case reflect.Bool:
		return convert.FromBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > math.MaxInt64 {
			return nil, &convert.OutOfBoundsError{Kind: kindName(t), Value: int64(u), Min: 0, Max: math.MaxInt64}
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return convert.FromFloat64(v.Float()), nil
	case reflect.String:
		return ir.FromString(v.String()), nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, &convert.UnsupportedTypeError{Type: t}
		}
		res := make(map[string]*ir.Node, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			n, err := encodeValue(iter.Value())
			if err != nil {
				return nil, &convert.KeyError{Key: k, Err: err}
			}
			if n != nil {
				res[k] = n
			}
		}
		return ir.FromMap(res), nil
	case reflect.Slice:
		res := make([]*ir.Node, 0, v.Len())
		for i := range v.Len() {
			n, err := encodeValue(v.Index(i))
			if err != nil {
				return nil, &convert.IndexError{Index: i, Err: err}
			}
			if n == nil {
				return nil, &convert.IndexError{Index: i, Err: &MarshalError{Message: "nil array element"}}
			}
			res = append(res, n)
		}
		return ir.FromSlice(res), nil
	case reflect.Pointer:
		if v.IsNil() {
			return nil, nil
		}
		return encodeValue(v.Elem())
	case reflect.Struct:
		s, err := SchemaOf(t)
		if err != nil {
			return nil, err
		}
		return encodeRecord(v, s)
	default:
		return nil, &convert.UnsupportedTypeError{Type: t}
	}
}

func encodeRecord(v reflect.Value, s *Schema) (*ir.Node, error) {
	var res map[string]*ir.Node
	if s.Rest != nil {
		res = maps.Clone(v.FieldByIndex(s.Rest.index).Interface().(map[string]*ir.Node))
	}
	if res == nil {
		res = make(map[string]*ir.Node, len(s.Fields))
	}
	for _, fd := range s.Fields {
		fv := v.FieldByIndex(fd.index)
		emit, err := fd.shouldEmit(fv)
		if err != nil {
			return nil, &convert.FieldError{Record: s.Name, Field: fd.Key, Err: err}
		}
		if !emit {
			continue
		}
		n, err := encodeValue(fv)
		if err != nil {
			return nil, &convert.FieldError{Record: s.Name, Field: fd.Key, Err: err}
		}
		if n != nil {
			res[fd.Key] = n
		}
	}
	if debug.Encode() {
		debug.Logf("encode %s: %d keys\n", s.Name, len(res))
	}
	return ir.FromMap(res), nil
}

func (fd *FieldDescriptor) shouldEmit(fv reflect.Value) (bool, error) {
	if fd.AlwaysEmit {
		return true, nil
	}
	switch fd.Requiredness {
	case Required:
		return true, nil
	case Optional:
		return !fv.IsNil(), nil
	default:
		def, err := fd.DefaultValue()
		if err != nil {
			return false, err
		}
		return !reflect.DeepEqual(fv.Interface(), def.Interface()), nil
	}
}
