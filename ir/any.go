package ir

import (
	"fmt"
	"reflect"
)

// ToAny converts y to plain Go values: map[string]any, []any, string,
// int64 and float64.
func ToAny(y *Node) any {
	switch y.Type {
	case DictionaryType:
		res := make(map[string]any, len(y.Fields))
		for k, v := range y.Fields {
			res[k] = ToAny(v)
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case StringType:
		return y.String
	case IntegerType:
		return y.Int64
	case FloatType:
		return y.Float64
	default:
		return nil
	}
}

// FromAny is the inverse of ToAny. It also accepts booleans (as 0 or 1),
// any integer or float kind and *Node.
func FromAny(v any) (*Node, error) {
	return fromAny(v, FromAny)
}

func fromAny(v any, rec func(any) (*Node, error)) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null", ErrNoJSON)
	case *Node:
		return x, nil
	case string:
		return FromString(x), nil
	case bool:
		if x {
			return FromInt(1), nil
		}
		return FromInt(0), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := rec(e)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pathString(k), err)
			}
			m[k] = n
		}
		return FromMap(m), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, e := range x {
			n, err := rec(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromInt(int64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	case reflect.Slice, reflect.Array:
		vs := make([]*Node, rv.Len())
		for i := range vs {
			n, err := rec(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]*Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			n, err := rec(iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pathString(iter.Key().String()), err)
			}
			m[iter.Key().String()] = n
		}
		return FromMap(m), nil
	}
	return nil, fmt.Errorf("cannot convert %T to a plist value", v)
}
