package convert

import (
	"math"
	"strconv"

	"github.com/signadot/plist/ir"
	"github.com/signadot/plist/token"
)

// Bool accepts Integer 0 or 1, or a String holding one of them.
func Bool(n *ir.Node) (bool, error) {
	var i int64
	switch n.Type {
	case ir.IntegerType:
		i = n.Int64
	case ir.StringType:
		var err error
		i, err = strconv.ParseInt(n.String, 10, 64)
		if err != nil {
			return false, &BadNumberError{Kind: "bool", Text: n.String, Err: err}
		}
	default:
		return false, variant("bool", "Integer or String", n)
	}
	switch i {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &BadNumberError{Kind: "bool", Text: strconv.FormatInt(i, 10)}
	}
}

func FromBool(b bool) *ir.Node {
	if b {
		return ir.FromInt(1)
	}
	return ir.FromInt(0)
}

// Int64 accepts an Integer.
func Int64(n *ir.Node) (int64, error) {
	if n.Type != ir.IntegerType {
		return 0, variant("i64", "Integer", n)
	}
	return n.Int64, nil
}

// Bounded accepts an Integer, or a String that reads as one, within
// [min, max].
func Bounded(kind string, n *ir.Node, min, max int64) (int64, error) {
	var i int64
	switch n.Type {
	case ir.IntegerType:
		i = n.Int64
	case ir.StringType:
		numKind, v, _ := token.Numeric(n.String)
		if numKind != token.IntNumber {
			return 0, variant(kind, "Integer", n)
		}
		i = v
	default:
		return 0, variant(kind, "Integer", n)
	}
	if i < min || i > max {
		return 0, &OutOfBoundsError{Kind: kind, Value: i, Min: min, Max: max}
	}
	return i, nil
}

func Uint16(n *ir.Node) (uint16, error) {
	i, err := Bounded("u16", n, 0, math.MaxUint16)
	return uint16(i), err
}

func Uint8(n *ir.Node) (uint8, error) {
	i, err := Bounded("u8", n, 0, math.MaxUint8)
	return uint8(i), err
}

// Float64 accepts an Integer, widened, or a Float.
func Float64(n *ir.Node) (float64, error) {
	f, ok := n.AsFloat()
	if !ok {
		return 0, variant("f64", "Integer or Float", n)
	}
	return f, nil
}

// FromFloat64 writes an integral f as an Integer and anything else as a
// Float. Negative zero stays a Float to keep its sign.
func FromFloat64(f float64) *ir.Node {
	if f == math.Trunc(f) && math.Abs(f) < 1<<63 && !(f == 0 && math.Signbit(f)) {
		return ir.FromInt(int64(f))
	}
	return ir.FromFloat(f)
}

func String(n *ir.Node) (string, error) {
	if n.Type != ir.StringType {
		return "", variant("string", "String", n)
	}
	return n.String, nil
}

// Dict returns a copy of the entries of a Dictionary.
func Dict(kind string, n *ir.Node) (map[string]*ir.Node, error) {
	if n.Type != ir.DictionaryType {
		return nil, variant(kind, "Dictionary", n)
	}
	res := make(map[string]*ir.Node, len(n.Fields))
	for k, v := range n.Fields {
		res[k] = v
	}
	return res, nil
}

func Array(kind string, n *ir.Node) ([]*ir.Node, error) {
	if n.Type != ir.ArrayType {
		return nil, variant(kind, "Array", n)
	}
	return n.Values, nil
}

// Slice converts an Array element by element, stopping at the first
// failure.
func Slice[T any](kind string, n *ir.Node, elem func(*ir.Node) (T, error)) ([]T, error) {
	vs, err := Array(kind, n)
	if err != nil {
		return nil, err
	}
	res := make([]T, len(vs))
	for i, v := range vs {
		x, err := elem(v)
		if err != nil {
			return nil, &IndexError{Index: i, Err: err}
		}
		res[i] = x
	}
	return res, nil
}

func FromSlice[T any](vs []T, elem func(T) (*ir.Node, error)) (*ir.Node, error) {
	res := make([]*ir.Node, len(vs))
	for i, v := range vs {
		n, err := elem(v)
		if err != nil {
			return nil, &IndexError{Index: i, Err: err}
		}
		res[i] = n
	}
	return ir.FromSlice(res), nil
}

// FloatTuple reads an Array holding exactly one number per name.
func FloatTuple(kind string, n *ir.Node, names ...string) ([]float64, error) {
	vs, err := Array(kind, n)
	if err != nil {
		return nil, err
	}
	if len(vs) > len(names) {
		return nil, &ArityError{Kind: kind, Len: len(vs), Max: len(names)}
	}
	res := make([]float64, len(names))
	for i, name := range names {
		if i >= len(vs) {
			return nil, &ElementError{Kind: kind, Element: name, Missing: true}
		}
		f, ok := vs[i].AsFloat()
		if !ok {
			return nil, &ElementError{Kind: kind, Element: name, Err: variant(kind, "Integer or Float", vs[i])}
		}
		res[i] = f
	}
	return res, nil
}

// FromFloats writes fs as an Array, narrowing integral values.
func FromFloats(fs ...float64) *ir.Node {
	res := make([]*ir.Node, len(fs))
	for i, f := range fs {
		res[i] = FromFloat64(f)
	}
	return ir.FromSlice(res)
}
