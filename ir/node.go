package ir

import (
	"maps"
	"math"
	"slices"
)

type Node struct {
	Type Type

	// Fields holds the entries of a Dictionary.
	Fields map[string]*Node
	// Values holds the elements of an Array.
	Values []*Node

	String  string
	Int64   int64
	Float64 float64
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: FloatType, Float64: f}
}

// FromMap makes a Dictionary holding m. The map is used as is, not copied;
// a nil map yields an empty Dictionary.
func FromMap(m map[string]*Node) *Node {
	if m == nil {
		m = map[string]*Node{}
	}
	return &Node{Type: DictionaryType, Fields: m}
}

// FromSlice makes an Array holding vs. A nil slice yields an empty Array.
func FromSlice(vs []*Node) *Node {
	if vs == nil {
		vs = []*Node{}
	}
	return &Node{Type: ArrayType, Values: vs}
}

// Dict is shorthand for building a Dictionary from alternating keys and
// values, mostly useful in tests.
func Dict(kvs ...any) *Node {
	if len(kvs)%2 != 0 {
		panic("ir.Dict: odd number of arguments")
	}
	m := make(map[string]*Node, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1].(*Node)
	}
	return FromMap(m)
}

func Array(vs ...*Node) *Node {
	return FromSlice(vs)
}

// Get returns the value under key for a Dictionary, and nil otherwise.
func (y *Node) Get(key string) *Node {
	if y == nil || y.Type != DictionaryType {
		return nil
	}
	return y.Fields[key]
}

// Keys returns the sorted keys of a Dictionary.
func (y *Node) Keys() []string {
	if y == nil || y.Type != DictionaryType {
		return nil
	}
	return slices.Sorted(maps.Keys(y.Fields))
}

// Len returns the number of entries of a Dictionary or elements of an
// Array, and 0 for leaves.
func (y *Node) Len() int {
	switch y.Type {
	case DictionaryType:
		return len(y.Fields)
	case ArrayType:
		return len(y.Values)
	default:
		return 0
	}
}

// AsFloat returns the numeric value of an Integer or Float.
func (y *Node) AsFloat() (float64, bool) {
	switch y.Type {
	case IntegerType:
		return float64(y.Int64), true
	case FloatType:
		return y.Float64, true
	default:
		return 0, false
	}
}

// Clone returns a deep copy of y.
func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:    y.Type,
		String:  y.String,
		Int64:   y.Int64,
		Float64: y.Float64,
	}
	switch y.Type {
	case DictionaryType:
		res.Fields = make(map[string]*Node, len(y.Fields))
		for k, v := range y.Fields {
			res.Fields[k] = v.Clone()
		}
	case ArrayType:
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Equal reports whether a and b are the same tree. Floats compare by
// value, except that NaN is equal to NaN.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case DictionaryType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for k, av := range a.Fields {
			bv, ok := b.Fields[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case ArrayType:
		return slices.EqualFunc(a.Values, b.Values, Equal)
	case StringType:
		return a.String == b.String
	case IntegerType:
		return a.Int64 == b.Int64
	case FloatType:
		if math.IsNaN(a.Float64) {
			return math.IsNaN(b.Float64)
		}
		return a.Float64 == b.Float64
	default:
		return false
	}
}

// Visit calls f for y and each of its descendants in pre-order, dictionary
// entries in key order. The path of each node is given as for [Path.String].
// If f returns false the children of that node are skipped.
func (y *Node) Visit(f func(path string, node *Node) (bool, error)) error {
	return y.visit("$", f)
}

func (y *Node) visit(path string, f func(string, *Node) (bool, error)) error {
	descend, err := f(path, y)
	if err != nil || !descend {
		return err
	}
	switch y.Type {
	case DictionaryType:
		for _, k := range y.Keys() {
			if err := y.Fields[k].visit(FieldPath(path, k), f); err != nil {
				return err
			}
		}
	case ArrayType:
		for i, v := range y.Values {
			if err := v.visit(IndexPath(path, i), f); err != nil {
				return err
			}
		}
	}
	return nil
}
