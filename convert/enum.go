package convert

import (
	"slices"

	"github.com/signadot/plist/ir"
)

// Enum maps the values of T to the strings that represent them.
type Enum[T comparable] struct {
	Kind   string
	names  map[T]string
	values map[string]T
	sorted []string
}

func NewEnum[T comparable](kind string, names map[T]string) *Enum[T] {
	e := &Enum[T]{
		Kind:   kind,
		names:  names,
		values: make(map[string]T, len(names)),
	}
	for v, s := range names {
		e.values[s] = v
		e.sorted = append(e.sorted, s)
	}
	slices.Sort(e.sorted)
	return e
}

func (e *Enum[T]) Decode(n *ir.Node) (T, error) {
	var zero T
	if n.Type != ir.StringType {
		return zero, variant(e.Kind, "String", n)
	}
	v, ok := e.values[n.String]
	if !ok {
		return zero, &UnknownValueError{Kind: e.Kind, Value: n.String, Allowed: e.sorted}
	}
	return v, nil
}

func (e *Enum[T]) Encode(v T) (*ir.Node, error) {
	s, ok := e.names[v]
	if !ok {
		return nil, &UnknownValueError{Kind: e.Kind, Value: "<invalid>", Allowed: e.sorted}
	}
	return ir.FromString(s), nil
}

// Name returns the string for v, or "" if v has none.
func (e *Enum[T]) Name(v T) string {
	return e.names[v]
}
