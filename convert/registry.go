package convert

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/signadot/plist/ir"
)

// Converter is a registered pair of conversions for one Go type.
type Converter struct {
	Type   reflect.Type
	Decode func(*ir.Node) (reflect.Value, error)
	Encode func(reflect.Value) (*ir.Node, error)
}

var registry sync.Map // reflect.Type -> *Converter

// Register installs conversions for T, replacing any previous ones.
// Registered conversions take precedence over FromPlist/ToPlist methods
// and built in handling.
func Register[T any](from func(*ir.Node) (T, error), to func(T) (*ir.Node, error)) {
	t := reflect.TypeFor[T]()
	registry.Store(t, &Converter{
		Type: t,
		Decode: func(n *ir.Node) (reflect.Value, error) {
			v, err := from(n)
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(&v).Elem(), nil
		},
		Encode: func(v reflect.Value) (*ir.Node, error) {
			x, ok := v.Interface().(T)
			if !ok {
				return nil, fmt.Errorf("%w: %s is not %s", ErrConversion, v.Type(), t)
			}
			return to(x)
		},
	})
}

// Unregister removes conversions installed with Register.
func Unregister[T any]() {
	registry.Delete(reflect.TypeFor[T]())
}

func Lookup(t reflect.Type) (*Converter, bool) {
	c, ok := registry.Load(t)
	if !ok {
		return nil, false
	}
	return c.(*Converter), true
}
