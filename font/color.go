package font

import (
	"github.com/signadot/plist/convert"
	"github.com/signadot/plist/ir"
)

// Color is a palette index or a list of byte components: grey and
// alpha, RGBA, or CMYK and alpha.
type Color struct {
	Index int64
	// Components is nil for a palette index.
	Components []uint8
}

func IndexColor(i int64) Color { return Color{Index: i} }
func GreyAlpha(g, a uint8) Color { return Color{Components: []uint8{g, a}} }
func RGBA(r, g, b, a uint8) Color { return Color{Components: []uint8{r, g, b, a}} }
func CMYKA(c, m, y, k, a uint8) Color { return Color{Components: []uint8{c, m, y, k, a}} }

// IsIndex reports whether c is a palette index.
func (c Color) IsIndex() bool { return c.Components == nil }

func validColorLen(n int) bool {
	return n == 2 || n == 4 || n == 5
}

func (c *Color) FromPlist(n *ir.Node) error {
	switch n.Type {
	case ir.IntegerType:
		*c = Color{Index: n.Int64}
		return nil
	case ir.ArrayType:
	default:
		return &convert.VariantError{Kind: "color", Want: "Integer or Array", Got: n.Type}
	}
	cs := make([]uint8, len(n.Values))
	for i, v := range n.Values {
		if v.Type != ir.IntegerType {
			return &convert.IndexError{Index: i, Err: &convert.VariantError{Kind: "color", Want: "Integer", Got: v.Type}}
		}
		if v.Int64 < 0 || v.Int64 > 255 {
			return &convert.OutOfBoundsError{Kind: "u8", Value: v.Int64, Min: 0, Max: 255}
		}
		cs[i] = uint8(v.Int64)
	}
	if !validColorLen(len(cs)) {
		return &convert.UnsupportedArrayError{Kind: "color", Len: len(cs)}
	}
	*c = Color{Components: cs}
	return nil
}

func (c Color) ToPlist() (*ir.Node, error) {
	if c.IsIndex() {
		return ir.FromInt(c.Index), nil
	}
	if !validColorLen(len(c.Components)) {
		return nil, &convert.UnsupportedArrayError{Kind: "color", Len: len(c.Components)}
	}
	vs := make([]*ir.Node, len(c.Components))
	for i, x := range c.Components {
		vs[i] = ir.FromInt(int64(x))
	}
	return ir.FromSlice(vs), nil
}
