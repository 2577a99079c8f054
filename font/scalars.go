package font

import (
	"math"

	"github.com/signadot/plist/convert"
	"github.com/signadot/plist/ir"
)

func init() {
	convert.Register(pointFromPlist, Point.toPlist)
	convert.Register(scaleFromPlist, Scale.toPlist)
	convert.Register(nameFromPlist, Name.toPlist)
	convert.Register(codepointsFromPlist, Codepoints.toPlist)
	convert.Register(kerningFromPlist, KerningTable.toPlist)
}

type Point struct {
	X, Y float64
}

func pointFromPlist(n *ir.Node) (Point, error) {
	xy, err := convert.FloatTuple("point", n, "x", "y")
	if err != nil {
		return Point{}, err
	}
	return Point{X: xy[0], Y: xy[1]}, nil
}

func (p Point) toPlist() (*ir.Node, error) {
	return convert.FromFloats(p.X, p.Y), nil
}

// Scale is a pair of horizontal and vertical factors, used for component
// scale and slant.
type Scale struct {
	Horizontal, Vertical float64
}

func scaleFromPlist(n *ir.Node) (Scale, error) {
	hv, err := convert.FloatTuple("scale", n, "horizontal", "vertical")
	if err != nil {
		return Scale{}, err
	}
	return Scale{Horizontal: hv[0], Vertical: hv[1]}, nil
}

func (s Scale) toPlist() (*ir.Node, error) {
	return convert.FromFloats(s.Horizontal, s.Vertical), nil
}

// Name is a glyph name.
type Name string

// Glyphs writes the names infinity and nan unquoted, so they read back
// as floats.
func nameFromPlist(n *ir.Node) (Name, error) {
	switch n.Type {
	case ir.StringType:
		return Name(n.String), nil
	case ir.FloatType:
		switch {
		case math.IsInf(n.Float64, 0):
			return "infinity", nil
		case math.IsNaN(n.Float64):
			return "nan", nil
		}
	}
	return "", &convert.VariantError{Kind: "name", Want: "String", Got: n.Type}
}

func (n Name) toPlist() (*ir.Node, error) {
	return ir.FromString(string(n)), nil
}

// Codepoints are the Unicode values of a glyph. One value is written as
// an Integer, several as an Array.
type Codepoints []rune

func codepoint(n *ir.Node) (rune, error) {
	i, err := convert.Int64(n)
	if err != nil {
		return 0, err
	}
	if i < 0 || i > math.MaxInt32 || !validRune(rune(i)) {
		return 0, &convert.CodepointError{Value: i}
	}
	return rune(i), nil
}

func validRune(r rune) bool {
	return r >= 0 && r <= 0x10FFFF && (r < 0xD800 || r > 0xDFFF)
}

func codepointsFromPlist(n *ir.Node) (Codepoints, error) {
	if n.Type == ir.IntegerType {
		r, err := codepoint(n)
		if err != nil {
			return nil, err
		}
		return Codepoints{r}, nil
	}
	if n.Type != ir.ArrayType {
		return nil, &convert.VariantError{Kind: "codepoints", Want: "Integer or Array", Got: n.Type}
	}
	return convert.Slice("codepoints", n, codepoint)
}

func (c Codepoints) toPlist() (*ir.Node, error) {
	for _, r := range c {
		if !validRune(r) {
			return nil, &convert.CodepointError{Value: int64(r)}
		}
	}
	switch len(c) {
	case 0:
		return nil, &convert.UnsupportedArrayError{Kind: "codepoints", Len: 0}
	case 1:
		return ir.FromInt(int64(c[0])), nil
	}
	vs := make([]*ir.Node, len(c))
	for i, r := range c {
		vs[i] = ir.FromInt(int64(r))
	}
	return ir.FromSlice(vs), nil
}

// Kerning maps a left glyph or group to right glyphs or groups and their
// kerning values.
type Kerning map[string]map[string]float64

// KerningTable holds the kerning of each master, by master id.
type KerningTable map[string]Kerning

// Value returns the kerning between left and right in master, and whether
// there is any.
func (t KerningTable) Value(master, left, right string) (float64, bool) {
	v, ok := t[master][left][right]
	return v, ok
}

func kerningFromPlist(n *ir.Node) (KerningTable, error) {
	if n.Type != ir.DictionaryType {
		return nil, &convert.KerningError{Err: &convert.VariantError{Kind: "kerning", Want: "Dictionary", Got: n.Type}}
	}
	res := make(KerningTable, len(n.Fields))
	for _, master := range n.Keys() {
		mk := n.Fields[master]
		if mk.Type != ir.DictionaryType {
			return nil, &convert.KerningError{Master: master, Err: &convert.VariantError{Kind: "kerning", Want: "Dictionary", Got: mk.Type}}
		}
		k := make(Kerning, len(mk.Fields))
		for _, left := range mk.Keys() {
			rights := mk.Fields[left]
			if rights.Type != ir.DictionaryType {
				return nil, &convert.KerningError{Master: master, Left: left, Err: &convert.VariantError{Kind: "kerning", Want: "Dictionary", Got: rights.Type}}
			}
			row := make(map[string]float64, len(rights.Fields))
			for _, right := range rights.Keys() {
				f, err := convert.Float64(rights.Fields[right])
				if err != nil {
					return nil, &convert.KerningError{Master: master, Left: left, Right: right, Err: err}
				}
				row[right] = f
			}
			k[left] = row
		}
		res[master] = k
	}
	return res, nil
}

func (t KerningTable) toPlist() (*ir.Node, error) {
	res := make(map[string]*ir.Node, len(t))
	for master, k := range t {
		mk := make(map[string]*ir.Node, len(k))
		for left, rights := range k {
			row := make(map[string]*ir.Node, len(rights))
			for right, v := range rights {
				row[right] = convert.FromFloat64(v)
			}
			mk[left] = ir.FromMap(row)
		}
		res[master] = ir.FromMap(mk)
	}
	return ir.FromMap(res), nil
}
