package font

import (
	"fmt"
	"slices"

	"github.com/signadot/plist/affine"
	"github.com/signadot/plist/convert"
	"github.com/signadot/plist/gomap"
	"github.com/signadot/plist/ir"
)

// Shape is a path or a component; exactly one of the two is set.
type Shape struct {
	Path      *Path
	Component *Component
}

func PathShape(p *Path) Shape           { return Shape{Path: p} }
func ComponentShape(c *Component) Shape { return Shape{Component: c} }

// FromPlist decodes a component when the dictionary has a ref key and a
// path otherwise.
func (s *Shape) FromPlist(n *ir.Node) error {
	if n.Type != ir.DictionaryType {
		return &convert.VariantError{Kind: "shape", Want: "Dictionary", Got: n.Type}
	}
	if _, ok := n.Fields["ref"]; ok {
		c := &Component{}
		if err := gomap.FromIR(n, c); err != nil {
			return fmt.Errorf("bad component: %w", err)
		}
		*s = Shape{Component: c}
		return nil
	}
	p := &Path{}
	if err := gomap.FromIR(n, p); err != nil {
		return fmt.Errorf("bad path: %w", err)
	}
	*s = Shape{Path: p}
	return nil
}

func (s Shape) ToPlist() (*ir.Node, error) {
	switch {
	case s.Path != nil && s.Component != nil:
		return nil, &gomap.MarshalError{Message: "shape is both a path and a component"}
	case s.Path != nil:
		return gomap.ToIR(s.Path)
	case s.Component != nil:
		return gomap.ToIR(s.Component)
	default:
		return nil, &gomap.MarshalError{Message: "empty shape"}
	}
}

type Path struct {
	Attr   *PathAttrs
	Closed bool `plist:"always,default=true"`
	Nodes  []Node
}

func NewPath(closed bool) *Path {
	return &Path{Closed: closed}
}

func (p *Path) Add(pt Point, t NodeType) {
	p.Nodes = append(p.Nodes, Node{Pt: pt, Type: t})
}

// RotateLeft moves the first delta nodes to the end.
func (p *Path) RotateLeft(delta int) {
	if len(p.Nodes) == 0 {
		return
	}
	delta %= len(p.Nodes)
	if delta < 0 {
		delta += len(p.Nodes)
	}
	p.Nodes = slices.Concat(p.Nodes[delta:], p.Nodes[:delta])
}

func (p *Path) Reverse() {
	slices.Reverse(p.Nodes)
}

type PathAttrs struct {
	LineCapStart *float64
	LineCapEnd   *float64
	StrokePos    *int64
	StrokeHeight *float64
	StrokeWidth  *float64
	StrokeColor  []int64 `plist:"optional"`
	Mask         *int64
	Fill         *int64
	FillColor    []int64 `plist:"optional"`
	Shadow       *PathShadow
	Gradient     *PathGradient
}

type PathShadow struct {
	Blur    string
	Color   []int64
	OffsetX string
	OffsetY string
}

type PathGradient struct {
	Colors [][]Color
	Start  Point
	End    Point
	Type   string
}

// Node is a point on a path, written as the tuple (x, y, type) or
// (x, y, type, attrs).
type Node struct {
	Pt   Point
	Type NodeType
	Attr *NodeAttrs
}

type NodeAttrs struct {
	Name *string
	Rest map[string]*ir.Node `plist:"rest"`
}

func (nd *Node) FromPlist(n *ir.Node) error {
	if n.Type != ir.ArrayType {
		return &convert.VariantError{Kind: "node", Want: "Array", Got: n.Type}
	}
	vs := n.Values
	if len(vs) > 4 {
		return &convert.ArityError{Kind: "node", Len: len(vs), Max: 4}
	}
	var res Node
	for i, name := range []string{"x", "y", "type"} {
		if i >= len(vs) {
			return &convert.ElementError{Kind: "node", Element: name, Missing: true}
		}
		v := vs[i]
		if i == 2 {
			t, err := nodeTypes.Decode(v)
			if err != nil {
				return &convert.ElementError{Kind: "node", Element: name, Err: err}
			}
			res.Type = t
			continue
		}
		f, ok := v.AsFloat()
		if !ok {
			return &convert.ElementError{Kind: "node", Element: name, Err: &convert.VariantError{Kind: "node", Want: "Integer or Float", Got: v.Type}}
		}
		if i == 0 {
			res.Pt.X = f
		} else {
			res.Pt.Y = f
		}
	}
	if len(vs) == 4 {
		attr := &NodeAttrs{}
		if err := gomap.FromIR(vs[3], attr); err != nil {
			return &convert.ElementError{Kind: "node", Element: "attr", Err: err}
		}
		res.Attr = attr
	}
	*nd = res
	return nil
}

func (nd Node) ToPlist() (*ir.Node, error) {
	t, err := nodeTypes.Encode(nd.Type)
	if err != nil {
		return nil, err
	}
	vs := []*ir.Node{convert.FromFloat64(nd.Pt.X), convert.FromFloat64(nd.Pt.Y), t}
	if nd.Attr != nil {
		a, err := gomap.ToIR(nd.Attr)
		if err != nil {
			return nil, err
		}
		vs = append(vs, a)
	}
	return ir.FromSlice(vs), nil
}

// Component places another glyph in a layer.
type Component struct {
	Ref      string   `plist:"field=ref"`
	Rotation *float64 `plist:"field=angle"`
	Pos      *Point
	Scale    *Scale
	Slant    *Scale
	Rest     map[string]*ir.Node `plist:"rest"`
}

// Transform composes the component's offset, angle, scale and slant,
// rounded to 5 digits.
func (c *Component) Transform() affine.Affine {
	parts := affine.Components{ScaleX: 1, ScaleY: 1}
	if c.Pos != nil {
		parts.XOffset, parts.YOffset = c.Pos.X, c.Pos.Y
	}
	if c.Rotation != nil {
		parts.Rotation = *c.Rotation
	}
	if c.Scale != nil {
		parts.ScaleX, parts.ScaleY = c.Scale.Horizontal, c.Scale.Vertical
	}
	if c.Slant != nil {
		parts.SkewX, parts.SkewY = c.Slant.Horizontal, c.Slant.Vertical
	}
	return parts.Compose().Round(5)
}

// ComponentFromTransform returns a component of ref placed by a. The
// identity gives a bare reference; anything else sets angle, scale and
// pos. Shear in a is lost.
func ComponentFromTransform(ref string, a affine.Affine) *Component {
	c := &Component{Ref: ref}
	if a == affine.Identity() {
		return c
	}
	parts := a.Decompose()
	c.Rotation = &parts.Rotation
	c.Scale = &Scale{Horizontal: parts.ScaleX, Vertical: parts.ScaleY}
	c.Pos = &Point{X: parts.XOffset, Y: parts.YOffset}
	return c
}

type Anchor struct {
	Name        string
	Orientation *AnchorOrientation
	Pos         Point               `plist:"default"`
	UserData    map[string]*ir.Node `plist:"default"`
}

type GuideLine struct {
	Name            *string
	Angle           float64 `plist:"default"`
	Pos             Point   `plist:"default"`
	Locked          bool    `plist:"default"`
	LockAngle       float64 `plist:"default"`
	ShowMeasurement bool    `plist:"default"`
	Orientation     *AnchorOrientation
	Filter          *string
}
