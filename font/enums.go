package font

import (
	"github.com/signadot/plist/convert"
	"github.com/signadot/plist/ir"
)

type Direction int

const (
	Bidi Direction = iota
	LTR
	RTL
	VTL
	VTR
)

var directions = convert.NewEnum("direction", map[Direction]string{
	Bidi: "BIDI",
	LTR:  "LTR",
	RTL:  "RTL",
	VTL:  "VTL",
	VTR:  "VTR",
})

func (d Direction) String() string { return directions.Name(d) }

func (d *Direction) FromPlist(n *ir.Node) (err error) {
	*d, err = directions.Decode(n)
	return err
}

func (d Direction) ToPlist() (*ir.Node, error) { return directions.Encode(d) }

type Case int

const (
	NoCase Case = iota
	Upper
	Lower
	SmallCaps
	OtherCase
)

var cases = convert.NewEnum("case", map[Case]string{
	NoCase:    "noCase",
	Upper:     "upper",
	Lower:     "lower",
	SmallCaps: "smallCaps",
	OtherCase: "other",
})

func (c Case) String() string { return cases.Name(c) }

func (c *Case) FromPlist(n *ir.Node) (err error) {
	*c, err = cases.Decode(n)
	return err
}

func (c Case) ToPlist() (*ir.Node, error) { return cases.Encode(c) }

type MetricType int

const (
	Ascender MetricType = iota
	Baseline
	BodyHeight
	CapHeight
	Descender
	ItalicAngle
	MidHeight
	SlantHeight
	TopHeight
	XHeight
)

var metricTypes = convert.NewEnum("metric type", map[MetricType]string{
	Ascender:    "ascender",
	Baseline:    "baseline",
	BodyHeight:  "bodyHeight",
	CapHeight:   "cap height",
	Descender:   "descender",
	ItalicAngle: "italic angle",
	MidHeight:   "midHeight",
	SlantHeight: "slant height",
	TopHeight:   "topHeight",
	XHeight:     "x-height",
})

func (m MetricType) String() string { return metricTypes.Name(m) }

func (m *MetricType) FromPlist(n *ir.Node) (err error) {
	*m, err = metricTypes.Decode(n)
	return err
}

func (m MetricType) ToPlist() (*ir.Node, error) { return metricTypes.Encode(m) }

type InstanceType int

const (
	Variable InstanceType = iota
)

var instanceTypes = convert.NewEnum("instance type", map[InstanceType]string{
	Variable: "variable",
})

func (t InstanceType) String() string { return instanceTypes.Name(t) }

func (t *InstanceType) FromPlist(n *ir.Node) (err error) {
	*t, err = instanceTypes.Decode(n)
	return err
}

func (t InstanceType) ToPlist() (*ir.Node, error) { return instanceTypes.Encode(t) }

type AnchorOrientation int

const (
	Center AnchorOrientation = iota
	Right
)

var orientations = convert.NewEnum("anchor orientation", map[AnchorOrientation]string{
	Center: "center",
	Right:  "right",
})

func (o AnchorOrientation) String() string { return orientations.Name(o) }

func (o *AnchorOrientation) FromPlist(n *ir.Node) (err error) {
	*o, err = orientations.Decode(n)
	return err
}

func (o AnchorOrientation) ToPlist() (*ir.Node, error) { return orientations.Encode(o) }

// NodeType is the kind of a path node.
type NodeType int

const (
	Line NodeType = iota
	LineSmooth
	OffCurve
	Curve
	CurveSmooth
	QCurve
	QCurveSmooth
)

var nodeTypes = convert.NewEnum("node type", map[NodeType]string{
	Line:         "l",
	LineSmooth:   "ls",
	OffCurve:     "o",
	Curve:        "c",
	CurveSmooth:  "cs",
	QCurve:       "q",
	QCurveSmooth: "qs",
})

func (t NodeType) String() string { return nodeTypes.Name(t) }

// Smooth reports whether the node is a smooth on-curve node.
func (t NodeType) Smooth() bool {
	return t == LineSmooth || t == CurveSmooth || t == QCurveSmooth
}
