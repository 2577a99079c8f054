// Package affine holds 2D affine transforms and their decomposition into
// the scale, rotation and offset a component stores.
package affine

import (
	"math"
)

// Affine maps (x, y) to (XScale*x + YXScale*y + XOffset,
// XYScale*x + YScale*y + YOffset).
type Affine struct {
	XScale, XYScale float64
	YXScale, YScale float64
	XOffset         float64
	YOffset         float64
}

func Identity() Affine {
	return Affine{XScale: 1, YScale: 1}
}

func Translate(x, y float64) Affine {
	return Affine{XScale: 1, YScale: 1, XOffset: x, YOffset: y}
}

// Rotate rotates by deg degrees counterclockwise.
func Rotate(deg float64) Affine {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Affine{XScale: c, XYScale: s, YXScale: -s, YScale: c}
}

func Scale(sx, sy float64) Affine {
	return Affine{XScale: sx, YScale: sy}
}

// Skew shears x by kx*y and y by ky*x.
func Skew(kx, ky float64) Affine {
	return Affine{XScale: 1, XYScale: ky, YXScale: kx, YScale: 1}
}

// Mul returns the transform applying b, then a.
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		XScale:  a.XScale*b.XScale + a.YXScale*b.XYScale,
		XYScale: a.XYScale*b.XScale + a.YScale*b.XYScale,
		YXScale: a.XScale*b.YXScale + a.YXScale*b.YScale,
		YScale:  a.XYScale*b.YXScale + a.YScale*b.YScale,
		XOffset: a.XScale*b.XOffset + a.YXScale*b.YOffset + a.XOffset,
		YOffset: a.XYScale*b.XOffset + a.YScale*b.YOffset + a.YOffset,
	}
}

func (a Affine) Apply(x, y float64) (float64, float64) {
	return a.XScale*x + a.YXScale*y + a.XOffset, a.XYScale*x + a.YScale*y + a.YOffset
}

func (a Affine) Det() float64 {
	return a.XScale*a.YScale - a.XYScale*a.YXScale
}

// Round rounds every coefficient to digits decimal places.
func (a Affine) Round(digits int) Affine {
	r := math.Pow10(digits)
	f := func(v float64) float64 { return math.Round(v*r) / r }
	return Affine{
		XScale:  f(a.XScale),
		XYScale: f(a.XYScale),
		YXScale: f(a.YXScale),
		YScale:  f(a.YScale),
		XOffset: f(a.XOffset),
		YOffset: f(a.YOffset),
	}
}

// Near reports whether every coefficient of a and b differs by less than
// tol.
func (a Affine) Near(b Affine, tol float64) bool {
	return math.Abs(a.XScale-b.XScale) < tol &&
		math.Abs(a.XYScale-b.XYScale) < tol &&
		math.Abs(a.YXScale-b.YXScale) < tol &&
		math.Abs(a.YScale-b.YScale) < tol &&
		math.Abs(a.XOffset-b.XOffset) < tol &&
		math.Abs(a.YOffset-b.YOffset) < tol
}
