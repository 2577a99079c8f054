package affine

import "math"

// Components are the parts of a transform as a component stores them.
// Rotation is in degrees.
type Components struct {
	XOffset, YOffset float64
	Rotation         float64
	ScaleX, ScaleY   float64
	SkewX, SkewY     float64
}

// Compose returns translate * rotate * scale * skew.
func (c Components) Compose() Affine {
	return Translate(c.XOffset, c.YOffset).
		Mul(Rotate(c.Rotation)).
		Mul(Scale(c.ScaleX, c.ScaleY)).
		Mul(Skew(c.SkewX, c.SkewY))
}

// Decompose splits a into scale, rotation and offset. Skew is not
// extracted: a transform with shear does not compose back to itself.
func (a Affine) Decompose() Components {
	det := a.Det()
	sx := math.Hypot(a.XScale, a.XYScale)
	sy := math.Hypot(a.YXScale, a.YScale)
	if det < 0 {
		sy = -sy
	}
	r := math.Atan2(a.XYScale*sy, a.XScale*sx) * 180 / math.Pi

	if det < 0 && (math.Abs(r) > 135 || r < -90) {
		sx, sy = -sx, -sy
		if r < 0 {
			r += 180
		} else {
			r -= 180
		}
	}

	quadrant := 0.0
	if r < -90 {
		quadrant = 180
		r += quadrant
	}
	if r > 90 {
		quadrant = -180
		r += quadrant
	}
	r = r*sx/sy - quadrant
	if r < -179 {
		r += 360
	}
	return Components{
		XOffset:  a.XOffset,
		YOffset:  a.YOffset,
		Rotation: r,
		ScaleX:   sx,
		ScaleY:   sy,
	}
}
