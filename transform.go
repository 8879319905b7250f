package canvas

import "math"

// Transform is a 2x3 affine matrix:
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// A single exported type covers what other Canvas2D implementations often
// split across a free-standing Matrix and an internal Transform2D.
type Transform struct {
	A, B, C, D, E, F float64
}

func Identity() Transform { return Transform{A: 1, D: 1} }

func Translate(x, y float64) Transform { return Transform{A: 1, D: 1, E: x, F: y} }

func Scale(sx, sy float64) Transform { return Transform{A: sx, D: sy} }

func Rotate(radians float64) Transform {
	s, c := math.Sin(radians), math.Cos(radians)
	return Transform{A: c, B: s, C: -s, D: c}
}

func Shear(x, y float64) Transform { return Transform{A: 1, B: y, C: x, D: 1} }

// Multiply composes t followed by o (t post-multiplied by o): applying the
// result to a point is equivalent to applying t, then o. Context.Transform
// uses this for left-to-right composition.
func (t Transform) Multiply(o Transform) Transform {
	return Transform{
		A: t.A*o.A + t.B*o.C,
		B: t.A*o.B + t.B*o.D,
		C: t.C*o.A + t.D*o.C,
		D: t.C*o.B + t.D*o.D,
		E: t.E*o.A + t.F*o.C + o.E,
		F: t.E*o.B + t.F*o.D + o.F,
	}
}

func (t Transform) TransformPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// TransformVector transforms a direction, ignoring translation.
func (t Transform) TransformVector(p Point) Point {
	return Point{X: t.A*p.X + t.C*p.Y, Y: t.B*p.X + t.D*p.Y}
}

func (t Transform) Determinant() float64 { return t.A*t.D - t.B*t.C }

// Invert returns the inverse transform and true, or the zero value and
// false if t is singular (|det| below 1e-10). Callers (paint sources,
// pattern sampling) must treat a failed invert as "paint transparent" —
// never silently fall back to identity.
func (t Transform) Invert() (Transform, bool) {
	det := t.Determinant()
	if math.Abs(det) < 1e-10 {
		return Transform{}, false
	}
	inv := 1 / det
	a := t.D * inv
	b := -t.B * inv
	c := -t.C * inv
	d := t.A * inv
	e := -(t.E*a + t.F*c)
	f := -(t.E*b + t.F*d)
	return Transform{A: a, B: b, C: c, D: d, E: e, F: f}, true
}

func (t Transform) IsIdentity() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 && t.D == 1 && t.E == 0 && t.F == 0
}

// IsAxisAligned reports whether t maps axis-aligned rectangles to
// axis-aligned rectangles (no rotation/shear) — the qualification test for
// the axis-aligned direct-rendering fast paths.
func (t Transform) IsAxisAligned() bool {
	const eps = 1e-10
	return (math.Abs(t.B) < eps && math.Abs(t.C) < eps) ||
		(math.Abs(t.A) < eps && math.Abs(t.D) < eps)
}

// IsRotateTranslate reports whether t is a pure rotation (orthonormal,
// no scale/shear) composed with a translation — the qualification test for
// the FillCircle fast path.
func (t Transform) IsRotateTranslate() bool {
	const eps = 1e-9
	lenCol1 := math.Hypot(t.A, t.B)
	lenCol2 := math.Hypot(t.C, t.D)
	if math.Abs(lenCol1-1) > eps || math.Abs(lenCol2-1) > eps {
		return false
	}
	// columns must be orthogonal
	dot := t.A*t.C + t.B*t.D
	return math.Abs(dot) < eps
}

// ScaleFactor returns a representative uniform scale factor, used to scale
// line widths and tolerances into device space (teacher's
// Matrix.ScaleFactor, context.go doStroke).
func (t Transform) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(t.Determinant()))
}
