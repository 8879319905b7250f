package canvas

import "math"

// RadialGradient interpolates colors between two circles, solving for the
// pencil parameter t along the ray from the start circle to the end circle.
type RadialGradient struct {
	Start       Point
	StartRadius float64
	End         Point
	EndRadius   float64
	stops       []ColorStop
	lut         [gradientLUTSize]Color
	degenerate  bool
}

func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	g := &RadialGradient{Start: Pt(x0, y0), StartRadius: r0, End: Pt(x1, y1), EndRadius: r1}
	g.degenerate = r0 == r1 && g.Start == g.End
	return g
}

// AddStop appends a color stop and immediately rebuilds the lookup table,
// matching Canvas2D's addColorStop semantics ("takes effect immediately").
func (g *RadialGradient) AddStop(offset float64, c Color) {
	g.stops = append(g.stops, ColorStop{offset, c})
	g.FinalizeStops()
}
func (g *RadialGradient) FinalizeStops() { g.lut = buildLUT(g.stops) }
func (*RadialGradient) paintSourceMarker()                {}

// ColorAt solves the standard two-circle radial gradient equation: find the
// largest t such that the circle interpolated at t passes through the
// sample point, then clamp to [0,1].
func (g *RadialGradient) ColorAt(devX, devY float64, current Transform) Color {
	if g.degenerate {
		return Transparent
	}
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	dr := g.EndRadius - g.StartRadius

	px := devX - g.Start.X
	py := devY - g.Start.Y

	a := dx*dx + dy*dy - dr*dr
	b := -2 * (px*dx + py*dy + g.StartRadius*dr)
	c := px*px + py*py - g.StartRadius*g.StartRadius

	var t float64
	ok := false
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) > 1e-12 {
			t = -c / b
			ok = g.StartRadius+t*dr >= 0
		}
	} else {
		disc := b*b - 4*a*c
		if disc >= 0 {
			sq := math.Sqrt(disc)
			t0 := (-b + sq) / (2 * a)
			t1 := (-b - sq) / (2 * a)
			if t1 > t0 {
				t0, t1 = t1, t0
			}
			if g.StartRadius+t0*dr >= 0 {
				t, ok = t0, true
			} else if g.StartRadius+t1*dr >= 0 {
				t, ok = t1, true
			}
		}
	}
	if !ok {
		return Transparent
	}
	return lutLookup(g.lut, t)
}
