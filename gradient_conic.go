package canvas

import "math"

// ConicGradient sweeps colors around a center starting at angle θ₀:
// t = ((atan2(y-cy,x-cx) - θ0) mod 2π) / 2π.
type ConicGradient struct {
	Center     Point
	StartAngle float64
	stops      []ColorStop
	lut        [gradientLUTSize]Color
}

func NewConicGradient(cx, cy, startAngle float64) *ConicGradient {
	return &ConicGradient{Center: Pt(cx, cy), StartAngle: startAngle}
}

// AddStop appends a color stop and immediately rebuilds the lookup table,
// matching Canvas2D's addColorStop semantics ("takes effect immediately").
func (g *ConicGradient) AddStop(offset float64, c Color) {
	g.stops = append(g.stops, ColorStop{offset, c})
	g.FinalizeStops()
}
func (g *ConicGradient) FinalizeStops() { g.lut = buildLUT(g.stops) }
func (*ConicGradient) paintSourceMarker()                {}

func (g *ConicGradient) ColorAt(devX, devY float64, current Transform) Color {
	dx := devX - g.Center.X
	dy := devY - g.Center.Y
	if dx == 0 && dy == 0 {
		return Transparent
	}
	angle := math.Atan2(dy, dx)
	const twoPi = 2 * math.Pi
	t := math.Mod(angle-g.StartAngle, twoPi)
	if t < 0 {
		t += twoPi
	}
	return lutLookup(g.lut, t/twoPi)
}
