package canvas

// LinearGradient interpolates colors along the axis from Start to End.
type LinearGradient struct {
	Start, End Point
	stops      []ColorStop
	lut        [gradientLUTSize]Color
	degenerate bool
}

// NewLinearGradient creates a linear gradient. Call AddStop to add color
// stops; each call rebuilds the lookup table immediately, so the gradient
// reflects its stops as of the most recent AddStop call.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	g := &LinearGradient{Start: Pt(x0, y0), End: Pt(x1, y1)}
	g.degenerate = g.End.Sub(g.Start).Length() < 1e-12
	return g
}

// AddStop appends a color stop and immediately rebuilds the lookup table,
// matching Canvas2D's addColorStop semantics ("takes effect immediately").
func (g *LinearGradient) AddStop(offset float64, c Color) {
	g.stops = append(g.stops, ColorStop{offset, c})
	g.FinalizeStops()
}

func (g *LinearGradient) FinalizeStops() { g.lut = buildLUT(g.stops) }

func (*LinearGradient) paintSourceMarker() {}

// ColorAt projects the device point onto the gradient axis and looks up the
// lut; a zero-length axis renders fully transparent at every pixel rather
// than falling back to the first stop's color.
func (g *LinearGradient) ColorAt(devX, devY float64, current Transform) Color {
	if g.degenerate {
		return Transparent
	}
	axis := g.End.Sub(g.Start)
	lenSq := axis.Dot(axis)
	p := Pt(devX, devY).Sub(g.Start)
	t := p.Dot(axis) / lenSq
	return lutLookup(g.lut, t)
}
