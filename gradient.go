package canvas

import "sort"

// ExtendMode controls how a gradient samples beyond its defined range.
// Canvas2D gradients always clamp at the ends (pad); the type exists so
// the lookup-table code is shared with a future repeat/reflect mode
// without a signature change.
type ExtendMode int

const (
	ExtendPad ExtendMode = iota
	ExtendRepeat
	ExtendReflect
)

// ColorStop is one gradient color stop at offset∈[0,1].
type ColorStop struct {
	Offset float64
	Color  Color
}

// gradientLUTSize is the resolution of the precomputed stop lookup table.
const gradientLUTSize = 256

// buildLUT precomputes straight-RGBA interpolated colors across [0,1],
// interpolating linearly between sorted stops in straight RGBA space
// rather than linear-sRGB (see DESIGN.md).
func buildLUT(stops []ColorStop) [gradientLUTSize]Color {
	var lut [gradientLUTSize]Color
	if len(stops) == 0 {
		return lut
	}
	sorted := append([]ColorStop(nil), stops...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	for i := 0; i < gradientLUTSize; i++ {
		t := float64(i) / float64(gradientLUTSize-1)
		lut[i] = sampleStops(sorted, t)
	}
	return lut
}

func sampleStops(sorted []ColorStop, t float64) Color {
	if len(sorted) == 1 {
		return sorted[0].Color
	}
	if t <= sorted[0].Offset {
		return sorted[0].Color
	}
	last := len(sorted) - 1
	if t >= sorted[last].Offset {
		return sorted[last].Color
	}
	idx := sort.Search(len(sorted), func(i int) bool { return sorted[i].Offset >= t })
	a := sorted[idx-1]
	b := sorted[idx]
	span := b.Offset - a.Offset
	if span <= 0 {
		return b.Color
	}
	return a.Color.Lerp(b.Color, (t-a.Offset)/span)
}

func lutLookup(lut [gradientLUTSize]Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	idx := int(t * float64(gradientLUTSize-1))
	return lut[idx]
}
