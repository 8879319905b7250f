package canvas

// RepeatMode selects Pattern's tiling behavior on each axis: repeat,
// repeat-x, repeat-y, or no-repeat.
type RepeatMode int

const (
	RepeatBoth RepeatMode = iota
	RepeatX
	RepeatY
	NoRepeat
)

// ImageBuffer is the minimal pixel source a Pattern samples from: a
// straight-RGBA8 buffer with its own width/height, decoupled from Surface
// so a pattern image need not be an active drawing target.
type ImageBuffer struct {
	W, H int
	Data []uint8 // straight RGBA8, stride = 4*W
}

func (b *ImageBuffer) at(x, y int) Color {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return Transparent
	}
	i := (y*b.W + x) * 4
	return Color{R: b.Data[i], G: b.Data[i+1], B: b.Data[i+2], A: b.Data[i+3]}
}

// Pattern tiles an ImageBuffer under a repetition mode and an optional
// pattern-space transform.
type Pattern struct {
	Image     *ImageBuffer
	Mode      RepeatMode
	Transform Transform // pattern space -> user space, frozen at construction
}

func NewPattern(img *ImageBuffer, mode RepeatMode) *Pattern {
	return &Pattern{Image: img, Mode: mode, Transform: Identity()}
}

func (*Pattern) paintSourceMarker() {}

// ColorAt maps the device point by the inverse of (currentTransform ·
// patternTransform), applies the repetition mode, and nearest-neighbor
// samples the image; a non-invertible combined transform yields transparent.
func (p *Pattern) ColorAt(devX, devY float64, current Transform) Color {
	combined := p.Transform.Multiply(current)
	inv, ok := combined.Invert()
	if !ok {
		Logger().Debug("pattern: non-invertible transform, painting transparent")
		return Transparent
	}
	local := inv.TransformPoint(Pt(devX, devY))
	ix := int(floorF(local.X))
	iy := int(floorF(local.Y))

	switch p.Mode {
	case RepeatBoth:
		ix = wrap(ix, p.Image.W)
		iy = wrap(iy, p.Image.H)
	case RepeatX:
		ix = wrap(ix, p.Image.W)
		if iy < 0 || iy >= p.Image.H {
			return Transparent
		}
	case RepeatY:
		iy = wrap(iy, p.Image.H)
		if ix < 0 || ix >= p.Image.W {
			return Transparent
		}
	case NoRepeat:
		if ix < 0 || ix >= p.Image.W || iy < 0 || iy >= p.Image.H {
			return Transparent
		}
	}
	return p.Image.at(ix, iy)
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func floorF(v float64) float64 {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return float64(i)
}
