package canvas

// PaintSource is the sum type of fill/stroke styles: solid color, the three
// gradient kinds, and tiled image patterns, modeled as a single virtual
// sample operation. ColorAt receives the device pixel center and the
// current transform and returns a straight (non-premultiplied) color.
type PaintSource interface {
	ColorAt(devX, devY float64, current Transform) Color
	paintSourceMarker()
}

// SolidColor is the trivial paint source: constant at every pixel.
type SolidColor struct{ Color Color }

func Solid(c Color) SolidColor { return SolidColor{Color: c} }

func (s SolidColor) ColorAt(devX, devY float64, current Transform) Color { return s.Color }
func (SolidColor) paintSourceMarker()                                    {}

// AsSolid reports whether p is a SolidColor, the discriminant fast paths
// test directly rather than going through the virtual ColorAt call.
func AsSolid(p PaintSource) (Color, bool) {
	if s, ok := p.(SolidColor); ok {
		return s.Color, true
	}
	return Color{}, false
}
