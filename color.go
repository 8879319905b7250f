package canvas

import "math"

// Color is a straight (non-premultiplied) RGBA8 color. Channels are in
// [0,255]. Color is immutable; every method returns a new value.
type Color struct {
	R, G, B, A uint8
}

// RGBA constructs a Color from four byte channels.
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Opaque builds a fully-opaque color from RGB bytes.
func Opaque(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// Transparent is the zero color: fully transparent black.
var Transparent = Color{}

var (
	Black = Opaque(0, 0, 0)
	White = Opaque(255, 255, 255)
)

func clamp255f(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Premultiplied returns the color's channels multiplied by its own alpha,
// packed as (r,g,b,a) bytes. Used as the common currency between paint
// sources, the scan converter, and the compositor.
func (c Color) Premultiplied() (r, g, b, a uint8) {
	if c.A == 255 {
		return c.R, c.G, c.B, c.A
	}
	af := float64(c.A) / 255
	return clamp255f(float64(c.R) * af), clamp255f(float64(c.G) * af), clamp255f(float64(c.B) * af), c.A
}

// Unpremultiply recovers a straight Color from premultiplied channel bytes.
func Unpremultiply(r, g, b, a uint8) Color {
	if a == 0 {
		return Transparent
	}
	if a == 255 {
		return Color{r, g, b, a}
	}
	af := 255.0 / float64(a)
	return Color{
		R: clamp255f(math.Min(255, float64(r)*af)),
		G: clamp255f(math.Min(255, float64(g)*af)),
		B: clamp255f(math.Min(255, float64(b)*af)),
		A: a,
	}
}

// WithAlphaMultiplied returns c with its alpha scaled by globalAlpha, the
// effective channel multiplier for integer-times-float global alpha
// composition.
func (c Color) WithAlphaMultiplied(globalAlpha float64) Color {
	if globalAlpha >= 1 {
		return c
	}
	if globalAlpha <= 0 {
		return Transparent
	}
	return Color{R: c.R, G: c.G, B: c.B, A: clamp255f(float64(c.A) * globalAlpha)}
}

// EffectiveAlpha returns the source alpha factor α_s used by the Porter-Duff
// formulas: (channel/255)·globalAlpha.
func (c Color) EffectiveAlpha(globalAlpha float64) float64 {
	return (float64(c.A) / 255) * globalAlpha
}

// Lerp linearly interpolates straight RGBA channels toward o by t∈[0,1].
// Gradients interpolate in straight RGBA, not linear-sRGB space (see
// DESIGN.md).
func (c Color) Lerp(o Color, t float64) Color {
	lerp := func(a, b uint8) uint8 {
		return clamp255f(float64(a) + (float64(b)-float64(a))*t)
	}
	return Color{R: lerp(c.R, o.R), G: lerp(c.G, o.G), B: lerp(c.B, o.B), A: lerp(c.A, o.A)}
}

func (c Color) IsOpaque() bool      { return c.A == 255 }
func (c Color) IsTransparent() bool { return c.A == 0 }
