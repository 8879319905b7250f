package canvas

import (
	"math"

	"github.com/gogpu/swcanvas/internal/boxblur"
	"github.com/gogpu/swcanvas/internal/raster"
)

// renderShadowPass synthesizes the drop shadow beneath the upcoming fill or
// stroke: rasterize the same rings into a coverage buffer, offset by the
// (device-space, CTM-independent) shadow offset, blur with a 3-pass box
// filter approximating σ = shadowBlur/2, then composite the shadow color
// modulated by the blurred coverage. Runs before the real paint so the
// shape itself draws over its own shadow.
func (c *Context) renderShadowPass(rings []raster.Ring, rule raster.FillRule) {
	w, h := c.surface.Width(), c.surface.Height()
	coverage := boxblur.NewBuffer(w, h)
	raster.Fill(rings, rule, h, func(y, x0, x1 int) {
		for x := x0; x < x1; x++ {
			coverage.Set(x, y, 1)
		}
	})

	sigma := c.state.shadow.Blur / 2
	if sigma > 0 {
		boxblur.Blur(coverage, sigma)
	}

	ox := int(math.Round(c.state.shadow.OffsetX))
	oy := int(math.Round(c.state.shadow.OffsetY))
	shadowColor := c.state.shadow.Color
	globalAlpha := c.state.globalAlpha
	op := c.state.compositeOp

	for y := 0; y < h; y++ {
		dy := y + oy
		if dy < 0 || dy >= h {
			continue
		}
		for x := 0; x < w; x++ {
			a := coverage.At(x, y)
			if a <= 0 {
				continue
			}
			if a > 1 {
				a = 1
			}
			dx := x + ox
			if dx < 0 || dx >= w || !c.stencilVisible(dx, dy) {
				continue
			}
			col := shadowColor.WithAlphaMultiplied(a).WithAlphaMultiplied(globalAlpha)
			compositePixel(c.surface, dx, dy, col, op, true)
		}
	}
}
