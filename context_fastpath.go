package canvas

import (
	"math"

	"github.com/gogpu/swcanvas/internal/blend"
	"github.com/gogpu/swcanvas/internal/clip"
	"github.com/gogpu/swcanvas/internal/pathflatten"
	"github.com/gogpu/swcanvas/internal/raster"
)

// FillRect fills a rectangle directly, without going through
// Path/pathflatten/raster, when the current transform is axis-aligned. Any
// other transform, including a rotation, falls back to the general pipeline
// via an explicit one-shot Path; rotated rectangles have no direct path.
func (c *Context) FillRect(x, y, w, h float64) {
	if !isFinite(x) || !isFinite(y) || !isFinite(w) || !isFinite(h) || w == 0 || h == 0 {
		return
	}
	if c.state.transform.IsAxisAligned() {
		c.fillRectAxisAligned(x, y, w, h)
		return
	}
	c.fillGeneralRect(x, y, w, h)
}

func (c *Context) fillGeneralRect(x, y, w, h float64) {
	p := NewPath()
	p.Rect(x, y, w, h)
	c.fillPath(p, FillRuleNonZero)
}

// fillRectAxisAligned maps the user-space rectangle through the
// axis-aligned transform to an integer device-pixel span per row and bulk
// fills it: opaque spans use the doubling-copy writer, translucent spans
// use the blended row loop. Unlike FillCircle's bbox, an axis-aligned
// rect's bounding box is the shape, so there is no bbox-but-outside-shape
// region for VisitsUncoveredDestination operators to revisit here.
func (c *Context) fillRectAxisAligned(x, y, w, h float64) {
	p0 := c.state.transform.TransformPoint(Pt(x, y))
	p1 := c.state.transform.TransformPoint(Pt(x+w, y+h))
	x0, x1 := p0.X, p1.X
	y0, y1 := p0.Y, p1.Y
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	ix0, ix1 := int(math.Round(x0)), int(math.Round(x1))
	iy0, iy1 := int(math.Round(y0)), int(math.Round(y1))
	if ix1 <= ix0 || iy1 <= iy0 {
		return
	}

	if c.state.shadow.enabled() {
		c.renderShadowRect(ix0, ix1, iy0, iy1)
	}

	solid, isSolid := AsSolid(c.state.fillPaint)
	globalAlpha := c.state.globalAlpha
	if isSolid && c.state.compositeOp == SourceOver && c.state.clip == nil {
		col := solid.WithAlphaMultiplied(globalAlpha)
		c.surface.FillRowOpaqueOrBlend(ix0, ix1, iy0, iy1, col)
		return
	}

	op := c.state.compositeOp
	current := c.state.transform
	for py := iy0; py < iy1; py++ {
		for px := ix0; px < ix1; px++ {
			if !c.stencilVisible(px, py) {
				continue
			}
			var col Color
			if isSolid {
				col = solid
			} else {
				col = c.state.fillPaint.ColorAt(float64(px)+0.5, float64(py)+0.5, current)
			}
			col = col.WithAlphaMultiplied(globalAlpha)
			compositePixel(c.surface, px, py, col, op, true)
		}
	}
}

func (c *Context) renderShadowRect(ix0, ix1, iy0, iy1 int) {
	ox := int(math.Round(c.state.shadow.OffsetX))
	oy := int(math.Round(c.state.shadow.OffsetY))
	sigma := c.state.shadow.Blur / 2
	if sigma <= 0 {
		shadowCol := c.state.shadow.Color.WithAlphaMultiplied(c.state.globalAlpha)
		for py := iy0; py < iy1; py++ {
			for px := ix0; px < ix1; px++ {
				dx, dy := px+ox, py+oy
				if !c.stencilVisible(dx, dy) {
					continue
				}
				compositePixel(c.surface, dx, dy, shadowCol, c.state.compositeOp, true)
			}
		}
		return
	}
	p := NewPath()
	p.Rect(float64(ix0), float64(iy0), float64(ix1-ix0), float64(iy1-iy0))
	rings := pathflattenIdentityRings(p)
	c.renderShadowPass(rings, toBlendRule(FillRuleNonZero))
}

// StrokeRect strokes the four edges of a rectangle via the general stroke
// pipeline.
func (c *Context) StrokeRect(x, y, w, h float64) {
	if !isFinite(x) || !isFinite(y) || !isFinite(w) || !isFinite(h) || w == 0 || h == 0 {
		return
	}
	p := NewPath()
	p.Rect(x, y, w, h)
	c.strokePath(p)
}

// FillAndStrokeRect fills then strokes the rectangle as two independent
// operations; pixels where the stroke overlaps the fill are composited by
// both.
func (c *Context) FillAndStrokeRect(x, y, w, h float64) {
	c.FillRect(x, y, w, h)
	c.StrokeRect(x, y, w, h)
}

// FillCircle fills a circle directly via per-row extents ⌊√(r²−dy²)⌋
// rather than the general arc-sampling pipeline.
func (c *Context) FillCircle(cx, cy, r float64) {
	if !isFinite(cx) || !isFinite(cy) || !isFinite(r) || r <= 0 {
		return
	}
	if !c.state.transform.IsRotateTranslate() {
		c.fillGeneralCircle(cx, cy, r)
		return
	}
	center := c.state.transform.TransformPoint(Pt(cx, cy))
	scale := c.state.transform.ScaleFactor()
	dr := r * scale
	if dr <= 0 {
		return
	}
	if c.state.shadow.enabled() {
		p := NewPath()
		p.Arc(center.X, center.Y, dr, 0, 2*math.Pi, false)
		rings := pathflattenIdentityRings(p)
		c.renderShadowPass(rings, toBlendRule(FillRuleNonZero))
	}

	solid, isSolid := AsSolid(c.state.fillPaint)
	globalAlpha := c.state.globalAlpha
	op := c.state.compositeOp
	current := c.state.transform
	iy0 := int(math.Floor(center.Y - dr))
	iy1 := int(math.Ceil(center.Y + dr))

	// The circle's bbox corners fall outside the disc itself, so operators
	// depending on destination-only regions (source-in, source-out,
	// destination-atop, copy) need those corners revisited too, the same
	// way rasterAndComposite handles a non-rectangular general-path shape.
	revisit := blend.VisitsUncoveredDestination(op.toBlend())
	var covered *clip.Stencil
	var bx0, by0, bx1, by1 int
	if revisit {
		bx0, by0, bx1, by1 = clampBBox(int(math.Floor(center.X-dr)), iy0, int(math.Ceil(center.X+dr)), iy1, c.surface.Width(), c.surface.Height())
		covered = clip.NewEmpty(c.surface.Width(), c.surface.Height())
	}

	for py := iy0; py < iy1; py++ {
		dy := float64(py) + 0.5 - center.Y
		if math.Abs(dy) > dr {
			continue
		}
		half := math.Sqrt(dr*dr - dy*dy)
		ix0 := int(math.Ceil(center.X - half))
		ix1 := int(math.Floor(center.X+half)) + 1
		if revisit {
			covered.SetSpan(py, ix0, ix1, true)
		}
		for px := ix0; px < ix1; px++ {
			if !c.stencilVisible(px, py) {
				continue
			}
			var col Color
			if isSolid {
				col = solid
			} else {
				col = c.state.fillPaint.ColorAt(float64(px)+0.5, float64(py)+0.5, current)
			}
			col = col.WithAlphaMultiplied(globalAlpha)
			compositePixel(c.surface, px, py, col, op, true)
		}
	}

	if revisit {
		c.compositeUncoveredBBox(bx0, bx1, by0, by1, covered, op)
	}
}

func (c *Context) fillGeneralCircle(cx, cy, r float64) {
	p := NewPath()
	p.Arc(cx, cy, r, 0, 2*math.Pi, false)
	c.fillPath(p, FillRuleNonZero)
}

// StrokeCircle strokes a circle via the general arc-stroke pipeline.
func (c *Context) StrokeCircle(cx, cy, r float64) {
	if !isFinite(cx) || !isFinite(cy) || !isFinite(r) || r <= 0 {
		return
	}
	p := NewPath()
	p.Arc(cx, cy, r, 0, 2*math.Pi, false)
	c.strokePath(p)
}

// FillAndStrokeCircle fills then strokes a circle.
func (c *Context) FillAndStrokeCircle(cx, cy, r float64) {
	c.FillCircle(cx, cy, r)
	c.StrokeCircle(cx, cy, r)
}

// ClearRect resets an axis-aligned device rectangle to fully transparent,
// ignoring globalAlpha and globalCompositeOperation but still honoring the
// active clip.
func (c *Context) ClearRect(x, y, w, h float64) {
	if !isFinite(x) || !isFinite(y) || !isFinite(w) || !isFinite(h) || w == 0 || h == 0 {
		return
	}
	if !c.state.transform.IsAxisAligned() {
		p := NewPath()
		p.Rect(x, y, w, h)
		rings := toRasterRings(c.deviceRings(p))
		raster.Fill(rings, raster.NonZero, c.surface.Height(), func(row, x0, x1 int) {
			for px := x0; px < x1; px++ {
				if c.stencilVisible(px, row) {
					c.surface.SetColor(px, row, Transparent)
				}
			}
		})
		return
	}
	p0 := c.state.transform.TransformPoint(Pt(x, y))
	p1 := c.state.transform.TransformPoint(Pt(x+w, y+h))
	x0, x1 := p0.X, p1.X
	y0, y1 := p0.Y, p1.Y
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	ix0, ix1 := int(math.Round(x0)), int(math.Round(x1))
	iy0, iy1 := int(math.Round(y0)), int(math.Round(y1))
	for py := iy0; py < iy1; py++ {
		for px := ix0; px < ix1; px++ {
			if c.stencilVisible(px, py) {
				c.surface.SetColor(px, py, Transparent)
			}
		}
	}
}

// StrokeLine strokes a single line segment using the current stroke style.
func (c *Context) StrokeLine(x0, y0, x1, y1 float64) {
	if !validXY(x0, y0) || !validXY(x1, y1) {
		return
	}
	p := NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	c.strokePath(p)
}

// roundRectPath builds a rounded-rectangle subpath with a single uniform
// corner radius, clamped to half the smaller side; per-corner radii are a
// documented non-goal here, see DESIGN.md.
func roundRectPath(x, y, w, h, radius float64) *Path {
	rx, ry := pabs(w), pabs(h)
	if w < 0 {
		x += w
	}
	if h < 0 {
		y += h
	}
	r := radius
	if maxR := math.Min(rx, ry) / 2; r > maxR {
		r = maxR
	}
	if r < 0 {
		r = 0
	}
	p := NewPath()
	p.MoveTo(x+r, y)
	p.LineTo(x+rx-r, y)
	p.Arc(x+rx-r, y+r, r, -math.Pi/2, 0, false)
	p.LineTo(x+rx, y+ry-r)
	p.Arc(x+rx-r, y+ry-r, r, 0, math.Pi/2, false)
	p.LineTo(x+r, y+ry)
	p.Arc(x+r, y+ry-r, r, math.Pi/2, math.Pi, false)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 1.5*math.Pi, false)
	p.Close()
	return p
}

// FillRoundRect fills a rounded rectangle through the general path
// pipeline. A dedicated edge-buffer fast path is not implemented; see
// DESIGN.md.
func (c *Context) FillRoundRect(x, y, w, h, radius float64) {
	if !isFinite(x) || !isFinite(y) || !isFinite(w) || !isFinite(h) || !isFinite(radius) || w == 0 || h == 0 {
		return
	}
	c.fillPath(roundRectPath(x, y, w, h, radius), FillRuleNonZero)
}

// StrokeRoundRect strokes a rounded rectangle outline.
func (c *Context) StrokeRoundRect(x, y, w, h, radius float64) {
	if !isFinite(x) || !isFinite(y) || !isFinite(w) || !isFinite(h) || !isFinite(radius) || w == 0 || h == 0 {
		return
	}
	c.strokePath(roundRectPath(x, y, w, h, radius))
}

// FillAndStrokeRoundRect fills then strokes a rounded rectangle.
func (c *Context) FillAndStrokeRoundRect(x, y, w, h, radius float64) {
	c.FillRoundRect(x, y, w, h, radius)
	c.StrokeRoundRect(x, y, w, h, radius)
}

// FillArc fills the pie slice (sector) bounded by the arc and its two
// radii.
func (c *Context) FillArc(cx, cy, r, a0, a1 float64, ccw bool) {
	if !validXY(cx, cy) || !isFinite(r) || r <= 0 {
		return
	}
	p := NewPath()
	p.MoveTo(cx, cy)
	p.Arc(cx, cy, r, a0, a1, ccw)
	p.Close()
	c.fillPath(p, FillRuleNonZero)
}

// OuterStrokeArc strokes only the arc's curve, without the two radii —
// used for ring/gauge segments.
func (c *Context) OuterStrokeArc(cx, cy, r, a0, a1 float64, ccw bool) {
	if !validXY(cx, cy) || !isFinite(r) || r <= 0 {
		return
	}
	p := NewPath()
	p.Arc(cx, cy, r, a0, a1, ccw)
	c.strokePath(p)
}

// FillAndOuterStrokeArc fills the sector then strokes just the arc.
func (c *Context) FillAndOuterStrokeArc(cx, cy, r, a0, a1 float64, ccw bool) {
	c.FillArc(cx, cy, r, a0, a1, ccw)
	c.OuterStrokeArc(cx, cy, r, a0, a1, ccw)
}

// pathflattenIdentityRings flattens a path whose coordinates are already in
// device space (e.g. a rect/arc built directly from fast-path pixel math)
// without applying any further transform.
func pathflattenIdentityRings(p *Path) []raster.Ring {
	return toRasterRings(pathflatten.Flatten(convertElements(p.Transform(Identity()).Elements())))
}
