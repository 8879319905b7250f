package canvas

import (
	"math"

	"github.com/gogpu/swcanvas/internal/blend"
	"github.com/gogpu/swcanvas/internal/clip"
	"github.com/gogpu/swcanvas/internal/pathflatten"
	"github.com/gogpu/swcanvas/internal/raster"
	"github.com/gogpu/swcanvas/internal/strokeexpand"
)

// Context is the drawing context: one Surface, one current Path (in user
// coordinates), one DrawingState plus its save/restore stack.
type Context struct {
	surface *Surface
	path    *Path
	state   *drawingState
	stack   []*drawingState
}

// ContextOption configures a Context at construction using the functional
// options idiom.
type ContextOption func(*contextOptions)

type contextOptions struct {
	surface *Surface
}

// WithSurface supplies a pre-built Surface instead of allocating a new one.
func WithSurface(s *Surface) ContextOption { return func(o *contextOptions) { o.surface = s } }

// NewSurfaceContext creates a drawing context over a freshly allocated
// width×height surface, or returns the Surface construction error
// unchanged.
func NewSurfaceContext(width, height int, opts ...ContextOption) (*Context, error) {
	var o contextOptions
	for _, opt := range opts {
		opt(&o)
	}
	surf := o.surface
	if surf == nil {
		s, err := NewSurface(width, height)
		if err != nil {
			return nil, err
		}
		surf = s
	}
	return &Context{surface: surf, path: NewPath(), state: newDrawingState()}, nil
}

func (c *Context) Surface() *Surface { return c.surface }
func (c *Context) Width() int        { return c.surface.Width() }
func (c *Context) Height() int       { return c.surface.Height() }

// --- state stack (save/restore) ---

// Save pushes a deep-copy snapshot of the current drawing state.
func (c *Context) Save() { c.stack = append(c.stack, c.state.clone()) }

// Restore pops the most recent snapshot; a call on an empty stack is a
// silent no-op.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	n := len(c.stack)
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// --- transform family ---

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func (c *Context) Transform(m Transform) {
	if !finiteTransform(m) {
		return
	}
	c.state.transform = c.state.transform.Multiply(m)
}

func (c *Context) SetTransform(m Transform) {
	if !finiteTransform(m) {
		return
	}
	c.state.transform = m
}

func (c *Context) ResetTransform()         { c.state.transform = Identity() }
func (c *Context) GetTransform() Transform { return c.state.transform }

func (c *Context) Translate(x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	c.Transform(Translate(x, y))
}

func (c *Context) Scale(sx, sy float64) {
	if !isFinite(sx) || !isFinite(sy) {
		return
	}
	c.Transform(Scale(sx, sy))
}

func (c *Context) Rotate(radians float64) {
	if !isFinite(radians) {
		return
	}
	c.Transform(Rotate(radians))
}

func finiteTransform(t Transform) bool {
	return isFinite(t.A) && isFinite(t.B) && isFinite(t.C) && isFinite(t.D) && isFinite(t.E) && isFinite(t.F)
}

// --- path builders: append a command, never rasterize ---

func (c *Context) BeginPath() { c.path.Clear() }

func (c *Context) MoveTo(x, y float64) {
	if validXY(x, y) {
		c.path.MoveTo(x, y)
	}
}

func (c *Context) LineTo(x, y float64) {
	if validXY(x, y) {
		c.path.LineTo(x, y)
	}
}

func (c *Context) QuadraticCurveTo(cx, cy, x, y float64) {
	if validXY(cx, cy) && validXY(x, y) {
		c.path.QuadraticCurveTo(cx, cy, x, y)
	}
}
func (c *Context) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	if validXY(c1x, c1y) && validXY(c2x, c2y) && validXY(x, y) {
		c.path.BezierCurveTo(c1x, c1y, c2x, c2y, x, y)
	}
}
func (c *Context) Rect(x, y, w, h float64) {
	if validXY(x, y) && isFinite(w) && isFinite(h) {
		c.path.Rect(x, y, w, h)
	}
}
func (c *Context) ClosePath() { c.path.Close() }

// Arc appends a circular arc. A negative radius fails the call, leaving the
// path unchanged.
func (c *Context) Arc(cx, cy, r, a0, a1 float64, ccw bool) bool {
	if !validXY(cx, cy) || !isFinite(r) || !isFinite(a0) || !isFinite(a1) {
		return false
	}
	return c.path.Arc(cx, cy, r, a0, a1, ccw)
}

func (c *Context) ArcTo(x1, y1, x2, y2, r float64) {
	if validXY(x1, y1) && validXY(x2, y2) && isFinite(r) {
		c.path.ArcTo(x1, y1, x2, y2, r)
	}
}

func (c *Context) Ellipse(cx, cy, rx, ry, rotation, a0, a1 float64, ccw bool) bool {
	if !validXY(cx, cy) || !isFinite(rx) || !isFinite(ry) {
		return false
	}
	return c.path.Ellipse(cx, cy, rx, ry, rotation, a0, a1, ccw)
}

func validXY(x, y float64) bool { return isFinite(x) && isFinite(y) }

// --- styles ---

func (c *Context) SetFillStyle(p PaintSource)   { c.state.fillPaint = p }
func (c *Context) SetStrokeStyle(p PaintSource) { c.state.strokePaint = p }
func (c *Context) FillStyle() PaintSource       { return c.state.fillPaint }
func (c *Context) StrokeStyle() PaintSource     { return c.state.strokePaint }

// SetLineWidth ignores non-finite or non-positive values, keeping the
// previous value: lineWidth ≤ 0 or non-finite is silently ignored.
func (c *Context) SetLineWidth(w float64) {
	if isFinite(w) && w > 0 {
		c.state.lineWidth = w
	}
}
func (c *Context) LineWidth() float64 { return c.state.lineWidth }

func (c *Context) SetLineCap(cap LineCap)    { c.state.lineCap = cap }
func (c *Context) SetLineJoin(join LineJoin) { c.state.lineJoin = join }
func (c *Context) SetMiterLimit(limit float64) {
	if isFinite(limit) && limit > 0 {
		c.state.miterLimit = limit
	}
}

// SetGlobalAlpha accepts values in [0,1]; an out-of-range or non-finite
// value is ignored, keeping the previous value.
func (c *Context) SetGlobalAlpha(a float64) {
	if isFinite(a) && a >= 0 && a <= 1 {
		c.state.globalAlpha = a
	}
}
func (c *Context) GlobalAlpha() float64 { return c.state.globalAlpha }

func (c *Context) SetGlobalCompositeOperation(op CompositeOperator) { c.state.compositeOp = op }

// SetLineDash validates and normalizes the dash pattern. A non-finite or
// negative entry rejects the call, keeping the previous pattern.
func (c *Context) SetLineDash(lengths []float64) {
	for _, v := range lengths {
		if !isFinite(v) || v < 0 {
			return
		}
	}
	c.state.lineDash = normalizeDash(lengths)
}
func (c *Context) GetLineDash() []float64 { return append([]float64(nil), c.state.lineDash...) }

func (c *Context) SetLineDashOffset(v float64) {
	if isFinite(v) {
		c.state.dashOffset = v
	}
}

func (c *Context) SetShadowColor(col Color) { c.state.shadow.Color = col }
func (c *Context) SetShadowBlur(v float64) {
	if isFinite(v) && v >= 0 {
		c.state.shadow.Blur = v
	}
}
func (c *Context) SetShadowOffsetX(v float64) {
	if isFinite(v) {
		c.state.shadow.OffsetX = v
	}
}
func (c *Context) SetShadowOffsetY(v float64) {
	if isFinite(v) {
		c.state.shadow.OffsetY = v
	}
}

// --- paint-source factories ---

func (c *Context) CreateLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return NewLinearGradient(x0, y0, x1, y1)
}
func (c *Context) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	return NewRadialGradient(x0, y0, r0, x1, y1, r1)
}
func (c *Context) CreateConicGradient(cx, cy, startAngle float64) *ConicGradient {
	return NewConicGradient(cx, cy, startAngle)
}
func (c *Context) CreatePattern(img *ImageBuffer, mode RepeatMode) *Pattern {
	return NewPattern(img, mode)
}

// --- fill / stroke / clip ---

func (c *Context) deviceRings(p *Path) []pathflatten.Ring {
	devicePath := p.Transform(c.state.transform)
	return pathflatten.Flatten(convertElements(devicePath.Elements()))
}

// Fill rasterizes the current path (or an explicit one, if non-nil) under
// rule and clears the current path afterward, following Canvas2D's
// fill()-then-implicit-clear convention.
func (c *Context) Fill(explicit *Path, rule FillRule) {
	p := c.path
	if explicit != nil {
		p = explicit
	}
	c.fillPath(p, rule)
	if explicit == nil {
		c.path.Clear()
	}
}

func (c *Context) fillPath(p *Path, rule FillRule) {
	rings := c.deviceRings(p)
	if len(rings) == 0 {
		return
	}
	c.rasterAndComposite(toRasterRings(rings), toBlendRule(rule), c.state.fillPaint)
}

// Stroke expands the current path (or an explicit one) to its stroked
// outline and fills that with nonzero winding.
func (c *Context) Stroke(explicit *Path) {
	p := c.path
	if explicit != nil {
		p = explicit
	}
	c.strokePath(p)
	if explicit == nil {
		c.path.Clear()
	}
}

func (c *Context) strokePath(p *Path) {
	rings := c.deviceRings(p)
	if len(rings) == 0 {
		return
	}
	scale := c.state.transform.ScaleFactor()
	style := strokeexpand.Style{
		Width:      c.state.lineWidth * scale,
		Cap:        toExpandCap(c.state.lineCap),
		Join:       toExpandJoin(c.state.lineJoin),
		MiterLimit: c.state.miterLimit,
		Dash:       scaleDash(c.state.lineDash, scale),
		DashOffset: c.state.dashOffset * scale,
	}
	expandRings := make([]strokeexpand.Ring, len(rings))
	for i, r := range rings {
		expandRings[i] = strokeexpand.Ring{Points: toExpandPoints(r.Points), Closed: r.Closed}
	}
	polys := strokeexpand.Expand(expandRings, style)
	if len(polys) == 0 {
		return
	}
	rasterRings := make([]raster.Ring, len(polys))
	for i, poly := range polys {
		rasterRings[i] = raster.Ring{Points: toRasterPoints(poly)}
	}
	c.rasterAndComposite(rasterRings, raster.NonZero, c.state.strokePaint)
}

func scaleDash(dash []float64, scale float64) []float64 {
	if dash == nil {
		return nil
	}
	out := make([]float64, len(dash))
	for i, v := range dash {
		out[i] = v * scale
	}
	return out
}

// Clip intersects the active stencil with the current path's coverage.
func (c *Context) Clip(explicit *Path, rule FillRule) {
	p := c.path
	if explicit != nil {
		p = explicit
	}
	rings := c.deviceRings(p)
	mask := clip.NewEmpty(c.surface.Width(), c.surface.Height())
	raster.Fill(toRasterRings(rings), toBlendRule(rule), c.surface.Height(), func(y, x0, x1 int) {
		mask.SetSpan(y, x0, x1, true)
	})
	if c.state.clip == nil {
		c.state.clip = mask
	} else {
		c.state.clip.IntersectInPlace(mask)
	}
	if explicit == nil {
		c.path.Clear()
	}
}

func (c *Context) stencilVisible(x, y int) bool {
	if c.state.clip == nil {
		return true
	}
	return c.state.clip.Test(x, y)
}

// rasterAndComposite is the shared general-pipeline tail: scan-convert,
// then route every painted pixel through paint-source sampling, the active
// clip, and the Porter-Duff compositor. Shadow synthesis runs first when
// enabled. For operators whose result depends on destination-only regions
// (blend.VisitsUncoveredDestination), the shape's bounding box is revisited
// afterward so bbox-but-outside-shape pixels (a donut's hole, a circle's
// bbox corners) are composited with a transparent source too, instead of
// keeping their old destination value.
func (c *Context) rasterAndComposite(rings []raster.Ring, rule raster.FillRule, paint PaintSource) {
	if c.state.shadow.enabled() {
		c.renderShadowPass(rings, rule)
	}
	globalAlpha := c.state.globalAlpha
	op := c.state.compositeOp
	current := c.state.transform
	solid, isSolid := AsSolid(paint)

	revisit := blend.VisitsUncoveredDestination(op.toBlend())
	var covered *clip.Stencil
	var bx0, by0, bx1, by1 int
	if revisit {
		bx0, by0, bx1, by1 = ringsBBox(rings, c.surface.Width(), c.surface.Height())
		covered = clip.NewEmpty(c.surface.Width(), c.surface.Height())
	}

	raster.Fill(rings, rule, c.surface.Height(), func(y, x0, x1 int) {
		if revisit {
			covered.SetSpan(y, x0, x1, true)
		}
		for x := x0; x < x1; x++ {
			if !c.stencilVisible(x, y) {
				continue
			}
			var col Color
			if isSolid {
				col = solid
			} else {
				col = paint.ColorAt(float64(x)+0.5, float64(y)+0.5, current)
			}
			col = col.WithAlphaMultiplied(globalAlpha)
			compositePixel(c.surface, x, y, col, op, true)
		}
	})

	if revisit {
		c.compositeUncoveredBBox(bx0, bx1, by0, by1, covered, op)
	}
}

// ringsBBox returns the integer device-pixel bounding box of rings, clamped
// to [0,width)×[0,height). Empty input yields a zero-area box.
func ringsBBox(rings []raster.Ring, width, height int) (x0, y0, x1, y1 int) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, r := range rings {
		for _, p := range r.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 0, 0
	}
	return clampBBox(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)), width, height)
}

// clampBBox clips [x0,x1)×[y0,y1) to [0,width)×[0,height).
func clampBBox(x0, y0, x1, y1, width, height int) (int, int, int, int) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > width {
		x1 = width
	}
	if y1 > height {
		y1 = height
	}
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0, x1, y1
}

// compositeUncoveredBBox revisits every pixel in [bx0,bx1)×[by0,by1) not
// marked in covered, compositing a fully transparent source through op.
func (c *Context) compositeUncoveredBBox(bx0, bx1, by0, by1 int, covered *clip.Stencil, op CompositeOperator) {
	for y := by0; y < by1; y++ {
		for x := bx0; x < bx1; x++ {
			if covered.Test(x, y) {
				continue
			}
			if !c.stencilVisible(x, y) {
				continue
			}
			compositePixel(c.surface, x, y, Transparent, op, true)
		}
	}
}

// --- conversion glue between canvas, pathflatten, strokeexpand, raster ---

func convertElements(elems []PathElement) []pathflatten.PathElement {
	out := make([]pathflatten.PathElement, 0, len(elems))
	for _, e := range elems {
		switch v := e.(type) {
		case MoveToCmd:
			out = append(out, pathflatten.MoveTo{Point: pathflatten.Point{X: v.Point.X, Y: v.Point.Y}})
		case LineToCmd:
			out = append(out, pathflatten.LineTo{Point: pathflatten.Point{X: v.Point.X, Y: v.Point.Y}})
		case QuadToCmd:
			out = append(out, pathflatten.QuadTo{
				Control: pathflatten.Point{X: v.Control.X, Y: v.Control.Y},
				Point:   pathflatten.Point{X: v.Point.X, Y: v.Point.Y},
			})
		case CubicToCmd:
			out = append(out, pathflatten.CubicTo{
				Control1: pathflatten.Point{X: v.Control1.X, Y: v.Control1.Y},
				Control2: pathflatten.Point{X: v.Control2.X, Y: v.Control2.Y},
				Point:    pathflatten.Point{X: v.Point.X, Y: v.Point.Y},
			})
		case ArcCmd:
			out = append(out, pathflatten.Arc{
				Center: pathflatten.Point{X: v.Center.X, Y: v.Center.Y}, Radius: v.Radius,
				StartA: v.StartA, EndA: v.EndA, CCW: v.CounterClockwise,
			})
		case EllipseCmd:
			out = append(out, pathflatten.Ellipse{
				Center: pathflatten.Point{X: v.Center.X, Y: v.Center.Y}, RX: v.RX, RY: v.RY, Rotation: v.Rotation,
				StartA: v.StartA, EndA: v.EndA, CCW: v.CounterClockwise,
			})
		case CloseCmd:
			out = append(out, pathflatten.Close{})
		}
	}
	return out
}

func toRasterRings(rings []pathflatten.Ring) []raster.Ring {
	out := make([]raster.Ring, len(rings))
	for i, r := range rings {
		out[i] = raster.Ring{Points: toRasterPointsFlatten(r.Points)}
	}
	return out
}

func toRasterPointsFlatten(pts []pathflatten.Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return out
}

func toRasterPoints(pts []strokeexpand.Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return out
}

func toExpandPoints(pts []pathflatten.Point) []strokeexpand.Point {
	out := make([]strokeexpand.Point, len(pts))
	for i, p := range pts {
		out[i] = strokeexpand.Point{X: p.X, Y: p.Y}
	}
	return out
}

func toBlendRule(r FillRule) raster.FillRule {
	if r == FillRuleEvenOdd {
		return raster.EvenOdd
	}
	return raster.NonZero
}

func toExpandCap(c LineCap) strokeexpand.LineCap {
	switch c {
	case LineCapRound:
		return strokeexpand.CapRound
	case LineCapSquare:
		return strokeexpand.CapSquare
	default:
		return strokeexpand.CapButt
	}
}

func toExpandJoin(j LineJoin) strokeexpand.LineJoin {
	switch j {
	case LineJoinRound:
		return strokeexpand.JoinRound
	case LineJoinBevel:
		return strokeexpand.JoinBevel
	default:
		return strokeexpand.JoinMiter
	}
}
