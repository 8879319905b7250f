package canvas

// PathElement is one command in a Path. The sum type is modeled via an
// unexported marker method.
type PathElement interface {
	isPathElement()
}

type MoveToCmd struct{ Point Point }
type LineToCmd struct{ Point Point }
type QuadToCmd struct{ Control, Point Point }
type CubicToCmd struct{ Control1, Control2, Point Point }

// ArcCmd is a circular arc command carrying explicit direction, sampled by
// arc length at flatten time rather than pre-approximated to cubics at
// path-build time.
type ArcCmd struct {
	Center           Point
	Radius           float64
	StartA, EndA     float64
	CounterClockwise bool
}

// EllipseCmd generalizes ArcCmd with independent radii and a rotation.
type EllipseCmd struct {
	Center           Point
	RX, RY           float64
	Rotation         float64
	StartA, EndA     float64
	CounterClockwise bool
}

// RectCmd expands to 4 lines + close when Path.Transform materializes the
// path in device space, before flattening.
type RectCmd struct{ X, Y, W, H float64 }

type CloseCmd struct{}

func (MoveToCmd) isPathElement()  {}
func (LineToCmd) isPathElement()  {}
func (QuadToCmd) isPathElement()  {}
func (CubicToCmd) isPathElement() {}
func (ArcCmd) isPathElement()     {}
func (EllipseCmd) isPathElement() {}
func (RectCmd) isPathElement()    {}
func (CloseCmd) isPathElement()   {}

// Path is an append-only ordered sequence of primitive commands in user
// coordinates. Device coordinates are derived at rasterization time by
// the flattener, not stored here.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
	hasPoint bool
}

func NewPath() *Path { return &Path{} }

func (p *Path) Elements() []PathElement { return p.elements }

func (p *Path) HasCurrentPoint() bool { return p.hasPoint }

func (p *Path) CurrentPoint() Point { return p.current }

func (p *Path) Clear() {
	p.elements = nil
	p.hasPoint = false
}

func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveToCmd{Point: pt})
	p.start, p.current, p.hasPoint = pt, pt, true
}

func (p *Path) LineTo(x, y float64) {
	if !p.hasPoint {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineToCmd{Point: pt})
	p.current = pt
}

func (p *Path) QuadraticCurveTo(cx, cy, x, y float64) {
	if !p.hasPoint {
		p.MoveTo(cx, cy)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadToCmd{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

func (p *Path) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.hasPoint {
		p.MoveTo(c1x, c1y)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicToCmd{Control1: Pt(c1x, c1y), Control2: Pt(c2x, c2y), Point: pt})
	p.current = pt
}

// Arc appends a circular arc command. Negative radius is an
// argument-domain error: the call is rejected and the path unchanged.
func (p *Path) Arc(cx, cy, r, startAngle, endAngle float64, ccw bool) bool {
	if r < 0 {
		return false
	}
	p.elements = append(p.elements, ArcCmd{Center: Pt(cx, cy), Radius: r, StartA: startAngle, EndA: endAngle, CounterClockwise: ccw})
	p.current = Pt(cx+r*cosOf(endAngle), cy+r*sinOf(endAngle))
	p.hasPoint = true
	return true
}

// ArcTo approximates the two-tangent-line arc construction used by Canvas2D
// arcTo(x1,y1,x2,y2,r) by reducing to a circular Arc between the tangent
// points, matching the common Canvas2D-binding idiom.
func (p *Path) ArcTo(x1, y1, x2, y2, r float64) {
	if !p.hasPoint || r <= 0 {
		p.LineTo(x1, y1)
		return
	}
	p0 := p.current
	p1 := Pt(x1, y1)
	p2 := Pt(x2, y2)
	v1 := Point{p0.X - p1.X, p0.Y - p1.Y}
	v2 := Point{p2.X - p1.X, p2.Y - p1.Y}
	len1 := v1.Length()
	len2 := v2.Length()
	if len1 < 1e-10 || len2 < 1e-10 {
		p.LineTo(x1, y1)
		return
	}
	u1 := v1.Mul(1 / len1)
	u2 := v2.Mul(1 / len2)
	cosTheta := clampUnit(u1.Dot(u2))
	theta := acosOf(cosTheta)
	if theta < 1e-10 || theta > piMinusEps {
		p.LineTo(x1, y1)
		return
	}
	dist := r / tanOf(theta/2)
	t1 := p1.Add(u1.Mul(dist))
	t2 := p1.Add(u2.Mul(dist))
	cross := u1.X*u2.Y - u1.Y*u2.X
	bisector := Point{u1.X + u2.X, u1.Y + u2.Y}
	blen := bisector.Length()
	var center Point
	if blen < 1e-10 {
		center = p1.Add(Point{-u1.Y, u1.X}.Mul(r))
	} else {
		bisector = bisector.Mul(1 / blen)
		centerDist := r / sinOf(theta/2)
		center = p1.Add(bisector.Mul(centerDist))
	}
	a0 := atan2Of(t1.Y-center.Y, t1.X-center.X)
	a1 := atan2Of(t2.Y-center.Y, t2.X-center.X)
	p.LineTo(t1.X, t1.Y)
	p.Arc(center.X, center.Y, r, a0, a1, cross > 0)
}

// Ellipse appends an elliptical arc command.
func (p *Path) Ellipse(cx, cy, rx, ry, rotation, startAngle, endAngle float64, ccw bool) bool {
	if rx < 0 || ry < 0 {
		return false
	}
	p.elements = append(p.elements, EllipseCmd{Center: Pt(cx, cy), RX: rx, RY: ry, Rotation: rotation, StartA: startAngle, EndA: endAngle, CounterClockwise: ccw})
	cr, sr := cosOf(rotation), sinOf(rotation)
	ex, ey := rx*cosOf(endAngle), ry*sinOf(endAngle)
	p.current = Pt(cx+ex*cr-ey*sr, cy+ex*sr+ey*cr)
	p.hasPoint = true
	return true
}

// Rect appends an axis-aligned rectangle subpath: 4 lines + close.
func (p *Path) Rect(x, y, w, h float64) {
	p.elements = append(p.elements, RectCmd{X: x, Y: y, W: w, H: h})
}

func (p *Path) Close() {
	if len(p.elements) == 0 {
		return
	}
	p.elements = append(p.elements, CloseCmd{})
	p.current = p.start
}

// Clone returns a deep copy of the path (element slice is copied).
func (p *Path) Clone() *Path {
	cp := &Path{start: p.start, current: p.current, hasPoint: p.hasPoint}
	cp.elements = append([]PathElement(nil), p.elements...)
	return cp
}

// Transform returns a new Path with every control point passed through t.
// Used by the context to materialize the current path into device space
// before handing it to the flattener.
func (p *Path) Transform(t Transform) *Path {
	cp := &Path{start: t.TransformPoint(p.start), current: t.TransformPoint(p.current), hasPoint: p.hasPoint}
	for _, e := range p.elements {
		switch v := e.(type) {
		case MoveToCmd:
			cp.elements = append(cp.elements, MoveToCmd{Point: t.TransformPoint(v.Point)})
		case LineToCmd:
			cp.elements = append(cp.elements, LineToCmd{Point: t.TransformPoint(v.Point)})
		case QuadToCmd:
			cp.elements = append(cp.elements, QuadToCmd{Control: t.TransformPoint(v.Control), Point: t.TransformPoint(v.Point)})
		case CubicToCmd:
			cp.elements = append(cp.elements, CubicToCmd{
				Control1: t.TransformPoint(v.Control1), Control2: t.TransformPoint(v.Control2), Point: t.TransformPoint(v.Point),
			})
		case ArcCmd:
			cp.elements = append(cp.elements, transformArc(v, t))
		case EllipseCmd:
			cp.elements = append(cp.elements, transformEllipse(v, t))
		case RectCmd:
			cp.elements = append(cp.elements, rectToLines(v, t)...)
		case CloseCmd:
			cp.elements = append(cp.elements, v)
		}
	}
	return cp
}

// rectToLines expands a RectCmd into transformed Move/Line/Close commands,
// applied here (rather than at path-build time) so Rect keeps its exact
// user-space shape until device materialization.
func rectToLines(r RectCmd, t Transform) []PathElement {
	p0 := t.TransformPoint(Pt(r.X, r.Y))
	p1 := t.TransformPoint(Pt(r.X+r.W, r.Y))
	p2 := t.TransformPoint(Pt(r.X+r.W, r.Y+r.H))
	p3 := t.TransformPoint(Pt(r.X, r.Y+r.H))
	return []PathElement{
		MoveToCmd{Point: p0},
		LineToCmd{Point: p1},
		LineToCmd{Point: p2},
		LineToCmd{Point: p3},
		CloseCmd{},
	}
}

// transformArc re-expresses an Arc under a general affine transform. When
// the transform is a uniform similarity (no shear, equal scale on both
// axes), the arc stays circular and is re-centered/re-scaled directly;
// otherwise it degrades to an EllipseCmd which the flattener samples with
// the transform's full affine action baked in via EllipseCmd's own
// rotation+radii decomposition.
func transformArc(a ArcCmd, t Transform) PathElement {
	sx := Point{t.A, t.B}.Length()
	sy := Point{t.C, t.D}.Length()
	center := t.TransformPoint(a.Center)
	if nearlyEqual(sx, sy) && isConformal(t) {
		rot := atan2Of(t.B, t.A)
		return EllipseCmd{
			Center: center, RX: a.Radius * sx, RY: a.Radius * sx, Rotation: rot,
			StartA: a.StartA, EndA: a.EndA, CounterClockwise: a.CounterClockwise,
		}
	}
	rot := atan2Of(t.B, t.A)
	return EllipseCmd{
		Center: center, RX: a.Radius * sx, RY: a.Radius * sy, Rotation: rot,
		StartA: a.StartA, EndA: a.EndA, CounterClockwise: a.CounterClockwise,
	}
}

func transformEllipse(e EllipseCmd, t Transform) PathElement {
	local := Transform{A: 1, D: 1}.Multiply(Scale(e.RX, e.RY)).Multiply(Rotate(e.Rotation)).Multiply(Translate(e.Center.X, e.Center.Y)).Multiply(t)
	// Decompose local into rotation+scale assuming no shear was introduced;
	// since e.RX/RY already fold scale, recover an equivalent rotation and
	// radii from local's linear part for the flattener's sampling use.
	sx := Point{local.A, local.B}.Length()
	sy := Point{local.C, local.D}.Length()
	rot := atan2Of(local.B, local.A)
	return EllipseCmd{
		Center: Pt(local.E, local.F), RX: sx, RY: sy, Rotation: rot,
		StartA: e.StartA, EndA: e.EndA, CounterClockwise: e.CounterClockwise,
	}
}

func isConformal(t Transform) bool {
	const eps = 1e-9
	return pabs(t.A*t.C+t.B*t.D) < eps
}

func nearlyEqual(a, b float64) bool { return pabs(a-b) < 1e-9 }

func pabs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
