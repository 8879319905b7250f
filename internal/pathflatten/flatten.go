// Package pathflatten converts device-space path commands into closed or
// open rings of straight-line points for the scan converter and stroke
// expander. Local Point/PathElement types avoid an import cycle with the
// root package.
package pathflatten

import "math"

// Tolerance is the maximum perpendicular chord distance (device pixels)
// allowed before a curve segment is subdivided further: τ ≤ 0.25px at 1x
// device scale.
const Tolerance = 0.25

// MaxDepth bounds adaptive subdivision recursion.
const MaxDepth = 20

// MinArcSteps is the minimum number of segments used to sample any arc,
// regardless of radius: max(⌈r·|a1-a0|·k⌉, N_min).
const MinArcSteps = 4

// arcStepK controls segment length: a step subtends roughly 1/k radians
// per unit radius, i.e. ~1px of tangential travel at the given radius.
const arcStepK = 1.0

type Point struct{ X, Y float64 }

func (p Point) lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}
func (p Point) sub(q Point) Point   { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) add(q Point) Point   { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) mul(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) length() float64     { return math.Hypot(p.X, p.Y) }
func (p Point) dist(q Point) float64 { return p.sub(q).length() }

// PathElement is the local sum type flattened input elements implement.
type PathElement interface{ isPathElement() }

type MoveTo struct{ Point Point }
type LineTo struct{ Point Point }
type QuadTo struct{ Control, Point Point }
type CubicTo struct{ Control1, Control2, Point Point }

// Arc is a circular arc in device space (already uniform-scaled).
type Arc struct {
	Center       Point
	Radius       float64
	StartA, EndA float64
	CCW          bool
}

// Ellipse is a rotated elliptical arc in device space.
type Ellipse struct {
	Center       Point
	RX, RY       float64
	Rotation     float64
	StartA, EndA float64
	CCW          bool
}

type Close struct{}

func (MoveTo) isPathElement()  {}
func (LineTo) isPathElement()  {}
func (QuadTo) isPathElement()  {}
func (CubicTo) isPathElement() {}
func (Arc) isPathElement()     {}
func (Ellipse) isPathElement() {}
func (Close) isPathElement()   {}

// Ring is one flattened subpath: a sequence of device-space points, and
// whether the original subpath was explicitly closed.
type Ring struct {
	Points []Point
	Closed bool
}

// Flatten converts device-space path elements into rings ready for the
// scan converter. Open sub-paths fill as if implicitly closed (a virtual
// line back to the starting MoveTo) but the Closed flag distinguishes this
// from an explicit ClosePath, since stroking treats the two differently:
// fill as if implicitly closed, but stroke as open.
func Flatten(elements []PathElement) []Ring {
	var rings []Ring
	var cur []Point
	var start, current Point
	haveStart := false
	explicitClose := false

	flush := func() {
		if len(cur) > 0 {
			rings = append(rings, Ring{Points: cur, Closed: explicitClose})
		}
		cur = nil
		explicitClose = false
	}

	for _, e := range elements {
		switch v := e.(type) {
		case MoveTo:
			flush()
			start, current = v.Point, v.Point
			haveStart = true
			cur = append(cur, v.Point)
		case LineTo:
			if !haveStart {
				start, current, haveStart = v.Point, v.Point, true
				cur = append(cur, v.Point)
				continue
			}
			current = v.Point
			cur = append(cur, current)
		case QuadTo:
			pts := flattenQuad(current, v.Control, v.Point, 0)
			cur = append(cur, pts...)
			current = v.Point
		case CubicTo:
			pts := flattenCubic(current, v.Control1, v.Control2, v.Point, 0)
			cur = append(cur, pts...)
			current = v.Point
		case Arc:
			pts := sampleArc(v.Center, v.Radius, v.Radius, 0, v.StartA, v.EndA, v.CCW)
			if len(cur) == 0 || cur[len(cur)-1] != pts[0] {
				cur = append(cur, pts[0])
			}
			cur = append(cur, pts[1:]...)
			current = pts[len(pts)-1]
			if !haveStart {
				start, haveStart = pts[0], true
			}
		case Ellipse:
			pts := sampleArc(v.Center, v.RX, v.RY, v.Rotation, v.StartA, v.EndA, v.CCW)
			if len(cur) == 0 || cur[len(cur)-1] != pts[0] {
				cur = append(cur, pts[0])
			}
			cur = append(cur, pts[1:]...)
			current = pts[len(pts)-1]
			if !haveStart {
				start, haveStart = pts[0], true
			}
		case Close:
			if len(cur) > 0 && current != start {
				cur = append(cur, start)
			}
			current = start
			explicitClose = true
		}
	}
	flush()
	return rings
}

func flattenQuad(p0, p1, p2 Point, depth int) []Point {
	var out []Point
	subdivQuad(p0, p1, p2, depth, &out)
	return out
}

func subdivQuad(p0, p1, p2 Point, depth int, out *[]Point) {
	if depth >= MaxDepth || distToLine(p1, p0, p2) < Tolerance {
		*out = append(*out, p2)
		return
	}
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	mid := q0.lerp(q1, 0.5)
	subdivQuad(p0, q0, mid, depth+1, out)
	subdivQuad(mid, q1, p2, depth+1, out)
}

func flattenCubic(p0, p1, p2, p3 Point, depth int) []Point {
	var out []Point
	subdivCubic(p0, p1, p2, p3, depth, &out)
	return out
}

func subdivCubic(p0, p1, p2, p3 Point, depth int, out *[]Point) {
	d1 := distToLine(p1, p0, p3)
	d2 := distToLine(p2, p0, p3)
	if depth >= MaxDepth || math.Max(d1, d2) < Tolerance {
		*out = append(*out, p3)
		return
	}
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	mid := r0.lerp(r1, 0.5)
	subdivCubic(p0, q0, r0, mid, depth+1, out)
	subdivCubic(mid, r1, q2, p3, depth+1, out)
}

func distToLine(p, a, b Point) float64 {
	ab := b.sub(a)
	abLen := ab.length()
	if abLen < 1e-10 {
		return p.dist(a)
	}
	t := p.sub(a).dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.dist(a)
	}
	if t > 1 {
		return p.dist(b)
	}
	return p.dist(a.add(ab.mul(t)))
}

// sampleArc samples a (possibly rotated, possibly elliptical) arc by arc
// length: step count = max(⌈r·|a1-a0|·k⌉, N_min).
func sampleArc(center Point, rx, ry, rotation, a0, a1 float64, ccw bool) []Point {
	sweep := a1 - a0
	if ccw {
		for sweep > 0 {
			sweep -= 2 * math.Pi
		}
	} else {
		for sweep < 0 {
			sweep += 2 * math.Pi
		}
	}
	r := math.Max(rx, ry)
	steps := int(math.Ceil(r * math.Abs(sweep) * arcStepK))
	if steps < MinArcSteps {
		steps = MinArcSteps
	}
	cr, sr := math.Cos(rotation), math.Sin(rotation)
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := a0 + sweep*float64(i)/float64(steps)
		ex, ey := rx*math.Cos(t), ry*math.Sin(t)
		x := center.X + ex*cr - ey*sr
		y := center.Y + ex*sr + ey*cr
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts
}
