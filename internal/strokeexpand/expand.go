// Package strokeexpand converts a flattened device-space polyline into a
// closed fill polygon representing its stroked outline: offset-by-half-width,
// joins at interior vertices, caps at open endpoints, optional dashing by
// arc length.
package strokeexpand

import "math"

type Point struct{ X, Y float64 }

func (p Point) sub(q Point) Point    { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) add(q Point) Point    { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) mul(s float64) Point  { return Point{p.X * s, p.Y * s} }
func (p Point) length() float64      { return math.Hypot(p.X, p.Y) }
func (p Point) dot(q Point) float64  { return p.X*q.X + p.Y*q.Y }
func (p Point) normalized() Point {
	l := p.length()
	if l < 1e-12 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}
func (p Point) perp() Point { return Point{-p.Y, p.X} }

type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Style carries the stroke parameters.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       []float64 // already-normalized, even length
	DashOffset float64
}

// Ring is an input polyline: points plus whether the subpath was explicitly
// closed (affects join-vs-cap at the seam).
type Ring struct {
	Points []Point
	Closed bool
}

// Expand converts each input ring into one or more closed fill polygons
// forming its stroked outline, ready to be fed to the scan converter under
// nonzero winding.
func Expand(rings []Ring, style Style) [][]Point {
	var out [][]Point
	for _, r := range rings {
		segs := dedupe(r.Points)
		if len(segs) < 2 {
			continue
		}
		for _, sub := range applyDash(segs, r.Closed, style.Dash, style.DashOffset) {
			if len(sub.pts) < 2 {
				continue
			}
			out = append(out, expandPolyline(sub.pts, sub.closed, style))
		}
	}
	return out
}

func dedupe(pts []Point) []Point {
	if len(pts) == 0 {
		return pts
	}
	out := []Point{pts[0]}
	for _, p := range pts[1:] {
		if p.sub(out[len(out)-1]).length() > 1e-10 {
			out = append(out, p)
		}
	}
	return out
}

// expandPolyline builds the offset-outline polygon for one open or closed
// polyline: forward offsets down one side, backward offsets (reversed) back
// up the other, joined with caps at the two open ends.
func expandPolyline(pts []Point, closed bool, style Style) []Point {
	half := style.Width / 2
	n := len(pts)
	if closed && pts[0].sub(pts[n-1]).length() < 1e-10 {
		pts = pts[:n-1]
		n = len(pts)
	}

	var forward, backward []Point

	segCount := n - 1
	if closed {
		segCount = n
	}

	for i := 0; i < segCount; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		dir := b.sub(a).normalized()
		nrm := dir.perp().mul(half)

		if i > 0 || closed {
			prevIdx := i - 1
			if prevIdx < 0 {
				prevIdx = n - 1
			}
			prevA := pts[prevIdx]
			prevDir := a.sub(prevA).normalized()
			prevNrm := prevDir.perp().mul(half)
			forward = appendJoin(forward, a, prevDir, dir, prevNrm, nrm, style, true)
			backward = appendJoin(backward, a, prevDir, dir, prevNrm.mul(-1), nrm.mul(-1), style, false)
		} else {
			forward = append(forward, a.add(nrm))
			backward = append(backward, a.sub(nrm))
		}
		forward = append(forward, b.add(nrm))
		backward = append(backward, b.sub(nrm))
	}

	if closed {
		poly := make([]Point, 0, len(forward)+len(backward))
		poly = append(poly, forward...)
		for i := len(backward) - 1; i >= 0; i-- {
			poly = append(poly, backward[i])
		}
		return poly
	}

	poly := make([]Point, 0, len(forward)+len(backward)+8)
	poly = append(poly, forward...)
	last := pts[n-1]
	lastDir := pts[n-1].sub(pts[n-2]).normalized()
	poly = append(poly, capArc(last, lastDir, half, style.Cap)...)
	for i := len(backward) - 1; i >= 0; i-- {
		poly = append(poly, backward[i])
	}
	first := pts[0]
	firstDir := pts[0].sub(pts[1]).normalized()
	poly = append(poly, capArc(first, firstDir, half, style.Cap)...)
	return poly
}

// appendJoin emits the join geometry at an interior vertex for one side of
// the offset outline: miter, bevel, or round.
func appendJoin(side []Point, v, prevDir, dir, prevNrm, nrm Point, style Style, _ bool) []Point {
	p0 := v.add(prevNrm)
	p1 := v.add(nrm)
	if p0.sub(p1).length() < 1e-10 {
		return append(side, p1)
	}
	switch style.Join {
	case JoinRound:
		side = append(side, p0)
		side = append(side, arcBetween(v, p0, p1)...)
		side = append(side, p1)
	case JoinBevel:
		side = append(side, p0, p1)
	default: // JoinMiter
		m, ok := miterPoint(v, p0, prevNrm, p1, nrm, style.MiterLimit, style.Width/2)
		if ok {
			side = append(side, p0, m, p1)
		} else {
			side = append(side, p0, p1)
		}
	}
	return side
}

func miterPoint(v, p0, n0, p1, n1 Point, miterLimit, half float64) (Point, bool) {
	d0 := Point{-n0.Y, n0.X}
	d1 := Point{-n1.Y, n1.X}
	denom := d0.X*d1.Y - d0.Y*d1.X
	if math.Abs(denom) < 1e-10 {
		return Point{}, false
	}
	t := ((p1.X-p0.X)*d1.Y - (p1.Y-p0.Y)*d1.X) / denom
	m := Point{p0.X + d0.X*t, p0.Y + d0.Y*t}
	miterLen := m.sub(v).length()
	if half == 0 || miterLen/half > miterLimit {
		return Point{}, false
	}
	return m, true
}

func arcBetween(center, from, to Point) []Point {
	r := from.sub(center).length()
	if r < 1e-10 {
		return nil
	}
	a0 := math.Atan2(from.Y-center.Y, from.X-center.X)
	a1 := math.Atan2(to.Y-center.Y, to.X-center.X)
	for a1 < a0 {
		a1 += 2 * math.Pi
	}
	for a1-a0 > math.Pi {
		a1 -= 2 * math.Pi
	}
	steps := int(math.Ceil(math.Abs(a1-a0) / 0.3))
	if steps < 1 {
		steps = 1
	}
	var pts []Point
	for i := 1; i < steps; i++ {
		t := a0 + (a1-a0)*float64(i)/float64(steps)
		pts = append(pts, Point{center.X + r*math.Cos(t), center.Y + r*math.Sin(t)})
	}
	return pts
}

// capArc builds the cap geometry at an open endpoint: butt emits nothing
// extra, square extends by half along the tangent, round fans a half-disk.
func capArc(p, outwardDir Point, half float64, cap LineCap) []Point {
	n := outwardDir.perp().mul(half)
	switch cap {
	case CapSquare:
		ext := outwardDir.mul(half)
		return []Point{p.add(n).add(ext), p.sub(n).add(ext)}
	case CapRound:
		var pts []Point
		// Sweep from +n through outwardDir to -n (n is outwardDir rotated
		// by +90°), so the half-disk lies beyond the endpoint.
		a0 := math.Atan2(n.Y, n.X)
		a1 := a0 - math.Pi
		steps := int(math.Ceil(math.Pi / 0.3))
		for i := 0; i <= steps; i++ {
			t := a0 + (a1-a0)*float64(i)/float64(steps)
			pts = append(pts, Point{p.X + half*math.Cos(t), p.Y + half*math.Sin(t)})
		}
		return pts
	default: // CapButt
		return nil
	}
}

type dashedSub struct {
	pts    []Point
	closed bool
}

// applyDash walks the polyline's arc length under the dash pattern starting
// at dashOffset, splitting it into "on" sub-polylines. An empty pattern
// returns the input unchanged (solid stroke).
func applyDash(pts []Point, closed bool, dash []float64, offset float64) []dashedSub {
	if len(dash) == 0 {
		return []dashedSub{{pts: pts, closed: closed}}
	}
	total := 0.0
	for _, d := range dash {
		total += d
	}
	if total <= 0 {
		return []dashedSub{{pts: pts, closed: closed}}
	}

	pos := math.Mod(offset, total)
	if pos < 0 {
		pos += total
	}
	idx := 0
	for pos >= dash[idx] {
		pos -= dash[idx]
		idx = (idx + 1) % len(dash)
	}
	on := idx%2 == 0
	remaining := dash[idx] - pos

	var subs []dashedSub
	var cur []Point
	if on {
		cur = append(cur, pts[0])
	}

	emit := func() {
		if len(cur) >= 2 {
			subs = append(subs, dashedSub{pts: cur})
		}
		cur = nil
	}

	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		segLen := b.sub(a).length()
		segPos := 0.0
		for segPos < segLen {
			step := math.Min(remaining, segLen-segPos)
			segPos += step
			remaining -= step
			p := a.add(b.sub(a).mul(segPos / segLen))
			if on {
				cur = append(cur, p)
			}
			if remaining <= 1e-12 {
				if on {
					emit()
				} else {
					cur = append(cur, p)
				}
				on = !on
				idx = (idx + 1) % len(dash)
				remaining = dash[idx]
			}
		}
	}
	if on {
		emit()
	}
	return subs
}
