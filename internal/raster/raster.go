// Package raster implements the polygon scan converter: active-edge-table
// scanline fill under nonzero/evenodd winding rules, emitting horizontal
// spans for the caller to composite.
package raster

import (
	"math"
	"sort"

	"golang.org/x/image/math/fixed"
)

// FillRule selects the winding rule used to decide "inside".
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Point is a device-space vertex.
type Point struct{ X, Y float64 }

// edgeTolerance collapses near-horizontal edges.
const edgeTolerance = 1e-10

type edge struct {
	x0, y0, x1, y1 float64
	dir            int // +1 if original edge went downward (y0<y1 before swap), -1 otherwise
}

func newEdge(p0, p1 Point) (edge, bool) {
	if math.Abs(p1.Y-p0.Y) < edgeTolerance {
		return edge{}, false
	}
	dir := 1
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
		dir = -1
	}
	return edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dir: dir}, true
}

func (e edge) xAtY(y float64) float64 {
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// Ring is one closed polygon contributed to the fill; rings need not be
// individually closed in the slice (the scan converter treats the point
// list as an implicit ring, connecting the last point back to the first).
type Ring struct {
	Points []Point
}

// SpanFunc receives one half-open painted span per call: row y, columns
// [x0, x1). Rows are clamped to [0, height); columns are not clamped, so a
// span may start before 0 or extend past the surface's right edge.
type SpanFunc func(y, x0, x1 int)

// Fill scan-converts rings into spans using the given winding rule and
// surface height, invoking emit for every painted span.
func Fill(rings []Ring, rule FillRule, height int, emit SpanFunc) {
	var edges []edge
	minY, maxY := math.Inf(1), math.Inf(-1)

	for _, r := range rings {
		pts := r.Points
		n := len(pts)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := pts[i]
			p1 := pts[(i+1)%n]
			if e, ok := newEdge(p0, p1); ok {
				edges = append(edges, e)
				minY = math.Min(minY, e.y0)
				maxY = math.Max(maxY, e.y1)
			}
		}
	}
	if len(edges) == 0 {
		return
	}

	y0 := int(math.Floor(minY))
	y1 := int(math.Ceil(maxY))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > height {
		y1 = height
	}

	for y := y0; y < y1; y++ {
		scanline(edges, y, rule, emit)
	}
}

type xing struct {
	x   float64
	dir int
}

func scanline(edges []edge, y int, rule FillRule, emit SpanFunc) {
	scanY := float64(y) + 0.5
	var hits []xing
	for _, e := range edges {
		// Half-open convention: an edge owns its lower (y0) endpoint, not
		// its upper (y1) one, so a shared vertex is not double-counted.
		if scanY >= e.y0 && scanY < e.y1 {
			hits = append(hits, xing{x: e.xAtY(scanY), dir: e.dir})
		}
	}
	if len(hits) == 0 {
		return
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].x < hits[j].x })

	switch rule {
	case NonZero:
		winding := 0
		spanStart := 0.0
		inside := false
		for _, h := range hits {
			winding += h.dir
			nowInside := winding != 0
			if !inside && nowInside {
				spanStart = h.x
				inside = true
			} else if inside && !nowInside {
				emitSpan(y, spanStart, h.x, emit)
				inside = false
			}
		}
	case EvenOdd:
		for i := 0; i+1 < len(hits); i += 2 {
			emitSpan(y, hits[i].x, hits[i+1].x, emit)
		}
	}
}

// toFixed26_6 snaps a device-space coordinate to the 26.6 fixed-point grid
// freetype-style rasterizers use, avoiding float rounding drift at the
// span boundary.
func toFixed26_6(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// emitSpan paints pixel columns [ceil(x0), floor(x1)] inclusive, expressed
// as a half-open [ix0, ix1) range for the caller.
func emitSpan(y int, x0, x1 float64, emit SpanFunc) {
	ix0 := toFixed26_6(x0).Ceil()
	ix1 := toFixed26_6(x1).Floor() + 1
	if ix1 <= ix0 {
		return
	}
	emit(y, ix0, ix1)
}
