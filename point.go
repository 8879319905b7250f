package canvas

import "math"

// Point is an immutable 2D coordinate.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point    { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point    { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(s float64) Point  { return Point{p.X * s, p.Y * s} }
func (p Point) Dot(q Point) float64  { return p.X*q.X + p.Y*q.Y }
func (p Point) Length() float64      { return math.Hypot(p.X, p.Y) }
func (p Point) Distance(q Point) float64 { return p.Sub(q).Length() }
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Rectangle is an immutable axis-aligned rectangle with non-negative extents.
// X,Y is the top-left corner. Rect makes W,H non-negative at construction:
// a negative extent moves X (or Y) by that extent and flips its sign.
type Rectangle struct {
	X, Y, W, H float64
}

func Rect(x, y, w, h float64) Rectangle {
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	return Rectangle{X: x, Y: y, W: w, H: h}
}

func (r Rectangle) Empty() bool { return r.W <= 0 || r.H <= 0 }
func (r Rectangle) Right() float64 { return r.X + r.W }
func (r Rectangle) Bottom() float64 { return r.Y + r.H }

func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersect returns the overlap of r and o. The result is the empty
// Rectangle (zero value) when they do not overlap.
func (r Rectangle) Intersect(o Rectangle) Rectangle {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.Right(), o.Right())
	y1 := math.Min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rectangle{}
	}
	return Rectangle{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rectangle) Union(o Rectangle) Rectangle {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0 := math.Min(r.X, o.X)
	y0 := math.Min(r.Y, o.Y)
	x1 := math.Max(r.Right(), o.Right())
	y1 := math.Max(r.Bottom(), o.Bottom())
	return Rectangle{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// BoundingBox returns the smallest Rectangle containing every point in pts.
// Returns the empty Rectangle for an empty point set.
func BoundingBox(pts []Point) Rectangle {
	if len(pts) == 0 {
		return Rectangle{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rectangle{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
