package strokeexpand

import "testing"

func bbox(pts []Point) (minX, minY, maxX, maxY float64) {
	minX, minY = pts[0].X, pts[0].Y
	maxX, maxY = pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}

func TestExpandStraightLineProducesRectangle(t *testing.T) {
	rings := []Ring{{Points: []Point{{0, 0}, {10, 0}}}}
	style := Style{Width: 4, Cap: CapButt, Join: JoinMiter, MiterLimit: 10}
	polys := Expand(rings, style)
	if len(polys) != 1 {
		t.Fatalf("expected 1 outline polygon, got %d", len(polys))
	}
	minX, minY, maxX, maxY := bbox(polys[0])
	if minX != 0 || maxX != 10 || minY != -2 || maxY != 2 {
		t.Errorf("bbox = [%v %v %v %v], want [0 -2 10 2]", minX, minY, maxX, maxY)
	}
}

func TestExpandSquareCapExtendsBeyondEndpoint(t *testing.T) {
	rings := []Ring{{Points: []Point{{0, 0}, {10, 0}}}}
	butt := Expand(rings, Style{Width: 4, Cap: CapButt, Join: JoinMiter, MiterLimit: 10})
	square := Expand(rings, Style{Width: 4, Cap: CapSquare, Join: JoinMiter, MiterLimit: 10})
	_, _, maxXButt, _ := bbox(butt[0])
	_, _, maxXSquare, _ := bbox(square[0])
	if maxXSquare <= maxXButt {
		t.Errorf("square cap maxX %v should exceed butt cap maxX %v", maxXSquare, maxXButt)
	}
}

func TestMiterPointFallsBackToBevelAtLowLimit(t *testing.T) {
	// A sharp near-reversal turn with a tiny miter limit should not blow up
	// into a huge spike; miterPoint should report ok=false and the caller
	// falls back to a bevel.
	v := Point{0, 0}
	n0 := Point{0, 1}
	n1 := Point{0.01, -1}
	p0 := v.add(n0)
	p1 := v.add(n1)
	_, ok := miterPoint(v, p0, n0, p1, n1, 1.0, 1.0)
	if ok {
		t.Error("a near-180-degree turn should exceed a miter limit of 1.0")
	}
}

func TestMiterPointAcceptsShallowTurn(t *testing.T) {
	v := Point{0, 0}
	n0 := Point{0, 1}
	n1 := Point{0.05, 0.999}
	p0 := v.add(n0)
	p1 := v.add(n1)
	_, ok := miterPoint(v, p0, n0, p1, n1, 10.0, 1.0)
	if !ok {
		t.Error("a shallow turn should stay within a generous miter limit")
	}
}

func TestApplyDashSolidWhenEmptyPattern(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}}
	subs := applyDash(pts, false, nil, 0)
	if len(subs) != 1 || len(subs[0].pts) != 2 {
		t.Fatalf("empty dash pattern should pass the polyline through unchanged, got %+v", subs)
	}
}

func TestApplyDashSplitsIntoOnSegments(t *testing.T) {
	pts := []Point{{0, 0}, {20, 0}}
	subs := applyDash(pts, false, []float64{5, 5}, 0)
	if len(subs) != 2 {
		t.Fatalf("a 20-unit line with a 5-on/5-off dash should split into 2 on-segments, got %d", len(subs))
	}
	for _, s := range subs {
		if len(s.pts) < 2 {
			t.Errorf("on-segment too short: %+v", s.pts)
		}
	}
}

func TestDedupeRemovesCoincidentPoints(t *testing.T) {
	pts := []Point{{0, 0}, {0, 0}, {1, 0}, {1, 0}, {1, 0}}
	out := dedupe(pts)
	if len(out) != 2 {
		t.Fatalf("expected 2 distinct points after dedupe, got %d: %v", len(out), out)
	}
}

func TestExpandClosedRingProducesSingleClosedPolygon(t *testing.T) {
	rings := []Ring{{
		Points: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		Closed: true,
	}}
	style := Style{Width: 2, Join: JoinBevel, MiterLimit: 4}
	polys := Expand(rings, style)
	if len(polys) != 1 {
		t.Fatalf("expected 1 outline polygon for a closed square, got %d", len(polys))
	}
	if len(polys[0]) < 4 {
		t.Errorf("closed square outline should have at least 4 points, got %d", len(polys[0]))
	}
}

func TestExpandDegenerateRingIsSkipped(t *testing.T) {
	rings := []Ring{{Points: []Point{{5, 5}}}}
	polys := Expand(rings, Style{Width: 2, Join: JoinMiter, MiterLimit: 4})
	if len(polys) != 0 {
		t.Errorf("a single-point ring has no direction and should produce no outline, got %d", len(polys))
	}
}
