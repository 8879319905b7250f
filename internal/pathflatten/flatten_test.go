package pathflatten

import (
	"math"
	"testing"
)

func TestFlattenStraightLineKeepsEndpoints(t *testing.T) {
	elems := []PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
		LineTo{Point{10, 10}},
	}
	rings := Flatten(elems)
	if len(rings) != 1 {
		t.Fatalf("expected 1 ring, got %d", len(rings))
	}
	pts := rings[0].Points
	if pts[0] != (Point{0, 0}) || pts[len(pts)-1] != (Point{10, 10}) {
		t.Errorf("endpoints not preserved: %v", pts)
	}
}

func TestFlattenQuadSubdividesCurve(t *testing.T) {
	elems := []PathElement{
		MoveTo{Point{0, 0}},
		QuadTo{Control: Point{50, 100}, Point: Point{100, 0}},
	}
	rings := Flatten(elems)
	pts := rings[0].Points
	for i := 1; i < len(pts)-1; i++ {
		d := distToLine(pts[i], pts[0], pts[len(pts)-1])
		if d > 60 { // sanity bound, not a tight tolerance check
			t.Errorf("point %d too far from chord: %v", i, d)
		}
	}
	if len(pts) < 3 {
		t.Error("a curved quad should subdivide into more than 2 points")
	}
}

func TestFlattenClosedVsImplicitClose(t *testing.T) {
	withClose := Flatten([]PathElement{
		MoveTo{Point{0, 0}}, LineTo{Point{5, 0}}, LineTo{Point{5, 5}}, Close{},
	})
	withoutClose := Flatten([]PathElement{
		MoveTo{Point{0, 0}}, LineTo{Point{5, 0}}, LineTo{Point{5, 5}},
	})
	if !withClose[0].Closed {
		t.Error("explicit Close should set Closed=true")
	}
	if withoutClose[0].Closed {
		t.Error("an open subpath should not report Closed")
	}
}

func TestFlattenMultipleMoveTosProduceMultipleRings(t *testing.T) {
	elems := []PathElement{
		MoveTo{Point{0, 0}}, LineTo{Point{1, 0}},
		MoveTo{Point{5, 5}}, LineTo{Point{6, 5}},
	}
	rings := Flatten(elems)
	if len(rings) != 2 {
		t.Fatalf("expected 2 rings, got %d", len(rings))
	}
}

func TestSampleArcFullCircleStepCount(t *testing.T) {
	pts := sampleArc(Point{0, 0}, 100, 100, 0, 0, 2*math.Pi, false)
	if len(pts) < MinArcSteps+1 {
		t.Errorf("expected at least %d points for a large circle, got %d", MinArcSteps+1, len(pts))
	}
	// start and end should coincide for a full sweep
	first, last := pts[0], pts[len(pts)-1]
	if math.Hypot(first.X-last.X, first.Y-last.Y) > 1e-6 {
		t.Errorf("full sweep should close: %v vs %v", first, last)
	}
}

func TestSampleArcMinStepsForTinyRadius(t *testing.T) {
	pts := sampleArc(Point{0, 0}, 0.01, 0.01, 0, 0, math.Pi/2, false)
	if len(pts) < MinArcSteps+1 {
		t.Errorf("tiny arcs should still get MinArcSteps segments, got %d points", len(pts))
	}
}
