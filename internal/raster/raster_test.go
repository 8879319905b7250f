package raster

import "testing"

func square(x0, y0, x1, y1 float64) Ring {
	return Ring{Points: []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}}
}

func collectSpans(rings []Ring, rule FillRule, height int) map[int][2]int {
	spans := map[int][2]int{}
	Fill(rings, rule, height, func(y, x0, x1 int) {
		spans[y] = [2]int{x0, x1}
	})
	return spans
}

func TestFillSquareNonZero(t *testing.T) {
	rings := []Ring{square(2, 2, 8, 8)}
	spans := collectSpans(rings, NonZero, 10)
	if len(spans) != 6 {
		t.Fatalf("expected 6 rows painted, got %d", len(spans))
	}
	// Columns ceil(2)..floor(8) inclusive, i.e. the half-open range [2, 9).
	if spans[2] != [2]int{2, 9} {
		t.Errorf("row 2 span = %v, want [2 9]", spans[2])
	}
}

func TestFillEvenOddHole(t *testing.T) {
	outer := square(0, 0, 10, 10)
	inner := Ring{Points: []Point{{3, 3}, {7, 3}, {7, 7}, {3, 7}}}
	spans := collectSpans([]Ring{outer, inner}, EvenOdd, 10)
	row5 := spans[5]
	// The hole should split row 5 into two spans; collectSpans only keeps
	// the last emitted span per row, so check indirectly via a counting
	// callback instead.
	count := 0
	Fill([]Ring{outer, inner}, EvenOdd, 10, func(y, x0, x1 int) {
		if y == 5 {
			count++
		}
	})
	if count != 2 {
		t.Errorf("row 5 should be split into 2 spans by the hole, got %d (last span %v)", count, row5)
	}
}

func TestFillNoEdgesEmitsNothing(t *testing.T) {
	rings := []Ring{{Points: []Point{{1, 1}}}}
	called := false
	Fill(rings, NonZero, 10, func(y, x0, x1 int) { called = true })
	if called {
		t.Error("a degenerate single-point ring should emit no spans")
	}
}

func TestFillClampsToHeight(t *testing.T) {
	rings := []Ring{square(-5, -5, 5, 5)}
	maxY := -1
	Fill(rings, NonZero, 3, func(y, x0, x1 int) {
		if y > maxY {
			maxY = y
		}
	})
	if maxY >= 3 {
		t.Errorf("max emitted row %d should be clamped below height 3", maxY)
	}
}
