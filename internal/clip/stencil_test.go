package clip

import "testing"

func TestNewFullAllVisible(t *testing.T) {
	s := NewFull(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if !s.Test(x, y) {
				t.Fatalf("(%d,%d) should be visible in a full stencil", x, y)
			}
		}
	}
}

func TestNewEmptyAllHidden(t *testing.T) {
	s := NewEmpty(5, 5)
	if s.Test(2, 2) {
		t.Error("empty stencil should hide every pixel")
	}
}

func TestSetSpanAndTest(t *testing.T) {
	s := NewEmpty(10, 3)
	s.SetSpan(1, 2, 7, true)
	for x := 0; x < 10; x++ {
		want := x >= 2 && x < 7
		if got := s.Test(x, 1); got != want {
			t.Errorf("Test(%d,1) = %v, want %v", x, got, want)
		}
	}
}

func TestIntersectInPlace(t *testing.T) {
	a := NewEmpty(8, 1)
	a.SetSpan(0, 0, 6, true)
	b := NewEmpty(8, 1)
	b.SetSpan(0, 3, 8, true)
	a.IntersectInPlace(b)
	for x := 0; x < 8; x++ {
		want := x >= 3 && x < 6
		if got := a.Test(x, 0); got != want {
			t.Errorf("after intersect Test(%d,0) = %v, want %v", x, got, want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := NewEmpty(4, 1)
	a.SetSpan(0, 0, 2, true)
	b := a.Clone()
	b.Set(3, 0, true)
	if a.Test(3, 0) {
		t.Error("mutating the clone should not affect the original")
	}
	if !b.Test(0, 0) {
		t.Error("clone should carry over the original's bits")
	}
}

func TestTrailingBitsMasked(t *testing.T) {
	s := NewFull(5, 1)
	if s.Test(5, 0) || s.Test(7, 0) {
		t.Error("out-of-bounds columns must never read as visible")
	}
}
