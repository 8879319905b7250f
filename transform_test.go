package canvas

import (
	"math"
	"testing"
)

func approxPoint(t *testing.T, got, want Point, eps float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestIdentityTransformsPointUnchanged(t *testing.T) {
	p := Pt(3, 4)
	approxPoint(t, Identity().TransformPoint(p), p, 1e-9)
}

func TestTranslateThenScaleComposition(t *testing.T) {
	// Multiply composes left-to-right: apply t, then o.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	got := m.TransformPoint(Pt(0, 0))
	approxPoint(t, got, Pt(20, 0), 1e-9)
}

func TestInvertRoundTrip(t *testing.T) {
	m := Translate(5, -3).Multiply(Rotate(0.7)).Multiply(Scale(2, 3))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("expected invertible transform")
	}
	p := Pt(12, -8)
	got := inv.TransformPoint(m.TransformPoint(p))
	approxPoint(t, got, p, 1e-7)
}

func TestInvertSingularReturnsFalse(t *testing.T) {
	m := Scale(0, 1)
	_, ok := m.Invert()
	if ok {
		t.Fatal("zero-scale transform should not invert")
	}
}

func TestIsAxisAligned(t *testing.T) {
	if !Identity().IsAxisAligned() {
		t.Error("identity should be axis-aligned")
	}
	if !Scale(2, 3).IsAxisAligned() {
		t.Error("pure scale should be axis-aligned")
	}
	if !(Transform{A: 0, B: 1, C: -1, D: 0}).IsAxisAligned() {
		t.Error("90-degree rotation should still be axis-aligned")
	}
	if Rotate(0.3).IsAxisAligned() {
		t.Error("arbitrary rotation should not be axis-aligned")
	}
}

func TestIsRotateTranslate(t *testing.T) {
	m := Translate(4, 5).Multiply(Rotate(1.2))
	if !m.IsRotateTranslate() {
		t.Error("rotation+translation should qualify")
	}
	if Scale(2, 1).IsRotateTranslate() {
		t.Error("non-uniform scale should not qualify")
	}
}

func TestScaleFactor(t *testing.T) {
	m := Scale(3, 3)
	if got := m.ScaleFactor(); math.Abs(got-3) > 1e-9 {
		t.Errorf("ScaleFactor() = %v, want 3", got)
	}
}
