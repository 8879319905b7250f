package canvas

import "testing"

func TestPremultipliedOpaque(t *testing.T) {
	c := Opaque(200, 100, 50)
	r, g, b, a := c.Premultiplied()
	if r != 200 || g != 100 || b != 50 || a != 255 {
		t.Fatalf("Premultiplied() = %d,%d,%d,%d, want 200,100,50,255", r, g, b, a)
	}
}

func TestPremultiplyUnpremultiplyRoundTrip(t *testing.T) {
	cases := []Color{
		Opaque(10, 20, 30),
		RGBA(255, 0, 0, 128),
		RGBA(10, 200, 50, 1),
		Transparent,
	}
	for _, c := range cases {
		r, g, b, a := c.Premultiplied()
		got := Unpremultiply(r, g, b, a)
		if got.A != c.A {
			t.Errorf("alpha round-trip for %+v: got %+v", c, got)
		}
		if c.A == 0 && got != Transparent {
			t.Errorf("zero alpha must normalize to Transparent, got %+v", got)
		}
	}
}

func TestWithAlphaMultiplied(t *testing.T) {
	c := RGBA(10, 20, 30, 200)
	if got := c.WithAlphaMultiplied(1); got != c {
		t.Errorf("scaling by 1 must be identity, got %+v", got)
	}
	if got := c.WithAlphaMultiplied(0); got != Transparent {
		t.Errorf("scaling by 0 must yield Transparent, got %+v", got)
	}
	half := c.WithAlphaMultiplied(0.5)
	if half.A != 100 {
		t.Errorf("WithAlphaMultiplied(0.5).A = %d, want ~100", half.A)
	}
}

func TestColorLerpEndpoints(t *testing.T) {
	a := Opaque(0, 0, 0)
	b := Opaque(255, 255, 255)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(t=0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(t=1) = %+v, want %+v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if mid.R < 126 || mid.R > 129 {
		t.Errorf("Lerp(t=0.5).R = %d, want ~127", mid.R)
	}
}

func TestIsOpaqueIsTransparent(t *testing.T) {
	if !Black.IsOpaque() {
		t.Error("Black should be opaque")
	}
	if !Transparent.IsTransparent() {
		t.Error("Transparent should report transparent")
	}
	if RGBA(1, 2, 3, 128).IsOpaque() {
		t.Error("half alpha should not be opaque")
	}
}
