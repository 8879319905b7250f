package canvas

import "testing"

func TestLinearGradientEndpoints(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0)
	g.AddStop(0, Opaque(255, 0, 0))
	g.AddStop(1, Opaque(0, 0, 255))

	start := g.ColorAt(0, 0, Identity())
	end := g.ColorAt(10, 0, Identity())
	if start.R != 255 || start.B != 0 {
		t.Errorf("start color = %+v, want red", start)
	}
	if end.B != 255 || end.R != 0 {
		t.Errorf("end color = %+v, want blue", end)
	}
}

func TestLinearGradientDegenerateIsTransparent(t *testing.T) {
	g := NewLinearGradient(5, 5, 5, 5)
	g.AddStop(0, Black)
	g.AddStop(1, White)
	if got := g.ColorAt(5, 5, Identity()); got != Transparent {
		t.Errorf("zero-length axis should render transparent, got %+v", got)
	}
}

func TestRadialGradientDegenerateIsTransparent(t *testing.T) {
	g := NewRadialGradient(0, 0, 5, 0, 0, 5)
	g.AddStop(0, Black)
	g.AddStop(1, White)
	if got := g.ColorAt(0, 0, Identity()); got != Transparent {
		t.Errorf("identical same-radius circles should render transparent, got %+v", got)
	}
}

func TestConicGradientSweep(t *testing.T) {
	g := NewConicGradient(0, 0, 0)
	g.AddStop(0, Opaque(255, 0, 0))
	g.AddStop(1, Opaque(0, 255, 0))

	atZero := g.ColorAt(1, 0, Identity())
	if atZero.R != 255 {
		t.Errorf("angle 0 should sample near the first stop, got %+v", atZero)
	}
}

func TestConicGradientAtCenterIsTransparent(t *testing.T) {
	g := NewConicGradient(3, 3, 0)
	g.AddStop(0, Black)
	g.AddStop(1, White)
	if got := g.ColorAt(3, 3, Identity()); got != Transparent {
		t.Errorf("sampling exactly at the center should be transparent, got %+v", got)
	}
}

func TestGradientLUTMonotonicAlongAxis(t *testing.T) {
	g := NewLinearGradient(0, 0, 100, 0)
	g.AddStop(0, Opaque(0, 0, 0))
	g.AddStop(1, Opaque(200, 0, 0))
	prev := uint8(0)
	for x := 0.0; x <= 100; x += 10 {
		c := g.ColorAt(x, 0, Identity())
		if c.R < prev {
			t.Errorf("expected non-decreasing red channel, got %d after %d at x=%v", c.R, prev, x)
		}
		prev = c.R
	}
}
