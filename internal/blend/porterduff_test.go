package blend

import "testing"

func TestSourceOverOpaqueSourceWins(t *testing.T) {
	r, g, b, a := For(SourceOver)(255, 0, 0, 255, 0, 0, 255, 255)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("opaque source-over = %d,%d,%d,%d, want 255,0,0,255", r, g, b, a)
	}
}

func TestSourceOverTransparentSourceKeepsDest(t *testing.T) {
	r, g, b, a := For(SourceOver)(0, 0, 0, 0, 10, 20, 30, 255)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("transparent source-over = %d,%d,%d,%d, want dest unchanged", r, g, b, a)
	}
}

func TestCopyIgnoresDestination(t *testing.T) {
	r, g, b, a := For(Copy)(1, 2, 3, 4, 100, 101, 102, 103)
	if r != 1 || g != 2 || b != 3 || a != 4 {
		t.Errorf("copy = %d,%d,%d,%d, want source unchanged", r, g, b, a)
	}
}

func TestXorBothFullyOpaqueYieldsTransparent(t *testing.T) {
	_, _, _, a := For(Xor)(255, 0, 0, 255, 0, 255, 0, 255)
	if a != 0 {
		t.Errorf("xor of two fully opaque regions should yield alpha 0, got %d", a)
	}
}

func TestUnknownOperatorDefaultsToSourceOver(t *testing.T) {
	var bogus Operator = 200
	gotFn := For(bogus)
	wantFn := For(SourceOver)
	r1, g1, b1, a1 := gotFn(10, 20, 30, 40, 50, 60, 70, 80)
	r2, g2, b2, a2 := wantFn(10, 20, 30, 40, 50, 60, 70, 80)
	if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
		t.Error("unrecognized operator should behave exactly like SourceOver")
	}
}

func TestVisitsUncoveredDestination(t *testing.T) {
	cases := map[Operator]bool{
		SourceOver:      false,
		SourceIn:        true,
		SourceOut:       true,
		DestinationAtop: true,
		Copy:            true,
		Xor:             false,
	}
	for op, want := range cases {
		if got := VisitsUncoveredDestination(op); got != want {
			t.Errorf("VisitsUncoveredDestination(%d) = %v, want %v", op, got, want)
		}
	}
}
