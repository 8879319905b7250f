package canvas

import "testing"

func TestNormalizeDashEmpty(t *testing.T) {
	if got := normalizeDash(nil); got != nil {
		t.Errorf("normalizeDash(nil) = %v, want nil", got)
	}
}

func TestNormalizeDashNegativeRejected(t *testing.T) {
	if got := normalizeDash([]float64{4, -1}); got != nil {
		t.Errorf("negative segment should reject whole pattern, got %v", got)
	}
}

func TestNormalizeDashAllZeroRejected(t *testing.T) {
	if got := normalizeDash([]float64{0, 0}); got != nil {
		t.Errorf("all-zero pattern should normalize to nil, got %v", got)
	}
}

func TestNormalizeDashOddLengthDoubled(t *testing.T) {
	got := normalizeDash([]float64{5, 3, 2})
	want := []float64{5, 3, 2, 5, 3, 2}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNormalizeDashEvenLengthUnchanged(t *testing.T) {
	in := []float64{4, 2}
	got := normalizeDash(in)
	if len(got) != 2 || got[0] != 4 || got[1] != 2 {
		t.Errorf("got %v, want %v", got, in)
	}
}
