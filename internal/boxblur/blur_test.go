package boxblur

import (
	"math"
	"testing"
)

func TestBoxRadiiZeroSigma(t *testing.T) {
	if got := BoxRadii(0); got != [3]int{0, 0, 0} {
		t.Errorf("BoxRadii(0) = %v, want all zero", got)
	}
}

func TestBoxRadiiGrowsWithSigma(t *testing.T) {
	small := BoxRadii(1)
	large := BoxRadii(10)
	sum := func(r [3]int) int { return r[0] + r[1] + r[2] }
	if sum(large) <= sum(small) {
		t.Errorf("larger sigma should produce larger total radius: sigma=1 -> %v, sigma=10 -> %v", small, large)
	}
}

func TestBlurNoOpAtZeroSigma(t *testing.T) {
	b := NewBuffer(5, 5)
	b.Set(2, 2, 1)
	Blur(b, 0)
	if b.At(2, 2) != 1 {
		t.Error("zero sigma should leave the buffer unchanged")
	}
}

func TestBlurConservesTotalEnergyApproximately(t *testing.T) {
	b := NewBuffer(20, 20)
	b.Set(10, 10, 1)
	before := 0.0
	for _, v := range b.Data {
		before += v
	}
	Blur(b, 3)
	after := 0.0
	for _, v := range b.Data {
		after += v
	}
	if math.Abs(before-after) > 0.05*before {
		t.Errorf("box blur should approximately conserve total energy: before=%v after=%v", before, after)
	}
}

func TestBlurSpreadsImpulseToNeighbors(t *testing.T) {
	b := NewBuffer(20, 20)
	b.Set(10, 10, 1)
	Blur(b, 3)
	if b.At(10, 10) >= 1 {
		t.Error("the peak should be reduced after blurring")
	}
	if b.At(9, 10) <= 0 || b.At(11, 10) <= 0 || b.At(10, 9) <= 0 || b.At(10, 11) <= 0 {
		t.Error("energy should spread to immediate neighbors")
	}
}

func TestBufferOutOfBoundsReadsZero(t *testing.T) {
	b := NewBuffer(3, 3)
	if b.At(-1, 0) != 0 || b.At(3, 0) != 0 || b.At(0, -1) != 0 || b.At(0, 3) != 0 {
		t.Error("out-of-bounds reads should return 0")
	}
}

func TestBufferOutOfBoundsSetIsNoop(t *testing.T) {
	b := NewBuffer(3, 3)
	b.Set(-1, 0, 5)
	b.Set(3, 0, 5)
	for _, v := range b.Data {
		if v != 0 {
			t.Error("out-of-bounds sets must not corrupt the buffer")
		}
	}
}
