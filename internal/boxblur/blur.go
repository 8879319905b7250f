// Package boxblur implements shadow synthesis: render source coverage to a
// float alpha buffer, offset, blur with a 3-pass box filter approximating a
// Gaussian with σ = shadowBlur/2 (Central Limit approximation), then the
// caller composites the blurred coverage as the shadow color.
package boxblur

import "math"

// Buffer is a single-channel float coverage buffer, width W height H.
type Buffer struct {
	W, H int
	Data []float64
}

func NewBuffer(w, h int) *Buffer {
	return &Buffer{W: w, H: h, Data: make([]float64, w*h)}
}

func (b *Buffer) At(x, y int) float64 {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return 0
	}
	return b.Data[y*b.W+x]
}

func (b *Buffer) Set(x, y int, v float64) {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return
	}
	b.Data[y*b.W+x] = v
}

// BoxRadii derives the three box widths that approximate a Gaussian blur of
// standard deviation sigma via repeated box convolution (Central Limit
// theorem: three box blurs of appropriately chosen, mostly-equal widths
// converge to a near-Gaussian kernel — the classic fast-blur approximation).
func BoxRadii(sigma float64) [3]int {
	if sigma <= 0 {
		return [3]int{0, 0, 0}
	}
	// Ideal total box width for a 3-pass approximation (Getreuer 2013).
	idealWidth := math.Sqrt((12*sigma*sigma)/3 + 1)
	wl := int(math.Floor(idealWidth))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2
	mIdeal := (12*sigma*sigma - 3*float64(wl*wl) - 4*float64(3*wl) - 12) / (-4*float64(wl) - 4)
	m := int(math.Round(mIdeal))

	radii := [3]int{}
	for i := 0; i < 3; i++ {
		w := wl
		if i >= m {
			w = wu
		}
		r := (w - 1) / 2
		if r < 0 {
			r = 0
		}
		radii[i] = r
	}
	return radii
}

// Blur applies the 3-pass box blur in place for the given Gaussian sigma.
func Blur(b *Buffer, sigma float64) {
	radii := BoxRadii(sigma)
	for _, r := range radii {
		if r <= 0 {
			continue
		}
		boxBlurHorizontal(b, r)
		boxBlurVertical(b, r)
	}
}

func boxBlurHorizontal(b *Buffer, r int) {
	src := append([]float64(nil), b.Data...)
	window := 2*r + 1
	for y := 0; y < b.H; y++ {
		row := y * b.W
		sum := 0.0
		for x := -r; x <= r; x++ {
			sum += sampleClamped(src, row, b.W, x)
		}
		for x := 0; x < b.W; x++ {
			b.Data[row+x] = sum / float64(window)
			sum -= sampleClamped(src, row, b.W, x-r)
			sum += sampleClamped(src, row, b.W, x+r+1)
		}
	}
}

func boxBlurVertical(b *Buffer, r int) {
	src := append([]float64(nil), b.Data...)
	window := 2*r + 1
	for x := 0; x < b.W; x++ {
		sum := 0.0
		for y := -r; y <= r; y++ {
			sum += sampleClampedCol(src, x, b.W, b.H, y)
		}
		for y := 0; y < b.H; y++ {
			b.Data[y*b.W+x] = sum / float64(window)
			sum -= sampleClampedCol(src, x, b.W, b.H, y-r)
			sum += sampleClampedCol(src, x, b.W, b.H, y+r+1)
		}
	}
}

func sampleClamped(data []float64, rowStart, w, x int) float64 {
	if x < 0 {
		x = 0
	}
	if x >= w {
		x = w - 1
	}
	return data[rowStart+x]
}

func sampleClampedCol(data []float64, x, w, h, y int) float64 {
	if y < 0 {
		y = 0
	}
	if y >= h {
		y = h - 1
	}
	return data[y*w+x]
}
