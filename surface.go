package canvas

import (
	"encoding/binary"
	"fmt"
)

// Surface is the rectangular pixel buffer a Context draws into: straight
// (non-premultiplied) RGBA8, stride = 4·W bytes, origin top-left, Y grows
// downward. W·H is bounded to 2²⁸ pixels.
type Surface struct {
	width, height int
	stride        int
	data          []uint8
}

// maxSurfacePixels enforces the W·H ≤ 2²⁸ invariant.
const maxSurfacePixels = 1 << 28

// NewSurface allocates a cleared (fully transparent) surface, or returns an
// error for non-positive dimensions or a pixel count exceeding the bound.
// Construction errors are reported synchronously; no partial surface is
// produced.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: invalid surface dimensions %dx%d (both must be > 0)", width, height)
	}
	if int64(width)*int64(height) > maxSurfacePixels {
		return nil, fmt.Errorf("canvas: surface %dx%d exceeds maximum of %d pixels", width, height, maxSurfacePixels)
	}
	return &Surface{
		width: width, height: height, stride: width * 4,
		data: make([]uint8, width*height*4),
	}, nil
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }
func (s *Surface) Stride() int { return s.stride }

// Data exposes the raw straight-RGBA8 pixel buffer for external encoders
// and blitters.
func (s *Surface) Data() []uint8 { return s.data }

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *Surface) offset(x, y int) int { return y*s.stride + x*4 }

func (s *Surface) SetColor(x, y int, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	i := s.offset(x, y)
	s.data[i], s.data[i+1], s.data[i+2], s.data[i+3] = c.R, c.G, c.B, c.A
}

func (s *Surface) ColorAt(x, y int) Color {
	if !s.inBounds(x, y) {
		return Transparent
	}
	i := s.offset(x, y)
	return Color{R: s.data[i], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// SetPacked writes a pre-packed u32 pixel directly, letting opaque fast
// paths bypass blending entirely.
func (s *Surface) SetPacked(x, y int, v uint32) {
	if !s.inBounds(x, y) {
		return
	}
	i := s.offset(x, y)
	binary.LittleEndian.PutUint32(s.data[i:i+4], v)
}

// PackColor packs a straight-RGBA Color into the 32-bit native layout
// SetPacked writes.
func PackColor(c Color) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// Clear resets every pixel to transparent black.
func (s *Surface) Clear() {
	for i := range s.data {
		s.data[i] = 0
	}
}

// ClearColor fills the entire surface with c.
func (s *Surface) ClearColor(c Color) {
	if c == (Color{}) {
		s.Clear()
		return
	}
	if !c.IsOpaque() {
		for y := 0; y < s.height; y++ {
			for x := 0; x < s.width; x++ {
				s.SetColor(x, y, c)
			}
		}
		return
	}
	s.FillRowOpaqueOrBlend(0, s.width, 0, s.height, c)
}

// FillSpanOpaque bulk-writes an opaque color across [x0,x1) on row y via the
// packed 32-bit view, using an exponential doubling-copy strategy for spans
// ≥16px.
func (s *Surface) FillSpanOpaque(x0, x1, y int, c Color) {
	if y < 0 || y >= s.height || x1 <= x0 {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > s.width {
		x1 = s.width
	}
	if x1 <= x0 {
		return
	}
	v := PackColor(c)
	length := x1 - x0
	if length < 16 {
		for x := x0; x < x1; x++ {
			s.SetPacked(x, y, v)
		}
		return
	}
	start := s.offset(x0, y)
	s.SetPacked(x0, y, v)
	filled := 1
	for filled < length {
		copyLen := filled
		if filled+copyLen > length {
			copyLen = length - filled
		}
		copy(s.data[start+filled*4:start+(filled+copyLen)*4], s.data[start:start+copyLen*4])
		filled += copyLen
	}
}

// FillSpanBlend blends an alpha-involving color across [x0,x1) on row y
// using source-over, the blended counterpart to FillSpanOpaque.
func (s *Surface) FillSpanBlend(x0, x1, y int, c Color) {
	if c.IsOpaque() {
		s.FillSpanOpaque(x0, x1, y, c)
		return
	}
	if y < 0 || y >= s.height || x1 <= x0 {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > s.width {
		x1 = s.width
	}
	sr, sg, sb, sa := c.Premultiplied()
	for x := x0; x < x1; x++ {
		i := s.offset(x, y)
		dr, dg, db, da := s.data[i], s.data[i+1], s.data[i+2], s.data[i+3]
		dpr, dpg, dpb, dpa := premultiplyBytes(dr, dg, db, da)
		or, og, ob, oa := sourceOverBytes(sr, sg, sb, sa, dpr, dpg, dpb, dpa)
		out := Unpremultiply(or, og, ob, oa)
		s.data[i], s.data[i+1], s.data[i+2], s.data[i+3] = out.R, out.G, out.B, out.A
	}
}

// FillRowOpaqueOrBlend is the shared row-range driver fillRect/ClearColor
// use to dispatch each row to the opaque or blended span writer.
func (s *Surface) FillRowOpaqueOrBlend(x0, x1, y0, y1 int, c Color) {
	for y := y0; y < y1; y++ {
		if c.IsOpaque() {
			s.FillSpanOpaque(x0, x1, y, c)
		} else {
			s.FillSpanBlend(x0, x1, y, c)
		}
	}
}
