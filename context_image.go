package canvas

import "fmt"

// DrawImage samples img through the inverse of the current transform,
// nearest-neighbor, compositing every destination pixel whose source maps
// inside img's bounds; pixels mapping outside are left untouched — the
// same drawImage semantics Pattern sampling shares.
func (c *Context) DrawImage(img *ImageBuffer, dx, dy float64) {
	c.DrawImageScaled(img, dx, dy, float64(img.W), float64(img.H))
}

// DrawImageScaled draws img into the destination rectangle [dx,dy,dw,dh]
// (user-space), scaling/rotating/skewing with the current transform.
func (c *Context) DrawImageScaled(img *ImageBuffer, dx, dy, dw, dh float64) {
	if !isFinite(dx) || !isFinite(dy) || !isFinite(dw) || !isFinite(dh) || dw == 0 || dh == 0 {
		return
	}
	corners := []Point{
		c.state.transform.TransformPoint(Pt(dx, dy)),
		c.state.transform.TransformPoint(Pt(dx+dw, dy)),
		c.state.transform.TransformPoint(Pt(dx+dw, dy+dh)),
		c.state.transform.TransformPoint(Pt(dx, dy+dh)),
	}
	bounds := BoundingBox(corners).Intersect(Rect(0, 0, float64(c.Width()), float64(c.Height())))
	if bounds.Empty() {
		return
	}
	inv, ok := c.state.transform.Invert()
	if !ok {
		return
	}
	globalAlpha := c.state.globalAlpha
	op := c.state.compositeOp
	y0, y1 := int(bounds.Y), int(bounds.Bottom())
	x0, x1 := int(bounds.X), int(bounds.Right())
	sx := float64(img.W) / dw
	sy := float64(img.H) / dh
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !c.stencilVisible(x, y) {
				continue
			}
			user := inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
			ix := int(floorF((user.X - dx) * sx))
			iy := int(floorF((user.Y - dy) * sy))
			if ix < 0 || ix >= img.W || iy < 0 || iy >= img.H {
				continue
			}
			col := img.at(ix, iy).WithAlphaMultiplied(globalAlpha)
			compositePixel(c.surface, x, y, col, op, true)
		}
	}
}

// GetImageData copies a straight-RGBA8 rectangle out of the surface,
// clipped to surface bounds; requesting a non-integer size is a caller
// contract violation this signature avoids by taking ints directly.
func (c *Context) GetImageData(x, y, w, h int) (*ImageBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas: invalid image data size %dx%d", w, h)
	}
	out := &ImageBuffer{W: w, H: h, Data: make([]uint8, w*h*4)}
	for row := 0; row < h; row++ {
		sy := y + row
		for col := 0; col < w; col++ {
			sx := x + col
			var col4 Color
			if sx >= 0 && sx < c.surface.Width() && sy >= 0 && sy < c.surface.Height() {
				col4 = c.surface.ColorAt(sx, sy)
			}
			i := (row*w + col) * 4
			out.Data[i], out.Data[i+1], out.Data[i+2], out.Data[i+3] = col4.R, col4.G, col4.B, col4.A
		}
	}
	return out, nil
}

// PutImageData writes a straight-RGBA8 buffer back into the surface at
// (x,y), clipped to surface bounds, bypassing paint sources and
// compositing entirely — a direct pixel copy, not a paint operation.
func (c *Context) PutImageData(img *ImageBuffer, x, y int) {
	for row := 0; row < img.H; row++ {
		dy := y + row
		if dy < 0 || dy >= c.surface.Height() {
			continue
		}
		for col := 0; col < img.W; col++ {
			dx := x + col
			if dx < 0 || dx >= c.surface.Width() {
				continue
			}
			c.surface.SetColor(dx, dy, img.at(col, row))
		}
	}
}

// CreateImageData allocates a transparent w×h straight-RGBA8 buffer.
func CreateImageData(w, h int) (*ImageBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas: invalid image data size %dx%d", w, h)
	}
	return &ImageBuffer{W: w, H: h, Data: make([]uint8, w*h*4)}, nil
}
