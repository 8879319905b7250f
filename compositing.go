package canvas

import "github.com/gogpu/swcanvas/internal/blend"

func premultiplyBytes(r, g, b, a uint8) (pr, pg, pb, pa uint8) {
	return Color{r, g, b, a}.Premultiplied()
}

func sourceOverBytes(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8) {
	return blend.For(blend.SourceOver)(sr, sg, sb, sa, dr, dg, db, da)
}

// CompositeOperator names one of the ten Porter-Duff modes a DrawingState
// may select.
type CompositeOperator int

const (
	SourceOver CompositeOperator = iota
	DestinationOver
	SourceIn
	DestinationIn
	SourceOut
	DestinationOut
	SourceAtop
	DestinationAtop
	Xor
	Copy
)

func (op CompositeOperator) toBlend() blend.Operator {
	switch op {
	case SourceOver:
		return blend.SourceOver
	case DestinationOver:
		return blend.DestinationOver
	case SourceIn:
		return blend.SourceIn
	case DestinationIn:
		return blend.DestinationIn
	case SourceOut:
		return blend.SourceOut
	case DestinationOut:
		return blend.DestinationOut
	case SourceAtop:
		return blend.SourceAtop
	case DestinationAtop:
		return blend.DestinationAtop
	case Xor:
		return blend.Xor
	case Copy:
		return blend.Copy
	default:
		return blend.SourceOver
	}
}

// compositePixel blends straight-RGBA src (already scaled by globalAlpha
// and coverage) onto the surface at (x,y) under op and the active stencil.
func compositePixel(s *Surface, x, y int, src Color, op CompositeOperator, stencilVisible bool) {
	if !stencilVisible {
		return
	}
	sr, sg, sb, sa := src.Premultiplied()
	dst := s.ColorAt(x, y)
	dr, dg, db, da := dst.Premultiplied()
	or, og, ob, oa := blend.For(op.toBlend())(sr, sg, sb, sa, dr, dg, db, da)
	s.SetColor(x, y, Unpremultiply(or, og, ob, oa))
}
