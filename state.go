package canvas

import "github.com/gogpu/swcanvas/internal/clip"

// drawingState is one mutable record of style/transform/clip state; the
// save/restore stack lives on Context as a slice of these snapshots.
type drawingState struct {
	globalAlpha  float64
	compositeOp  CompositeOperator
	transform    Transform
	fillPaint    PaintSource
	strokePaint  PaintSource
	lineWidth    float64
	lineJoin     LineJoin
	lineCap      LineCap
	miterLimit   float64
	lineDash     []float64
	dashOffset   float64
	shadow       Shadow
	clip         *clip.Stencil // nil means "all-ones", allocated lazily
}

func newDrawingState() *drawingState {
	return &drawingState{
		globalAlpha: 1,
		compositeOp: SourceOver,
		transform:   Identity(),
		fillPaint:   Solid(Black),
		strokePaint: Solid(Black),
		lineWidth:   1,
		miterLimit:  10,
	}
}

// clone deep-copies the state, including a clone of the clip mask if
// present.
func (s *drawingState) clone() *drawingState {
	cp := *s
	cp.lineDash = append([]float64(nil), s.lineDash...)
	if s.clip != nil {
		cp.clip = s.clip.Clone()
	}
	return &cp
}
