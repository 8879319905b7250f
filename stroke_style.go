package canvas

type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// FillRule selects the winding rule fill()/clip() rasterize under. An
// unrecognized rule is treated as NonZero.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// Shadow holds the shadow synthesis parameters.
type Shadow struct {
	Color   Color
	Blur    float64
	OffsetX float64
	OffsetY float64
}

func (s Shadow) enabled() bool {
	return s.Color.A > 0 && (s.Blur > 0 || s.OffsetX != 0 || s.OffsetY != 0)
}
