package canvas

import "math"

const piMinusEps = math.Pi - 1e-9

func cosOf(a float64) float64   { return math.Cos(a) }
func sinOf(a float64) float64   { return math.Sin(a) }
func acosOf(a float64) float64  { return math.Acos(a) }
func tanOf(a float64) float64   { return math.Tan(a) }
func atan2Of(y, x float64) float64 { return math.Atan2(y, x) }

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
