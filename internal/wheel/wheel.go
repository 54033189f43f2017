// Package wheel provides angle arithmetic on the colour wheel:
// - normalization of arbitrary angles into [0, 360)
// - rotation by a signed offset
// - shortest circular distance between two hues
package wheel

import "math"

// Degrees in a full turn of the wheel.
const Turn = 360.0

// Normalize maps any finite angle into [0, Turn).
func Normalize(deg float64) float64 {
	d := math.Mod(deg, Turn)
	if d < 0 {
		d += Turn
	}
	// -tiny + Turn rounds up to Turn in float64.
	if d >= Turn {
		d = 0
	}
	return d
}

// Rotate returns hue rotated by offset degrees, normalized.
func Rotate(hue, offset float64) float64 { return Normalize(hue + offset) }

// Dist returns the shortest angular distance between a and b, in [0, 180].
func Dist(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	return math.Min(d, Turn-d)
}

// Spread returns n offsets evenly spaced around the wheel, starting at 0.
func Spread(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	step := Turn / float64(n)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}
