package palette

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/irfansharif/harmony/internal/wheel"
)

// Channel bounds. Hue is in degrees, saturation and brightness in percent.
const (
	MaxHue        = 360.0 // exclusive
	MaxSaturation = 100.0
	MaxBrightness = 100.0
)

// Color is an immutable HSB color. The zero value is black with hue 0.
type Color struct {
	h, s, b float64
}

// HSB returns the color with the given hue [0, 360), saturation [0, 100] and
// brightness [0, 100].
func HSB(h, s, b float64) (Color, error) {
	if !inRange(h, 0, MaxHue) || h == MaxHue {
		return Color{}, &InvalidSeedError{Channel: Hue, Value: h}
	}
	if !inRange(s, 0, MaxSaturation) {
		return Color{}, &InvalidSeedError{Channel: Saturation, Value: s}
	}
	if !inRange(b, 0, MaxBrightness) {
		return Color{}, &InvalidSeedError{Channel: Brightness, Value: b}
	}
	return Color{h: h, s: s, b: b}, nil
}

// MustHSB is like HSB but panics on out of range channels.
func MustHSB(h, s, b float64) Color {
	c, err := HSB(h, s, b)
	if err != nil {
		panic(err)
	}
	return c
}

func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}

// FromRGBA converts any color.Color (alpha ignored) into HSB.
func FromRGBA(c color.Color) Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return Color{} // fully transparent; premultiplied channels are all zero
	}
	return fromColorful(cf.Clamped())
}

// ParseHex parses "#rgb" or "#rrggbb".
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parsing seed %q: %w", s, err)
	}
	return fromColorful(cf), nil
}

func fromColorful(cf colorful.Color) Color {
	h, s, v := cf.Hsv()
	return Color{h: wheel.Normalize(h), s: s * MaxSaturation, b: v * MaxBrightness}
}

// RandomSeed returns a random color, sampling saturation and brightness away
// from the washed-out and near-black extremes.
func RandomSeed(r *rand.Rand) Color {
	return Color{
		h: r.Float64() * MaxHue,
		s: r.Float64()*50 + 50,
		b: r.Float64()*50 + 50,
	}
}

// Hue returns the hue in degrees, in [0, 360).
func (c Color) Hue() float64 { return c.h }

// Saturation returns the saturation in percent, in [0, 100].
func (c Color) Saturation() float64 { return c.s }

// Brightness returns the brightness in percent, in [0, 100].
func (c Color) Brightness() float64 { return c.b }

// Value returns the numeric value of the given channel. It panics if ch is not
// one of Channels; use ParseChannel to validate names from outside.
func (c Color) Value(ch Channel) float64 {
	switch ch {
	case Hue:
		return c.h
	case Saturation:
		return c.s
	case Brightness:
		return c.b
	default:
		panic(fmt.Sprintf("palette: invalid channel %d", int(ch)))
	}
}

func (c Color) toColorful() colorful.Color {
	return colorful.Hsv(c.h, c.s/MaxSaturation, c.b/MaxBrightness)
}

// RGBA returns the opaque 8-bit RGB form of the color.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.toColorful().Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string { return c.toColorful().Clamped().Hex() }

func (c Color) String() string {
	return fmt.Sprintf("hsb(%.1f, %.1f, %.1f)", c.h, c.s, c.b)
}
