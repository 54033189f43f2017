package palette

import (
	"sort"
	"strings"

	"github.com/irfansharif/harmony/internal/wheel"
)

// rotations derives a palette holding the seed followed by one companion per
// hue offset. Saturation and brightness are copied from the seed.
func rotations(seed Color, offsets ...float64) Palette {
	out := make(Palette, 0, 1+len(offsets))
	out = append(out, seed)
	for _, off := range offsets {
		out = append(out, Color{h: wheel.Rotate(seed.h, off), s: seed.s, b: seed.b})
	}
	return out
}

// Triad places two companions 120° either side of the seed:
// [seed, h+120, h+240].
type Triad struct{}

func (Triad) Name() string { return "triad" }
func (Triad) Size() int    { return 3 }
func (Triad) Derive(seed Color) Palette {
	return rotations(seed, wheel.Spread(3)[1:]...)
}

// Complementary pairs the seed with the hue opposite it: [seed, h+180].
type Complementary struct{}

func (Complementary) Name() string { return "complementary" }
func (Complementary) Size() int    { return 2 }
func (Complementary) Derive(seed Color) Palette {
	return rotations(seed, 180)
}

// Analogous surrounds the seed with its neighbours: [seed, h+Spread, h-Spread].
// A zero Spread means 30°.
type Analogous struct {
	Spread float64
}

func (Analogous) Name() string { return "analogous" }
func (Analogous) Size() int    { return 3 }
func (a Analogous) Derive(seed Color) Palette {
	d := a.Spread
	if d == 0 {
		d = 30
	}
	return rotations(seed, d, -d)
}

// SplitComplementary flanks the seed's complement: [seed, h+150, h+210].
type SplitComplementary struct{}

func (SplitComplementary) Name() string { return "split-complementary" }
func (SplitComplementary) Size() int    { return 3 }
func (SplitComplementary) Derive(seed Color) Palette {
	return rotations(seed, 150, 210)
}

// Tetradic spaces four hues evenly: [seed, h+90, h+180, h+270].
type Tetradic struct{}

func (Tetradic) Name() string { return "tetradic" }
func (Tetradic) Size() int    { return 4 }
func (Tetradic) Derive(seed Color) Palette {
	return rotations(seed, wheel.Spread(4)[1:]...)
}

var rules = map[string]Rule{}

func register(r Rule) { rules[r.Name()] = r }

func init() {
	register(Triad{})
	register(Complementary{})
	register(Analogous{})
	register(SplitComplementary{})
	register(Tetradic{})
}

// Lookup returns the rule registered under name (case-insensitive).
func Lookup(name string) (Rule, error) {
	r, ok := rules[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, &UnknownRuleError{Name: name}
	}
	return r, nil
}

// Names returns every registered rule name, sorted.
func Names() []string {
	names := make([]string, 0, len(rules))
	for n := range rules {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
