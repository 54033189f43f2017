// Package palette derives color palettes from a single seed color using
// classical harmony rules (triadic, complementary, analogous, ...).
//
// A Rule says how a palette is derived; a Policy owns the derived palette and
// provides the behavior shared by every rule: retrieval, sorting by channel
// and deep copying.
package palette

import (
	"cmp"
	"slices"
)

// Palette is an ordered sequence of colors.
type Palette []Color

// Clone returns a copy of p that shares no storage with it.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	return append(make(Palette, 0, len(p)), p...)
}

// SortBy stably reorders p in place, ascending by the given channel.
func (p Palette) SortBy(ch Channel) error {
	if !ch.valid() {
		return &UnsupportedChannelError{Name: ch.String()}
	}
	slices.SortStableFunc(p, func(a, b Color) int {
		return cmp.Compare(a.Value(ch), b.Value(ch))
	})
	return nil
}

// Values returns the given channel of every color, in palette order. Like
// Color.Value it panics if ch is not one of Channels.
func (p Palette) Values(ch Channel) []float64 {
	out := make([]float64, len(p))
	for i, c := range p {
		out[i] = c.Value(ch)
	}
	return out
}

// Hex returns every color as "#rrggbb", in palette order.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}
