package palette

import (
	"errors"
	"fmt"
)

// ErrEmptyPalette is returned when a palette is read or sorted before any
// seed has been derived.
var ErrEmptyPalette = errors.New("palette: no palette derived yet")

// InvalidSeedError reports a color channel outside its valid range.
type InvalidSeedError struct {
	Channel Channel
	Value   float64
}

func (e *InvalidSeedError) Error() string {
	return fmt.Sprintf("palette: %s %v out of range", e.Channel, e.Value)
}

// UnsupportedChannelError reports an unknown channel name.
type UnsupportedChannelError struct {
	Name string
}

func (e *UnsupportedChannelError) Error() string {
	return fmt.Sprintf("palette: unsupported channel %q (want hue, saturation or brightness)", e.Name)
}

// UnknownRuleError reports an unknown harmony rule name.
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("palette: unknown harmony rule %q", e.Name)
}
