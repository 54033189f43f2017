package palette

import "strings"

// Channel is a perceptual dimension of a color usable as a sort key.
type Channel int

const (
	Hue Channel = iota
	Saturation
	Brightness
)

// Channels lists every channel in declaration order.
var Channels = []Channel{Hue, Saturation, Brightness}

func (ch Channel) String() string {
	switch ch {
	case Hue:
		return "hue"
	case Saturation:
		return "saturation"
	case Brightness:
		return "brightness"
	default:
		return "unknown"
	}
}

func (ch Channel) valid() bool { return ch >= Hue && ch <= Brightness }

// ParseChannel maps a channel name (case-insensitive) to a Channel. It is the
// only place free-form channel names are accepted.
func ParseChannel(name string) (Channel, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, ch := range Channels {
		if n == ch.String() {
			return ch, nil
		}
	}
	return 0, &UnsupportedChannelError{Name: name}
}
