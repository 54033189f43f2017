package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/irfansharif/harmony/internal/config"
	"github.com/irfansharif/harmony/internal/palette"
)

// Swatch is the presentation form of one palette color.
type Swatch struct {
	Hex        string  `json:"hex"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
}

// Swatches is a derived palette ready for display.
type Swatches struct {
	Rule   string   `json:"rule"`
	Seed   string   `json:"seed"`
	Colors []Swatch `json:"colors"`
}

// MakeSwatches converts a palette into swatches, keeping its order.
func MakeSwatches(rule string, seed palette.Color, pal palette.Palette) Swatches {
	s := Swatches{Rule: rule, Seed: seed.Hex(), Colors: make([]Swatch, len(pal))}
	hex := pal.Hex()
	for i, c := range pal {
		s.Colors[i] = Swatch{
			Hex:        hex[i],
			Hue:        c.Hue(),
			Saturation: c.Saturation(),
			Brightness: c.Brightness(),
		}
	}
	return s
}

// Write renders palettes to w in the given format.
func Write(w io.Writer, format string, palettes []Swatches) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(palettes)
	case config.FormatText, "":
		for i, p := range palettes {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%s from %s\n", p.Rule, p.Seed); err != nil {
				return err
			}
			for _, c := range p.Colors {
				if _, err := fmt.Fprintf(w, "  %s  h=%5.1f s=%5.1f b=%5.1f\n", c.Hex, c.Hue, c.Saturation, c.Brightness); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
