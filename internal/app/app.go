// Package app wires configuration to a palette policy: it picks the seed
// color, derives the palette, applies the requested sort and writes the
// result.
package app

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/irfansharif/harmony/internal/config"
	"github.com/irfansharif/harmony/internal/palette"
)

var appLogger = logrus.New()

func init() {
	appLogger.SetOutput(io.Discard)
	if os.Getenv("HARMONY_DEBUG_APP") == "1" {
		appLogger.SetOutput(os.Stderr)
		appLogger.SetLevel(logrus.DebugLevel)
	}
}

// EnableDebug sends the application's debug logging to w, regardless of
// HARMONY_DEBUG_APP.
func EnableDebug(w io.Writer) {
	appLogger.SetOutput(w)
	appLogger.SetLevel(logrus.DebugLevel)
}

// App encapsulates one configured palette derivation.
type App struct {
	Config config.Config
	Policy *palette.Policy
	rng    *rand.Rand
}

// NewApp creates a new application instance.
func NewApp(cfg config.Config) *App {
	return &App{
		Config: cfg,
		Policy: palette.NewPolicy(cfg.Rule),
		rng:    rand.New(rand.NewSource(cfg.RandomSeed)),
	}
}

// Seed returns the configured seed color, or the next random one if none is
// configured.
func (app *App) Seed() palette.Color {
	if app.Config.Seed != nil {
		return *app.Config.Seed
	}
	return palette.RandomSeed(app.rng)
}

// Generate derives a palette from seed and applies the configured sort.
func (app *App) Generate(seed palette.Color) (palette.Palette, error) {
	app.Policy.Derive(seed)
	if ch := app.Config.Sort; ch != nil {
		if err := app.Policy.Sort(*ch); err != nil {
			return nil, fmt.Errorf("sorting %s palette: %w", app.Policy.Rule().Name(), err)
		}
	}
	pal, err := app.Policy.Palette()
	if err != nil {
		return nil, err
	}
	appLogger.WithFields(logrus.Fields{
		"rule":   app.Policy.Rule().Name(),
		"seed":   seed.Hex(),
		"colors": len(pal),
	}).Info("palette generated")
	return pal, nil
}

// GenerateN derives count palettes. With a configured seed every palette is
// the same; otherwise each one starts from the next random seed.
func (app *App) GenerateN(count int) ([]Swatches, error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	out := make([]Swatches, 0, count)
	for i := 0; i < count; i++ {
		seed := app.Seed()
		pal, err := app.Generate(seed)
		if err != nil {
			return nil, err
		}
		out = append(out, MakeSwatches(app.Policy.Rule().Name(), seed, pal))
	}
	return out, nil
}
