// Package config reads harmony's settings from the environment, after loading
// an optional .env file from the working directory.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/irfansharif/harmony/internal/palette"
)

// Environment variables.
const (
	EnvSeed       = "HARMONY_SEED"        // seed color, "#rrggbb"; empty picks one at random
	EnvRule       = "HARMONY_RULE"        // harmony rule name
	EnvSort       = "HARMONY_SORT"        // channel to sort by; empty leaves derive order
	EnvRandomSeed = "HARMONY_RANDOM_SEED" // int64 seeding the random seed color
	EnvFormat     = "HARMONY_FORMAT"      // text or json
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the settings for one palette derivation.
type Config struct {
	Seed       *palette.Color   // nil picks a random seed from RandomSeed
	Rule       palette.Rule
	Sort       *palette.Channel // nil leaves the palette in derive order
	RandomSeed int64
	Format     string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Rule:       palette.Triad{},
		RandomSeed: time.Now().Unix(),
		Format:     FormatText,
	}
}

// Load reads .env (if present) and then the environment.
func Load() (Config, error) {
	// A missing .env is fine; values may come from the real environment.
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from the given variable lookup, starting from
// Default.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	if v := get(EnvSeed); v != "" {
		if err := cfg.SetSeed(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}
	if v := get(EnvRule); v != "" {
		if err := cfg.SetRule(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvRule, err)
		}
	}
	if v := get(EnvSort); v != "" {
		if err := cfg.SetSort(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSort, err)
		}
	}
	if v := get(EnvRandomSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: invalid value '%s': %w", EnvRandomSeed, v, err)
		}
		cfg.RandomSeed = n
	}
	if v := get(EnvFormat); v != "" {
		if err := cfg.SetFormat(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvFormat, err)
		}
	}
	return cfg, nil
}

// SetSeed parses a hex seed color.
func (c *Config) SetSeed(hex string) error {
	seed, err := palette.ParseHex(hex)
	if err != nil {
		return err
	}
	c.Seed = &seed
	return nil
}

// SetRule selects a harmony rule by name.
func (c *Config) SetRule(name string) error {
	r, err := palette.Lookup(name)
	if err != nil {
		return err
	}
	c.Rule = r
	return nil
}

// SetSort selects the channel to sort by.
func (c *Config) SetSort(name string) error {
	ch, err := palette.ParseChannel(name)
	if err != nil {
		return err
	}
	c.Sort = &ch
	return nil
}

// SetFormat selects the output format.
func (c *Config) SetFormat(format string) error {
	switch f := strings.ToLower(format); f {
	case FormatText, FormatJSON:
		c.Format = f
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatText, FormatJSON)
	}
}
