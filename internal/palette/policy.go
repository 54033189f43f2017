package palette

import "github.com/sirupsen/logrus"

// Rule is a harmony rule: a deterministic function from one seed color to a
// fixed-size palette. Derive must not retain or mutate the seed, and must
// return exactly Size colors.
type Rule interface {
	Name() string
	Size() int
	Derive(seed Color) Palette
}

// Policy owns the palette most recently derived by its rule. A fresh Policy
// holds no palette; reading or sorting it returns ErrEmptyPalette.
//
// A Policy is not safe for concurrent use. Callers sharing one across
// goroutines must guard Derive and Sort with a lock of their own.
type Policy struct {
	rule    Rule
	colors  Palette
	derived bool
	log     *logrus.Entry
}

// NewPolicy returns an idle policy for the given rule.
func NewPolicy(rule Rule) *Policy {
	return &Policy{
		rule: rule,
		log:  paletteLogger.WithField("rule", rule.Name()),
	}
}

// NewTriadPolicy returns an idle policy for the triadic rule.
func NewTriadPolicy() *Policy { return NewPolicy(Triad{}) }

// Rule returns the harmony rule the policy derives with.
func (p *Policy) Rule() Rule { return p.rule }

// Derived reports whether a palette has been derived.
func (p *Policy) Derived() bool { return p.derived }

// Derive derives a palette from seed, replacing any stored palette, and
// returns a copy of it.
func (p *Policy) Derive(seed Color) Palette {
	colors := p.rule.Derive(seed)
	p.colors = colors
	p.derived = true
	p.log.WithField("seed", seed.String()).Debugf("derived %d colors", len(colors))
	return colors.Clone()
}

// Palette returns a copy of the stored palette.
func (p *Policy) Palette() (Palette, error) {
	if !p.derived {
		return nil, ErrEmptyPalette
	}
	return p.colors.Clone(), nil
}

// Sort stably reorders the stored palette ascending by channel.
func (p *Policy) Sort(ch Channel) error {
	if !p.derived {
		return ErrEmptyPalette
	}
	if err := p.colors.SortBy(ch); err != nil {
		return err
	}
	p.log.WithField("channel", ch.String()).Debug("sorted palette")
	return nil
}

// Clone returns an independent copy of the policy, including its palette.
func (p *Policy) Clone() *Policy {
	c := *p
	c.colors = p.colors.Clone()
	return &c
}
