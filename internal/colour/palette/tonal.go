// Package palette provides tonal palettes: families of colours that share
// one hue and chroma and vary only in tone.
package palette

import (
	"sync"

	"github.com/jmylchreest/monet/internal/colour"
	"github.com/jmylchreest/monet/internal/colour/hct"
)

// StandardTones are the tone stops a Material-style design system names.
var StandardTones = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99, 100}

// Tonal is a tonal palette: a fixed hue and chroma from which colours at any
// tone can be derived. Tones are resolved lazily through the gamut solver
// and memoised, so a palette shared across goroutines computes each tone at
// most once per winner of the cache race; the mutex guarantees no cached
// entry is ever lost or torn.
type Tonal struct {
	hue    float64
	chroma float64

	mu     sync.Mutex
	cache  map[float64]colour.ARGB
	solves int
}

// New returns a tonal palette for the given hue and chroma. Hue is
// normalised to [0, 360).
func New(hue, chroma float64) *Tonal {
	return &Tonal{
		hue:    colour.SanitizeDegrees(hue),
		chroma: chroma,
		cache:  map[float64]colour.ARGB{},
	}
}

// FromARGB returns the tonal palette whose hue and chroma match the given
// key colour.
func FromARGB(c colour.ARGB) *Tonal {
	h := hct.FromARGB(c)
	return New(h.Hue(), h.Chroma())
}

// Hue returns the palette's hue in degrees.
func (t *Tonal) Hue() float64 { return t.hue }

// Chroma returns the palette's chroma.
func (t *Tonal) Chroma() float64 { return t.chroma }

// Tone returns the palette's colour at the given tone, 0-100. Tone 0 is
// always pure black and tone 100 pure white, whatever the hue and chroma;
// in between, chroma degrades to whatever the gamut can carry. Results are
// cached by the exact tone requested.
func (t *Tonal) Tone(tone float64) colour.ARGB {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok := t.cache[tone]; ok {
		return c
	}
	c := hct.Solve(t.hue, t.chroma, tone)
	t.cache[tone] = c
	t.solves++
	return c
}

// KeyColor returns the palette's colour at the mid tone, a representative
// colour for previews.
func (t *Tonal) KeyColor() colour.ARGB {
	return t.Tone(50)
}
