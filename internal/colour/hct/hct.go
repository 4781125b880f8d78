// Package hct implements the HCT colour space: CAM16 hue and chroma paired
// with L* tone from L*a*b*.
//
// Using L* as the third axis ties the colour system to contrast. L* is
// linear in human perception of lightness, so a difference of 40 in tone
// guarantees a contrast ratio of at least 3.0 and a difference of 50
// guarantees at least 4.5, regardless of hue and chroma.
package hct

import (
	"fmt"

	"github.com/jmylchreest/monet/internal/colour"
	"github.com/jmylchreest/monet/internal/colour/cam"
)

// HCT is a colour described by hue, chroma and tone, together with the
// in-gamut ARGB value those coordinates resolve to. Values are immutable;
// the With* methods return adjusted copies.
type HCT struct {
	hue    float64
	chroma float64
	tone   float64
	argb   colour.ARGB
}

// New returns the HCT colour closest to the requested coordinates.
// Hue is normalised to [0, 360) and tone is clamped to [0, 100]; chroma may
// come back lower than requested because its maximum depends on hue and
// tone, and the result always stays inside the sRGB gamut.
func New(hue, chroma, tone float64) HCT {
	return FromARGB(Solve(hue, chroma, tone))
}

// FromARGB measures an existing colour in HCT coordinates. This direction is
// exact and total: every representable colour has an HCT value.
func FromARGB(c colour.ARGB) HCT {
	measured := cam.FromARGB(c)
	return HCT{
		hue:    measured.Hue,
		chroma: measured.Chroma,
		tone:   colour.LstarFromARGB(c),
		argb:   c,
	}
}

// Hue returns the hue in degrees, in [0, 360).
func (h HCT) Hue() float64 { return h.hue }

// Chroma returns the chroma actually realised, which may be lower than
// requested at construction.
func (h HCT) Chroma() float64 { return h.chroma }

// Tone returns the perceptual lightness L*, in [0, 100].
func (h HCT) Tone() float64 { return h.tone }

// ARGB returns the in-gamut colour these coordinates resolve to.
func (h HCT) ARGB() colour.ARGB { return h.argb }

// WithHue returns the colour re-solved at a new hue. Chroma may decrease.
func (h HCT) WithHue(hue float64) HCT {
	return New(hue, h.chroma, h.tone)
}

// WithChroma returns the colour re-solved at a new chroma. The realised
// chroma may be lower than requested.
func (h HCT) WithChroma(chroma float64) HCT {
	return New(h.hue, chroma, h.tone)
}

// WithTone returns the colour re-solved at a new tone. Chroma may decrease.
func (h HCT) WithTone(tone float64) HCT {
	return New(h.hue, h.chroma, tone)
}

func (h HCT) String() string {
	return fmt.Sprintf("hct(%.1f, %.1f, %.1f)", h.hue, h.chroma, h.tone)
}
