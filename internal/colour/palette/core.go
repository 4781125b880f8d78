package palette

import (
	"math"

	"github.com/jmylchreest/monet/internal/colour"
	"github.com/jmylchreest/monet/internal/colour/hct"
)

// Core is the set of tonal palettes a colour scheme is assembled from: three
// accent palettes, two neutral palettes and the fixed error palette.
type Core struct {
	A1    *Tonal // primary accent
	A2    *Tonal // secondary accent
	A3    *Tonal // tertiary accent
	N1    *Tonal // neutral
	N2    *Tonal // neutral variant
	Error *Tonal
}

// NewCore derives the core palettes from a source colour. The accent and
// neutral chromas are the fixed offsets of the design system: the primary
// accent keeps the source chroma but never drops below 48, the others use
// fixed low chromas so surfaces stay close to gray.
func NewCore(source colour.ARGB) *Core {
	h := hct.FromARGB(source)
	hue, chroma := h.Hue(), h.Chroma()
	return &Core{
		A1:    New(hue, math.Max(48, chroma)),
		A2:    New(hue, 16),
		A3:    New(hue+60, 24),
		N1:    New(hue, 4),
		N2:    New(hue, 8),
		Error: New(25, 84),
	}
}

// NewCoreContent derives core palettes that stay faithful to the source
// colour: chroma is carried through proportionally instead of being pushed
// to the design system's fixed values. Used when the source is content
// (e.g. artwork) whose character the theme should preserve.
func NewCoreContent(source colour.ARGB) *Core {
	h := hct.FromARGB(source)
	hue, chroma := h.Hue(), h.Chroma()
	return &Core{
		A1:    New(hue, chroma),
		A2:    New(hue, chroma/3),
		A3:    New(hue+60, chroma/2),
		N1:    New(hue, math.Min(chroma/12, 4)),
		N2:    New(hue, math.Min(chroma/6, 8)),
		Error: New(25, 84),
	}
}
