// Package score ranks quantised colours by how suitable they are as the
// source colour of a theme.
package score

import (
	"sort"

	"github.com/jmylchreest/monet/internal/colour"
	"github.com/jmylchreest/monet/internal/colour/hct"
)

const (
	targetChroma      = 48.0
	weightProportion  = 0.7
	weightChromaAbove = 0.3
	weightChromaBelow = 0.1
	cutoffChroma      = 5.0
	cutoffProportion  = 0.01
	dedupeHueDegrees  = 15.0
)

// Fallback is returned when no candidate is vivid and populous enough to
// carry a theme, e.g. a grayscale image.
const Fallback = colour.ARGB(0xFF4285F4)

type scored struct {
	color colour.ARGB
	score float64
	hue   float64
}

// Ranked orders candidate colours from most to least suitable for theming.
// Suitability favours colours that cover a large share of the image and
// carry chroma near the design system's target; near-achromatic or barely
// present candidates are excluded, and candidates with near-identical hues
// are deduplicated in favour of the better score. The result is never
// empty: with no usable candidate it contains only Fallback.
func Ranked(candidates []colour.Weighted) []colour.ARGB {
	scoredColors := make([]scored, 0, len(candidates))
	for _, cand := range candidates {
		h := hct.FromARGB(cand.Color)
		if h.Chroma() < cutoffChroma || cand.Weight < cutoffProportion {
			continue
		}

		proportionScore := cand.Weight * 100 * weightProportion
		chromaWeight := weightChromaBelow
		if h.Chroma() >= targetChroma {
			chromaWeight = weightChromaAbove
		}
		chromaScore := (h.Chroma() - targetChroma) * chromaWeight

		scoredColors = append(scoredColors, scored{
			color: cand.Color,
			score: proportionScore + chromaScore,
			hue:   h.Hue(),
		})
	}

	sort.SliceStable(scoredColors, func(i, j int) bool {
		return scoredColors[i].score > scoredColors[j].score
	})

	var out []colour.ARGB
	var usedHues []float64
	for _, sc := range scoredColors {
		duplicate := false
		for _, used := range usedHues {
			if colour.DifferenceDegrees(sc.hue, used) < dedupeHueDegrees {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		usedHues = append(usedHues, sc.hue)
		out = append(out, sc.color)
	}

	if len(out) == 0 {
		out = append(out, Fallback)
	}
	return out
}

// Top returns the single best candidate, or Fallback when none qualifies.
func Top(candidates []colour.Weighted) colour.ARGB {
	return Ranked(candidates)[0]
}
