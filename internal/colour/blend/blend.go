// Package blend provides colour blending in HCT and CAM16-UCS space.
package blend

import (
	"math"

	"github.com/jmylchreest/monet/internal/colour"
	"github.com/jmylchreest/monet/internal/colour/cam"
	"github.com/jmylchreest/monet/internal/colour/hct"
)

// Harmonize shifts the design colour's hue towards the source colour's hue,
// by at most 15 degrees along the shorter arc, so the result stays
// recognisable while sitting more comfortably next to the theme. Chroma and
// tone are preserved.
func Harmonize(design, source colour.ARGB) colour.ARGB {
	from := hct.FromARGB(design)
	to := hct.FromARGB(source)
	diff := colour.DifferenceDegrees(from.Hue(), to.Hue())
	rotation := math.Min(diff*0.5, 15)
	outputHue := colour.SanitizeDegrees(
		from.Hue() + rotation*colour.RotationDirection(from.Hue(), to.Hue()))
	return hct.New(outputHue, from.Chroma(), from.Tone()).ARGB()
}

// HctHue blends only the hue of from towards to; chroma and tone stay those
// of from. amount is 0 to 1.
func HctHue(from, to colour.ARGB, amount float64) colour.ARGB {
	ucs := Cam16UCS(from, to, amount)
	ucsCam := cam.FromARGB(ucs)
	fromCam := cam.FromARGB(from)
	blended := hct.New(ucsCam.Hue, fromCam.Chroma, colour.LstarFromARGB(from))
	return blended.ARGB()
}

// Cam16UCS blends two colours in CAM16-UCS space; hue, chroma and tone all
// change. amount is 0 to 1.
func Cam16UCS(from, to colour.ARGB, amount float64) colour.ARGB {
	fromCam := cam.FromARGB(from)
	toCam := cam.FromARGB(to)
	jstar := colour.Lerp(fromCam.JStar, toCam.JStar, amount)
	astar := colour.Lerp(fromCam.AStar, toCam.AStar, amount)
	bstar := colour.Lerp(fromCam.BStar, toCam.BStar, amount)
	return cam.FromUCS(jstar, astar, bstar).ToARGB()
}
