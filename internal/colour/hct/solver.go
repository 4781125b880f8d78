package hct

import (
	"math"

	"github.com/jmylchreest/monet/internal/colour"
	"github.com/jmylchreest/monet/internal/colour/cam"
)

const (
	// chromaEpsilon is the chroma below which a request is treated as
	// achromatic and answered with the unique gray at the target tone.
	chromaEpsilon = 1e-4

	// luminanceTolerance is the relative error in relative luminance at
	// which the lightness bisection is considered converged.
	luminanceTolerance = 1e-5

	// maxIterations bounds each bisection. The interval shrinks by half per
	// step, so this is far more than needed for convergence; it exists so
	// the search can never run unbounded.
	maxIterations = 100

	// gamutSlack is how far (on the 0-100 linear scale) a channel may sit
	// outside the gamut and still round onto it.
	gamutSlack = 0.01
)

// Solve finds the sRGB colour closest to the given hue, chroma and tone.
// It never fails: out-of-range hue and tone are corrected, and a chroma the
// gamut cannot carry at that hue and tone degrades to the highest chroma
// that fits. Identical inputs always produce identical output.
func Solve(hue, chroma, tone float64) colour.ARGB {
	hue = colour.SanitizeDegrees(hue)
	tone = math.Min(100, math.Max(0, tone))

	// Luminance 0 and 1 each admit exactly one colour.
	if tone <= 0 {
		return colour.FromRGB(0, 0, 0)
	}
	if tone >= 100 {
		return colour.FromRGB(255, 255, 255)
	}

	y := colour.YFromLstar(tone)
	if chroma < chromaEpsilon {
		return colour.ARGBFromLstar(tone)
	}

	if lin, ok := findByLuminance(hue, chroma, y, luminanceTolerance, maxIterations); ok {
		return colour.ARGBFromLinRGB(lin)
	}

	// The requested chroma lies outside the gamut for this hue and tone.
	// Bisect chroma downward, keeping the highest value that fits; chroma
	// zero is the gray at this luminance and always fits, so the search
	// cannot come up empty.
	best := [3]float64{y, y, y}
	low, high := 0.0, chroma
	for i := 0; i < maxIterations && high-low > chromaEpsilon; i++ {
		mid := (low + high) / 2
		if lin, ok := findByLuminance(hue, mid, y, luminanceTolerance, maxIterations); ok {
			best = lin
			low = mid
		} else {
			high = mid
		}
	}
	return colour.ARGBFromLinRGB(best)
}

// findByLuminance searches for a colour with the given hue and chroma whose
// relative luminance matches targetY, by bisecting the CAM16 lightness J.
// Luminance increases monotonically with J at fixed hue and chroma, which is
// what makes the bisection valid.
//
// It returns the linear sRGB components of the best candidate and whether
// that candidate lies inside the gamut. When the iteration cap is reached
// before the tolerance is met, the last midpoint is still returned; callers
// prefer a visually close colour over a failure.
func findByLuminance(hue, chroma, targetY, tolerance float64, maxIter int) ([3]float64, bool) {
	low, high := 0.0, 100.0
	var lin [3]float64
	for i := 0; i < maxIter; i++ {
		mid := (low + high) / 2
		lin = cam.LinearRGBFromJCH(mid, chroma, hue)
		fitted := colour.LuminanceFromLinRGB(lin)
		if math.Abs(fitted-targetY) <= tolerance*targetY {
			break
		}
		if fitted < targetY {
			low = mid
		} else {
			high = mid
		}
	}
	return lin, inGamut(lin)
}

func inGamut(lin [3]float64) bool {
	for _, c := range lin {
		if c < -gamutSlack || c > 100+gamutSlack {
			return false
		}
	}
	return true
}
