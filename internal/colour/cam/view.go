// Package cam implements the CAM16 colour appearance model under the fixed
// standard viewing conditions used by the theming engine. The forward
// direction turns a colour into perceptual attributes (hue, chroma,
// lightness, brightness, colorfulness, saturation); the inverse turns
// lightness, chroma and hue back into a colour.
package cam

import (
	"math"

	"github.com/jmylchreest/monet/internal/colour"
)

// View holds the precomputed terms of a set of viewing conditions. All of
// monet uses the single standard view; the type exists so the derivation is
// testable against the reference intermediate values.
type View struct {
	N      float64
	AW     float64
	NBB    float64
	NCB    float64
	C      float64
	NC     float64
	FL     float64
	FLRoot float64
	Z      float64
	RGBD   [3]float64
}

// stdView is the standard viewing condition: D65 white point, adapting
// luminance derived from a 50 L* background, average surround.
var stdView = newView(
	colour.WhitePointD65,
	200/math.Pi*colour.YFromLstar(50)/100,
	50,
	2,
	false,
)

// Std returns the standard viewing conditions.
func Std() *View { return &stdView }

func newView(whitePoint [3]float64, adaptingLuminance, backgroundLstar, surround float64, discounting bool) View {
	rW := whitePoint[0]*0.401288 + whitePoint[1]*0.650173 + whitePoint[2]*-0.051461
	gW := whitePoint[0]*-0.250268 + whitePoint[1]*1.204414 + whitePoint[2]*0.045854
	bW := whitePoint[0]*-0.002079 + whitePoint[1]*0.048952 + whitePoint[2]*0.953127

	f := 0.8 + surround/10
	var c float64
	if f >= 0.9 {
		c = colour.Lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		c = colour.Lerp(0.525, 0.59, (f-0.8)*10)
	}

	d := 1.0
	if !discounting {
		d = f * (1 - 1/3.6*math.Exp((-adaptingLuminance-42)/92))
	}
	d = math.Min(1, math.Max(0, d))

	rgbD := [3]float64{
		d*(100/rW) + 1 - d,
		d*(100/gW) + 1 - d,
		d*(100/bW) + 1 - d,
	}

	k := 1 / (5*adaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4
	fl := k4*adaptingLuminance + 0.1*k4F*k4F*math.Cbrt(5*adaptingLuminance)

	n := colour.YFromLstar(backgroundLstar) / whitePoint[1]
	z := 1.48 + math.Sqrt(n)
	nbb := 0.725 / math.Pow(n, 0.2)
	ncb := nbb

	rgbAFactors := [3]float64{
		math.Pow(fl*rgbD[0]*rW/100, 0.42),
		math.Pow(fl*rgbD[1]*gW/100, 0.42),
		math.Pow(fl*rgbD[2]*bW/100, 0.42),
	}
	rgbA := [3]float64{
		400 * rgbAFactors[0] / (rgbAFactors[0] + 27.13),
		400 * rgbAFactors[1] / (rgbAFactors[1] + 27.13),
		400 * rgbAFactors[2] / (rgbAFactors[2] + 27.13),
	}
	aw := (2*rgbA[0] + rgbA[1] + 0.05*rgbA[2]) * nbb

	return View{
		N:      n,
		AW:     aw,
		NBB:    nbb,
		NCB:    ncb,
		C:      c,
		NC:     f,
		FL:     fl,
		FLRoot: math.Pow(fl, 0.25),
		Z:      z,
		RGBD:   rgbD,
	}
}
