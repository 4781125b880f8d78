package cam

import (
	"math"

	"github.com/jmylchreest/monet/internal/colour"
)

// CAM is a colour measured in the CAM16 appearance model: six perceptual
// dimensions plus the CAM16-UCS cartesian coordinates used for blending.
type CAM struct {

	// Hue is the spectral identity of the colour in degrees, 0-360.
	Hue float64

	// Chroma is colourfulness relative to a neutral gray of the same
	// lightness; 0 is grayscale, and the maximum varies with hue and tone.
	Chroma float64

	// J is lightness relative to the reference white.
	J float64

	// Q is brightness, the apparent amount of light from the colour.
	Q float64

	// M is colorfulness, the absolute chromatic intensity.
	M float64

	// S is saturation, colourfulness relative to brightness.
	S float64

	// JStar, AStar and BStar are the CAM16-UCS coordinates.
	JStar, AStar, BStar float64
}

// FromARGB measures a colour under the standard viewing conditions.
func FromARGB(c colour.ARGB) CAM {
	return FromXYZ(colour.XYZFromARGB(c))
}

// FromXYZ measures 100-scale XYZ coordinates under the standard viewing
// conditions.
func FromXYZ(x, y, z float64) CAM {
	vw := Std()

	// Cone responses, chromatically adapted for the D65 illuminant.
	rT := x*0.401288 + y*0.650173 + z*-0.051461
	gT := x*-0.250268 + y*1.204414 + z*0.045854
	bT := x*-0.002079 + y*0.048952 + z*0.953127

	rD := vw.RGBD[0] * rT
	gD := vw.RGBD[1] * gT
	bD := vw.RGBD[2] * bT

	rA := adapt(rD, vw.FL)
	gA := adapt(gD, vw.FL)
	bA := adapt(bD, vw.FL)

	// Opponent dimensions.
	a := (11*rA - 12*gA + bA) / 11
	b := (rA + gA - 2*bA) / 9
	u := (20*rA + 20*gA + 21*bA) / 20
	p2 := (40*rA + 20*gA + bA) / 20

	hue := colour.SanitizeDegrees(math.Atan2(b, a) * 180 / math.Pi)

	ac := p2 * vw.NBB
	j := 100 * math.Pow(ac/vw.AW, vw.C*vw.Z)
	q := 4 / vw.C * math.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math.Cos(huePrime*math.Pi/180+2) + 3.8)
	p1 := 50000.0 / 13 * eHue * vw.NC * vw.NCB
	t := p1 * math.Hypot(a, b) / (u + 0.305)
	alpha := math.Pow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, vw.N), 0.73)

	chroma := alpha * math.Sqrt(j/100)
	m := chroma * vw.FLRoot
	s := 50 * math.Sqrt(alpha*vw.C/(vw.AW+4))

	jstar := (1 + 100*0.007) * j / (1 + 0.007*j)
	mstar := 1 / 0.0228 * math.Log(1+0.0228*m)
	hueRad := hue * math.Pi / 180

	return CAM{
		Hue:    hue,
		Chroma: chroma,
		J:      j,
		Q:      q,
		M:      m,
		S:      s,
		JStar:  jstar,
		AStar:  mstar * math.Cos(hueRad),
		BStar:  mstar * math.Sin(hueRad),
	}
}

// FromJCH reconstructs the full set of appearance attributes from lightness,
// chroma and hue under the standard viewing conditions.
func FromJCH(j, chroma, hue float64) CAM {
	vw := Std()

	q := 4 / vw.C * math.Sqrt(j/100) * (vw.AW + 4) * vw.FLRoot
	m := chroma * vw.FLRoot
	var alpha float64
	if j != 0 {
		alpha = chroma / math.Sqrt(j/100)
	}
	s := 50 * math.Sqrt(alpha*vw.C/(vw.AW+4))

	hueRad := hue * math.Pi / 180
	jstar := (1 + 100*0.007) * j / (1 + 0.007*j)
	mstar := 1 / 0.0228 * math.Log(1+0.0228*m)

	return CAM{
		Hue:    hue,
		Chroma: chroma,
		J:      j,
		Q:      q,
		M:      m,
		S:      s,
		JStar:  jstar,
		AStar:  mstar * math.Cos(hueRad),
		BStar:  mstar * math.Sin(hueRad),
	}
}

// FromUCS converts CAM16-UCS coordinates back to appearance attributes under
// the standard viewing conditions.
func FromUCS(jstar, astar, bstar float64) CAM {
	vw := Std()

	m := math.Hypot(astar, bstar)
	m2 := (math.Exp(m*0.0228) - 1) / 0.0228
	c := m2 / vw.FLRoot
	h := math.Atan2(bstar, astar) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	j := jstar / (1 - (jstar-100)*0.007)

	return FromJCH(j, c, h)
}

// XYZ inverts the appearance attributes to 100-scale XYZ coordinates under
// the standard viewing conditions.
func (c CAM) XYZ() (x, y, z float64) {
	return xyzFromJCH(c.J, c.Chroma, c.Hue)
}

// ToARGB inverts the appearance attributes to the nearest representable
// colour under the standard viewing conditions.
func (c CAM) ToARGB() colour.ARGB {
	return colour.ARGBFromLinRGB(LinearRGBFromJCH(c.J, c.Chroma, c.Hue))
}

// LinearRGBFromJCH inverts CAM16 lightness, chroma and hue to linear sRGB
// components on a 0-100 scale, without clamping to the gamut. The gamut
// solver relies on the unclamped result to detect out-of-gamut candidates.
func LinearRGBFromJCH(j, chroma, hue float64) [3]float64 {
	return colour.LinRGBFromXYZ(xyzFromJCH(j, chroma, hue))
}

func xyzFromJCH(j, chroma, hue float64) (x, y, z float64) {
	vw := Std()

	var alpha float64
	if chroma != 0 && j != 0 {
		alpha = chroma / math.Sqrt(j/100)
	}
	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, vw.N), 0.73), 1/0.9)

	hRad := hue * math.Pi / 180
	eHue := 0.25 * (math.Cos(hRad+2) + 3.8)
	ac := vw.AW * math.Pow(j/100, 1/vw.C/vw.Z)
	p1 := eHue * (50000.0 / 13) * vw.NC * vw.NCB
	p2 := ac / vw.NBB

	hSin := math.Sin(hRad)
	hCos := math.Cos(hRad)

	gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*hCos + 108*t*hSin)
	a := gamma * hCos
	b := gamma * hSin
	rA := (460*p2 + 451*a + 288*b) / 1403
	gA := (460*p2 - 891*a - 261*b) / 1403
	bA := (460*p2 - 220*a - 6300*b) / 1403

	rC := inverseAdapt(rA, vw.FL)
	gC := inverseAdapt(gA, vw.FL)
	bC := inverseAdapt(bA, vw.FL)

	rF := rC / vw.RGBD[0]
	gF := gC / vw.RGBD[1]
	bF := bC / vw.RGBD[2]

	// Inverse of the chromatic adaptation matrix.
	x = 1.86206786*rF - 1.01125463*gF + 0.14918677*bF
	y = 0.38752654*rF + 0.62144744*gF - 0.00897398*bF
	z = -0.01584150*rF - 0.03412294*gF + 1.04996444*bF
	return x, y, z
}

func adapt(component, fl float64) float64 {
	af := math.Pow(fl*math.Abs(component)/100, 0.42)
	return sign(component) * 400 * af / (af + 27.13)
}

func inverseAdapt(adapted, fl float64) float64 {
	base := math.Max(0, 27.13*math.Abs(adapted)/(400-math.Abs(adapted)))
	return sign(adapted) * (100 / fl) * math.Pow(base, 1/0.42)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
