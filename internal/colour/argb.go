// Package colour provides the perceptual colour arithmetic that the rest of
// monet is built on: packed ARGB values, sRGB linearisation, CIE XYZ and
// L*a*b* conversions, and hex string interchange.
package colour

import (
	"fmt"
	"image/color"
	"math"
)

// ARGB is a colour packed as a 32-bit integer in 0xAARRGGBB byte order.
// Alpha is carried but never participates in colour math; conversions treat
// every colour as fully opaque.
type ARGB uint32

// FromRGB packs three 8-bit channels into a fully opaque ARGB value.
func FromRGB(r, g, b uint8) ARGB {
	return 0xFF000000 | ARGB(r)<<16 | ARGB(g)<<8 | ARGB(b)
}

// FromColor converts any color.Color to an opaque ARGB value.
func FromColor(c color.Color) ARGB {
	r, g, b, _ := c.RGBA()
	return FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Alpha returns the alpha channel.
func (c ARGB) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c ARGB) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c ARGB) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c ARGB) Blue() uint8 { return uint8(c) }

// IsOpaque reports whether the alpha channel is fully opaque.
func (c ARGB) IsOpaque() bool { return c.Alpha() == 0xFF }

// AsRGBA returns the colour as a standard color.RGBA.
func (c ARGB) AsRGBA() color.RGBA {
	return color.RGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// String returns the hex form of the colour, e.g. "#ff0000".
func (c ARGB) String() string { return c.Hex() }

// srgbToXYZ maps linear sRGB (0-100 scale) to CIE XYZ under D65.
var srgbToXYZ = [3][3]float64{
	{0.41233895, 0.35762064, 0.18051042},
	{0.2126, 0.7152, 0.0722},
	{0.01932141, 0.11916382, 0.95034478},
}

// xyzToSRGB is the inverse of srgbToXYZ.
var xyzToSRGB = [3][3]float64{
	{3.2413774792388685, -1.5376652402851851, -0.49885366846268053},
	{-0.9691452513005321, 1.8758853451067872, 0.04156585616912061},
	{0.05562093689691305, -0.20395524564742123, 1.0571799111220335},
}

// WhitePointD65 is the reference white: white on a sunny day.
var WhitePointD65 = [3]float64{95.047, 100.0, 108.883}

// Linearized converts a gamma-corrected 8-bit channel to linear light on a
// 0-100 scale.
func Linearized(component uint8) float64 {
	normalized := float64(component) / 255
	if normalized <= 0.040449936 {
		return normalized / 12.92 * 100
	}
	return math.Pow((normalized+0.055)/1.055, 2.4) * 100
}

// Delinearized converts a linear-light value on a 0-100 scale back to a
// gamma-corrected 8-bit channel, rounding to nearest and clamping.
func Delinearized(component float64) uint8 {
	normalized := component / 100
	var delin float64
	if normalized <= 0.0031308 {
		delin = normalized * 12.92
	} else {
		delin = 1.055*math.Pow(normalized, 1/2.4) - 0.055
	}
	return uint8(math.Min(255, math.Max(0, math.Round(delin*255))))
}

func matrixMultiply(row [3]float64, matrix [3][3]float64) [3]float64 {
	return [3]float64{
		row[0]*matrix[0][0] + row[1]*matrix[0][1] + row[2]*matrix[0][2],
		row[0]*matrix[1][0] + row[1]*matrix[1][1] + row[2]*matrix[1][2],
		row[0]*matrix[2][0] + row[1]*matrix[2][1] + row[2]*matrix[2][2],
	}
}

// XYZFromARGB converts a colour to CIE XYZ coordinates (0-100 scale).
func XYZFromARGB(c ARGB) (x, y, z float64) {
	lin := [3]float64{Linearized(c.Red()), Linearized(c.Green()), Linearized(c.Blue())}
	xyz := matrixMultiply(lin, srgbToXYZ)
	return xyz[0], xyz[1], xyz[2]
}

// ARGBFromXYZ converts CIE XYZ coordinates (0-100 scale) to the nearest
// representable opaque colour.
func ARGBFromXYZ(x, y, z float64) ARGB {
	return ARGBFromLinRGB(matrixMultiply([3]float64{x, y, z}, xyzToSRGB))
}

// LinRGBFromXYZ converts CIE XYZ coordinates to linear sRGB components on a
// 0-100 scale, without clamping to the gamut.
func LinRGBFromXYZ(x, y, z float64) [3]float64 {
	return matrixMultiply([3]float64{x, y, z}, xyzToSRGB)
}

// ARGBFromLinRGB converts linear sRGB components (0-100 scale) to the nearest
// representable opaque colour.
func ARGBFromLinRGB(lin [3]float64) ARGB {
	return FromRGB(Delinearized(lin[0]), Delinearized(lin[1]), Delinearized(lin[2]))
}

// LuminanceFromLinRGB returns the relative luminance Y (0-100 scale) of
// linear sRGB components.
func LuminanceFromLinRGB(lin [3]float64) float64 {
	return srgbToXYZ[1][0]*lin[0] + srgbToXYZ[1][1]*lin[1] + srgbToXYZ[1][2]*lin[2]
}

// LstarFromARGB computes L*, the perceptual lightness of a colour, from
// L*a*b*. 0 is black and 100 is white.
func LstarFromARGB(c ARGB) float64 {
	_, y, _ := XYZFromARGB(c)
	return 116*labF(y/100) - 16
}

// ARGBFromLstar returns the grayscale colour with the given L* lightness.
func ARGBFromLstar(lstar float64) ARGB {
	w := Delinearized(YFromLstar(lstar))
	return FromRGB(w, w, w)
}

// LabFromARGB converts a colour to L*a*b* coordinates.
func LabFromARGB(c ARGB) (l, a, b float64) {
	x, y, z := XYZFromARGB(c)
	fx := labF(x / WhitePointD65[0])
	fy := labF(y / WhitePointD65[1])
	fz := labF(z / WhitePointD65[2])
	return 116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)
}

// ARGBFromLab converts L*a*b* coordinates to the nearest representable
// opaque colour.
func ARGBFromLab(l, a, b float64) ARGB {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x := labInvF(fx) * WhitePointD65[0]
	y := labInvF(fy) * WhitePointD65[1]
	z := labInvF(fz) * WhitePointD65[2]
	return ARGBFromXYZ(x, y, z)
}

// YFromLstar converts perceptual lightness L* to relative luminance Y
// (0-100 scale).
func YFromLstar(lstar float64) float64 {
	return 100 * labInvF((lstar+16)/116)
}

// LstarFromY converts relative luminance Y (0-100 scale) to perceptual
// lightness L*.
func LstarFromY(y float64) float64 {
	return 116*labF(y/100) - 16
}

const (
	labE     = 216.0 / 24389.0
	labKappa = 24389.0 / 27.0
)

func labF(t float64) float64 {
	if t > labE {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labInvF(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > labE {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

// GoString makes failure output in tests readable.
func (c ARGB) GoString() string {
	return fmt.Sprintf("ARGB(0x%08X)", uint32(c))
}
