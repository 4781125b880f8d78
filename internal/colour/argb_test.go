package colour

import (
	"image/color"
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestFromRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    ARGB
	}{
		{name: "black", r: 0, g: 0, b: 0, want: 0xFF000000},
		{name: "white", r: 255, g: 255, b: 255, want: 0xFFFFFFFF},
		{name: "red", r: 255, g: 0, b: 0, want: 0xFFFF0000},
		{name: "mixed", r: 0x12, g: 0x34, b: 0x56, want: 0xFF123456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromRGB(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("FromRGB(%d, %d, %d) = %#v, want %#v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestChannelAccessors(t *testing.T) {
	c := ARGB(0x80123456)
	if c.Alpha() != 0x80 {
		t.Errorf("Alpha() = %#02x, want 0x80", c.Alpha())
	}
	if c.Red() != 0x12 {
		t.Errorf("Red() = %#02x, want 0x12", c.Red())
	}
	if c.Green() != 0x34 {
		t.Errorf("Green() = %#02x, want 0x34", c.Green())
	}
	if c.Blue() != 0x56 {
		t.Errorf("Blue() = %#02x, want 0x56", c.Blue())
	}
	if c.IsOpaque() {
		t.Error("IsOpaque() = true for alpha 0x80")
	}
	if !FromRGB(1, 2, 3).IsOpaque() {
		t.Error("IsOpaque() = false for FromRGB result")
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.RGBA{R: 255, G: 119, B: 0, A: 255})
	want := ARGB(0xFFFF7700)
	if got != want {
		t.Errorf("FromColor() = %#v, want %#v", got, want)
	}
}

func TestLinearized(t *testing.T) {
	tests := []struct {
		name      string
		component uint8
		want      float64
	}{
		{name: "zero", component: 0, want: 0},
		{name: "below gamma threshold", component: 1, want: 0.0303527},
		{name: "mid gray", component: 119, want: 18.4474994500441},
		{name: "full", component: 255, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Linearized(tt.component)
			if !almostEqual(got, tt.want, 1e-4) {
				t.Errorf("Linearized(%d) = %v, want %v", tt.component, got, tt.want)
			}
		})
	}
}

func TestDelinearizedRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		c := uint8(i)
		if got := Delinearized(Linearized(c)); got != c {
			t.Fatalf("Delinearized(Linearized(%d)) = %d", c, got)
		}
	}
}

func TestDelinearizedClamps(t *testing.T) {
	if got := Delinearized(-5); got != 0 {
		t.Errorf("Delinearized(-5) = %d, want 0", got)
	}
	if got := Delinearized(150); got != 255 {
		t.Errorf("Delinearized(150) = %d, want 255", got)
	}
}

func TestLstarFromARGB(t *testing.T) {
	tests := []struct {
		name string
		c    ARGB
		want float64
	}{
		{name: "black", c: 0xFF000000, want: 0},
		{name: "white", c: 0xFFFFFFFF, want: 100},
		{name: "purple", c: 0xFF770099, want: 29.965403607253286},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LstarFromARGB(tt.c)
			if !almostEqual(got, tt.want, 1e-4) {
				t.Errorf("LstarFromARGB(%#v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestYFromLstar(t *testing.T) {
	tests := []struct {
		name  string
		lstar float64
		want  float64
	}{
		{name: "black", lstar: 0, want: 0},
		{name: "mid tone", lstar: 50, want: 18.418},
		{name: "white", lstar: 100, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YFromLstar(tt.lstar)
			if !almostEqual(got, tt.want, 1e-3) {
				t.Errorf("YFromLstar(%v) = %v, want %v", tt.lstar, got, tt.want)
			}
		})
	}
}

func TestLstarYRoundTrip(t *testing.T) {
	for lstar := 0.0; lstar <= 100; lstar += 0.5 {
		got := LstarFromY(YFromLstar(lstar))
		if !almostEqual(got, lstar, 1e-9) {
			t.Fatalf("LstarFromY(YFromLstar(%v)) = %v", lstar, got)
		}
	}
}

func TestXYZRoundTrip(t *testing.T) {
	colors := []ARGB{
		0xFF000000, 0xFFFFFFFF,
		0xFFFF0000, 0xFF00FF00, 0xFF0000FF,
		0xFF770099, 0xFF123456, 0xFF808080,
	}
	for _, c := range colors {
		x, y, z := XYZFromARGB(c)
		if got := ARGBFromXYZ(x, y, z); got != c {
			t.Errorf("ARGBFromXYZ(XYZFromARGB(%#v)) = %#v", c, got)
		}
	}
}

func TestWhitePointXYZ(t *testing.T) {
	x, y, z := XYZFromARGB(0xFFFFFFFF)
	if !almostEqual(x, WhitePointD65[0], 0.05) ||
		!almostEqual(y, WhitePointD65[1], 0.05) ||
		!almostEqual(z, WhitePointD65[2], 0.05) {
		t.Errorf("XYZFromARGB(white) = (%v, %v, %v), want D65 white point", x, y, z)
	}
}

func TestLabRoundTrip(t *testing.T) {
	colors := []ARGB{
		0xFF000000, 0xFFFFFFFF,
		0xFFFF0000, 0xFF00FF00, 0xFF0000FF,
		0xFF770099, 0xFF123456,
	}
	for _, c := range colors {
		l, a, b := LabFromARGB(c)
		if got := ARGBFromLab(l, a, b); got != c {
			t.Errorf("ARGBFromLab(LabFromARGB(%#v)) = %#v", c, got)
		}
	}
}

func TestARGBFromLstar(t *testing.T) {
	tests := []struct {
		name  string
		lstar float64
		want  ARGB
	}{
		{name: "black", lstar: 0, want: 0xFF000000},
		{name: "white", lstar: 100, want: 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ARGBFromLstar(tt.lstar); got != tt.want {
				t.Errorf("ARGBFromLstar(%v) = %#v, want %#v", tt.lstar, got, tt.want)
			}
		})
	}

	// Grays come back with equal channels at the requested lightness.
	c := ARGBFromLstar(50)
	if c.Red() != c.Green() || c.Green() != c.Blue() {
		t.Errorf("ARGBFromLstar(50) = %#v, want a gray", c)
	}
	if !almostEqual(LstarFromARGB(c), 50, 0.5) {
		t.Errorf("LstarFromARGB(ARGBFromLstar(50)) = %v", LstarFromARGB(c))
	}
}
