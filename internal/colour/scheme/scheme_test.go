package scheme

import (
	"math"
	"testing"

	"github.com/jmylchreest/monet/internal/colour"
	"github.com/jmylchreest/monet/internal/colour/palette"
)

func TestSchemesAreComplete(t *testing.T) {
	sources := []colour.ARGB{0xFF000000, 0xFFFFFFFF, 0xFF808080, 0xFFFF0000, 0xFF4285F4}
	for _, source := range sources {
		core := palette.NewCore(source)
		for name, s := range map[string]Scheme{"light": Light(core), "dark": Dark(core)} {
			if len(s) != len(Roles()) {
				t.Errorf("source %#v: %s scheme has %d roles, want %d", source, name, len(s), len(Roles()))
			}
			for _, role := range Roles() {
				if _, ok := s[role]; !ok {
					t.Errorf("source %#v: %s scheme missing %s", source, name, role)
				}
			}
		}
	}
}

func TestLightSchemeTones(t *testing.T) {
	core := palette.NewCore(0xFF4285F4)
	s := Light(core)

	tests := []struct {
		role Role
		want colour.ARGB
	}{
		{role: Primary, want: core.A1.Tone(40)},
		{role: OnPrimary, want: core.A1.Tone(100)},
		{role: Secondary, want: core.A2.Tone(40)},
		{role: Tertiary, want: core.A3.Tone(40)},
		{role: Error, want: core.Error.Tone(40)},
		{role: Background, want: core.N1.Tone(99)},
		{role: OnBackground, want: core.N1.Tone(10)},
		{role: SurfaceVariant, want: core.N2.Tone(90)},
		{role: Outline, want: core.N2.Tone(50)},
		{role: InversePrimary, want: core.A1.Tone(80)},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			if got := s[tt.role]; got != tt.want {
				t.Errorf("%s = %#v, want %#v", tt.role, got, tt.want)
			}
		})
	}
}

func TestDarkSchemeTones(t *testing.T) {
	core := palette.NewCore(0xFF4285F4)
	s := Dark(core)

	tests := []struct {
		role Role
		want colour.ARGB
	}{
		{role: Primary, want: core.A1.Tone(80)},
		{role: OnPrimary, want: core.A1.Tone(20)},
		{role: Background, want: core.N1.Tone(10)},
		{role: OnBackground, want: core.N1.Tone(90)},
		{role: Outline, want: core.N2.Tone(60)},
		{role: InversePrimary, want: core.A1.Tone(40)},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			if got := s[tt.role]; got != tt.want {
				t.Errorf("%s = %#v, want %#v", tt.role, got, tt.want)
			}
		})
	}
}

func TestShadowAndScrimAreBlack(t *testing.T) {
	core := palette.NewCore(0xFFFF0000)
	for name, s := range map[string]Scheme{"light": Light(core), "dark": Dark(core)} {
		if s[Shadow] != 0xFF000000 {
			t.Errorf("%s shadow = %#v, want black", name, s[Shadow])
		}
		if s[Scrim] != 0xFF000000 {
			t.Errorf("%s scrim = %#v, want black", name, s[Scrim])
		}
	}
}

func TestBlackSourceStillThemes(t *testing.T) {
	// A black source has no hue or chroma to speak of; the scheme must still
	// come out fully populated with a light background near white and a dark
	// background near black.
	core := palette.NewCore(0xFF000000)
	light, dark := Light(core), Dark(core)

	if got := colour.LstarFromARGB(light[Background]); math.Abs(got-99) > 0.5 {
		t.Errorf("light background lightness = %v, want 99", got)
	}
	if got := colour.LstarFromARGB(dark[Background]); math.Abs(got-10) > 0.5 {
		t.Errorf("dark background lightness = %v, want 10", got)
	}
}

func TestPairedRolesContrast(t *testing.T) {
	// Every "on" role must sit at least 40 L* away from its base role, which
	// guarantees a 3.0:1 contrast ratio.
	pairs := [][2]Role{
		{Primary, OnPrimary},
		{Secondary, OnSecondary},
		{Tertiary, OnTertiary},
		{Error, OnError},
		{PrimaryContainer, OnPrimaryContainer},
		{Background, OnBackground},
		{Surface, OnSurface},
	}

	core := palette.NewCore(0xFF4285F4)
	for name, s := range map[string]Scheme{"light": Light(core), "dark": Dark(core)} {
		for _, pair := range pairs {
			base := colour.LstarFromARGB(s[pair[0]])
			on := colour.LstarFromARGB(s[pair[1]])
			if math.Abs(base-on) < 39.5 {
				t.Errorf("%s: %s (%v) vs %s (%v) differ by less than 40 tone",
					name, pair[0], base, pair[1], on)
			}
		}
	}
}

func TestRoleString(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{role: Primary, want: "primary"},
		{role: OnPrimaryContainer, want: "onPrimaryContainer"},
		{role: InversePrimary, want: "inversePrimary"},
		{role: Role(-1), want: "unknown"},
		{role: Role(999), want: "unknown"},
	}
	for _, tt := range tests {
		if got := tt.role.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
