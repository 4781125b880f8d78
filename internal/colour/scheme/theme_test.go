package scheme

import (
	"testing"

	"github.com/jmylchreest/monet/internal/colour"
	"github.com/jmylchreest/monet/internal/colour/palette"
)

func TestFromSourceColor(t *testing.T) {
	source := colour.ARGB(0xFF4285F4)
	th := FromSourceColor(source)

	if th.Source != source {
		t.Errorf("Source = %#v, want %#v", th.Source, source)
	}
	if len(th.Light) != len(Roles()) || len(th.Dark) != len(Roles()) {
		t.Errorf("scheme sizes = %d/%d, want %d", len(th.Light), len(th.Dark), len(Roles()))
	}
	palettes := map[string]*palette.Tonal{
		"primary":        th.Palettes.Primary,
		"secondary":      th.Palettes.Secondary,
		"tertiary":       th.Palettes.Tertiary,
		"neutral":        th.Palettes.Neutral,
		"neutralVariant": th.Palettes.NeutralVariant,
		"error":          th.Palettes.Error,
	}
	for name, p := range palettes {
		if p == nil {
			t.Errorf("palette %s is nil", name)
		}
	}

	// The schemes are backed by the same palettes the theme exposes.
	if th.Light[Primary] != th.Palettes.Primary.Tone(40) {
		t.Error("light primary does not match the primary palette at tone 40")
	}
	if th.Dark[Primary] != th.Palettes.Primary.Tone(80) {
		t.Error("dark primary does not match the primary palette at tone 80")
	}
}

func TestFromContentColor(t *testing.T) {
	// A vivid source keeps its own chroma in content mode, so the two theme
	// flavours disagree on the secondary palette.
	source := colour.ARGB(0xFFFF0000)
	standard := FromSourceColor(source)
	content := FromContentColor(source)

	if standard.Palettes.Secondary.Chroma() == content.Palettes.Secondary.Chroma() {
		t.Error("content secondary chroma matches standard; expected the source's own chroma to carry through")
	}
	if content.Source != source {
		t.Errorf("Source = %#v, want %#v", content.Source, source)
	}
}

func TestThemeDeterministic(t *testing.T) {
	a := FromSourceColor(0xFF4285F4)
	b := FromSourceColor(0xFF4285F4)
	for _, role := range Roles() {
		if a.Light[role] != b.Light[role] || a.Dark[role] != b.Dark[role] {
			t.Fatalf("role %s differs across identical derivations", role)
		}
	}
}
