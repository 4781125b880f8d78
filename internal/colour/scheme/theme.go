package scheme

import (
	"github.com/jmylchreest/monet/internal/colour"
	"github.com/jmylchreest/monet/internal/colour/palette"
)

// Palettes names the core tonal palettes of a theme, for callers that need
// custom tones outside the predefined roles.
type Palettes struct {
	Primary        *palette.Tonal
	Secondary      *palette.Tonal
	Tertiary       *palette.Tonal
	Neutral        *palette.Tonal
	NeutralVariant *palette.Tonal
	Error          *palette.Tonal
}

// Theme is everything derived from one source colour: a light and a dark
// scheme plus the underlying tonal palettes. Immutable once created.
type Theme struct {
	Source   colour.ARGB
	Light    Scheme
	Dark     Scheme
	Palettes Palettes
}

// FromSourceColor derives a complete theme from a source colour using the
// design system's fixed chroma offsets.
func FromSourceColor(source colour.ARGB) Theme {
	return themeFromCore(source, palette.NewCore(source))
}

// FromContentColor derives a theme that preserves the source colour's own
// chroma relationships instead of the fixed offsets.
func FromContentColor(source colour.ARGB) Theme {
	return themeFromCore(source, palette.NewCoreContent(source))
}

func themeFromCore(source colour.ARGB, core *palette.Core) Theme {
	return Theme{
		Source: source,
		Light:  Light(core),
		Dark:   Dark(core),
		Palettes: Palettes{
			Primary:        core.A1,
			Secondary:      core.A2,
			Tertiary:       core.A3,
			Neutral:        core.N1,
			NeutralVariant: core.N2,
			Error:          core.Error,
		},
	}
}
