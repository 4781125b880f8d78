package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/monet/internal/colour"
	"github.com/jmylchreest/monet/internal/colour/palette"
	"github.com/jmylchreest/monet/internal/colour/scheme"
)

// colourEnabled reports whether stdout can render truecolor swatches.
func colourEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// swatch renders a coloured block followed by the hex code. When the
// terminal cannot render colour, only the hex code is emitted.
func swatch(c colour.ARGB) string {
	if !colourEnabled() {
		return c.Hex()
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm      \x1b[0m %s",
		c.Red(), c.Green(), c.Blue(), c.Hex())
}

// renderThemePreview lays out both schemes side by side, one row per role.
func renderThemePreview(t scheme.Theme) string {
	var b strings.Builder

	fmt.Fprintf(&b, "source: %s\n\n", swatch(t.Source))
	fmt.Fprintf(&b, "%-22s %-16s %s\n", "role", "light", "dark")

	for _, role := range scheme.Roles() {
		fmt.Fprintf(&b, "%-22s %s   %s\n",
			role.String(), swatch(t.Light[role]), swatch(t.Dark[role]))
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderPalettePreview lays out a tonal palette, one row per tone stop.
func renderPalettePreview(pal *palette.Tonal, tones []float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "hue %.1f  chroma %.1f\n\n", pal.Hue(), pal.Chroma())
	for _, tone := range tones {
		fmt.Fprintf(&b, "%6.4g  %s\n", tone, swatch(pal.Tone(tone)))
	}

	return strings.TrimRight(b.String(), "\n")
}
