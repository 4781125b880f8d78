package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses a CSS-style hex colour string into an ARGB value. The
// leading '#' is optional. Supported forms are #rgb, #rrggbb and #rrggbbaa;
// any alpha component comes last, per CSS. Anything else is an error; this is
// the only place the colour engine rejects input.
func ParseHex(s string) (ARGB, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var expanded string
	switch len(trimmed) {
	case 3:
		var b strings.Builder
		for _, r := range trimmed {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		expanded = b.String() + "ff"
	case 6:
		expanded = trimmed + "ff"
	case 8:
		expanded = trimmed
	default:
		return 0, fmt.Errorf("invalid hex colour %q: expected 3, 6 or 8 hex digits", s)
	}

	v, err := strconv.ParseUint(expanded, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	// Input is rrggbbaa; repack as aarrggbb.
	rgb := uint32(v >> 8)
	alpha := uint32(v & 0xFF)
	return ARGB(alpha<<24 | rgb), nil
}

// Hex returns the CSS hex form of the colour: #rrggbb for opaque colours,
// #rrggbbaa otherwise.
func (c ARGB) Hex() string {
	if c.IsOpaque() {
		return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.Red(), c.Green(), c.Blue(), c.Alpha())
}
