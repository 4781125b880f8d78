// Package theme renders a derived colour theme as a serialisable document.
package theme

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/monet/internal/colour"
	"github.com/jmylchreest/monet/internal/colour/palette"
	"github.com/jmylchreest/monet/internal/colour/scheme"
)

// Document is the JSON form of a theme: the source colour, both schemes
// keyed by camelCase role names, and the tonal palettes at the standard
// stops. All colours are hex strings.
type Document struct {
	Source   string                       `json:"source"`
	Light    map[string]string            `json:"light"`
	Dark     map[string]string            `json:"dark"`
	Palettes map[string]map[string]string `json:"palettes"`
}

// FromTheme flattens a theme into its document form.
func FromTheme(t scheme.Theme) Document {
	palettes := map[string]*palette.Tonal{
		"primary":        t.Palettes.Primary,
		"secondary":      t.Palettes.Secondary,
		"tertiary":       t.Palettes.Tertiary,
		"neutral":        t.Palettes.Neutral,
		"neutralVariant": t.Palettes.NeutralVariant,
		"error":          t.Palettes.Error,
	}

	doc := Document{
		Source:   t.Source.Hex(),
		Light:    schemeMap(t.Light),
		Dark:     schemeMap(t.Dark),
		Palettes: make(map[string]map[string]string, len(palettes)),
	}
	for name, p := range palettes {
		stops := make(map[string]string, len(palette.StandardTones))
		for _, tone := range palette.StandardTones {
			stops[fmt.Sprintf("%d", int(tone))] = p.Tone(tone).Hex()
		}
		doc.Palettes[name] = stops
	}
	return doc
}

func schemeMap(s scheme.Scheme) map[string]string {
	out := make(map[string]string, len(s))
	for role, c := range s {
		out[role.String()] = c.Hex()
	}
	return out
}

// MarshalIndent renders the document as indented JSON.
func (d Document) MarshalIndent() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal theme document: %w", err)
	}
	return data, nil
}

// Parse reads a document back from JSON.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse theme document: %w", err)
	}
	return doc, nil
}

// SourceColor returns the document's source colour.
func (d Document) SourceColor() (colour.ARGB, error) {
	return colour.ParseHex(d.Source)
}
