package scheme

import (
	"github.com/jmylchreest/monet/internal/colour"
	"github.com/jmylchreest/monet/internal/colour/palette"
)

// Scheme is a complete mapping from every Role to a colour, for one mode
// (light or dark). Treat it as immutable once built.
type Scheme map[Role]colour.ARGB

// paletteKey selects one of the core tonal palettes.
type paletteKey int

const (
	a1 paletteKey = iota
	a2
	a3
	n1
	n2
	errPal
)

// roleTone assigns a role its palette and tone for one mode.
type roleTone struct {
	palette paletteKey
	tone    float64
}

// The light and dark tables are the design system's fixed role assignments.
// Paired roles swap ends of the tone scale between modes (light primary is
// tone 40 and its text tone 100; dark primary is tone 80 and its text tone
// 20), which yields sufficient contrast in both modes by construction.
var lightTones = map[Role]roleTone{
	Primary:              {a1, 40},
	OnPrimary:            {a1, 100},
	PrimaryContainer:     {a1, 90},
	OnPrimaryContainer:   {a1, 10},
	Secondary:            {a2, 40},
	OnSecondary:          {a2, 100},
	SecondaryContainer:   {a2, 90},
	OnSecondaryContainer: {a2, 10},
	Tertiary:             {a3, 40},
	OnTertiary:           {a3, 100},
	TertiaryContainer:    {a3, 90},
	OnTertiaryContainer:  {a3, 10},
	Error:                {errPal, 40},
	OnError:              {errPal, 100},
	ErrorContainer:       {errPal, 90},
	OnErrorContainer:     {errPal, 10},
	Background:           {n1, 99},
	OnBackground:         {n1, 10},
	Surface:              {n1, 99},
	OnSurface:            {n1, 10},
	SurfaceVariant:       {n2, 90},
	OnSurfaceVariant:     {n2, 30},
	Outline:              {n2, 50},
	OutlineVariant:       {n2, 80},
	Shadow:               {n1, 0},
	Scrim:                {n1, 0},
	InverseSurface:       {n1, 20},
	InverseOnSurface:     {n1, 95},
	InversePrimary:       {a1, 80},
}

var darkTones = map[Role]roleTone{
	Primary:              {a1, 80},
	OnPrimary:            {a1, 20},
	PrimaryContainer:     {a1, 30},
	OnPrimaryContainer:   {a1, 90},
	Secondary:            {a2, 80},
	OnSecondary:          {a2, 20},
	SecondaryContainer:   {a2, 30},
	OnSecondaryContainer: {a2, 90},
	Tertiary:             {a3, 80},
	OnTertiary:           {a3, 20},
	TertiaryContainer:    {a3, 30},
	OnTertiaryContainer:  {a3, 90},
	Error:                {errPal, 80},
	OnError:              {errPal, 20},
	ErrorContainer:       {errPal, 30},
	OnErrorContainer:     {errPal, 90},
	Background:           {n1, 10},
	OnBackground:         {n1, 90},
	Surface:              {n1, 10},
	OnSurface:            {n1, 90},
	SurfaceVariant:       {n2, 30},
	OnSurfaceVariant:     {n2, 80},
	Outline:              {n2, 60},
	OutlineVariant:       {n2, 30},
	Shadow:               {n1, 0},
	Scrim:                {n1, 0},
	InverseSurface:       {n1, 90},
	InverseOnSurface:     {n1, 20},
	InversePrimary:       {a1, 40},
}

// Light builds the light-mode scheme from a set of core palettes.
func Light(core *palette.Core) Scheme {
	return build(core, lightTones)
}

// Dark builds the dark-mode scheme from a set of core palettes.
func Dark(core *palette.Core) Scheme {
	return build(core, darkTones)
}

func build(core *palette.Core, tones map[Role]roleTone) Scheme {
	palettes := map[paletteKey]*palette.Tonal{
		a1:     core.A1,
		a2:     core.A2,
		a3:     core.A3,
		n1:     core.N1,
		n2:     core.N2,
		errPal: core.Error,
	}
	s := make(Scheme, numRoles)
	for _, role := range Roles() {
		rt := tones[role]
		s[role] = palettes[rt.palette].Tone(rt.tone)
	}
	return s
}
