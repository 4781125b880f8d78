// Package scheme assembles colour schemes: complete mappings from semantic
// UI roles to colours, derived from a single source colour.
package scheme

// Role is a semantic slot in a colour scheme, such as the primary accent or
// the colour of text drawn on it.
type Role int

const (
	Primary Role = iota
	OnPrimary
	PrimaryContainer
	OnPrimaryContainer
	Secondary
	OnSecondary
	SecondaryContainer
	OnSecondaryContainer
	Tertiary
	OnTertiary
	TertiaryContainer
	OnTertiaryContainer
	Error
	OnError
	ErrorContainer
	OnErrorContainer
	Background
	OnBackground
	Surface
	OnSurface
	SurfaceVariant
	OnSurfaceVariant
	Outline
	OutlineVariant
	Shadow
	Scrim
	InverseSurface
	InverseOnSurface
	InversePrimary

	numRoles
)

var roleNames = [numRoles]string{
	Primary:              "primary",
	OnPrimary:            "onPrimary",
	PrimaryContainer:     "primaryContainer",
	OnPrimaryContainer:   "onPrimaryContainer",
	Secondary:            "secondary",
	OnSecondary:          "onSecondary",
	SecondaryContainer:   "secondaryContainer",
	OnSecondaryContainer: "onSecondaryContainer",
	Tertiary:             "tertiary",
	OnTertiary:           "onTertiary",
	TertiaryContainer:    "tertiaryContainer",
	OnTertiaryContainer:  "onTertiaryContainer",
	Error:                "error",
	OnError:              "onError",
	ErrorContainer:       "errorContainer",
	OnErrorContainer:     "onErrorContainer",
	Background:           "background",
	OnBackground:         "onBackground",
	Surface:              "surface",
	OnSurface:            "onSurface",
	SurfaceVariant:       "surfaceVariant",
	OnSurfaceVariant:     "onSurfaceVariant",
	Outline:              "outline",
	OutlineVariant:       "outlineVariant",
	Shadow:               "shadow",
	Scrim:                "scrim",
	InverseSurface:       "inverseSurface",
	InverseOnSurface:     "inverseOnSurface",
	InversePrimary:       "inversePrimary",
}

// String returns the role's camelCase name as used in theme documents.
func (r Role) String() string {
	if r < 0 || r >= numRoles {
		return "unknown"
	}
	return roleNames[r]
}

// Roles returns every defined role, in declaration order.
func Roles() []Role {
	roles := make([]Role, numRoles)
	for i := range roles {
		roles[i] = Role(i)
	}
	return roles
}
