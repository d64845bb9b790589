package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Theme is the color scheme requested for a widget.
type Theme string

const (
	// ThemeAuto follows the host environment's color-scheme preference.
	ThemeAuto Theme = "auto"
	// ThemeLight forces the light scheme.
	ThemeLight Theme = "light"
	// ThemeDark forces the dark scheme.
	ThemeDark Theme = "dark"
)

// ParseTheme validates a theme name. An empty name means auto.
func ParseTheme(name string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(name))); t {
	case "", ThemeAuto:
		return ThemeAuto, nil
	case ThemeLight, ThemeDark:
		return t, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidTheme, "failed to parse theme"), "theme", name)
	}
}

// IsConcrete reports whether the theme needs no environment lookup.
func (t Theme) IsConcrete() bool {
	return t == ThemeLight || t == ThemeDark
}

// Resolve returns the concrete scheme for t. prefersDark is consulted only
// when t is auto or empty, and may be nil.
func (t Theme) Resolve(prefersDark func() bool) Theme {
	if t.IsConcrete() {
		return t
	}
	if prefersDark != nil && prefersDark() {
		return ThemeDark
	}
	return ThemeLight
}
