// Package theme detects the color-scheme preference of the host environment.
package theme

import (
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
	"golang.org/x/term"
)

// SchemeEnvVar overrides the detected color scheme with "light" or "dark".
const SchemeEnvVar = "REPUTE_COLOR_SCHEME"

var _ ports.SchemeDetector = (*Detector)(nil)

// Detector reads the color-scheme preference of the terminal environment.
// It is queried on every call; nothing is cached.
type Detector struct {
	getenv            func(string) string
	isTerminal        func() bool
	hasDarkBackground func() bool
}

// NewDetector creates a Detector bound to the process environment.
func NewDetector() *Detector {
	return &Detector{
		getenv: os.Getenv,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
		hasDarkBackground: termenv.HasDarkBackground,
	}
}

// PrefersDark reports whether the environment prefers a dark scheme.
// The explicit override wins, then COLORFGBG, then a background query when
// stdout is a terminal. Anything else is light.
func (d *Detector) PrefersDark() bool {
	switch strings.ToLower(strings.TrimSpace(d.getenv(SchemeEnvVar))) {
	case string(domain.ThemeDark):
		return true
	case string(domain.ThemeLight):
		return false
	}

	if dark, ok := parseColorFGBG(d.getenv("COLORFGBG")); ok {
		return dark
	}

	if d.isTerminal() {
		return d.hasDarkBackground()
	}
	return false
}

// parseColorFGBG reads the "fg;bg" (or "fg;default;bg") convention.
// ANSI backgrounds 0-6 and 8 are dark.
func parseColorFGBG(v string) (dark, ok bool) {
	if v == "" {
		return false, false
	}
	fields := strings.Split(v, ";")
	bg, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil || bg < 0 || bg > 15 {
		return false, false
	}
	return bg <= 6 || bg == 8, true
}
