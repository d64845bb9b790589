// Package style provides shared styling primitives: brand colors and icons
// for the CLI, plus the widget palettes for each color scheme.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Palette is the set of colors a widget is rendered with.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Danger     lipgloss.Color
}

// Light is the palette of the light scheme.
var Light = Palette{
	Background: White,
	Foreground: Ink,
	Muted:      Slate,
	Accent:     Iris,
	Danger:     Red,
}

// Dark is the palette of the dark scheme.
var Dark = Palette{
	Background: Ink,
	Foreground: Mist,
	Muted:      Slate,
	Accent:     Iris,
	Danger:     Red,
}

// ForScheme returns the dark palette when dark is set, the light one otherwise.
func ForScheme(dark bool) Palette {
	if dark {
		return Dark
	}
	return Light
}
