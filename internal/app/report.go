package app

import (
	"fmt"

	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/ui/output"
	"go.trai.ch/repute/internal/ui/style"
)

// report prints one status line per widget and returns how many failed.
func (a *App) report(specs []domain.WidgetSpec, handles []handle) int {
	out := output.New(a.stderr)
	failed := 0

	for i, h := range handles {
		spec := specs[i]
		phase, err := h.status()

		var line string
		switch phase {
		case domain.PhaseReady:
			icon := out.String(style.Check).Foreground(out.Color(string(style.Green)))
			line = fmt.Sprintf("%s %s %s", icon, spec.ID, spec.Address)
		case domain.PhaseError:
			failed++
			icon := out.String(style.Cross).Foreground(out.Color(string(style.Red)))
			line = fmt.Sprintf("%s %s %s %s", icon, spec.ID, spec.Address, domain.UserMessage(err))
		default:
			icon := out.String(style.Dot).Foreground(out.Color(string(style.Yellow)))
			line = fmt.Sprintf("%s %s %s %s", icon, spec.ID, spec.Address, phase)
		}
		_, _ = fmt.Fprintln(out, line)
	}
	return failed
}
