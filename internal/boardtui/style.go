package boardtui

import (
	"github.com/amonks/todoboard/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title         lipgloss.Style
	pane          lipgloss.Style
	paneActive    lipgloss.Style
	label         lipgloss.Style
	help          lipgloss.Style
	statusInfo    lipgloss.Style
	statusError   lipgloss.Style
	statusSuccess lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	pane := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)
	return styles{
		title:         r.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1),
		pane:          pane,
		paneActive:    pane.BorderForeground(lipgloss.Color("33")),
		label:         r.NewStyle().Bold(true),
		help:          r.NewStyle().Foreground(ui.ColorMuted),
		statusInfo:    r.NewStyle().Foreground(lipgloss.Color("252")),
		statusError:   r.NewStyle().Foreground(lipgloss.Color("1")),
		statusSuccess: r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}
