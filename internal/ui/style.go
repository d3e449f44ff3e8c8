// Package ui holds terminal presentation helpers shared by the board
// commands: tables, status colors, and color detection.
package ui

import (
	"io"
	"os"

	"github.com/amonks/todoboard/todo"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Status colors used for card borders and status labels.
var (
	ColorTodo       = lipgloss.Color("#E8871E")
	ColorInProgress = lipgloss.Color("#3B82F6")
	ColorDone       = lipgloss.Color("#22A559")
	ColorMuted      = lipgloss.Color("#808080")
)

// ColorEnabled reports whether stdout should receive ANSI styling.
func ColorEnabled() bool {
	return colorEnabled(os.Getenv, os.Stdout)
}

func colorEnabled(getenv func(string) string, out *os.File) bool {
	if getenv("NO_COLOR") != "" {
		return false
	}
	if getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(out.Fd()))
}

// NewRenderer returns a lipgloss renderer for w. When color is false all
// styling is stripped; when true, at least 256 colors are assumed.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(w)
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
		return renderer
	}
	if renderer.ColorProfile() == termenv.Ascii {
		renderer.SetColorProfile(termenv.ANSI256)
	}
	return renderer
}

// StatusColor returns the accent color for status.
func StatusColor(status todo.Status) lipgloss.Color {
	switch status {
	case todo.StatusTodo:
		return ColorTodo
	case todo.StatusInProgress:
		return ColorInProgress
	case todo.StatusDone:
		return ColorDone
	default:
		return ColorMuted
	}
}

// FormatStatus renders status in its accent color.
func FormatStatus(renderer *lipgloss.Renderer, status todo.Status) string {
	return renderer.NewStyle().Foreground(StatusColor(status)).Bold(true).Render(string(status))
}

// Muted renders value in the muted color.
func Muted(renderer *lipgloss.Renderer, value string) string {
	return renderer.NewStyle().Foreground(ColorMuted).Render(value)
}
