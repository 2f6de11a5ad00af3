package tui

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"cpdiagram/internal/course"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	errorFg   = lipgloss.Color("#EF4444")
	hoverFg   = lipgloss.Color("#FFA500")
	borderCol = lipgloss.Color("#243141")

	appStyle     = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(baseDimFg)
	errorStyle   = lipgloss.NewStyle().Foreground(errorFg)
	labelStyle   = lipgloss.NewStyle().Foreground(baseDimFg).Width(formLabelWidth)
	focusedLabel = lipgloss.NewStyle().Foreground(accentFg).Width(formLabelWidth)
)

// inkColor maps a diagram colour to a terminal colour. Black overlays are
// drawn for a white page; on a terminal they take the foreground colour.
func inkColor(c color.RGBA) lipgloss.TerminalColor {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return baseFg
	}
	return lipgloss.Color(course.Hex(c))
}
