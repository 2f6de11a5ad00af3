package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func padRight(s string, n int) string {
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

// fitWidth pads or cuts s to exactly n terminal columns.
func fitWidth(s string, n int) string {
	w := lipgloss.Width(s)
	if w >= n {
		return lipgloss.NewStyle().MaxWidth(n).Render(s)
	}
	return padRight(s, n-w)
}
