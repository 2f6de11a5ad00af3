package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	// Header
	title := titleStyle.Render(" cpdiagram ─ checkpoint diagram viewer ")
	header := lipgloss.JoinVertical(lipgloss.Left,
		fitWidth(title, lay.contentW),
		fitWidth(dimStyle.Render(" "+m.summary()), lay.contentW),
	)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		l := m.l
		l.SetSize(sidebarWidth-4, lay.contentH-2)
		st := boxStyle.BorderForeground(borderCol)
		if m.focus == focusSidebar {
			st = st.BorderForeground(accentFg)
		}
		sidebar = st.Width(sidebarWidth - 2).Height(lay.contentH - 2).Render(l.View())
	}

	// Map column
	var mapView string
	if m.showTable {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 2
		}
		maxW := min(lay.mapW, max(32, colW+4))
		t := m.tbl
		t.SetWidth(maxW - 4)
		t.SetHeight(max(2, min(lay.mapH-2, 20)))
		box := boxStyle.Width(maxW - 2).Render(t.View())
		mapView = lipgloss.Place(lay.mapW, lay.mapH, lipgloss.Center, lipgloss.Center, box)
	} else {
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).
			Render(m.renderCanvas(lay.mapW, lay.mapH))
	}
	mapCol := mapView
	if m.showForm {
		mapCol = lipgloss.JoinVertical(lipgloss.Left, m.renderForm(lay.mapW), mapView)
	}

	body := mapCol
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapCol)
	}

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderStatus(lay.contentW), m.renderFooter(lay.contentW))
	return appStyle.Width(lay.contentW).Height(m.height).MaxHeight(m.height).Render(ui)
}

// summary is the one-line state of the diagram under the title.
func (m Model) summary() string {
	code := "no course"
	if c, ok := m.activeCourse(); ok {
		code = c.Code
	}
	path := m.opts.PathName
	if path == "" {
		path = "none"
	}
	parts := []string{
		code,
		fmt.Sprintf("axes %s / %s", m.opts.AxisH, m.opts.AxisV),
		"path " + path,
		fmt.Sprintf("crossings %v", m.opts.ShowCrossings),
	}
	if m.table != nil {
		parts = append(parts, fmt.Sprintf("%d checkpoints", len(m.table.Checkpoints)))
	}
	return strings.Join(parts, "  │  ")
}

// renderStatus shows the status, the error lines and the cursor readout.
func (m Model) renderStatus(width int) string {
	left := dimStyle.Render(" " + m.status + " ")
	if m.errMsg != "" {
		left += errorStyle.Render(" " + m.errMsg)
	}
	if m.saveErr != "" {
		left += errorStyle.Render(" " + m.saveErr)
	}
	coords := ""
	if r := m.readout(); r != "" {
		coords = dimStyle.Render("  " + r + "  ")
	}
	space := max(0, width-lipgloss.Width(left)-lipgloss.Width(coords))
	return fitWidth(left+strings.Repeat(" ", space)+coords, width)
}

func (m Model) renderFooter(width int) string {
	if m.focus == focusSave {
		return fitWidth(" "+m.saveInput.View(), width)
	}
	return fitWidth(m.renderHelp(), width)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	var keys []string
	switch m.focus {
	case focusSidebar:
		keys = []string{"↑↓ move", "/ filter", "Enter select", "Esc map", "Tab hide"}
	case focusForm:
		keys = []string{"↑↓ field", "Enter update diagram", "Esc map"}
	case focusTable:
		keys = []string{"↑↓ scroll", "a/Esc close"}
	default:
		keys = []string{
			"↑↓←→ pan",
			"+/- zoom",
			"r fit",
			"Tab courses",
			"o options",
			"u update",
			"1/2 axes",
			"3 path",
			"4 crossings",
			"s save",
			"a table",
			"i inspect",
			"h help",
			"q quit",
		}
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
