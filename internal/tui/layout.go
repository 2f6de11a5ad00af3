package tui

const (
	sidebarWidth = 28
	headerHeight = 2
	footerHeight = 2
)

// layout is the screen geometry shared by View and the mouse handling.
type layout struct {
	contentW int
	contentH int
	sidebarW int
	formH    int
	// map area in terminal cells
	mapX, mapY int
	mapW, mapH int
}

func (m Model) layout() layout {
	var l layout
	l.contentH = max(4, m.height-headerHeight-footerHeight)
	l.contentW = max(10, m.width)
	gap := 0
	if m.showSidebar {
		l.sidebarW = sidebarWidth
		gap = 1
	}
	if m.showForm {
		// one row per field plus the box border
		l.formH = len(m.fields) + 2
	}
	l.mapX = l.sidebarW + gap
	l.mapY = headerHeight + l.formH
	l.mapW = max(10, l.contentW-l.sidebarW-gap)
	l.mapH = max(4, l.contentH-l.formH)
	return l
}

// canvasSize is the map area in braille dots.
func (l layout) canvasSize() (int, int) {
	return l.mapW * 2, l.mapH * 4
}

// inMap reports whether terminal cell (x, y) lies on the map and returns
// the dot at the centre of that cell.
func (l layout) inMap(x, y int) (float64, float64, bool) {
	if x < l.mapX || x >= l.mapX+l.mapW || y < l.mapY || y >= l.mapY+l.mapH {
		return 0, 0, false
	}
	return float64((x-l.mapX)*2 + 1), float64((y-l.mapY)*4 + 2), true
}
