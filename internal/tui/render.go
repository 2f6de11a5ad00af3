package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cpdiagram/internal/course"
	"cpdiagram/internal/diagram"
)

// hoverRadius is how close, in dots, the cursor must be to a checkpoint
// centre to highlight it.
const hoverRadius = 8

// renderCanvas draws the scene into a w x h cell map area.
func (m Model) renderCanvas(w, h int) string {
	br := newBrailleBuf(w, h)
	if !m.hasView || !m.vp.Valid() {
		m.placeHint(br)
		return br.render()
	}
	vp := m.vp
	// the map area can change between the last Update and this View
	if vp.W != w*2 || vp.H != h*4 {
		vp.Resize(w*2, h*4)
	}

	for _, l := range m.scene.Lines {
		for i := 1; i < len(l.Points); i++ {
			x0, y0 := vp.ToCanvas(l.Points[i-1])
			x1, y1 := vp.ToCanvas(l.Points[i])
			br.drawLineMicro(x0, y0, x1, y1, l.Color)
		}
		if l.Markers {
			for _, p := range l.Points {
				x, y := vp.ToCanvas(p)
				br.marker(x, y, l.Color)
			}
		}
	}

	for _, lb := range m.scene.Labels {
		x, y := vp.ToCanvas(lb.At)
		// bottom centre of the text sits on the anchor
		cy := int(math.Floor((y - 1) / 4))
		cx := int(math.Floor(x/2)) - len(lb.Text)/2
		br.putText(cx, cy, lb.Text, inkColor(lb.Color))
	}

	if l, ok := m.hovered(vp); ok {
		x, y := vp.ToCanvas(l.Points[1])
		br.putText(int(x/2), int(y/4), "◯", hoverFg)
	}

	if m.inspectPopup != "" {
		drawBox(br, 1, 1, strings.Split(m.inspectPopup, "\n"))
	}
	return br.render()
}

// hovered returns the checkpoint line whose centre is under the cursor.
func (m Model) hovered(vp diagram.Viewport) (diagram.Polyline, bool) {
	if !m.hovering {
		return diagram.Polyline{}, false
	}
	l, ok := m.scene.Nearest(m.hoverPt)
	if !ok {
		return l, false
	}
	hx, hy := vp.ToCanvas(m.hoverPt)
	cx, cy := vp.ToCanvas(l.Points[1])
	if math.Hypot(hx-cx, hy-cy) > hoverRadius {
		return l, false
	}
	return l, true
}

func (m Model) placeHint(br *brailleBuf) {
	msg := "select a course (Tab)"
	if len(m.courses) == 0 {
		msg = "no courses found in " + m.cfg.DataDir
	}
	br.putText(max(0, (br.w-len(msg))/2), br.h/2, msg, baseDimFg)
}

// drawBox writes a framed text box into the grid with its corner at
// (cx, cy).
func drawBox(br *brailleBuf, cx, cy int, lines []string) {
	w := 0
	for _, s := range lines {
		w = max(w, lipgloss.Width(s))
	}
	w = min(w, br.w-cx-4)
	if w <= 0 {
		return
	}
	br.putText(cx, cy, "╭"+strings.Repeat("─", w+2)+"╮", borderCol)
	for i, s := range lines {
		r := []rune(s)
		if len(r) > w {
			r = r[:w]
		}
		br.putText(cx, cy+1+i, "│ "+string(r)+strings.Repeat(" ", w-len(r))+" │", baseFg)
	}
	br.putText(cx, cy+1+len(lines), "╰"+strings.Repeat("─", w+2)+"╯", borderCol)
}

// inspect describes the checkpoint nearest to the centre of the view.
func (m Model) inspect() (string, bool) {
	if !m.hasView {
		return "", false
	}
	centre := m.vp.ToWorld(float64(m.vp.W)/2, float64(m.vp.H)/2)
	l, ok := m.scene.Nearest(centre)
	if !ok || m.table == nil {
		return "", false
	}
	cp, ok := m.checkpoint(l.Checkpoint)
	if !ok {
		return "", false
	}
	c, _ := m.activeCourse()
	meta := []string{
		fmt.Sprintf("course: %s", c.Code),
		fmt.Sprintf("checkpoint: %d", cp.Number),
		fmt.Sprintf("center: %.3f, %.3f, %.3f", cp.Center.X, cp.Center.Y, cp.Center.Z),
		fmt.Sprintf("right: %.4f, %.4f, %.4f", cp.Right.X, cp.Right.Y, cp.Right.Z),
		fmt.Sprintf("track width: %g", cp.TrackWidth),
		fmt.Sprintf("colour: %s", course.Hex(cp.Color)),
		fmt.Sprintf("plot: %s, %s", m.opts.AxisH.Readout(l.Points[1].X), m.opts.AxisV.Readout(l.Points[1].Y)),
	}
	return strings.Join(meta, "\n"), true
}

func (m Model) checkpoint(n int) (course.Checkpoint, bool) {
	if m.table == nil {
		return course.Checkpoint{}, false
	}
	for _, c := range m.table.Checkpoints {
		if c.Number == n {
			return c, true
		}
	}
	return course.Checkpoint{}, false
}
