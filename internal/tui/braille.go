package tui

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBuf is a cell grid where each cell holds a 2x4 braille dot
// pattern, the colour that last touched it and optional overlay text.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	ink  [][]color.RGBA
	text [][]rune
	tcol [][]lipgloss.TerminalColor
}

func newBrailleBuf(w, h int) *brailleBuf {
	b := &brailleBuf{w: w, h: h}
	b.m = make([][]uint8, h)
	b.ink = make([][]color.RGBA, h)
	b.text = make([][]rune, h)
	b.tcol = make([][]lipgloss.TerminalColor, h)
	for i := 0; i < h; i++ {
		b.m[i] = make([]uint8, w)
		b.ink[i] = make([]color.RGBA, w)
		b.text[i] = make([]rune, w)
		b.tcol[i] = make([]lipgloss.TerminalColor, w)
	}
	return b
}

var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, c color.RGBA) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[rx][ry]
	b.ink[cy][cx] = c
}

// drawLineMicro draws a line on the microgrid using Bresenham. The
// segment is clipped to the grid first so zoomed-in views stay cheap.
func (b *brailleBuf) drawLineMicro(fx0, fy0, fx1, fy1 float64, c color.RGBA) {
	fx0, fy0, fx1, fy1, ok := clipSegment(fx0, fy0, fx1, fy1, float64(b.w*2), float64(b.h*4))
	if !ok {
		return
	}
	x0, y0 := int(math.Floor(fx0)), int(math.Floor(fy0))
	x1, y1 := int(math.Floor(fx1)), int(math.Floor(fy1))
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// marker draws a 2x2 dot block around a vertex.
func (b *brailleBuf) marker(fx, fy float64, c color.RGBA) {
	if fx < -1 || fy < -1 || fx > float64(b.w*2)+1 || fy > float64(b.h*4)+1 {
		return
	}
	x, y := int(math.Floor(fx)), int(math.Floor(fy))
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			b.setPixel(x-dx+1, y-dy+1, c)
		}
	}
}

// putText writes s starting at cell (cx, cy), clipped to the grid.
func (b *brailleBuf) putText(cx, cy int, s string, c lipgloss.TerminalColor) {
	if cy < 0 || cy >= b.h {
		return
	}
	for i, r := range []rune(s) {
		x := cx + i
		if x < 0 || x >= b.w {
			continue
		}
		b.text[cy][x] = r
		b.tcol[cy][x] = c
	}
}

// render turns the grid into styled lines, one style run per colour.
func (b *brailleBuf) render() string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		var runCol lipgloss.TerminalColor
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runCol == nil {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(runCol).Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			r, col := b.cell(x, y)
			if col != runCol {
				flush()
				runCol = col
			}
			run = append(run, r)
		}
		flush()
		out[y] = sb.String()
	}
	return strings.Join(out, "\n")
}

func (b *brailleBuf) cell(x, y int) (rune, lipgloss.TerminalColor) {
	if r := b.text[y][x]; r != 0 {
		return r, b.tcol[y][x]
	}
	mask := b.m[y][x]
	if mask == 0 {
		return ' ', nil
	}
	return rune(0x2800 + int(mask)), inkColor(b.ink[y][x])
}

// clipSegment clips a segment to [0,w)x[0,h) (Liang-Barsky).
func clipSegment(x0, y0, x1, y1, w, h float64) (float64, float64, float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, w - 1 - x0},
		{-dy, y0},
		{dy, h - 1 - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
