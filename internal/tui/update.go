package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"cpdiagram/internal/export"
	"cpdiagram/internal/logging"
)

// panFraction is the share of the canvas one arrow key press moves.
const panFraction = 0.1

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeView()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.focus {
		case focusSidebar:
			return m.updateSidebar(msg)
		case focusForm:
			return m.updateForm(msg)
		case focusSave:
			return m.updateSave(msg)
		case focusTable:
			return m.updateTable(msg)
		}
		return m.updateCanvas(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg), nil
	}
	return m, nil
}

func (m Model) updateCanvas(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.showSidebar = true
		m.focus = focusSidebar
		m.resizeView()
	case "o":
		m.showForm = true
		m.focus = focusForm
		m.resizeView()
		m.focusField(m.formIdx)
	case "O":
		m.showForm = false
		m.resizeView()
	case "u":
		m.updateDiagram()
		m.status = "diagram updated"
	case "1":
		m.cycleAxis(false)
	case "2":
		m.cycleAxis(true)
	case "3":
		m.cyclePath()
	case "4":
		m.toggleCrossings()
	case "r":
		if m.hasView {
			m.fit()
			m.status = "view reset"
		}
	case "+", "=":
		m.zoomCentre(true)
	case "-", "_":
		m.zoomCentre(false)
	case "up":
		m.panStep(0, -1)
	case "down":
		m.panStep(0, 1)
	case "left":
		m.panStep(-1, 0)
	case "right":
		m.panStep(1, 0)
	case "s":
		return m.startSave()
	case "a":
		m.toggleTable()
	case "i":
		if s, ok := m.inspect(); ok {
			m.inspectPopup = s
			m.status = "inspect popup"
		} else {
			m.inspectPopup = ""
			m.status = "no checkpoint nearby"
		}
	case "h":
		m.helpVisible = !m.helpVisible
	case "esc":
		m.inspectPopup = ""
	}
	return m, nil
}

func (m Model) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// while filtering every key belongs to the list
	if m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.showSidebar = false
		m.focus = focusCanvas
		m.resizeView()
		return m, nil
	case "esc":
		if m.l.FilterState() == list.FilterApplied {
			break
		}
		m.focus = focusCanvas
		return m, nil
	case "enter":
		if it, ok := m.l.SelectedItem().(courseItem); ok {
			for i, c := range m.courses {
				if c.Code == it.c.Code {
					m.selectCourse(i)
					break
				}
			}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.blurFields()
		m.focus = focusCanvas
		return m, nil
	case "tab", "down":
		m.focusField(m.formIdx + 1)
		return m, nil
	case "shift+tab", "up":
		m.focusField(m.formIdx - 1)
		return m, nil
	case "enter":
		m.updateDiagram()
		if m.errMsg == "" {
			m.status = "diagram updated"
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.formIdx].input, cmd = m.fields[m.formIdx].input.Update(msg)
	return m, cmd
}

// startSave reads the save DPI and opens the file prompt. A bad DPI stops
// the save before a path is asked for.
func (m Model) startSave() (tea.Model, tea.Cmd) {
	m.saveErr = ""
	c, ok := m.activeCourse()
	if !ok || !m.hasView {
		m.saveErr = "Nothing to save yet."
		return m, nil
	}
	f := m.field(fieldSaveDPI)
	if err := f.apply(&m.opts, f.input.Value()); err != nil {
		m.saveErr = err.Error()
		return m, nil
	}
	if m.saveInput.Value() == "" {
		m.saveInput.SetValue(c.Code + ".png")
	}
	m.focus = focusSave
	m.saveInput.CursorEnd()
	return m, m.saveInput.Focus()
}

func (m Model) updateSave(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.saveInput.Blur()
		m.focus = focusCanvas
		m.status = "save cancelled"
		return m, nil
	case "enter":
		m.saveInput.Blur()
		m.focus = focusCanvas
		m.save(strings.TrimSpace(m.saveInput.Value()))
		return m, nil
	}
	var cmd tea.Cmd
	m.saveInput, cmd = m.saveInput.Update(msg)
	return m, cmd
}

func (m *Model) save(p string) {
	if p == "" {
		m.status = "save cancelled"
		return
	}
	log := logging.For("tui")
	o := export.Options{Scale: m.cfg.ExportScale, DPI: m.opts.DPI, SaveDPI: m.opts.SaveDPI}
	if err := export.SavePNG(p, m.scene, m.vp, o); err != nil {
		log.Error().Err(err).Str("file", p).Msg("save png")
		m.saveErr = "Save failed: " + err.Error()
		return
	}
	w, h := export.Size(m.vp, o)
	log.Info().Str("file", p).Int("width", w).Int("height", h).Msg("saved png")
	m.status = fmt.Sprintf("saved %s (%dx%d)", p, w, h)
}

func (m *Model) toggleTable() {
	if m.showTable {
		m.showTable = false
		m.focus = focusCanvas
		return
	}
	if m.table == nil {
		m.status = "no course loaded"
		return
	}
	m.showTable = true
	m.focus = focusTable
	m.refreshTable()
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "a", "esc":
		m.toggleTable()
		return m, nil
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m *Model) zoomCentre(in bool) {
	if !m.hasView {
		return
	}
	m.vp.Zoom(float64(m.vp.W)/2, float64(m.vp.H)/2, in)
	m.status = fmt.Sprintf("view width %.0f", m.vp.XMax-m.vp.XMin)
}

// panStep moves the content one step in the given direction.
func (m *Model) panStep(dx, dy float64) {
	if !m.hasView {
		return
	}
	m.vp.Pan(dx*panFraction*float64(m.vp.W), dy*panFraction*float64(m.vp.H))
}

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	lay := m.layout()
	px, py, in := lay.inMap(msg.X, msg.Y)
	switch {
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	case msg.Button == tea.MouseButtonWheelUp && in && m.hasView:
		m.vp.Zoom(px, py, true)
	case msg.Button == tea.MouseButtonWheelDown && in && m.hasView:
		m.vp.Zoom(px, py, false)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && in:
		m.dragging = true
		m.dragX, m.dragY = msg.X, msg.Y
	case msg.Action == tea.MouseActionMotion && m.dragging && m.hasView:
		m.vp.Pan(float64((msg.X-m.dragX)*2), float64((msg.Y-m.dragY)*4))
		m.dragX, m.dragY = msg.X, msg.Y
	}
	m.hovering = in && m.hasView
	if m.hovering {
		m.hoverPt = m.vp.ToWorld(px, py)
	}
	return m
}

// readout is the game position under the cursor, e.g. "x = 12.345, z = -490.730".
func (m Model) readout() string {
	if !m.hovering {
		return ""
	}
	return m.opts.AxisH.Readout(m.hoverPt.X) + ", " + m.opts.AxisV.Readout(m.hoverPt.Y)
}
