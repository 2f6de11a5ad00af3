package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/samber/lo"

	"cpdiagram/internal/course"
	"cpdiagram/internal/diagram"
	"cpdiagram/internal/logging"
)

type courseItem struct {
	c course.Course
}

func (i courseItem) Title() string {
	var tags []string
	if n := len(i.c.Paths); n > 0 {
		tags = append(tags, fmt.Sprintf("%d path", n))
	}
	if i.c.HasCrossings {
		tags = append(tags, "crossings")
	}
	if len(tags) == 0 {
		return i.c.Code
	}
	return i.c.Code + "  " + strings.Join(tags, ", ")
}
func (i courseItem) Description() string { return i.c.CheckpointFile() }
func (i courseItem) FilterValue() string { return i.c.Code }

func (m *Model) refreshCourses() {
	log := logging.For("tui")
	courses, err := course.Discover(m.cfg.DataDir)
	if err != nil {
		log.Error().Err(err).Str("dir", m.cfg.DataDir).Msg("discover courses")
		m.errMsg = fmt.Sprintf("There was a problem trying to read %s: %v", m.cfg.DataDir, err)
		return
	}
	m.courses = courses
	items := lo.Map(courses, func(c course.Course, _ int) list.Item { return courseItem{c: c} })
	m.l.SetItems(items)
	log.Debug().Int("courses", len(courses)).Str("dir", m.cfg.DataDir).Msg("discovered courses")
	if len(items) == 0 {
		m.status = "no course tables in " + m.cfg.DataDir
		return
	}
	m.status = fmt.Sprintf("%d courses in %s", len(items), m.cfg.DataDir)
}

// selectCourse makes courses[i] active and redraws. Overlay choices belong
// to a course, so they are reset.
func (m *Model) selectCourse(i int) {
	if i < 0 || i >= len(m.courses) {
		return
	}
	if i != m.active {
		m.active = i
		m.courseChanged = true
		m.opts.PathName = ""
		m.opts.ShowCrossings = false
	}
	m.updateDiagram()
}

// updateDiagram reads the form, reloads what the options need and rebuilds
// the scene. The view is kept unless the course changed.
func (m *Model) updateDiagram() {
	m.errMsg = ""
	m.readFields()
	if _, ok := m.activeCourse(); !ok {
		return
	}
	if m.courseChanged {
		m.readCheckpoints()
	}
	m.readOverlays()
	m.refresh(m.courseChanged)
	m.courseChanged = false
}

func (m *Model) readCheckpoints() {
	c, _ := m.activeCourse()
	p := c.CheckpointFile()
	t, err := course.LoadCheckpoints(p)
	if err != nil {
		logging.For("tui").Error().Err(err).Str("course", c.Code).Msg("load checkpoints")
		m.errMsg = fmt.Sprintf("There was a problem trying to read %s: %v", p, err)
		m.table = nil
		return
	}
	m.table = t
	m.status = fmt.Sprintf("loaded %s: %d checkpoints", filepath.Base(p), len(t.Checkpoints))
	if m.showTable {
		m.refreshTable()
	}
}

func (m *Model) readOverlays() {
	c, _ := m.activeCourse()
	log := logging.For("tui")
	m.path = nil
	if m.opts.PathName != "" {
		p := c.PathFile(m.opts.PathName)
		pts, err := course.LoadPath(p)
		if err != nil {
			log.Error().Err(err).Str("path", p).Msg("load path overlay")
			m.errMsg = fmt.Sprintf("There was a problem trying to read %s: %v", p, err)
		} else {
			m.path = pts
		}
	}
	m.crossings = nil
	if m.opts.ShowCrossings && c.HasCrossings {
		p := filepath.Join(c.Dir, course.CrossingsFile)
		cs, err := course.LoadCrossings(p, c.Code)
		if err != nil {
			log.Error().Err(err).Str("path", p).Msg("load crossings")
			m.errMsg = fmt.Sprintf("There was a problem trying to read %s: %v", p, err)
		} else {
			m.crossings = cs
		}
	}
}

// refresh rebuilds the scene from loaded data. With refit the view frames
// the new scene, otherwise pan and zoom are kept.
func (m *Model) refresh(refit bool) {
	var cps []course.Checkpoint
	if m.table != nil {
		cps = m.table.Checkpoints
	}
	m.scene = diagram.BuildScene(cps, diagram.Overlays{Path: m.path, Crossings: m.crossings}, m.opts)
	if refit || !m.hasView {
		m.fit()
	}
}

func (m *Model) fit() {
	w, h := m.layout().canvasSize()
	m.vp = diagram.Fit(m.scene.Bounds, w, h)
	m.hasView = true
	m.pendingFit = m.width == 0
}

// resizeView follows a change of the map area.
func (m *Model) resizeView() {
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-4, m.layout().contentH-2)
	}
	if !m.hasView {
		return
	}
	if m.pendingFit {
		m.fit()
		return
	}
	w, h := m.layout().canvasSize()
	if w != m.vp.W || h != m.vp.H {
		m.vp.Resize(w, h)
	}
}

// cyclePath steps through "no path" and the course's path overlays.
func (m *Model) cyclePath() {
	c, ok := m.activeCourse()
	if !ok || len(c.Paths) == 0 {
		m.status = "no paths for this course"
		return
	}
	choices := append([]string{""}, c.Paths...)
	i := lo.IndexOf(choices, m.opts.PathName)
	m.opts.PathName = choices[(i+1)%len(choices)]
	m.updateDiagram()
	if m.opts.PathName == "" {
		m.status = "path: none"
	} else {
		m.status = "path: " + m.opts.PathName
	}
}

func (m *Model) toggleCrossings() {
	c, ok := m.activeCourse()
	if !ok || !c.HasCrossings {
		m.status = "no crossing data for this course"
		return
	}
	m.opts.ShowCrossings = !m.opts.ShowCrossings
	m.updateDiagram()
	m.status = fmt.Sprintf("crossings: %v", m.opts.ShowCrossings)
}

// cycleAxis advances one plot axis and frames the new projection.
func (m *Model) cycleAxis(vertical bool) {
	if vertical {
		m.opts.AxisV = m.opts.AxisV.Next()
	} else {
		m.opts.AxisH = m.opts.AxisH.Next()
	}
	m.status = fmt.Sprintf("axes: %s / %s", m.opts.AxisH, m.opts.AxisV)
	if _, ok := m.activeCourse(); ok {
		m.refresh(true)
	}
}
