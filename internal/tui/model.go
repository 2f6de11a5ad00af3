package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cpdiagram/internal/config"
	"cpdiagram/internal/course"
	"cpdiagram/internal/diagram"
)

// focus says which part of the screen receives keys.
type focus int

const (
	focusCanvas focus = iota
	focusSidebar
	focusForm
	focusSave
	focusTable
)

type Model struct {
	width  int
	height int

	cfg config.Config

	showSidebar bool
	showForm    bool
	helpVisible bool
	focus       focus

	status  string
	errMsg  string
	saveErr string

	// Course list
	courses []course.Course
	l       list.Model
	// active indexes courses, -1 until a course is selected
	active        int
	courseChanged bool

	// Data of the active course
	table     *course.Table
	path      []course.PathPoint
	crossings []course.Crossing

	opts  diagram.Options
	scene diagram.Scene
	vp    diagram.Viewport
	// hasView is false until the first fit; a fit before the first
	// WindowSizeMsg is redone once the size is known
	hasView    bool
	pendingFit bool

	// options form
	fields  []field
	formIdx int

	saveInput textinput.Model

	// checkpoint table
	showTable bool
	tbl       table.Model

	// inspect popup
	inspectPopup string

	// mouse drag
	dragging     bool
	dragX, dragY int

	// hover state
	hovering bool
	hoverPt  diagram.Point
}

// New builds the UI for the data directory of cfg.
func New(cfg config.Config) Model {
	m := Model{
		cfg:         cfg,
		helpVisible: true,
		showSidebar: true,
		focus:       focusSidebar,
		active:      -1,
		status:      "cpdiagram ready",
	}
	opts, err := cfg.Defaults.Options()
	if err != nil {
		opts = diagram.DefaultOptions()
		m.errMsg = err.Error()
	}
	m.opts = opts
	m.fields = newFields(opts)

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Courses"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	m.saveInput = textinput.New()
	m.saveInput.Prompt = "Save PNG to: "
	m.saveInput.CharLimit = 0

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)

	m.refreshCourses()
	return m
}

// NewWithCourse starts with the course code already selected.
func NewWithCourse(cfg config.Config, code string) (Model, error) {
	m := New(cfg)
	for i, c := range m.courses {
		if c.Code == code {
			m.l.Select(i)
			m.selectCourse(i)
			m.showSidebar = false
			m.focus = focusCanvas
			return m, nil
		}
	}
	return m, fmt.Errorf("unknown course %q in %s", code, cfg.DataDir)
}

func (m Model) Init() tea.Cmd { return nil }

// activeCourse returns the selected course.
func (m Model) activeCourse() (course.Course, bool) {
	if m.active < 0 || m.active >= len(m.courses) {
		return course.Course{}, false
	}
	return m.courses[m.active], true
}
