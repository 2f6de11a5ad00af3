package tui

import (
	"fmt"
	"strconv"
	"strings"

	textinput "github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"cpdiagram/internal/course"
	"cpdiagram/internal/diagram"
)

const formLabelWidth = 34

type fieldKey int

const (
	fieldExtended fieldKey = iota
	fieldExtendLength
	fieldHidden
	fieldHiddenNumbers
	fieldNumberDistance
	fieldNumberSize
	fieldDPI
	fieldSaveDPI
)

// field is one text box of the options form. Values are only read into
// the options when the diagram is updated.
type field struct {
	key   fieldKey
	label string
	input textinput.Model
	// apply parses the text into o; the error text is shown as is.
	apply func(o *diagram.Options, s string) error
}

func numberField(name string, dst func(o *diagram.Options) *float64) func(*diagram.Options, string) error {
	return func(o *diagram.Options, s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("%s must be a number.", name)
		}
		*dst(o) = v
		return nil
	}
}

func setField(name string, dst func(o *diagram.Options) *course.Set) func(*diagram.Options, string) error {
	return func(o *diagram.Options, s string) error {
		set, err := course.ParseSet(s)
		if err != nil {
			return fmt.Errorf("%s are not in the correct format.", name)
		}
		*dst(o) = set
		return nil
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newFields(o diagram.Options) []field {
	mk := func(key fieldKey, label, value, placeholder string, apply func(*diagram.Options, string) error) field {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 0
		ti.Placeholder = placeholder
		ti.SetValue(value)
		return field{key: key, label: label, input: ti, apply: apply}
	}
	return []field{
		mk(fieldExtended, "Extended checkpoints:", o.Extended.String(), "e.g. 0,4-8,290",
			setField("Extended checkpoints", func(o *diagram.Options) *course.Set { return &o.Extended })),
		mk(fieldExtendLength, "Extend length:", formatNumber(o.ExtendLength), "",
			numberField("Extend length", func(o *diagram.Options) *float64 { return &o.ExtendLength })),
		mk(fieldHidden, "Hidden checkpoints:", o.Hidden.String(), "same format as extended",
			setField("Hidden checkpoints", func(o *diagram.Options) *course.Set { return &o.Hidden })),
		mk(fieldHiddenNumbers, "Hidden numbers:", o.HiddenNumbers.String(), "same format as extended",
			setField("Hidden numbers", func(o *diagram.Options) *course.Set { return &o.HiddenNumbers })),
		mk(fieldNumberDistance, "Number distance from checkpoint:", formatNumber(o.NumberDistance), "",
			numberField("Number distance", func(o *diagram.Options) *float64 { return &o.NumberDistance })),
		mk(fieldNumberSize, "Number size:", formatNumber(o.NumberSize), "",
			numberField("Number size", func(o *diagram.Options) *float64 { return &o.NumberSize })),
		mk(fieldDPI, "DPI:", formatNumber(o.DPI), "",
			numberField("DPI", func(o *diagram.Options) *float64 { return &o.DPI })),
		mk(fieldSaveDPI, "Save DPI:", formatNumber(o.SaveDPI), "",
			numberField("Save DPI", func(o *diagram.Options) *float64 { return &o.SaveDPI })),
	}
}

// readFields copies the form into the options. A field that fails to parse
// keeps its previous value and its message ends up in the error line; with
// several bad fields the last one wins.
func (m *Model) readFields() {
	for _, f := range m.fields {
		if f.key == fieldSaveDPI {
			// read when saving
			continue
		}
		if err := f.apply(&m.opts, f.input.Value()); err != nil {
			m.errMsg = err.Error()
		}
	}
}

func (m *Model) field(key fieldKey) *field {
	for i := range m.fields {
		if m.fields[i].key == key {
			return &m.fields[i]
		}
	}
	return nil
}

func (m *Model) focusField(i int) {
	n := len(m.fields)
	m.formIdx = ((i % n) + n) % n
	for j := range m.fields {
		if j == m.formIdx {
			m.fields[j].input.Focus()
		} else {
			m.fields[j].input.Blur()
		}
	}
}

func (m *Model) blurFields() {
	for j := range m.fields {
		m.fields[j].input.Blur()
	}
}

func (m Model) renderForm(width int) string {
	inner := max(10, width-4)
	rows := make([]string, 0, len(m.fields))
	for i, f := range m.fields {
		ls := labelStyle
		if m.focus == focusForm && i == m.formIdx {
			ls = focusedLabel
		}
		f.input.Width = max(4, inner-formLabelWidth-1)
		rows = append(rows, fitWidth(ls.Render(f.label)+" "+f.input.View(), inner))
	}
	return boxStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
