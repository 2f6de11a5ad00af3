package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/samber/lo"

	"cpdiagram/internal/course"
)

const maxColW = 14

// refreshTable rebuilds the checkpoint table from the raw columns of the
// loaded course file.
func (m *Model) refreshTable() {
	if m.table == nil || len(m.table.Checkpoints) == 0 {
		m.showTable = false
		m.focus = focusCanvas
		m.status = "no checkpoints for current course"
		return
	}
	tcols := make([]table.Column, 0, len(m.table.Columns)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for _, c := range m.table.Columns {
		tcols = append(tcols, table.Column{Title: c, Width: min(maxColW, max(6, len(c)+2))})
	}
	trows := lo.Map(m.table.Checkpoints, func(cp course.Checkpoint, i int) table.Row {
		row := make([]string, len(tcols))
		row[0] = strconv.Itoa(i + 1)
		copy(row[1:], cp.Raw)
		return row
	})
	// clear rows first so the table never sees rows wider than its columns
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
	m.tbl.GotoTop()
}
