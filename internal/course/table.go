package course

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	ErrEmptyTable    = errors.New("csv: no header row")
	ErrMissingColumn = errors.New("csv: missing column")
)

// table is a CSV file with a normalized header: lowercase, spaces turned
// into underscores ("Center X" -> "center_x").
type table struct {
	path    string
	columns []string
	index   map[string]int
	rows    []row
}

type row struct {
	line  int
	cells []string
}

func normalizeColumn(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := parseTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.path = path
	return t, nil
}

func parseTable(r io.Reader) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, err
	}
	t := &table{index: map[string]int{}}
	for i, h := range header {
		c := normalizeColumn(h)
		t.columns = append(t.columns, c)
		if _, dup := t.index[c]; !dup {
			t.index[c] = i
		}
	}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		// rows without a leading value are spacer rows in the spreadsheets
		if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		line, _ := cr.FieldPos(0)
		t.rows = append(t.rows, row{line: line, cells: rec})
	}
	return t, nil
}

func (t *table) has(col string) bool {
	_, ok := t.index[col]
	return ok
}

func (t *table) require(cols ...string) error {
	for _, c := range cols {
		if !t.has(c) {
			return fmt.Errorf("%s: %w %q", t.path, ErrMissingColumn, c)
		}
	}
	return nil
}

// str returns the trimmed cell, or "" for columns the row is too short for.
func (t *table) str(r row, col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

func (t *table) float(r row, col string) (float64, error) {
	s := t.str(r, col)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s line %d column %s: invalid number %q", t.path, r.line, col, s)
	}
	return v, nil
}

func (t *table) int(r row, col string) (int, error) {
	s := t.str(r, col)
	// checkpoint numbers sometimes come out of the spreadsheet as "12.0"
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s line %d column %s: invalid integer %q", t.path, r.line, col, s)
	}
	return int(f), nil
}

func (t *table) vec(r row, prefix string) (Vec3, error) {
	return t.xyz(r, prefix+"_x", prefix+"_y", prefix+"_z")
}

func (t *table) xyz(r row, xc, yc, zc string) (Vec3, error) {
	var v Vec3
	var err error
	if v.X, err = t.float(r, xc); err != nil {
		return Vec3{}, err
	}
	if v.Y, err = t.float(r, yc); err != nil {
		return Vec3{}, err
	}
	if v.Z, err = t.float(r, zc); err != nil {
		return Vec3{}, err
	}
	return v, nil
}
