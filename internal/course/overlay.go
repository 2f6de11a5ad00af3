package course

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/samber/lo"
)

// CrossingsFile holds crossing attempts for every course in one table.
const CrossingsFile = "Crossings.csv"

// PathPoint is one vertex of a path overlay.
type PathPoint = Vec3

// Crossing is a recorded attempt to get from one position to another,
// e.g. across a gap between two checkpoints.
type Crossing struct {
	Track   string
	From    Vec3
	To      Vec3
	Success bool
}

// PathFile is the file of a named path overlay for a course.
func PathFile(dir, code, name string) string {
	return filepath.Join(dir, code+"_"+name+".csv")
}

// LoadPath reads a path overlay with x, y and z columns.
func LoadPath(path string) ([]PathPoint, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.require("x", "y", "z"); err != nil {
		return nil, err
	}
	pts := make([]PathPoint, 0, len(t.rows))
	for _, r := range t.rows {
		p, err := t.xyz(r, "x", "y", "z")
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// LoadCrossings reads the crossing table and keeps the rows of one course.
func LoadCrossings(path, code string) ([]Crossing, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.require("track", "x1", "y1", "z1", "x2", "y2", "z2", "success"); err != nil {
		return nil, err
	}
	rows := lo.Filter(t.rows, func(r row, _ int) bool { return t.str(r, "track") == code })
	out := make([]Crossing, 0, len(rows))
	for _, r := range rows {
		c := Crossing{Track: code, Success: t.str(r, "success") == "Y"}
		if c.From, err = t.xyz(r, "x1", "y1", "z1"); err != nil {
			return nil, err
		}
		if c.To, err = t.xyz(r, "x2", "y2", "z2"); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// crossingTracks lists the course codes present in the crossing table. A
// missing file means no course has crossing data.
func crossingTracks(dir string) (map[string]bool, error) {
	t, err := readTable(filepath.Join(dir, CrossingsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, err
	}
	if err := t.require("track"); err != nil {
		return nil, err
	}
	return lo.SliceToMap(t.rows, func(r row) (string, bool) { return t.str(r, "track"), true }), nil
}
