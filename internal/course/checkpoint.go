package course

import (
	"image/color"
	"path/filepath"
)

// DefaultTrackWidth is used when a row has neither a true width nor a
// track width.
const DefaultTrackWidth = 90.0

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Checkpoint is one gate of a course: a line across the track through
// Center along Right.
type Checkpoint struct {
	Number     int
	Center     Vec3
	Right      Vec3
	TrackWidth float64
	Color      color.RGBA
	// Raw holds every cell of the source row, aligned with Table.Columns.
	Raw []string
}

// At returns the point lateralOffset units to the right of the center.
// Negative offsets go left.
func (c Checkpoint) At(lateralOffset float64) Vec3 {
	return c.Center.Add(c.Right.Scale(lateralOffset))
}

// Table is a loaded checkpoint file.
type Table struct {
	Path        string
	Columns     []string
	Checkpoints []Checkpoint
}

// LoadCheckpoints reads a course's checkpoint CSV and assigns colours in
// file order.
func LoadCheckpoints(path string) (*Table, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.require("checkpoint", "center_x", "center_y", "center_z", "right_x", "right_y", "right_z"); err != nil {
		return nil, err
	}
	out := &Table{Path: path, Columns: t.columns, Checkpoints: make([]Checkpoint, 0, len(t.rows))}
	for _, r := range t.rows {
		var c Checkpoint
		if c.Number, err = t.int(r, "checkpoint"); err != nil {
			return nil, err
		}
		if c.Center, err = t.vec(r, "center"); err != nil {
			return nil, err
		}
		if c.Right, err = t.vec(r, "right"); err != nil {
			return nil, err
		}
		if c.TrackWidth, err = trackWidth(t, r); err != nil {
			return nil, err
		}
		c.Raw = make([]string, len(t.columns))
		copy(c.Raw, r.cells)
		out.Checkpoints = append(out.Checkpoints, c)
	}
	ramp := ColorRamp(len(out.Checkpoints))
	for i := range out.Checkpoints {
		out.Checkpoints[i].Color = ramp[i]
	}
	return out, nil
}

// trackWidth prefers true_width, which is only filled in for pipes where the
// game's own width stat is misleading.
func trackWidth(t *table, r row) (float64, error) {
	if t.str(r, "true_width") != "" {
		return t.float(r, "true_width")
	}
	if t.str(r, "track_width") != "" {
		return t.float(r, "track_width")
	}
	return DefaultTrackWidth, nil
}

// CheckpointFile is the checkpoint table of a course in dir.
func CheckpointFile(dir, code string) string {
	return filepath.Join(dir, code+".csv")
}
