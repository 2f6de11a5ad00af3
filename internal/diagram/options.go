package diagram

import "cpdiagram/internal/course"

// Options are the display settings of a diagram. They live only as long as
// the UI session.
type Options struct {
	// Extended checkpoints get a line reaching past the track edges, of
	// ExtendLength measured in the diagram plane.
	Extended     course.Set
	ExtendLength float64
	// Hidden checkpoints are not drawn at all; HiddenNumbers keeps the line
	// but drops the label.
	Hidden        course.Set
	HiddenNumbers course.Set
	// NumberDistance is the gap between a label and the track edge.
	// Negative values put labels on the left side.
	NumberDistance float64
	NumberSize     float64
	DPI            float64
	SaveDPI        float64

	AxisH Axis
	AxisV Axis

	// PathName is the path overlay to draw, "" for none.
	PathName      string
	ShowCrossings bool
}

func DefaultOptions() Options {
	return Options{
		Extended:       course.Set{},
		ExtendLength:   2000,
		Hidden:         course.Set{},
		HiddenNumbers:  course.Set{},
		NumberDistance: 75,
		NumberSize:     14,
		DPI:            100,
		SaveDPI:        100,
		AxisH:          AxisX,
		AxisV:          AxisNegZ,
	}
}
