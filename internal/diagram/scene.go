package diagram

import (
	"image/color"
	"math"
	"strconv"

	"cpdiagram/internal/course"
)

var (
	ColorPath           = color.RGBA{A: 255}
	ColorCrossingOK     = color.RGBA{A: 255}
	ColorCrossingFailed = color.RGBA{R: 153, G: 153, B: 153, A: 255}
)

// Polyline is a connected series of segments. Markers puts a dot on every
// vertex.
type Polyline struct {
	Points  []Point
	Color   color.RGBA
	Markers bool
	// Checkpoint is the number of the checkpoint the line belongs to, -1
	// for overlays.
	Checkpoint int
}

// Label is text whose bottom centre sits at At.
type Label struct {
	At    Point
	Text  string
	Color color.RGBA
	// Size is the font size in points.
	Size float64
}

// Scene is everything a renderer draws for one course and set of options.
type Scene struct {
	Lines  []Polyline
	Labels []Label
	// Bounds covers the checkpoint lines and labels but not extended lines
	// or overlays, so the default view frames the course itself.
	Bounds BBox
}

// Overlays are the optional data drawn on top of the checkpoints.
type Overlays struct {
	Path      []course.PathPoint
	Crossings []course.Crossing
}

// BuildScene turns checkpoint geometry into drawing primitives. It only
// reads its inputs.
func BuildScene(cps []course.Checkpoint, ov Overlays, opts Options) Scene {
	h, v := opts.AxisH, opts.AxisV
	project := func(p course.Vec3) Point { return Point{X: h.Of(p), Y: v.Of(p)} }

	sc := Scene{Bounds: EmptyBBox()}
	for _, c := range cps {
		if opts.Hidden.Has(c.Number) {
			continue
		}
		half := c.TrackWidth / 2
		gate := []Point{project(c.At(-half)), project(c.At(0)), project(c.At(half))}
		sc.Lines = append(sc.Lines, Polyline{Points: gate, Color: c.Color, Markers: true, Checkpoint: c.Number})

		// Lengths given in the diagram plane are converted to lateral
		// offsets along the checkpoint, which may be foreshortened.
		planeHalf := math.Hypot(gate[1].X-gate[0].X, gate[1].Y-gate[0].Y)
		toLateral := func(planeLen float64) float64 {
			if planeHalf == 0 {
				// the checkpoint is perpendicular to the diagram plane
				return 0
			}
			return planeLen * half / planeHalf
		}

		if opts.Extended.Has(c.Number) {
			ext := toLateral(opts.ExtendLength)
			sc.Lines = append(sc.Lines, Polyline{
				Points:     []Point{project(c.At(-ext)), project(c.At(ext))},
				Color:      c.Color,
				Checkpoint: c.Number,
			})
		}

		if !opts.HiddenNumbers.Has(c.Number) {
			dist := opts.NumberDistance - half
			if opts.NumberDistance > 0 {
				dist = opts.NumberDistance + half
			}
			at := project(c.At(toLateral(dist)))
			sc.Labels = append(sc.Labels, Label{At: at, Text: strconv.Itoa(c.Number), Color: c.Color, Size: opts.NumberSize})
			sc.Bounds.Extend(at)
		}
		sc.Bounds.Extend(gate...)
	}

	if len(ov.Path) > 0 {
		pts := make([]Point, len(ov.Path))
		for i, p := range ov.Path {
			pts[i] = project(p)
		}
		sc.Lines = append(sc.Lines, Polyline{Points: pts, Color: ColorPath, Checkpoint: -1})
	}
	for _, cr := range ov.Crossings {
		col := ColorCrossingFailed
		if cr.Success {
			col = ColorCrossingOK
		}
		sc.Lines = append(sc.Lines, Polyline{
			Points:     []Point{project(cr.From), project(cr.To)},
			Color:      col,
			Markers:    true,
			Checkpoint: -1,
		})
	}
	return sc
}

// Nearest returns the checkpoint line whose centre is closest to p.
func (sc Scene) Nearest(p Point) (Polyline, bool) {
	best := math.Inf(1)
	var out Polyline
	found := false
	for _, l := range sc.Lines {
		if l.Checkpoint < 0 || len(l.Points) != 3 {
			continue
		}
		c := l.Points[1]
		if d := math.Hypot(c.X-p.X, c.Y-p.Y); d < best {
			best, out, found = d, l, true
		}
	}
	return out, found
}
