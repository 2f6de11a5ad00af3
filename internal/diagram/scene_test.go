package diagram

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpdiagram/internal/course"
)

// Three checkpoints along -z, each 100 wide across x.
func straightCourse() []course.Checkpoint {
	cps := make([]course.Checkpoint, 3)
	ramp := course.ColorRamp(len(cps))
	for i := range cps {
		cps[i] = course.Checkpoint{
			Number:     i,
			Center:     course.Vec3{X: 0, Y: 0, Z: float64(-100 * i)},
			Right:      course.Vec3{X: 1},
			TrackWidth: 100,
			Color:      ramp[i],
		}
	}
	return cps
}

func mustSet(t *testing.T, s string) course.Set {
	t.Helper()
	set, err := course.ParseSet(s)
	require.NoError(t, err)
	return set
}

func TestBuildSceneDefaults(t *testing.T) {
	opts := DefaultOptions()
	sc := BuildScene(straightCourse(), Overlays{}, opts)

	require.Len(t, sc.Lines, 3)
	require.Len(t, sc.Labels, 3)

	gate := sc.Lines[1]
	assert.True(t, gate.Markers)
	assert.Equal(t, 1, gate.Checkpoint)
	// -z axis: checkpoint 1 at z=-100 is drawn at y=100
	assert.Equal(t, []Point{{-50, 100}, {0, 100}, {50, 100}}, gate.Points)

	// label sits 75 past the right edge
	assert.Equal(t, Label{At: Point{125, 100}, Text: "1", Color: gate.Color, Size: 14}, sc.Labels[1])

	assert.Equal(t, BBox{MinX: -50, MinY: 0, MaxX: 125, MaxY: 200}, sc.Bounds)
}

func TestBuildSceneNegativeNumberDistance(t *testing.T) {
	opts := DefaultOptions()
	opts.NumberDistance = -20
	sc := BuildScene(straightCourse()[:1], Overlays{}, opts)
	require.Len(t, sc.Labels, 1)
	assert.Equal(t, Point{-70, 0}, sc.Labels[0].At)
}

func TestBuildSceneExtended(t *testing.T) {
	opts := DefaultOptions()
	opts.Extended = mustSet(t, "0")
	opts.ExtendLength = 400
	sc := BuildScene(straightCourse(), Overlays{}, opts)

	require.Len(t, sc.Lines, 4)
	ext := sc.Lines[1]
	assert.Equal(t, 0, ext.Checkpoint)
	assert.False(t, ext.Markers)
	assert.Equal(t, []Point{{-400, 0}, {400, 0}}, ext.Points)
	// extended lines do not widen the framing
	assert.Equal(t, -50.0, sc.Bounds.MinX)
}

func TestBuildSceneForeshortenedCheckpoint(t *testing.T) {
	// the gate points along y, so in an x/-z view it collapses to a point
	cp := course.Checkpoint{Number: 4, Right: course.Vec3{Y: 1}, TrackWidth: 80, Color: color.RGBA{A: 255}}
	opts := DefaultOptions()
	opts.Extended = mustSet(t, "4")
	sc := BuildScene([]course.Checkpoint{cp}, Overlays{}, opts)

	require.Len(t, sc.Lines, 2)
	assert.Equal(t, []Point{{0, 0}, {0, 0}}, sc.Lines[1].Points)
	assert.Equal(t, Point{0, 0}, sc.Labels[0].At)
}

func TestBuildSceneHidden(t *testing.T) {
	opts := DefaultOptions()
	opts.Hidden = mustSet(t, "0,2")
	opts.HiddenNumbers = mustSet(t, "1")
	sc := BuildScene(straightCourse(), Overlays{}, opts)

	require.Len(t, sc.Lines, 1)
	assert.Equal(t, 1, sc.Lines[0].Checkpoint)
	assert.Empty(t, sc.Labels)
}

func TestBuildSceneAllHidden(t *testing.T) {
	opts := DefaultOptions()
	opts.Hidden = mustSet(t, "0-2")
	sc := BuildScene(straightCourse(), Overlays{}, opts)
	assert.Empty(t, sc.Lines)
	assert.True(t, sc.Bounds.Empty())
}

func TestBuildSceneOverlays(t *testing.T) {
	ov := Overlays{
		Path: []course.PathPoint{{X: 1, Z: -1}, {X: 2, Z: -2}, {X: 3, Z: -3}},
		Crossings: []course.Crossing{
			{From: course.Vec3{X: 0}, To: course.Vec3{X: 10}, Success: true},
			{From: course.Vec3{X: 0}, To: course.Vec3{X: -10}, Success: false},
		},
	}
	sc := BuildScene(nil, ov, DefaultOptions())
	require.Len(t, sc.Lines, 3)

	path := sc.Lines[0]
	assert.Equal(t, ColorPath, path.Color)
	assert.False(t, path.Markers)
	assert.Equal(t, -1, path.Checkpoint)
	assert.Equal(t, []Point{{1, 1}, {2, 2}, {3, 3}}, path.Points)

	assert.Equal(t, ColorCrossingOK, sc.Lines[1].Color)
	assert.Equal(t, ColorCrossingFailed, sc.Lines[2].Color)
	assert.True(t, sc.Lines[2].Markers)
}

func TestToggleOptionLeavesCheckpointsUntouched(t *testing.T) {
	cps := straightCourse()
	before := straightCourse()

	opts := DefaultOptions()
	a := BuildScene(cps, Overlays{}, opts)
	opts.HiddenNumbers = mustSet(t, "0-2")
	b := BuildScene(cps, Overlays{}, opts)

	assert.Equal(t, before, cps)
	assert.Equal(t, a.Lines, b.Lines, "only labels change")
	assert.Len(t, a.Labels, 3)
	assert.Empty(t, b.Labels)
}

func TestSceneNearest(t *testing.T) {
	opts := DefaultOptions()
	opts.Extended = mustSet(t, "0-2")
	sc := BuildScene(straightCourse(), Overlays{}, opts)

	l, ok := sc.Nearest(Point{10, 190})
	require.True(t, ok)
	assert.Equal(t, 2, l.Checkpoint)

	_, ok = Scene{}.Nearest(Point{})
	assert.False(t, ok)
}
