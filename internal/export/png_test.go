package export

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpdiagram/internal/diagram"
)

func sampleScene() diagram.Scene {
	red := color.RGBA{R: 255, A: 255}
	sc := diagram.Scene{
		Lines: []diagram.Polyline{
			{Points: []diagram.Point{{X: -50, Y: 0}, {X: 0, Y: 0}, {X: 50, Y: 0}}, Color: red, Markers: true},
			{Points: []diagram.Point{{X: 0, Y: -40}, {X: 0, Y: 40}}, Color: diagram.ColorPath, Checkpoint: -1},
		},
		Labels: []diagram.Label{{At: diagram.Point{X: 60, Y: 0}, Text: "12", Color: red, Size: 14}},
		Bounds: diagram.EmptyBBox(),
	}
	sc.Bounds.Extend(diagram.Point{X: -50, Y: -40}, diagram.Point{X: 60, Y: 40})
	return sc
}

func TestSavePNGMatchesCanvas(t *testing.T) {
	sc := sampleScene()
	vp := diagram.Fit(sc.Bounds, 160, 96)
	p := filepath.Join(t.TempDir(), "out.png")

	require.NoError(t, SavePNG(p, sc, vp, DefaultOptions()))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	require.NotEmpty(t, b)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 160, img.Bounds().Dx())
	assert.Equal(t, 96, img.Bounds().Dy())
}

func TestRenderScalesWithSaveDPI(t *testing.T) {
	sc := sampleScene()
	vp := diagram.Fit(sc.Bounds, 100, 50)
	o := Options{Scale: 2, DPI: 100, SaveDPI: 150}

	w, h := Size(vp, o)
	assert.Equal(t, 300, w)
	assert.Equal(t, 150, h)

	img, err := Render(sc, vp, o)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestRenderDrawsLines(t *testing.T) {
	sc := sampleScene()
	vp := diagram.Fit(sc.Bounds, 200, 120)
	img, err := Render(sc, vp, Options{Scale: 2, DPI: 100, SaveDPI: 100})
	require.NoError(t, err)

	// the vertical path line runs through x=0
	x, y := vp.Scaled(2).ToCanvas(diagram.Point{X: 0, Y: 20})
	got := img.RGBAAt(int(x), int(y))
	assert.NotEqual(t, colorBackground, got)

	// a corner far from everything stays white
	assert.Equal(t, colorBackground, img.RGBAAt(1, 1))
}

func TestRenderEmptyCanvas(t *testing.T) {
	_, err := Render(sampleScene(), diagram.Viewport{}, DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyCanvas)
}

func TestSavePNGBadPath(t *testing.T) {
	sc := sampleScene()
	vp := diagram.Fit(sc.Bounds, 10, 10)
	err := SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), sc, vp, DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSavePNGFailureLeavesNoFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.png")
	err := SavePNG(p, sampleScene(), diagram.Viewport{}, DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCanvas)
	_, statErr := os.Stat(p)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRenderLongLineDeepZoom(t *testing.T) {
	sc := diagram.Scene{
		Lines: []diagram.Polyline{
			{Points: []diagram.Point{{X: -1e6, Y: 0}, {X: 1e6, Y: 0}}, Color: diagram.ColorPath, Checkpoint: -1},
		},
	}
	// a window 0.01 units wide around the origin
	vp := diagram.Viewport{XMin: -0.005, XMax: 0.005, YMin: -0.003, YMax: 0.003, W: 100, H: 60}
	img, err := Render(sc, vp, DefaultOptions())
	require.NoError(t, err)

	x, y := vp.ToCanvas(diagram.Point{X: 0, Y: 0})
	assert.NotEqual(t, colorBackground, img.RGBAAt(int(x), int(y)))
	assert.NotEqual(t, colorBackground, img.RGBAAt(1, int(y)))
	assert.Equal(t, colorBackground, img.RGBAAt(50, 5))
}

func TestClipSegment(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		want           [4]float64
		ok             bool
	}{
		{"inside", 1, 1, 9, 9, [4]float64{1, 1, 9, 9}, true},
		{"crossing", -1e9, 5, 1e9, 5, [4]float64{0, 5, 10, 5}, true},
		{"one end out", 5, 5, 5, 1e7, [4]float64{5, 5, 5, 10}, true},
		{"outside", -5, -5, -1, 20, [4]float64{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1, ok := clipSegment(tt.x0, tt.y0, tt.x1, tt.y1, 0, 0, 10, 10)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.InDeltaSlice(t, tt.want[:], []float64{x0, y0, x1, y1}, 1e-6)
		})
	}
}
