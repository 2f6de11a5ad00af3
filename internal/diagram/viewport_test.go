package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitKeepsAspect(t *testing.T) {
	tests := []struct {
		name string
		b    BBox
		w, h int
	}{
		{"wide data tall canvas", BBox{0, 0, 100, 10}, 100, 200},
		{"tall data wide canvas", BBox{0, 0, 10, 100}, 300, 100},
		{"square", BBox{-5, -5, 5, 5}, 80, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Fit(tt.b, tt.w, tt.h)
			assert.True(t, v.Valid())
			ux := (v.XMax - v.XMin) / float64(v.W)
			uy := (v.YMax - v.YMin) / float64(v.H)
			assert.InDelta(t, ux, uy, 1e-9)
			assert.LessOrEqual(t, v.XMin, tt.b.MinX)
			assert.GreaterOrEqual(t, v.XMax, tt.b.MaxX)
			assert.LessOrEqual(t, v.YMin, tt.b.MinY)
			assert.GreaterOrEqual(t, v.YMax, tt.b.MaxY)
		})
	}
}

func TestFitMargin(t *testing.T) {
	v := Fit(BBox{0, 0, 100, 100}, 50, 50)
	assert.InDelta(t, -10.0, v.XMin, 1e-9)
	assert.InDelta(t, 110.0, v.XMax, 1e-9)
}

func TestFitDegenerate(t *testing.T) {
	assert.True(t, Fit(EmptyBBox(), 10, 10).Valid())
	assert.True(t, Fit(BBox{5, 5, 5, 5}, 10, 10).Valid())
	assert.True(t, Fit(BBox{0, 5, 10, 5}, 10, 10).Valid())
}

func TestToWorldToCanvasRoundTrip(t *testing.T) {
	v := Fit(BBox{-30, 10, 70, 60}, 160, 96)
	for _, p := range []Point{{0, 20}, {-30, 10}, {70, 60}} {
		px, py := v.ToCanvas(p)
		got := v.ToWorld(px, py)
		assert.InDelta(t, p.X, got.X, 1e-9)
		assert.InDelta(t, p.Y, got.Y, 1e-9)
	}
	// top-left pixel is the top-left corner of the view
	assert.Equal(t, Point{v.XMin, v.YMax}, v.ToWorld(0, 0))
}

func TestPanFollowsDrag(t *testing.T) {
	v := Fit(BBox{0, 0, 100, 100}, 100, 100)
	p := Point{50, 50}
	px, py := v.ToCanvas(p)
	v.Pan(10, -5)
	nx, ny := v.ToCanvas(p)
	assert.InDelta(t, px+10, nx, 1e-9)
	assert.InDelta(t, py-5, ny, 1e-9)
}

func TestZoomKeepsCursorPoint(t *testing.T) {
	v := Fit(BBox{0, 0, 100, 100}, 120, 80)
	before := v.ToWorld(30, 20)
	width := v.XMax - v.XMin

	v.Zoom(30, 20, true)
	after := v.ToWorld(30, 20)
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)
	assert.InDelta(t, width/ZoomFactor, v.XMax-v.XMin, 1e-9)

	v.Zoom(30, 20, false)
	assert.InDelta(t, width, v.XMax-v.XMin, 1e-9)
}

func TestResizeKeepsCentreAndAspect(t *testing.T) {
	v := Fit(BBox{0, 0, 100, 100}, 100, 100)
	cx, cy := (v.XMin+v.XMax)/2, (v.YMin+v.YMax)/2
	v.Resize(200, 100)
	assert.InDelta(t, cx, (v.XMin+v.XMax)/2, 1e-9)
	assert.InDelta(t, cy, (v.YMin+v.YMax)/2, 1e-9)
	assert.InDelta(t, (v.XMax-v.XMin)/200, (v.YMax-v.YMin)/100, 1e-9)
}

func TestScaled(t *testing.T) {
	v := Fit(BBox{0, 0, 10, 10}, 30, 20).Scaled(2.5)
	assert.Equal(t, 75, v.W)
	assert.Equal(t, 50, v.H)
}
