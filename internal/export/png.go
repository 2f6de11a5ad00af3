// Package export renders a diagram scene to a PNG image.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"cpdiagram/internal/diagram"
)

var colorBackground = color.RGBA{255, 255, 255, 255}

// Options controls the size of the exported image. An image pixel covers
// 1/(Scale*SaveDPI/DPI) canvas pixels; line widths, markers and text grow
// with DPI so that the picture looks the same at any SaveDPI.
type Options struct {
	Scale   float64
	DPI     float64
	SaveDPI float64
}

// DefaultOptions renders one image pixel per canvas pixel.
func DefaultOptions() Options {
	return Options{Scale: 1, DPI: 100, SaveDPI: 100}
}

var ErrEmptyCanvas = errors.New("export: canvas has no area")

func (o Options) factor() float64 {
	if o.DPI <= 0 || o.SaveDPI <= 0 || o.Scale <= 0 {
		return 1
	}
	return o.Scale * o.SaveDPI / o.DPI
}

// Size returns the image size for a view.
func Size(vp diagram.Viewport, o Options) (int, int) {
	s := vp.Scaled(o.factor())
	return s.W, s.H
}

type renderContext struct {
	img       *image.RGBA
	ras       *vector.Rasterizer
	vp        diagram.Viewport
	lineWidth float64
	marker    float64
	// unit is image pixels per point of font size
	unit float64
	font *opentype.Font
}

// Render draws the scene as seen through vp.
func Render(sc diagram.Scene, vp diagram.Viewport, o Options) (*image.RGBA, error) {
	if !vp.Valid() {
		return nil, ErrEmptyCanvas
	}
	k := o.factor()
	view := vp.Scaled(k)
	if view.W <= 0 || view.H <= 0 {
		return nil, ErrEmptyCanvas
	}
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, view.W, view.H))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	dpi := o.DPI
	if dpi <= 0 {
		dpi = 100
	}
	// one canvas pixel at 100 DPI is the base unit
	px := k * dpi / 100
	ctx := &renderContext{
		img:       img,
		ras:       vector.NewRasterizer(view.W, view.H),
		vp:        view,
		lineWidth: math.Max(1, 0.5*px),
		marker:    math.Max(1.5, 1.25*px),
		unit:      px * 4 / 14,
		font:      fnt,
	}
	for _, l := range sc.Lines {
		ctx.polyline(l)
	}
	for _, lb := range sc.Labels {
		if err := ctx.label(lb); err != nil {
			return nil, err
		}
	}
	return img, nil
}

func (c *renderContext) project(p diagram.Point) (float32, float32) {
	x, y := c.vp.ToCanvas(p)
	return float32(x), float32(y)
}

func (c *renderContext) fill(col color.RGBA) {
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	c.ras.Reset(c.vp.W, c.vp.H)
}

func (c *renderContext) polyline(l diagram.Polyline) {
	for i := 1; i < len(l.Points); i++ {
		c.segment(l.Points[i-1], l.Points[i], l.Color)
	}
	if l.Markers {
		for _, p := range l.Points {
			c.dot(p, l.Color)
		}
	}
}

// segment fills the rectangle around a line of lineWidth.
func (c *renderContext) segment(a, b diagram.Point, col color.RGBA) {
	ax, ay := c.vp.ToCanvas(a)
	bx, by := c.vp.ToCanvas(b)
	// zoomed-in views put far endpoints millions of pixels away
	pad := c.lineWidth + 1
	ax, ay, bx, by, ok := clipSegment(ax, ay, bx, by,
		-pad, -pad, float64(c.vp.W)+pad, float64(c.vp.H)+pad)
	if !ok {
		return
	}
	x0, y0, x1, y1 := float32(ax), float32(ay), float32(bx), float32(by)
	dx, dy := bx-ax, by-ay
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	ox := float32(-dy / n * c.lineWidth / 2)
	oy := float32(dx / n * c.lineWidth / 2)
	c.ras.MoveTo(x0+ox, y0+oy)
	c.ras.LineTo(x1+ox, y1+oy)
	c.ras.LineTo(x1-ox, y1-oy)
	c.ras.LineTo(x0-ox, y0-oy)
	c.ras.ClosePath()
	c.fill(col)
}

func (c *renderContext) dot(p diagram.Point, col color.RGBA) {
	x, y := c.project(p)
	r := float32(c.marker)
	if x+r < 0 || y+r < 0 || x-r > float32(c.vp.W) || y-r > float32(c.vp.H) {
		return
	}
	const steps = 16
	c.ras.MoveTo(x+r, y)
	for i := 1; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		c.ras.LineTo(x+r*float32(math.Cos(a)), y+r*float32(math.Sin(a)))
	}
	c.ras.ClosePath()
	c.fill(col)
}

// clipSegment cuts a segment to the rectangle [minX,maxX]x[minY,maxY]
// (Liang-Barsky). ok is false when nothing of it is inside.
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0
	for _, e := range [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func (c *renderContext) label(lb diagram.Label) error {
	size := lb.Size * c.unit
	if size < 1 {
		return nil
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("font face: %w", err)
	}
	defer face.Close()

	x, y := c.project(lb.At)
	d := &font.Drawer{Dst: c.img, Src: image.NewUniform(lb.Color), Face: face}
	width := d.MeasureString(lb.Text)
	descent := face.Metrics().Descent
	d.Dot = fixed.Point26_6{
		X: fixed.I(int(x)) - width/2,
		Y: fixed.I(int(y)) - descent,
	}
	d.DrawString(lb.Text)
	return nil
}

// Encode writes the rendered scene as PNG.
func Encode(w io.Writer, sc diagram.Scene, vp diagram.Viewport, o Options) error {
	img, err := Render(sc, vp, o)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG writes the rendered scene to path, replacing any existing file.
// On failure no file is left at path.
func SavePNG(path string, sc diagram.Scene, vp diagram.Viewport, o Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
		// no half-written images
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	bw := bufio.NewWriter(f)
	if err := Encode(bw, sc, vp, o); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
