package diagram

// ZoomFactor is how much one zoom step stretches or shrinks the view.
const ZoomFactor = 1.2

// fitMargin is the share of the data range left free on each side by Fit.
const fitMargin = 0.1

// Viewport maps the diagram plane onto a canvas of W x H pixels. Canvas
// coordinates grow right and down; diagram Y grows up.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
	W, H       int
}

func (v Viewport) Valid() bool {
	return v.W > 0 && v.H > 0 && v.XMax > v.XMin && v.YMax > v.YMin
}

// Fit frames b with a margin and widens one dimension so that a diagram
// unit has the same length on both canvas axes.
func Fit(b BBox, w, h int) Viewport {
	if b.Empty() {
		b = BBox{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}
	}
	// a single point or a straight line still needs some area
	if b.Width() == 0 {
		b.MinX, b.MaxX = b.MinX-1, b.MaxX+1
	}
	if b.Height() == 0 {
		b.MinY, b.MaxY = b.MinY-1, b.MaxY+1
	}
	mx, my := b.Width()*fitMargin, b.Height()*fitMargin
	v := Viewport{
		XMin: b.MinX - mx, XMax: b.MaxX + mx,
		YMin: b.MinY - my, YMax: b.MaxY + my,
		W: w, H: h,
	}
	v.fixAspect()
	return v
}

// Resize changes the canvas size and corrects the aspect ratio around the
// current centre.
func (v *Viewport) Resize(w, h int) {
	v.W, v.H = w, h
	v.fixAspect()
}

func (v *Viewport) fixAspect() {
	if v.W <= 0 || v.H <= 0 {
		return
	}
	hr, vr := v.XMax-v.XMin, v.YMax-v.YMin
	cw, ch := float64(v.W), float64(v.H)
	if hr/vr >= cw/ch {
		extra := (hr*ch/cw - vr) / 2
		v.YMin -= extra
		v.YMax += extra
	} else {
		extra := (vr*cw/ch - hr) / 2
		v.XMin -= extra
		v.XMax += extra
	}
}

// Pan moves the view so that content follows a drag of dx, dy pixels.
func (v *Viewport) Pan(dx, dy float64) {
	rx := (v.XMax - v.XMin) / float64(v.W)
	ry := (v.YMax - v.YMin) / float64(v.H)
	v.XMin -= dx * rx
	v.XMax -= dx * rx
	v.YMin += dy * ry
	v.YMax += dy * ry
}

// Zoom zooms one step in or out keeping the diagram point under pixel
// (px, py) in place.
func (v *Viewport) Zoom(px, py float64, in bool) {
	g := v.ToWorld(px, py)
	s := ZoomFactor
	if in {
		s = 1 / ZoomFactor
	}
	v.XMin = g.X - (g.X-v.XMin)*s
	v.XMax = g.X - (g.X-v.XMax)*s
	v.YMin = g.Y - (g.Y-v.YMin)*s
	v.YMax = g.Y - (g.Y-v.YMax)*s
}

// ToWorld converts a canvas pixel position into diagram coordinates.
func (v Viewport) ToWorld(px, py float64) Point {
	return Point{
		X: v.XMin + (v.XMax-v.XMin)*px/float64(v.W),
		Y: v.YMax - (v.YMax-v.YMin)*py/float64(v.H),
	}
}

// ToCanvas converts diagram coordinates into canvas pixels.
func (v Viewport) ToCanvas(p Point) (float64, float64) {
	return (p.X - v.XMin) / (v.XMax - v.XMin) * float64(v.W),
		(v.YMax - p.Y) / (v.YMax - v.YMin) * float64(v.H)
}

// Scaled is the same view on a canvas k times larger.
func (v Viewport) Scaled(k float64) Viewport {
	v.W = int(float64(v.W)*k + 0.5)
	v.H = int(float64(v.H)*k + 0.5)
	return v
}
