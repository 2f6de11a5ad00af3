package course

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Checkpoint colours run from medium green through blue and purple to red,
// in HSV with hue as a fraction of a full turn.
var (
	rampStart = [3]float64{0.33, 1.0, 0.7}
	rampEnd   = [3]float64{1.0, 1.0, 1.0}
)

// ColorRamp returns n evenly spaced colours. Colour i sits at (i+1)/n of
// the way along the ramp, so the last one is exactly the end colour.
func ColorRamp(n int) []color.RGBA {
	out := make([]color.RGBA, n)
	for i := range out {
		t := float64(i+1) / float64(n)
		h := rampStart[0] + (rampEnd[0]-rampStart[0])*t
		s := rampStart[1] + (rampEnd[1]-rampStart[1])*t
		v := rampStart[2] + (rampEnd[2]-rampStart[2])*t
		// a hue of exactly one turn falls outside colorful's sextants
		c := colorful.Hsv(math.Mod(h*360, 360), s, v)
		r, g, b := c.Clamped().RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}

// Hex formats a colour as #rrggbb.
func Hex(c color.RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}
