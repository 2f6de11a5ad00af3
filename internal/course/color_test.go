package course

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorRamp(t *testing.T) {
	ramp := ColorRamp(4)
	assert.Len(t, ramp, 4)
	// the last colour is the end of the ramp: pure red at full value
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 0, A: 255}, ramp[3])
	for i := 1; i < len(ramp); i++ {
		assert.NotEqual(t, ramp[i-1], ramp[i])
	}
	assert.Empty(t, ColorRamp(0))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0080", Hex(color.RGBA{R: 255, G: 0, B: 128, A: 255}))
}
