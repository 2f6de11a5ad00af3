package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpdiagram/internal/course"
)

func TestAxisOf(t *testing.T) {
	v := course.Vec3{X: 1, Y: 2, Z: 3}
	tests := []struct {
		axis Axis
		want float64
	}{
		{AxisX, 1}, {AxisY, 2}, {AxisZ, 3},
		{AxisNegX, -1}, {AxisNegY, -2}, {AxisNegZ, -3},
	}
	for _, tt := range tests {
		t.Run(string(tt.axis), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.axis.Of(v))
		})
	}
}

func TestParseAxis(t *testing.T) {
	a, err := ParseAxis(" -Z ")
	require.NoError(t, err)
	assert.Equal(t, AxisNegZ, a)

	_, err = ParseAxis("w")
	assert.Error(t, err)
}

func TestAxisNextCycles(t *testing.T) {
	a := AxisX
	seen := map[Axis]bool{}
	for range Axes {
		seen[a] = true
		a = a.Next()
	}
	assert.Equal(t, AxisX, a)
	assert.Len(t, seen, len(Axes))
}

func TestAxisReadout(t *testing.T) {
	assert.Equal(t, "z = -490.730", AxisNegZ.Readout(490.73))
	assert.Equal(t, "x = 12.500", AxisX.Readout(12.5))
}
