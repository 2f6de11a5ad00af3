package diagram

import (
	"fmt"
	"strings"

	"cpdiagram/internal/course"
)

// Axis selects the game coordinate shown along one direction of the
// diagram, optionally negated. In game space Z points backward from the
// finish line, X points right and Y points up.
type Axis string

const (
	AxisX    Axis = "x"
	AxisY    Axis = "y"
	AxisZ    Axis = "z"
	AxisNegX Axis = "-x"
	AxisNegY Axis = "-y"
	AxisNegZ Axis = "-z"
)

// Axes lists the choices in cycling order.
var Axes = []Axis{AxisX, AxisY, AxisZ, AxisNegX, AxisNegY, AxisNegZ}

func ParseAxis(s string) (Axis, error) {
	a := Axis(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range Axes {
		if a == c {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown axis %q", s)
}

func (a Axis) Negated() bool { return strings.HasPrefix(string(a), "-") }

// Name is the coordinate letter without the sign.
func (a Axis) Name() string { return strings.TrimPrefix(string(a), "-") }

// Of projects a game position onto the axis.
func (a Axis) Of(v course.Vec3) float64 {
	var c float64
	switch a.Name() {
	case "x":
		c = v.X
	case "y":
		c = v.Y
	case "z":
		c = v.Z
	}
	if a.Negated() {
		return -c
	}
	return c
}

// Next returns the following axis in cycling order.
func (a Axis) Next() Axis {
	for i, c := range Axes {
		if c == a {
			return Axes[(i+1)%len(Axes)]
		}
	}
	return Axes[0]
}

// Readout formats a diagram coordinate as the game coordinate it stands
// for: "-z" at 490.73 reads "z = -490.730".
func (a Axis) Readout(v float64) string {
	if a.Negated() {
		v = -v
	}
	return fmt.Sprintf("%s = %.3f", a.Name(), v)
}
