package tree

import (
	"strings"

	"github.com/matzehuels/tmd/pkg/errors"
)

// Axis selects one coordinate of a point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// XYZ is the default axis selection used when none is given.
var XYZ = []Axis{AxisX, AxisY, AxisZ}

// String returns the lower-case axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// ParseAxes converts a string such as "xyz" or "zx" into axis selectors.
// Any subset and order of axes is allowed, including repeats.
func ParseAxes(s string) ([]Axis, error) {
	if s == "" {
		return nil, errors.New(errors.ErrCodeInvalidAxis, "axis selection is empty")
	}
	axes := make([]Axis, 0, len(s))
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'x':
			axes = append(axes, AxisX)
		case 'y':
			axes = append(axes, AxisY)
		case 'z':
			axes = append(axes, AxisZ)
		default:
			return nil, errors.New(errors.ErrCodeInvalidAxis, "unknown axis %q in %q", r, s)
		}
	}
	return axes, nil
}

// FormatAxes is the inverse of [ParseAxes].
func FormatAxes(axes []Axis) string {
	var b strings.Builder
	for _, a := range axes {
		b.WriteString(a.String())
	}
	return b.String()
}

// Plane is an ordered pair of axes, for example {AxisX, AxisY}.
type Plane [2]Axis

// PlaneXY is the default plane for orientation queries.
var PlaneXY = Plane{AxisX, AxisY}

// ParsePlane parses a two-letter plane such as "xy" or "zx".
func ParsePlane(s string) (Plane, error) {
	axes, err := ParseAxes(s)
	if err != nil {
		return Plane{}, err
	}
	if len(axes) != 2 {
		return Plane{}, errors.New(errors.ErrCodeInvalidAxis, "plane %q must name exactly two axes", s)
	}
	return Plane{axes[0], axes[1]}, nil
}

// column returns the attribute sequence backing axis a.
func (tr *Tree) column(a Axis) []float64 {
	switch a {
	case AxisX:
		return tr.x
	case AxisY:
		return tr.y
	case AxisZ:
		return tr.z
	}
	panic("tree: invalid axis " + a.String())
}

// coords returns the coordinates of point i along axes, appended to dst.
func (tr *Tree) coords(dst []float64, i int, axes []Axis) []float64 {
	for _, a := range axes {
		dst = append(dst, tr.column(a)[i])
	}
	return dst
}

func defaultAxes(axes []Axis) []Axis {
	if len(axes) == 0 {
		return XYZ
	}
	return axes
}
