package tree

import (
	"slices"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/tmd/pkg/errors"
)

// NoParent is the parent index of the root. [Tree.WayToRoot] ends with it.
const NoParent = -1

// Tree is a rooted tree of 3D points with diameters and type codes.
//
// All six attribute sequences have the same length N >= 1. Point 0 is the
// root. The zero value is not usable - use [New] to create a Tree.
type Tree struct {
	x, y, z []float64
	d       []float64
	t       []int
	p       []int
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min r3.Vec `json:"min"`
	Max r3.Vec `json:"max"`
}

// New validates the attribute sequences and returns a Tree that owns copies
// of them. The root parent may be given as [NoParent] or as 0 (the root as its
// own terminator); it is stored as NoParent.
//
// Returns an error with code ErrCodeEmptyTree when there are no points,
// ErrCodeLengthMismatch when sequences differ in length, ErrCodeInvalidParent
// for parent indices out of range or pointing at the point itself, and
// ErrCodeCycle when some point cannot reach the root.
func New(x, y, z, d []float64, t, p []int) (*Tree, error) {
	n := len(x)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeEmptyTree, "tree has no points")
	}
	lengths := []struct {
		name string
		len  int
	}{
		{"y", len(y)}, {"z", len(z)}, {"d", len(d)}, {"t", len(t)}, {"p", len(p)},
	}
	for _, l := range lengths {
		if l.len != n {
			return nil, errors.New(errors.ErrCodeLengthMismatch, "%s has %d points, x has %d", l.name, l.len, n)
		}
	}

	tr := &Tree{
		x: slices.Clone(x),
		y: slices.Clone(y),
		z: slices.Clone(z),
		d: slices.Clone(d),
		t: slices.Clone(t),
		p: slices.Clone(p),
	}
	if tr.p[0] == 0 {
		tr.p[0] = NoParent
	}
	if err := validateParents(tr.p); err != nil {
		return nil, err
	}
	return tr, nil
}

// MustNew is like [New] but panics on invalid input. Intended for tests and
// literals known to be valid.
func MustNew(x, y, z, d []float64, t, p []int) *Tree {
	tr, err := New(x, y, z, d, t, p)
	if err != nil {
		panic(err)
	}
	return tr
}

// validateParents checks that p describes a tree rooted at 0.
// Every walk toward the root is marked so each point is visited once.
func validateParents(p []int) error {
	n := len(p)
	if p[0] != NoParent {
		return errors.New(errors.ErrCodeInvalidParent, "root parent is %d, want %d", p[0], NoParent)
	}
	for i := 1; i < n; i++ {
		switch {
		case p[i] < 0 || p[i] >= n:
			return errors.New(errors.ErrCodeInvalidParent, "point %d has parent %d outside [0, %d)", i, p[i], n)
		case p[i] == i:
			return errors.New(errors.ErrCodeInvalidParent, "point %d is its own parent", i)
		}
	}

	const (
		unvisited = iota
		onPath
		rooted
	)
	state := make([]int, n)
	state[0] = rooted
	var path []int
	for i := 1; i < n; i++ {
		path = path[:0]
		j := i
		for state[j] == unvisited {
			state[j] = onPath
			path = append(path, j)
			j = p[j]
		}
		if state[j] == onPath {
			return errors.New(errors.ErrCodeCycle, "point %d is on a cycle and cannot reach the root", j)
		}
		for _, k := range path {
			state[k] = rooted
		}
	}
	return nil
}

// Size returns the number of points.
func (tr *Tree) Size() int { return len(tr.x) }

// X returns a copy of the x coordinates.
func (tr *Tree) X() []float64 { return slices.Clone(tr.x) }

// Y returns a copy of the y coordinates.
func (tr *Tree) Y() []float64 { return slices.Clone(tr.y) }

// Z returns a copy of the z coordinates.
func (tr *Tree) Z() []float64 { return slices.Clone(tr.z) }

// D returns a copy of the diameters.
func (tr *Tree) D() []float64 { return slices.Clone(tr.d) }

// T returns a copy of the type codes.
func (tr *Tree) T() []int { return slices.Clone(tr.t) }

// P returns a copy of the parent indices. P()[0] is [NoParent].
func (tr *Tree) P() []int { return slices.Clone(tr.p) }

// Parent returns the parent index of point i.
func (tr *Tree) Parent(i int) int { return tr.p[i] }

// Point returns the coordinates of point i.
func (tr *Tree) Point(i int) r3.Vec {
	return r3.Vec{X: tr.x[i], Y: tr.y[i], Z: tr.z[i]}
}

// Type returns the median type code, truncated to an integer. It labels the
// whole tree with a representative category; the median is used rather than
// the mode.
func (tr *Tree) Type() int {
	m, err := stats.Median(stats.LoadRawData(tr.t))
	if err != nil {
		return 0
	}
	return int(m)
}

// BoundingBox returns the axis-aligned box enclosing every point.
func (tr *Tree) BoundingBox() Box {
	return Box{
		Min: r3.Vec{X: floats.Min(tr.x), Y: floats.Min(tr.y), Z: floats.Min(tr.z)},
		Max: r3.Vec{X: floats.Max(tr.x), Y: floats.Max(tr.y), Z: floats.Max(tr.z)},
	}
}

// Clone returns a deep copy of the tree.
func (tr *Tree) Clone() *Tree {
	return &Tree{
		x: slices.Clone(tr.x),
		y: slices.Clone(tr.y),
		z: slices.Clone(tr.z),
		d: slices.Clone(tr.d),
		t: slices.Clone(tr.t),
		p: slices.Clone(tr.p),
	}
}

// Equal reports whether both trees hold identical attribute sequences.
func (tr *Tree) Equal(other *Tree) bool {
	return slices.Equal(tr.x, other.x) &&
		slices.Equal(tr.y, other.y) &&
		slices.Equal(tr.z, other.z) &&
		slices.Equal(tr.d, other.d) &&
		slices.Equal(tr.t, other.t) &&
		slices.Equal(tr.p, other.p)
}
