package tree

import (
	"iter"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/tmd/pkg/errors"
)

// WayToRoot returns the ancestors of start, nearest first, ending with the
// root and then [NoParent]. start itself is not included, so the walk from the
// root yields only NoParent. The sequence is lazy and can be ranged over any
// number of times.
func (tr *Tree) WayToRoot(start int) iter.Seq[int] {
	_ = tr.p[start]
	return func(yield func(int) bool) {
		for id := start; id != NoParent; {
			id = tr.p[id]
			if !yield(id) {
				return
			}
		}
	}
}

// BranchOrder returns the number of multifurcations among the ancestors of id.
func (tr *Tree) BranchOrder(id int) int {
	counts := tr.ChildCounts()
	order := 0
	for a := range tr.WayToRoot(id) {
		if a != NoParent && counts[a] >= 2 {
			order++
		}
	}
	return order
}

// SectionBranchOrders returns [Tree.BranchOrder] for every point in one pass.
func (tr *Tree) SectionBranchOrders() []int {
	counts := tr.ChildCounts()
	children := tr.Children()
	orders := make([]int, tr.Size())
	for _, i := range tr.breadthFirst(children) {
		inc := 0
		if counts[i] >= 2 {
			inc = 1
		}
		for _, c := range children[i] {
			orders[c] = orders[i] + inc
		}
	}
	return orders
}

// Children returns, for every point, the indices of its children in
// ascending order. Terminations map to an empty slice.
func (tr *Tree) Children() [][]int {
	children := make([][]int, tr.Size())
	for i := range children {
		children[i] = []int{}
	}
	for i := 1; i < len(tr.p); i++ {
		children[tr.p[i]] = append(children[tr.p[i]], i)
	}
	return children
}

// breadthFirst returns every point in breadth-first order from the root.
func (tr *Tree) breadthFirst(children [][]int) []int {
	order := make([]int, 0, tr.Size())
	order = append(order, 0)
	for head := 0; head < len(order); head++ {
		order = append(order, children[order[head]]...)
	}
	return order
}

// Direction returns the unit vector pointing from start to end. Coincident
// points give the zero vector; callers must handle it.
func (tr *Tree) Direction(start, end int) r3.Vec {
	v := r3.Sub(tr.Point(end), tr.Point(start))
	if r3.Norm(v) == 0 {
		return v
	}
	return r3.Unit(v)
}

// AngleBetween returns the angle in radians between two sections, each
// identified by its first point as reported by [Tree.SectionsOnlyPoints].
// A section's direction runs from its first to its last point, so curvature
// inside the section is ignored.
//
// When either section is degenerate (coincident first and last points) the
// result is NaN. An id that does not start a section returns ErrCodeNotFound.
func (tr *Tree) AngleBetween(sectionID1, sectionID2 int) (float64, error) {
	beg, end := tr.SectionsOnlyPoints()
	s1 := slices.Index(beg, sectionID1)
	if s1 < 0 {
		return math.NaN(), errors.New(errors.ErrCodeNotFound, "point %d does not start a section", sectionID1)
	}
	s2 := slices.Index(beg, sectionID2)
	if s2 < 0 {
		return math.NaN(), errors.New(errors.ErrCodeNotFound, "point %d does not start a section", sectionID2)
	}
	u := tr.Direction(beg[s1], end[s1])
	v := tr.Direction(beg[s2], end[s2])
	return VecAngle(u, v), nil
}

// VecAngle returns the angle in radians between u and v, or NaN when either
// is the zero vector.
func VecAngle(u, v r3.Vec) float64 {
	c := r3.Dot(u, v) / r3.Norm(u) / r3.Norm(v)
	// Rounding can push parallel vectors just outside [-1, 1]. NaN passes
	// through math.Min/Max unchanged.
	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// Projection returns the scalar projection of every point, relative to the
// root, onto v. The values are lengths only when v is a unit vector.
func (tr *Tree) Projection(v r3.Vec) []float64 {
	return tr.ProjectionFrom(v, tr.Point(0))
}

// ProjectionFrom is [Tree.Projection] relative to an arbitrary reference
// point.
func (tr *Tree) ProjectionFrom(v, ref r3.Vec) []float64 {
	out := make([]float64, tr.Size())
	for i := range out {
		out[i] = r3.Dot(r3.Sub(tr.Point(i), ref), v)
	}
	return out
}
