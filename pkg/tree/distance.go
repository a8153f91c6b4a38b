package tree

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Segment is the edge between a point and its parent.
type Segment struct {
	Parent r3.Vec
	Child  r3.Vec
}

// Segments returns one segment per non-root point. Segments()[k] belongs to
// point k+1.
func (tr *Tree) Segments() []Segment {
	segs := make([]Segment, tr.Size()-1)
	for i := 1; i < tr.Size(); i++ {
		segs[i-1] = Segment{Parent: tr.Point(tr.p[i]), Child: tr.Point(i)}
	}
	return segs
}

// SegmentLengths returns the Euclidean length of every segment. The result
// has N-1 entries and entry k belongs to point k+1.
func (tr *Tree) SegmentLengths() []float64 {
	lengths := make([]float64, tr.Size()-1)
	for i := 1; i < tr.Size(); i++ {
		lengths[i-1] = r3.Norm(r3.Sub(tr.Point(i), tr.Point(tr.p[i])))
	}
	return lengths
}

// TotalLength returns the summed length of all segments.
func (tr *Tree) TotalLength() float64 {
	return floats.Sum(tr.SegmentLengths())
}

// reference returns a private copy of point, or the root's coordinates along
// axes when point is nil.
func (tr *Tree) reference(point []float64, axes []Axis) []float64 {
	if point == nil {
		return tr.coords(nil, 0, axes)
	}
	if len(point) != len(axes) {
		panic(fmt.Sprintf("tree: reference point has %d coordinates for %d axes", len(point), len(axes)))
	}
	return slices.Clone(point)
}

// RadialDistances returns the Euclidean distance from point to every tree
// point, measured along axes (x, y and z when none are given). A nil point
// means the root.
func (tr *Tree) RadialDistances(point []float64, axes ...Axis) []float64 {
	axes = defaultAxes(axes)
	ref := tr.reference(point, axes)

	out := make([]float64, tr.Size())
	dest := make([]float64, 0, len(axes))
	for i := range out {
		dest = tr.coords(dest[:0], i, axes)
		out[i] = floats.Distance(ref, dest, 2)
	}
	return out
}

// RadialDistancesTime is [Tree.RadialDistances] in a space-time embedding:
// the reference gets zeroTime as an extra coordinate and every tree point,
// the root included, gets time.
func (tr *Tree) RadialDistancesTime(point []float64, zeroTime, time float64, axes ...Axis) []float64 {
	axes = defaultAxes(axes)
	ref := append(tr.reference(point, axes), zeroTime)

	out := make([]float64, tr.Size())
	dest := make([]float64, 0, len(axes)+1)
	for i := range out {
		dest = append(tr.coords(dest[:0], i, axes), time)
		out[i] = floats.Distance(ref, dest, 2)
	}
	return out
}

// WeightedRadialDistances returns weights · (point - p) for every tree point
// p. With normalize set the weights are first scaled to unit length.
//
// The result is signed and is not a distance: it can be negative and does
// not satisfy the triangle inequality. With unit weights and no normalization
// it is the plain sum of coordinate differences.
func (tr *Tree) WeightedRadialDistances(point, weights []float64, normalize bool, axes ...Axis) []float64 {
	axes = defaultAxes(axes)
	if len(weights) != len(axes) {
		panic(fmt.Sprintf("tree: %d weights for %d axes", len(weights), len(axes)))
	}
	ref := tr.reference(point, axes)
	w := slices.Clone(weights)
	if normalize {
		floats.Scale(1/floats.Norm(w, 2), w)
	}

	out := make([]float64, tr.Size())
	diff := make([]float64, len(axes))
	dest := make([]float64, 0, len(axes))
	for i := range out {
		dest = tr.coords(dest[:0], i, axes)
		floats.SubTo(diff, ref, dest)
		out[i] = floats.Dot(w, diff)
	}
	return out
}

// PathDistances returns the length of the path from the root to every point.
//
// Each point starts with its own segment length and then receives its
// parent's accumulated value. Points are visited breadth-first from the root,
// so the result does not depend on parents being stored before children.
func (tr *Tree) PathDistances() []float64 {
	path := make([]float64, tr.Size())
	copy(path[1:], tr.SegmentLengths())

	children := tr.Children()
	for _, i := range tr.breadthFirst(children) {
		for _, c := range children[i] {
			path[c] += path[i]
		}
	}
	return path
}

// SectionLengths returns, at the end point of every section, the length of
// the chain from the section's first point to its end, with first points taken
// from [Tree.SectionsOnlyPoints]. The edge into the first point is not
// included. For depth-first input this is the sum of
// SegmentLengths()[beg:end]. All other entries are zero.
func (tr *Tree) SectionLengths() []float64 {
	lengths := make([]float64, tr.Size())
	path := tr.PathDistances()
	beg, end := tr.SectionsOnlyPoints()
	for i, e := range end {
		lengths[e] = path[e] - path[beg[i]]
	}
	return lengths
}
