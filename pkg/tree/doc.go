// Package tree provides the rooted point tree used to describe branching
// structures such as neuronal morphologies, together with the structural
// analyses that descriptor pipelines are built on.
//
// # Overview
//
// A [Tree] stores one entry per digitized point in six index-aligned
// sequences: coordinates X, Y and Z, diameter D, an integer type code T, and
// the parent index P. The root is always index 0 and its parent is the
// sentinel [NoParent] (-1). Topology is implicit in P; nothing else is
// stored.
//
//	t, err := tree.New(
//	    []float64{0, 0, 0, 1}, // x
//	    []float64{0, 0, 0, 0}, // y
//	    []float64{0, 1, 2, 2}, // z
//	    []float64{1, 1, 1, 1}, // d
//	    []int{1, 1, 1, 1},     // t
//	    []int{-1, 0, 1, 2},    // p
//	)
//
// [New] rejects malformed input (mismatched lengths, parent indices out of
// range, cycles, points unreachable from the root) with a coded error from
// [github.com/matzehuels/tmd/pkg/errors]. Once built, a Tree is immutable:
// every method is a pure function of the snapshot and nothing derived is
// cached inside the value, so any number of goroutines may analyse the same
// Tree concurrently.
//
// # Degrees and Sections
//
// [Tree.ChildCounts] returns the number of children of every point.
// Points with no children are terminations, points with one child pass
// through, and points with two or more are multifurcations (bifurcations
// when exactly two).
//
// A section is a maximal unbranched chain ending at a termination or a
// multifurcation. [Tree.Sections] returns sections as (branch point, end)
// pairs, so summing segment lengths over a section never counts an edge
// twice. [Tree.SectionsOnlyPoints] returns the first point of each section
// instead. Section boundaries are found by walking parents, so points may be
// stored in any order; for the depth-first layout of morphology formats the
// results match the familiar index arithmetic.
//
// # Distances
//
// [Tree.SegmentLengths], [Tree.RadialDistances], [Tree.PathDistances] and
// [Tree.SectionLengths] measure the tree. [Tree.WeightedRadialDistances] is a
// signed weighted projection, not a metric.
//
// # Topology
//
// [Tree.WayToRoot] lazily walks the ancestors of a point. [Tree.BranchOrder],
// [Tree.Children], [Tree.Direction], [Tree.AngleBetween] and
// [Tree.Projection] build on it. The angle between two sections uses only
// each section's start and end points; curvature inside a section is ignored.
//
// # Simplification
//
// [Tree.Simplify] collapses every section into a single edge and returns a
// new Tree with one point per section boundary.
package tree
