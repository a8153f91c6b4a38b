package tree

// sectionEnds returns the sorted indices of points whose child count is not
// one. The root is dropped when it qualifies: a section cannot end where it
// begins.
func (tr *Tree) sectionEnds(counts []int) []int {
	var ends []int
	for i, c := range counts {
		if c != 1 {
			ends = append(ends, i)
		}
	}
	if len(ends) > 0 && ends[0] == 0 {
		ends = ends[1:]
	}
	return ends
}

// sections walks p up from every section end to the boundary it grows out
// of: the nearest ancestor that is the root or has a child count other than
// one. It returns the ends, those boundaries and the first point of every
// section. The root is the first point of the lowest-numbered section
// starting at it; all other sections start at the boundary's child on the
// walk.
func (tr *Tree) sections() (start, first, end []int) {
	counts := tr.ChildCounts()
	end = tr.sectionEnds(counts)
	start = make([]int, len(end))
	first = make([]int, len(end))

	rootTaken := false
	for k, e := range end {
		f := e
		for {
			a := tr.p[f]
			if a == 0 || counts[a] != 1 {
				start[k] = a
				break
			}
			f = a
		}
		if start[k] == 0 && !rootTaken {
			f = 0
			rootTaken = true
		}
		first[k] = f
	}
	return start, first, end
}

// Sections decomposes the tree into maximal unbranched chains and returns
// them in full-range form: end[i] is the termination or multifurcation that
// closes section i and beg[i] is the branch point it grows out of (0 for
// sections hanging off the root). Summing segment lengths over every
// (beg[i], end[i]] covers each edge exactly once.
//
// Sections are ordered by end index. For points stored in depth-first order
// beg[i] equals p[end[i-1]+1]; the boundary is found by walking ancestors, so
// any valid parent layout works. A single-point tree has no sections and both
// slices are empty.
func (tr *Tree) Sections() (beg, end []int) {
	beg, _, end = tr.sections()
	return beg, end
}

// SectionsOnlyPoints returns sections in points-only form: beg[i] is the
// first point of section i, the child of its branch point on the way to
// end[i]. The root belongs to the first section growing out of it, so beg[0]
// is 0. Every point lies on exactly one chain from beg[i] to end[i]; for
// depth-first input beg[i] equals end[i-1]+1 and the index ranges
// [beg[i], end[i]] partition the points.
func (tr *Tree) SectionsOnlyPoints() (beg, end []int) {
	_, beg, end = tr.sections()
	return beg, end
}
