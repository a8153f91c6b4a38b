package tree

// PointKind classifies a point by its number of children.
type PointKind int

const (
	// Termination is a leaf: no children.
	Termination PointKind = iota
	// PassThrough has exactly one child and lies inside a section.
	PassThrough
	// Multifurcation has two or more children. Bifurcations are the
	// multifurcations with exactly two.
	Multifurcation
)

// String returns a short label for the kind.
func (k PointKind) String() string {
	switch k {
	case Termination:
		return "termination"
	case PassThrough:
		return "pass-through"
	case Multifurcation:
		return "multifurcation"
	}
	return "unknown"
}

// ChildCounts returns, for every point, the number of points whose parent it
// is. The root is never counted as anyone's child.
func (tr *Tree) ChildCounts() []int {
	counts := make([]int, tr.Size())
	for i := 1; i < len(tr.p); i++ {
		counts[tr.p[i]]++
	}
	return counts
}

// Classify labels every point as a termination, pass-through or
// multifurcation. The three kinds partition the points.
func (tr *Tree) Classify() []PointKind {
	counts := tr.ChildCounts()
	kinds := make([]PointKind, len(counts))
	for i, c := range counts {
		switch {
		case c == 0:
			kinds[i] = Termination
		case c == 1:
			kinds[i] = PassThrough
		default:
			kinds[i] = Multifurcation
		}
	}
	return kinds
}

// Terminations returns the indices of points without children.
func (tr *Tree) Terminations() []int {
	return tr.pointsWhere(func(c int) bool { return c == 0 })
}

// Bifurcations returns the indices of points with exactly two children.
func (tr *Tree) Bifurcations() []int {
	return tr.pointsWhere(func(c int) bool { return c == 2 })
}

// Multifurcations returns the indices of points with two or more children.
func (tr *Tree) Multifurcations() []int {
	return tr.pointsWhere(func(c int) bool { return c >= 2 })
}

func (tr *Tree) pointsWhere(keep func(childCount int) bool) []int {
	var out []int
	for i, c := range tr.ChildCounts() {
		if keep(c) {
			out = append(out, i)
		}
	}
	return out
}
