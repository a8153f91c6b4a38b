package tree

// Simplify returns a new tree with one point per section boundary: the root
// followed by the end point of every section in [Tree.Sections] order. Each
// new point's parent is the new point standing for the boundary its section
// grows out of. Section starts are strict ancestors that are either the root
// or a section end, so the result is a valid tree with len(sections)+1
// points whatever the parent layout. The receiver is left untouched.
func (tr *Tree) Simplify() *Tree {
	beg, end := tr.Sections()
	n := len(end) + 1

	newIndex := make(map[int]int, n)
	newIndex[0] = 0
	for k, e := range end {
		newIndex[e] = k + 1
	}

	out := &Tree{
		x: make([]float64, n),
		y: make([]float64, n),
		z: make([]float64, n),
		d: make([]float64, n),
		t: make([]int, n),
		p: make([]int, n),
	}
	out.copyPoint(0, tr, 0)
	out.p[0] = NoParent

	for k, e := range end {
		out.copyPoint(k+1, tr, e)
		out.p[k+1] = newIndex[beg[k]]
	}
	return out
}

func (tr *Tree) copyPoint(dst int, src *Tree, i int) {
	tr.x[dst] = src.x[i]
	tr.y[dst] = src.y[i]
	tr.z[dst] = src.z[i]
	tr.d[dst] = src.d[i]
	tr.t[dst] = src.t[i]
}
