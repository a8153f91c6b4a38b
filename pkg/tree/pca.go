package tree

// PrincipalAxisFinder computes principal directions of a 2D point cloud.
// PrincipalAxis returns the k-th principal direction (k = 0 is the direction
// of largest variance) as a unit vector.
//
// The tree package does not fit principal components itself; callers inject
// an implementation such as geometry.PCA.
type PrincipalAxisFinder interface {
	PrincipalAxis(points [][2]float64, k int) ([2]float64, error)
}

// PCA returns the component-th principal direction of the tree's points
// projected onto plane.
func (tr *Tree) PCA(finder PrincipalAxisFinder, plane Plane, component int) ([2]float64, error) {
	a, b := tr.column(plane[0]), tr.column(plane[1])
	points := make([][2]float64, tr.Size())
	for i := range points {
		points[i] = [2]float64{a[i], b[i]}
	}
	return finder.PrincipalAxis(points, component)
}
