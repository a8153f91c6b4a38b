// Package geometry implements geometric collaborators for package tree on
// top of gonum.
package geometry

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/matzehuels/tmd/pkg/errors"
)

// PCA finds principal directions with gonum's principal component analysis.
// The zero value is ready to use and safe for concurrent use.
//
// Principal directions are defined up to sign; PCA orients every returned
// direction so that its first non-zero coordinate is positive.
type PCA struct{}

// PrincipalAxis returns the k-th principal direction of points as a unit
// vector. It needs at least two points and 0 <= k < 2.
func (PCA) PrincipalAxis(points [][2]float64, k int) ([2]float64, error) {
	if k < 0 || k > 1 {
		return [2]float64{}, errors.New(errors.ErrCodeInvalidInput, "component %d out of range [0, 2)", k)
	}
	if len(points) < 2 {
		return [2]float64{}, errors.New(errors.ErrCodeInvalidInput, "need at least 2 points, got %d", len(points))
	}

	data := mat.NewDense(len(points), 2, nil)
	for i, p := range points {
		data.Set(i, 0, p[0])
		data.Set(i, 1, p[1])
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(data, nil); !ok {
		return [2]float64{}, errors.New(errors.ErrCodeInternal, "principal component decomposition failed")
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	dir := [2]float64{vecs.At(0, k), vecs.At(1, k)}
	if dir[0] < 0 || (dir[0] == 0 && dir[1] < 0) {
		dir[0], dir[1] = -dir[0], -dir[1]
	}
	return dir, nil
}
