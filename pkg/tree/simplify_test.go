package tree

import (
	"math/rand/v2"
	"testing"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		name    string
		tr      *Tree
		wantP   []int
		wantX   []float64
		wantOld []int
	}{
		{"point", pointTree(), []int{-1}, []float64{1}, []int{0}},
		{"chain", chainTree(), []int{-1, 0}, []float64{0, 1}, []int{0, 3}},
		{"bifurcation", bifTree(), []int{-1, 0, 1, 1}, []float64{0, 0, 1, -1}, []int{0, 1, 2, 4}},
		{"nested", deepTree(), []int{-1, 0, 1, 2, 2, 1}, []float64{0, 0, 1, 2, 1, -1}, []int{0, 2, 3, 4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.tr.Clone()
			s := tt.tr.Simplify()

			if got := s.P(); !equalInts(got, tt.wantP) {
				t.Errorf("Simplify().P() = %v, want %v", got, tt.wantP)
			}
			approxSlice(t, "x", s.X(), tt.wantX)

			d, ty := tt.tr.D(), tt.tr.T()
			for k, old := range tt.wantOld {
				if s.D()[k] != d[old] || s.T()[k] != ty[old] {
					t.Errorf("point %d does not carry attributes of original point %d", k, old)
				}
			}
			if !tt.tr.Equal(before) {
				t.Error("Simplify() modified the receiver")
			}
		})
	}
}

func TestSimplifyParentAfterChild(t *testing.T) {
	tests := []struct {
		name  string
		p     []int
		wantP []int
	}{
		// Points 3 and 4 grow out of point 5, which is stored last.
		{"late branch point", []int{-1, 0, 0, 5, 5, 1}, []int{-1, 0, 4, 4, 0}},
		{"reversed chain", []int{-1, 2, 3, 0}, []int{-1, 0}},
		{"mixed", []int{-1, 9, 5, 7, 0, 8, 2, 8, 0, 5}, []int{-1, 4, 6, 0, 6, 4, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := make([]float64, len(tt.p))
			tr := MustNew(f, f, f, f, make([]int, len(tt.p)), tt.p)
			s := tr.Simplify()
			if got := s.P(); !equalInts(got, tt.wantP) {
				t.Errorf("Simplify().P() = %v, want %v", got, tt.wantP)
			}
			if _, err := New(s.X(), s.Y(), s.Z(), s.D(), s.T(), s.P()); err != nil {
				t.Fatalf("Simplify() produced an invalid tree: %v", err)
			}
		})
	}
}

func TestSimplifySize(t *testing.T) {
	builders := map[string]func(*rand.Rand, int) *Tree{
		"depth-first": randomTree,
		"shuffled":    shuffledTree,
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(15, 16))
			for range 200 {
				tr := build(rng, 1+rng.IntN(60))
				_, end := tr.Sections()
				s := tr.Simplify()
				if s.Size() != len(end)+1 {
					t.Fatalf("Simplify().Size() = %d, want %d", s.Size(), len(end)+1)
				}
				if _, err := New(s.X(), s.Y(), s.Z(), s.D(), s.T(), s.P()); err != nil {
					t.Fatalf("Simplify() produced an invalid tree from p %v: %v", tr.P(), err)
				}

				// Straightening a section never lengthens it.
				path := tr.PathDistances()
				sp := s.PathDistances()
				for k, e := range end {
					if sp[k+1] > path[e]+1e-9 {
						t.Fatalf("simplified path %v exceeds original %v", sp[k+1], path[e])
					}
				}
			}
		})
	}
}
