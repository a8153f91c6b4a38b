package tree

import (
	"math/rand/v2"
	"testing"
)

func TestChildCounts(t *testing.T) {
	tests := []struct {
		name string
		tr   *Tree
		want []int
	}{
		{"point", pointTree(), []int{0}},
		{"chain", chainTree(), []int{1, 1, 1, 0}},
		{"bifurcation", bifTree(), []int{1, 2, 0, 1, 0}},
		{"nested", deepTree(), []int{1, 1, 2, 2, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.ChildCounts(); !equalInts(got, tt.want) {
				t.Errorf("ChildCounts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFurcations(t *testing.T) {
	// Point 1 has three children.
	f := make([]float64, 6)
	tr := MustNew(f, f, f, f, make([]int, 6), []int{-1, 0, 1, 1, 1, 2})

	if got := tr.Bifurcations(); len(got) != 0 {
		t.Errorf("Bifurcations() = %v, want none", got)
	}
	if got := tr.Multifurcations(); !equalInts(got, []int{1}) {
		t.Errorf("Multifurcations() = %v, want [1]", got)
	}
	if got := tr.Terminations(); !equalInts(got, []int{3, 4, 5}) {
		t.Errorf("Terminations() = %v, want [3 4 5]", got)
	}

	b := bifTree()
	if got := b.Bifurcations(); !equalInts(got, []int{1}) {
		t.Errorf("Bifurcations() = %v, want [1]", got)
	}
	if got := b.Terminations(); !equalInts(got, []int{2, 4}) {
		t.Errorf("Terminations() = %v, want [2 4]", got)
	}
}

func TestClassifyPartitionsPoints(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		tr := randomTree(rng, 1+rng.IntN(60))
		kinds := tr.Classify()
		counts := tr.ChildCounts()

		var term, pass, multi int
		for i, k := range kinds {
			switch k {
			case Termination:
				term++
				if counts[i] != 0 {
					t.Fatalf("point %d classified %v with %d children", i, k, counts[i])
				}
			case PassThrough:
				pass++
			case Multifurcation:
				multi++
			}
		}
		if term+pass+multi != tr.Size() {
			t.Fatalf("%d + %d + %d != %d", term, pass, multi, tr.Size())
		}
		if multi != len(tr.Multifurcations()) || term != len(tr.Terminations()) {
			t.Fatalf("Classify() disagrees with Multifurcations()/Terminations()")
		}
	}
}

func TestPointKindString(t *testing.T) {
	if Multifurcation.String() != "multifurcation" || PassThrough.String() != "pass-through" {
		t.Errorf("unexpected PointKind strings")
	}
}
