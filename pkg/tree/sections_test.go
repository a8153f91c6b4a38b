package tree

import (
	"math/rand/v2"
	"testing"
)

func TestSections(t *testing.T) {
	f := make([]float64, 3)
	rootBranch := MustNew(f, f, f, f, make([]int, 3), []int{-1, 0, 0})

	tests := []struct {
		name       string
		tr         *Tree
		wantBeg    []int
		wantEnd    []int
		wantPtsBeg []int
	}{
		{"point", pointTree(), []int{}, []int{}, []int{}},
		{"chain", chainTree(), []int{0}, []int{3}, []int{0}},
		{"bifurcation", bifTree(), []int{0, 1, 1}, []int{1, 2, 4}, []int{0, 2, 3}},
		{"nested", deepTree(), []int{0, 2, 3, 3, 2}, []int{2, 3, 4, 5, 6}, []int{0, 3, 4, 5, 6}},
		{"root is a branch point", rootBranch, []int{0, 0}, []int{1, 2}, []int{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			beg, end := tt.tr.Sections()
			if !equalInts(beg, tt.wantBeg) || !equalInts(end, tt.wantEnd) {
				t.Errorf("Sections() = %v, %v, want %v, %v", beg, end, tt.wantBeg, tt.wantEnd)
			}
			pbeg, pend := tt.tr.SectionsOnlyPoints()
			if !equalInts(pbeg, tt.wantPtsBeg) || !equalInts(pend, tt.wantEnd) {
				t.Errorf("SectionsOnlyPoints() = %v, %v, want %v, %v", pbeg, pend, tt.wantPtsBeg, tt.wantEnd)
			}
		})
	}
}

func TestSectionsParentAfterChild(t *testing.T) {
	// The chain 0 -> 3 -> 2 -> 1 stored in reverse.
	f := make([]float64, 4)
	chain := MustNew(f, f, f, f, make([]int, 4), []int{-1, 2, 3, 0})
	// 0 -> 8 -> 5 -> 9 -> 1 with side branches, parents mostly stored last.
	g := make([]float64, 10)
	mixed := MustNew(g, g, g, g, make([]int, 10), []int{-1, 9, 5, 7, 0, 8, 2, 8, 0, 5})

	tests := []struct {
		name       string
		tr         *Tree
		wantBeg    []int
		wantEnd    []int
		wantPtsBeg []int
	}{
		{"reversed chain", chain, []int{0}, []int{1}, []int{0}},
		{"mixed", mixed, []int{5, 8, 0, 8, 5, 0}, []int{1, 3, 4, 5, 6, 8}, []int{9, 7, 0, 5, 2, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			beg, end := tt.tr.Sections()
			if !equalInts(beg, tt.wantBeg) || !equalInts(end, tt.wantEnd) {
				t.Errorf("Sections() = %v, %v, want %v, %v", beg, end, tt.wantBeg, tt.wantEnd)
			}
			pbeg, pend := tt.tr.SectionsOnlyPoints()
			if !equalInts(pbeg, tt.wantPtsBeg) || !equalInts(pend, tt.wantEnd) {
				t.Errorf("SectionsOnlyPoints() = %v, %v, want %v, %v", pbeg, pend, tt.wantPtsBeg, tt.wantEnd)
			}
		})
	}
}

// sectionOwners assigns every point to the section whose chain, walked from
// end up to the first point, contains it. Unowned points stay -1.
func sectionOwners(t *testing.T, tr *Tree) []int {
	t.Helper()
	beg, end := tr.SectionsOnlyPoints()
	owner := make([]int, tr.Size())
	for i := range owner {
		owner[i] = -1
	}
	for s := range end {
		for i := end[s]; ; i = tr.p[i] {
			if i == NoParent {
				t.Fatalf("section %d: first point %d is not an ancestor of end %d", s, beg[s], end[s])
			}
			if owner[i] != -1 {
				t.Fatalf("point %d in sections %d and %d", i, owner[i], s)
			}
			owner[i] = s
			if i == beg[s] {
				break
			}
		}
	}
	return owner
}

func TestSectionsOnlyPointsPartition(t *testing.T) {
	builders := map[string]func(*rand.Rand, int) *Tree{
		"depth-first": randomTree,
		"shuffled":    shuffledTree,
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(3, 4))
			for range 200 {
				tr := build(rng, 2+rng.IntN(60))
				for i, s := range sectionOwners(t, tr) {
					if s == -1 {
						t.Fatalf("point %d belongs to no section (p %v)", i, tr.P())
					}
				}
			}
		})
	}
}

func TestSectionsOnlyPointsDepthFirstRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for range 50 {
		tr := randomTree(rng, 2+rng.IntN(80))
		beg, end := tr.SectionsOnlyPoints()
		for s := 1; s < len(end); s++ {
			if beg[s] != end[s-1]+1 {
				t.Fatalf("beg[%d] = %d, want end[%d]+1 = %d", s, beg[s], s-1, end[s-1]+1)
			}
		}
		fbeg, fend := tr.Sections()
		for s := 1; s < len(fend); s++ {
			if want := tr.p[fend[s-1]+1]; fbeg[s] != want {
				t.Fatalf("Sections() beg[%d] = %d, want p[end[%d]+1] = %d", s, fbeg[s], s-1, want)
			}
		}
	}
}

func TestSectionsCoverEveryEdgeOnce(t *testing.T) {
	builders := map[string]func(*rand.Rand, int) *Tree{
		"depth-first": randomTree,
		"shuffled":    shuffledTree,
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(5, 6))
			for range 100 {
				tr := build(rng, 2+rng.IntN(80))
				beg, end := tr.Sections()
				path := tr.PathDistances()

				sum := 0.0
				for s := range end {
					sum += path[end[s]] - path[beg[s]]
				}
				if total := tr.TotalLength(); !approxRel(sum, total) {
					t.Fatalf("section lengths sum to %v, total length %v", sum, total)
				}
			}
		})
	}
}

func approxRel(a, b float64) bool {
	return approx(a, b) || (a-b)*(a-b) <= 1e-18*b*b
}
