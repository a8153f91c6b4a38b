package tree_test

import (
	"fmt"
	"slices"

	"github.com/matzehuels/tmd/pkg/tree"
)

func ExampleTree_PathDistances() {
	// An unbranched chain: two unit steps up z, then a diagonal step.
	t, _ := tree.New(
		[]float64{0, 0, 0, 1},
		[]float64{0, 0, 0, 0},
		[]float64{0, 1, 2, 3},
		[]float64{1, 1, 1, 1},
		[]int{1, 1, 1, 1},
		[]int{-1, 0, 1, 2},
	)

	fmt.Println("Children:", t.ChildCounts())
	fmt.Printf("Path: %.3f\n", t.PathDistances())
	// Output:
	// Children: [1 1 1 0]
	// Path: [0.000 1.000 2.000 3.414]
}

func ExampleTree_Sections() {
	// Point 1 bifurcates into point 2 and the chain 3 → 4.
	t, _ := tree.New(
		[]float64{0, 0, 1, -1, -1},
		[]float64{0, 0, 0, 0, 0},
		[]float64{0, 1, 2, 2, 3},
		[]float64{1, 1, 1, 1, 1},
		[]int{3, 3, 3, 3, 3},
		[]int{-1, 0, 1, 1, 3},
	)

	beg, end := t.Sections()
	fmt.Println("Sections:", beg, end)
	beg, end = t.SectionsOnlyPoints()
	fmt.Println("First points:", beg, end)
	fmt.Println("Branch order of 4:", t.BranchOrder(4))
	fmt.Println("Way to root:", slices.Collect(t.WayToRoot(4)))
	fmt.Println("Simplified parents:", t.Simplify().P())
	// Output:
	// Sections: [0 1 1] [1 2 4]
	// First points: [0 2 3] [1 2 4]
	// Branch order of 4: 1
	// Way to root: [3 1 0 -1]
	// Simplified parents: [-1 0 1 1]
}
