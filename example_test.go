package kdtree_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/kdtree"
)

// Example_nearestNeighbors demonstrates a bulk build followed by a ranked k-NN query.
func Example_nearestNeighbors() {
	tree, err := kdtree.Build(2, []kdtree.Point[float64]{
		{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2},
	})
	if err != nil {
		log.Fatal(err)
	}

	neighbors, err := tree.NearestNeighbors(kdtree.Point[float64]{6, 3}, 3)
	if err != nil {
		log.Fatal(err)
	}

	// Results come back unordered; rank them explicitly.
	kdtree.SortNeighbors(neighbors)

	for _, nb := range neighbors {
		fmt.Printf("%v %.3f\n", nb.Point, nb.Distance)
	}
	// Output:
	// [7 2] 1.414
	// [5 4] 1.414
	// [8 1] 2.828
}

// Example_mutation demonstrates incremental inserts and deletes.
func Example_mutation() {
	tree, err := kdtree.New[int](3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(tree.IsEmpty())

	inserted, _ := tree.Insert(kdtree.Point[int]{1, 2, 3})
	fmt.Println(inserted, tree.Len())

	inserted, _ = tree.Insert(kdtree.Point[int]{1, 2, 3})
	fmt.Println(inserted, tree.Len())

	deleted, _ := tree.Delete(kdtree.Point[int]{1, 2, 3})
	found, _ := tree.Contains(kdtree.Point[int]{1, 2, 3})
	fmt.Println(deleted, found, tree.Len())
	// Output:
	// true
	// true 1
	// false 1
	// true false 0
}

// Example_rebuild demonstrates restoring balance after degenerate inserts.
func Example_rebuild() {
	tree, _ := kdtree.New[float64](2)
	for i := range 15 {
		_, _ = tree.Insert(kdtree.Point[float64]{float64(i), float64(i)})
	}
	fmt.Println("height before:", tree.Height())

	tree, _ = kdtree.Build(tree.Dimension(), tree.Points())
	fmt.Println("height after:", tree.Height())
	// Output:
	// height before: 15
	// height after: 4
}
