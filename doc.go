// Package kdtree provides an in-memory k-d tree for exact membership tests and
// k-nearest-neighbor search over fixed-dimension points.
//
// Coordinates may be any integer or floating point type. The dimension is fixed
// when the tree is created and every point passed in must match it.
//
// # Quick Start
//
//	tree, _ := kdtree.Build(2, []kdtree.Point[float64]{
//	    {2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2},
//	})
//
//	tree.Insert(kdtree.Point[float64]{3, 3})  // true
//	tree.Insert(kdtree.Point[float64]{3, 3})  // false, already stored
//	tree.Contains(kdtree.Point[float64]{5, 4}) // true
//	tree.Delete(kdtree.Point[float64]{5, 4})   // true
//
// # Nearest Neighbors
//
// NearestNeighbors returns min(n, Len()) points with their Euclidean distance.
// The result is unordered; sort it when a ranking is needed:
//
//	neighbors, _ := tree.NearestNeighbors(kdtree.Point[float64]{6, 3}, 3)
//	kdtree.SortNeighbors(neighbors)
//
// # Balance
//
// Build splits on the median at every level and produces a balanced tree.
// Insert and Delete never rebalance, so long mutation sequences can degrade
// lookups toward linear time. Height reports the current depth; rebuilding
// from Points restores balance:
//
//	tree, _ = kdtree.Build(tree.Dimension(), tree.Points())
//
// # Observability
//
//	metrics := &kdtree.BasicMetricsCollector{}
//	tree, _ := kdtree.New[int](3,
//	    kdtree.WithLogger(kdtree.NewTextLogger(slog.LevelDebug)),
//	    kdtree.WithMetricsCollector(metrics),
//	)
//
// A Tree is not safe for concurrent use; callers must synchronize access.
package kdtree
