package kdtree

import (
	"slices"
	"time"

	"github.com/hupe1980/kdtree/distance"
)

// Coordinate is the numeric type of a single axis value.
type Coordinate = distance.Coordinate

// Point is a tuple of exactly Dimension() coordinates.
type Point[T Coordinate] []T

// Tree is a k-d tree over points of a fixed dimension.
//
// Every node at depth d splits on axis d mod k: points in its left subtree are
// strictly smaller on that axis, points in its right subtree are greater or equal.
// A point is stored at most once.
//
// Tree is not safe for concurrent use. No rebalancing happens after Insert or
// Delete; rebuild from Points() when Height() degrades.
type Tree[T Coordinate] struct {
	root *node[T]
	size int
	k    int

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty tree for points with k coordinates.
func New[T Coordinate](k int, optFns ...Option) (*Tree[T], error) {
	if k <= 0 {
		return nil, &ErrInvalidDimension{Dimension: k}
	}

	opts := applyOptions(optFns)

	return &Tree[T]{
		k:       k,
		logger:  opts.logger.WithDimension(k),
		metrics: opts.metricsCollector,
	}, nil
}

// Build creates a balanced tree from points.
//
// At every level the points are stable-sorted on the level's axis and the
// median becomes the node. When several points share the median's axis value
// the split moves to the first of them, so the left subtree stays strictly
// smaller. The input slice is not modified. Duplicate points are not removed.
func Build[T Coordinate](k int, points []Point[T], optFns ...Option) (*Tree[T], error) {
	t, err := New[T](k, optFns...)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	for _, p := range points {
		if err := t.checkDimension(p); err != nil {
			t.metrics.RecordBuild(len(points), time.Since(start), err)
			t.logger.LogBuild(len(points), 0, err)
			return nil, err
		}
	}

	if len(points) > 0 {
		work := make([]Point[T], len(points))
		for i, p := range points {
			work[i] = slices.Clone(p)
		}

		t.root = buildNodes(work, 0, k)
		t.size = len(points)
	}

	t.metrics.RecordBuild(len(points), time.Since(start), nil)
	t.logger.LogBuild(len(points), t.Height(), nil)

	return t, nil
}

// Insert adds p to the tree.
// It returns false, leaving the tree unchanged, if p is already stored.
func (t *Tree[T]) Insert(p Point[T]) (bool, error) {
	start := time.Now()

	if err := t.checkDimension(p); err != nil {
		t.metrics.RecordInsert(time.Since(start), false, err)
		t.logger.LogInsert(p, false, err)
		return false, err
	}

	inserted := insertNode(&t.root, slices.Clone(p), t.k)
	if inserted {
		t.size++
	}

	t.metrics.RecordInsert(time.Since(start), inserted, nil)
	t.logger.LogInsert(p, inserted, nil)

	return inserted, nil
}

// Delete removes p from the tree.
// It returns false if p is not stored.
func (t *Tree[T]) Delete(p Point[T]) (bool, error) {
	start := time.Now()

	if err := t.checkDimension(p); err != nil {
		t.metrics.RecordDelete(time.Since(start), false, err)
		t.logger.LogDelete(p, false, err)
		return false, err
	}

	deleted := deleteNode(&t.root, p, 0, t.k)
	if deleted {
		t.size--
	}

	t.metrics.RecordDelete(time.Since(start), deleted, nil)
	t.logger.LogDelete(p, deleted, nil)

	return deleted, nil
}

// Contains reports whether p is stored in the tree.
func (t *Tree[T]) Contains(p Point[T]) (bool, error) {
	start := time.Now()

	if err := t.checkDimension(p); err != nil {
		t.metrics.RecordContains(time.Since(start), false, err)
		return false, err
	}

	found := searchNode(t.root, p, t.k)

	t.metrics.RecordContains(time.Since(start), found, nil)

	return found, nil
}

// NearestNeighbors returns up to n stored points closest to q by Euclidean distance.
//
// Exactly min(n, Len()) neighbors are returned. The result is a set: its order
// follows the traversal, not the distance. Use SortNeighbors for ranked output.
func (t *Tree[T]) NearestNeighbors(q Point[T], n int) ([]Neighbor[T], error) {
	start := time.Now()

	if n < 0 {
		t.metrics.RecordSearch(n, 0, time.Since(start), ErrInvalidK)
		t.logger.LogSearch(n, 0, ErrInvalidK)
		return nil, ErrInvalidK
	}
	if err := t.checkDimension(q); err != nil {
		t.metrics.RecordSearch(n, 0, time.Since(start), err)
		t.logger.LogSearch(n, 0, err)
		return nil, err
	}

	if n == 0 || t.root == nil {
		t.metrics.RecordSearch(n, 0, time.Since(start), nil)
		t.logger.LogSearch(n, 0, nil)
		return []Neighbor[T]{}, nil
	}

	set := newNeighborSet[T](n, min(n, t.size))
	searchNearest(t.root, q, 0, t.k, set)
	result := set.result()

	t.metrics.RecordSearch(n, len(result), time.Since(start), nil)
	t.logger.LogSearch(n, len(result), nil)

	return result, nil
}

// Len returns the number of stored points.
func (t *Tree[T]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree stores no points.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Dimension returns the number of coordinates per point.
func (t *Tree[T]) Dimension() int {
	return t.k
}

func (t *Tree[T]) checkDimension(p Point[T]) error {
	if len(p) != t.k {
		return &ErrDimensionMismatch{Expected: t.k, Actual: len(p)}
	}
	return nil
}
