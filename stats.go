package kdtree

import (
	"iter"
	"slices"
)

// Stats describes the shape of a tree.
type Stats struct {
	Size      int // Number of stored points
	Height    int // Number of levels, 0 when empty
	Leaves    int // Nodes without children
	Dimension int // Coordinates per point
}

// Stats returns the current shape of the tree. It walks every node.
func (t *Tree[T]) Stats() Stats {
	s := Stats{
		Size:      t.size,
		Dimension: t.k,
	}

	var walk func(n *node[T], level int)
	walk = func(n *node[T], level int) {
		if n == nil {
			return
		}
		s.Height = max(s.Height, level)
		if n.left == nil && n.right == nil {
			s.Leaves++
		}
		walk(n.left, level+1)
		walk(n.right, level+1)
	}
	walk(t.root, 1)

	return s
}

// Height returns the number of levels in the tree.
// A tree built in bulk has height about log2(Len()+1); after adversarial
// inserts it can reach Len().
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T Coordinate](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// All returns an iterator over copies of the stored points in pre-order.
// The tree must not be modified during iteration.
func (t *Tree[T]) All() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		var walk func(n *node[T]) bool
		walk = func(n *node[T]) bool {
			if n == nil {
				return true
			}
			return yield(slices.Clone(n.point)) && walk(n.left) && walk(n.right)
		}
		walk(t.root)
	}
}

// Points returns copies of all stored points in pre-order.
// Passing the result to Build yields a rebalanced tree with the same content.
func (t *Tree[T]) Points() []Point[T] {
	points := make([]Point[T], 0, t.size)
	for p := range t.All() {
		points = append(points, p)
	}
	return points
}
