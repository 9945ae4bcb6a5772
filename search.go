package kdtree

import (
	"cmp"
	"slices"

	"github.com/hupe1980/kdtree/distance"
)

// Neighbor is a single nearest-neighbor result.
type Neighbor[T Coordinate] struct {
	// Distance is the Euclidean distance between the query and Point.
	Distance float64

	// Point is a copy of the stored point.
	Point Point[T]
}

// SortNeighbors orders neighbors by ascending distance.
// Equal distances keep their relative order.
func SortNeighbors[T Coordinate](neighbors []Neighbor[T]) {
	slices.SortStableFunc(neighbors, func(a, b Neighbor[T]) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
}

// neighborSet keeps the best n candidates seen so far, in no particular order.
// Finding the worst entry is a linear scan, which is fine while n stays small.
type neighborSet[T Coordinate] struct {
	n     int
	items []Neighbor[T]
}

func newNeighborSet[T Coordinate](n, capacity int) *neighborSet[T] {
	return &neighborSet[T]{
		n:     n,
		items: make([]Neighbor[T], 0, capacity),
	}
}

func (s *neighborSet[T]) full() bool {
	return len(s.items) >= s.n
}

// worst returns the position of the first entry with the largest distance.
func (s *neighborSet[T]) worst() int {
	pos := 0
	for i := 1; i < len(s.items); i++ {
		if s.items[i].Distance > s.items[pos].Distance {
			pos = i
		}
	}
	return pos
}

// offer adds the candidate while the set has room. Once full, it replaces the
// worst entry only when dist is strictly smaller.
func (s *neighborSet[T]) offer(p Point[T], dist float64) {
	if !s.full() {
		s.items = append(s.items, Neighbor[T]{Distance: dist, Point: p})
		return
	}

	if pos := s.worst(); dist < s.items[pos].Distance {
		s.items[pos] = Neighbor[T]{Distance: dist, Point: p}
	}
}

// result returns the kept neighbors with cloned points.
func (s *neighborSet[T]) result() []Neighbor[T] {
	out := make([]Neighbor[T], len(s.items))
	for i, item := range s.items {
		out[i] = Neighbor[T]{Distance: item.Distance, Point: slices.Clone(item.Point)}
	}
	return out
}

// searchNearest runs the branch-and-bound descent from n at depth.
// The far side of a split is skipped once the set is full and the splitting
// hyperplane is no closer than the worst kept candidate.
func searchNearest[T Coordinate](n *node[T], q Point[T], depth, k int, set *neighborSet[T]) {
	if n == nil {
		return
	}

	set.offer(n.point, distance.Euclidean(n.point, q))

	axis := depth % k
	near, far := n.right, n.left
	if q[axis] < n.point[axis] {
		near, far = n.left, n.right
	}

	searchNearest(near, q, depth+1, k, set)

	if far == nil {
		return
	}
	if !set.full() || distance.AxisGap(q, n.point, axis) < set.items[set.worst()].Distance {
		searchNearest(far, q, depth+1, k, set)
	}
}
