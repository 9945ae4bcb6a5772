package kdtree

import (
	"cmp"
	"slices"
)

// node is a single cell of the tree. Both children are exclusively owned;
// there are no parent links, so every mutation threads a slot down from the root.
type node[T Coordinate] struct {
	point Point[T]
	left  *node[T]
	right *node[T]
}

// buildNodes builds a subtree from points by median split on the axis of depth.
// points is reordered in place; the caller owns it.
func buildNodes[T Coordinate](points []Point[T], depth, k int) *node[T] {
	if len(points) == 0 {
		return nil
	}

	axis := depth % k
	slices.SortStableFunc(points, func(a, b Point[T]) int {
		return cmp.Compare(a[axis], b[axis])
	})

	median := splitIndex(points, axis)

	return &node[T]{
		point: points[median],
		left:  buildNodes(points[:median], depth+1, k),
		right: buildNodes(points[median+1:], depth+1, k),
	}
}

// splitIndex returns len/2, moved left past points that share the median's
// axis value. Everything before the result is strictly less on axis.
func splitIndex[T Coordinate](sorted []Point[T], axis int) int {
	m := len(sorted) / 2
	for m > 0 && sorted[m-1][axis] == sorted[m][axis] {
		m--
	}
	return m
}

// insertNode places p into the first absent slot on its search path.
// Returns false without mutation if p is already stored.
func insertNode[T Coordinate](slot **node[T], p Point[T], k int) bool {
	for depth := 0; *slot != nil; depth++ {
		n := *slot
		axis := depth % k

		switch {
		case p[axis] < n.point[axis]:
			slot = &n.left
		case slices.Equal(p, n.point):
			return false
		default:
			slot = &n.right
		}
	}

	*slot = &node[T]{point: p}
	return true
}

// searchNode reports whether p is stored below n. Only one child is visited per level.
func searchNode[T Coordinate](n *node[T], p Point[T], k int) bool {
	for depth := 0; n != nil; depth++ {
		if slices.Equal(p, n.point) {
			return true
		}

		if axis := depth % k; p[axis] < n.point[axis] {
			n = n.left
		} else {
			n = n.right
		}
	}
	return false
}

// deleteNode removes p from the subtree held in slot, where the slot's node sits at depth.
//
// A matching inner node is not unlinked. Instead the minimum on its split axis is
// copied up from the right subtree (or from the left subtree, which then becomes
// the right one) and deleted recursively from there. Only a leaf is ever detached.
func deleteNode[T Coordinate](slot **node[T], p Point[T], depth, k int) bool {
	n := *slot
	if n == nil {
		return false
	}

	axis := depth % k

	if !slices.Equal(n.point, p) {
		if p[axis] < n.point[axis] {
			return deleteNode(&n.left, p, depth+1, k)
		}
		return deleteNode(&n.right, p, depth+1, k)
	}

	switch {
	case n.right != nil:
		n.point = mustMinNode(n.right, axis, depth+1, k).point
		return deleteNode(&n.right, n.point, depth+1, k)
	case n.left != nil:
		n.point = mustMinNode(n.left, axis, depth+1, k).point
		n.right, n.left = n.left, nil
		return deleteNode(&n.right, n.point, depth+1, k)
	default:
		*slot = nil
		return true
	}
}

// minNode returns the node holding the smallest value on axis within the
// subtree rooted at n (at depth). Ties keep the first node found, checking the
// subtree root before its children.
func minNode[T Coordinate](n *node[T], axis, depth, k int) *node[T] {
	if n == nil {
		return nil
	}

	if depth%k == axis {
		// The right subtree is >= n on this axis.
		if n.left == nil {
			return n
		}
		return minNode(n.left, axis, depth+1, k)
	}

	best := n
	for _, c := range [2]*node[T]{
		minNode(n.left, axis, depth+1, k),
		minNode(n.right, axis, depth+1, k),
	} {
		if c != nil && c.point[axis] < best.point[axis] {
			best = c
		}
	}
	return best
}

func mustMinNode[T Coordinate](n *node[T], axis, depth, k int) *node[T] {
	m := minNode(n, axis, depth, k)
	if m == nil {
		panic("kdtree: no minimum in non-empty subtree")
	}
	return m
}
